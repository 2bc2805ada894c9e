package mapping

import (
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/models"
)

// ToModelTravelApplication converts a domain TravelApplication to a model TravelApplication.
// Segments and bookings are persisted through their own converters.
func ToModelTravelApplication(d domain.TravelApplication) models.TravelApplication {
	return models.TravelApplication{
		ApplicationID: d.ApplicationID,
		EmployeeID:    d.EmployeeID,
		Purpose:       d.Purpose,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTravelApplication converts a model TravelApplication to a domain TravelApplication
func ToDomainTravelApplication(m models.TravelApplication) domain.TravelApplication {
	return domain.TravelApplication{
		ApplicationID: m.ApplicationID,
		EmployeeID:    m.EmployeeID,
		Purpose:       m.Purpose,
		Status:        domain.ApplicationStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTripSegment converts a domain TripSegment to a model TripSegment
func ToModelTripSegment(d domain.TripSegment) models.TripSegment {
	return models.TripSegment{
		SegmentID:        d.SegmentID,
		ApplicationID:    d.ApplicationID,
		FromLocation:     d.FromLocation,
		ToLocation:       d.ToLocation,
		FromCityCategory: string(d.FromCityCategory),
		ToCityCategory:   string(d.ToCityCategory),
		DepartureDate:    d.DepartureDate,
		ReturnDate:       d.ReturnDate,
		OneWayDistanceKM: d.OneWayDistanceKM,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTripSegment converts a model TripSegment to a domain TripSegment
func ToDomainTripSegment(m models.TripSegment) domain.TripSegment {
	return domain.TripSegment{
		SegmentID:        m.SegmentID,
		ApplicationID:    m.ApplicationID,
		FromLocation:     m.FromLocation,
		ToLocation:       m.ToLocation,
		FromCityCategory: domain.CityCategory(m.FromCityCategory),
		ToCityCategory:   domain.CityCategory(m.ToCityCategory),
		DepartureDate:    m.DepartureDate,
		ReturnDate:       m.ReturnDate,
		OneWayDistanceKM: m.OneWayDistanceKM,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:     d.BookingID,
		SegmentID:     d.SegmentID,
		ModeName:      d.ModeName,
		SubOption:     d.SubOption,
		Status:        string(d.Status),
		EstimatedCost: d.EstimatedCost,
		ActualCost:    d.ActualCost,
		Details:       d.Details,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:     m.BookingID,
		SegmentID:     m.SegmentID,
		ModeName:      m.ModeName,
		SubOption:     m.SubOption,
		Status:        domain.BookingStatus(m.Status),
		EstimatedCost: m.EstimatedCost,
		ActualCost:    m.ActualCost,
		Details:       domain.BookingDetails(m.Details),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBookingSlice converts a slice of model Bookings to domain
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
