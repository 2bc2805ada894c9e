package mapping

import (
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/models"
)

// ToModelGrade converts a domain Grade to a model Grade
func ToModelGrade(d domain.Grade) models.Grade {
	return models.Grade{
		GradeID:     d.GradeID,
		Name:        d.Name,
		Description: d.Description,
		SortOrder:   d.SortOrder,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGrade converts a model Grade to a domain Grade
func ToDomainGrade(m models.Grade) domain.Grade {
	return domain.Grade{
		GradeID:     m.GradeID,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGradeSlice converts a slice of model Grades to a slice of domain Grades
func ToDomainGradeSlice(ms []models.Grade) []domain.Grade {
	ds := make([]domain.Grade, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGrade(m)
	}
	return ds
}

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Email:       d.Email,
		GradeID:     d.GradeID,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee.
// The joined grade, when loaded, is attached by the caller.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		Name:        m.Name,
		Email:       m.Email,
		GradeID:     m.GradeID,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
