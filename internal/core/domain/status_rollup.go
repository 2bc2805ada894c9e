package domain

// bookedTriggerStatuses are the application states from which the booking
// rollup may move the application to booked. "booked" itself is absent, so
// once booked, repeated rollups leave the application untouched.
var bookedTriggerStatuses = map[ApplicationStatus]bool{
	StatusPendingTravelDesk: true,
	StatusBookingInProgress: true,
	StatusApprovedManager:   true,
	StatusApprovedCHRO:      true,
	StatusApprovedCEO:       true,
}

var inProgressTriggerStatuses = map[ApplicationStatus]bool{
	StatusPendingTravelDesk: true,
	StatusApprovedManager:   true,
	StatusApprovedCHRO:      true,
	StatusApprovedCEO:       true,
}

// NextAggregateStatus derives an application's rollup status from its child
// booking statuses. It returns ok=false when nothing should change: no
// bookings, or the current status is outside the allowed trigger set. The
// decision is pure so repeated or out-of-order invocations are safe.
func NextAggregateStatus(current ApplicationStatus, bookings []BookingStatus) (ApplicationStatus, bool) {
	if len(bookings) == 0 {
		return current, false
	}

	allSettled := true
	anyOutstanding := false
	for _, b := range bookings {
		if !b.IsSettled() {
			allSettled = false
		}
		if b.IsOutstanding() {
			anyOutstanding = true
		}
	}

	if allSettled && bookedTriggerStatuses[current] {
		return StatusBooked, true
	}
	if anyOutstanding && inProgressTriggerStatuses[current] {
		return StatusBookingInProgress, true
	}
	return current, false
}
