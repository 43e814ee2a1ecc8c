package scheduling

import "medcoverage/internal/domain"

// IsStaffAvailable reports whether a staff member can take on the candidate
// time window without double-booking. assignments is the staff member's
// existing assignments with shift windows populated; cancelled assignments
// and the assignment with excludeAssignmentID (its own record, when updating)
// are not conflict candidates. No assignments means available.
func IsStaffAvailable(candidate Interval, assignments []*domain.StaffAssignment, excludeAssignmentID string) bool {
	for _, a := range assignments {
		if a.Status == domain.AssignmentStatusCancelled {
			continue
		}
		if excludeAssignmentID != "" && a.ID == excludeAssignmentID {
			continue
		}
		if candidate.Overlaps(NewInterval(a.ShiftStartTime, a.ShiftEndTime)) {
			return false
		}
	}
	return true
}
