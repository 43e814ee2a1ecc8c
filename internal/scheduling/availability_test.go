package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medcoverage/internal/domain"
)

func assignment(id string, status domain.AssignmentStatus, start, end time.Time) *domain.StaffAssignment {
	return &domain.StaffAssignment{
		ID:             id,
		StaffID:        "staff-1",
		Status:         status,
		ShiftStartTime: start,
		ShiftEndTime:   end,
	}
}

func TestIsStaffAvailable(t *testing.T) {
	dayShift := []*domain.StaffAssignment{
		assignment("a-1", domain.AssignmentStatusScheduled,
			time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name        string
		candidate   Interval
		assignments []*domain.StaffAssignment
		exclude     string
		want        bool
	}{
		{
			name:        "no assignments",
			candidate:   NewInterval(at(9, 0), at(17, 0)),
			assignments: nil,
			want:        true,
		},
		{
			name:        "touching boundary is not a conflict",
			candidate:   NewInterval(at(17, 0), at(20, 0)),
			assignments: dayShift,
			want:        true,
		},
		{
			name:        "one minute overlap conflicts",
			candidate:   NewInterval(at(16, 59), at(20, 0)),
			assignments: dayShift,
			want:        false,
		},
		{
			name:      "cancelled assignments are ignored",
			candidate: NewInterval(at(10, 0), at(12, 0)),
			assignments: []*domain.StaffAssignment{
				assignment("a-1", domain.AssignmentStatusCancelled, at(9, 0), at(17, 0)),
			},
			want: true,
		},
		{
			name:      "checked-in assignments still conflict",
			candidate: NewInterval(at(10, 0), at(12, 0)),
			assignments: []*domain.StaffAssignment{
				assignment("a-1", domain.AssignmentStatusCheckedIn, at(9, 0), at(17, 0)),
			},
			want: false,
		},
		{
			name:        "excluded assignment does not conflict with itself",
			candidate:   NewInterval(at(9, 0), at(17, 0)),
			assignments: dayShift,
			exclude:     "a-1",
			want:        true,
		},
		{
			name:      "exclude only skips the matching id",
			candidate: NewInterval(at(9, 0), at(17, 0)),
			assignments: []*domain.StaffAssignment{
				assignment("a-1", domain.AssignmentStatusScheduled, at(9, 0), at(17, 0)),
				assignment("a-2", domain.AssignmentStatusScheduled, at(16, 0), at(18, 0)),
			},
			exclude: "a-1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsStaffAvailable(tt.candidate, tt.assignments, tt.exclude)
			assert.Equal(t, tt.want, got)
		})
	}
}
