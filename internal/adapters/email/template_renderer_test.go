package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"medcoverage/internal/domain"
)

func TestTemplateRenderer_Render(t *testing.T) {
	renderer := NewTemplateRenderer()
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("event_planned", func(t *testing.T) {
		subject, htmlBody, textBody, err := renderer.Render("event_planned", &domain.EventPlannedEmailData{
			Email:         "sam@example.com",
			ContactPerson: "Sam Peet",
			EventName:     "City Marathon",
			Location:      "Riverside",
			StartDate:     start,
			EndDate:       start.Add(6 * time.Hour),
		})
		require.NoError(t, err)
		require.Equal(t, `Your event "City Marathon" has been planned`, subject)
		require.Contains(t, htmlBody, "City Marathon")
		require.Contains(t, htmlBody, "Riverside")
		require.Contains(t, textBody, "Hello Sam Peet")
	})

	t.Run("shift_assignment", func(t *testing.T) {
		subject, htmlBody, textBody, err := renderer.Render("shift_assignment", &domain.ShiftAssignmentEmailData{
			Email:     "alex@example.com",
			StaffName: "Alex Rivera",
			EventName: "City Marathon",
			Location:  "Riverside",
			ShiftName: "Morning",
			StartTime: start,
			EndTime:   start.Add(4 * time.Hour),
		})
		require.NoError(t, err)
		require.True(t, strings.Contains(subject, "Morning"))
		require.Contains(t, htmlBody, "Alex Rivera")
		require.Contains(t, textBody, "check in")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, _, err := renderer.Render("does_not_exist", nil)
		require.Error(t, err)
	})
}
