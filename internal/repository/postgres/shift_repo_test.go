package postgres

import (
	"context"
	"testing"
	"time"

	"medcoverage/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestShiftRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := repoNow.Add(24 * time.Hour)
	mock.ExpectQuery(`SELECT id, event_id, name, start_time, end_time`).
		WithArgs("ev-1").
		WillReturnRows(shiftRows().
			AddRow("sh-1", "ev-1", "Morning", start, start.Add(4*time.Hour), 2, nil, "open", repoNow, repoNow).
			AddRow("sh-2", "ev-1", "Evening", start.Add(4*time.Hour), start.Add(8*time.Hour), 1, "Night cover", "full", repoNow, repoNow))

	repo := NewShiftRepository(db)
	shifts, err := repo.ListByEventID(ctx, "ev-1")
	require.NoError(t, err)

	require.Len(t, shifts, 2)
	require.Equal(t, domain.ShiftStatusOpen, shifts[0].Status)
	require.Nil(t, shifts[0].Description)
	require.Equal(t, domain.ShiftStatusFull, shifts[1].Status)
	require.NotNil(t, shifts[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRepository_CountActiveAssignments(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("sh-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewShiftRepository(db)
	count, err := repo.CountActiveAssignments(ctx, "sh-1")
	require.NoError(t, err)
	require.Equal(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
