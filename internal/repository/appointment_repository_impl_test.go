package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"vet-appointments-service/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The slot query is the read side of the double-booking guard: it must
// ignore cancelled and soft-deleted rows so a freed slot can be rebooked.
const findSlotWhere = `date = $1 AND time = $2 AND veterinarian_id = $3 AND is_active = $4 AND status != $5`

func TestAppointmentRepositoryFindSlotReturnsActiveOccupant(t *testing.T) {
	db, mock := testDB(t)
	repo := NewAppointmentRepository(db)

	date := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(findSlotWhere)).
		WithArgs(date, "10:00:00", 3, true, string(entity.AppointmentStatusCancelled), 1).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_id", "time", "veterinarian_id", "status"}).
			AddRow(55, "10:00:00", 3, "pending"))

	occupant, err := repo.FindSlot(context.Background(), date, "10:00:00", 3)

	require.NoError(t, err)
	require.NotNil(t, occupant)
	assert.Equal(t, 55, occupant.ID)
	assert.Equal(t, entity.AppointmentStatusPending, occupant.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryFindSlotFreeAfterCancellation(t *testing.T) {
	db, mock := testDB(t)
	repo := NewAppointmentRepository(db)

	// The cancelled occupant is filtered out by the query predicate, so the
	// database returns no row and the slot reads as free.
	date := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(findSlotWhere)).
		WithArgs(date, "10:00:00", 3, true, string(entity.AppointmentStatusCancelled), 1).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_id"}))

	occupant, err := repo.FindSlot(context.Background(), date, "10:00:00", 3)

	require.NoError(t, err)
	assert.Nil(t, occupant)
	assert.NoError(t, mock.ExpectationsWereMet())
}
