package seats

import (
	"regexp"
	"testing"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockedDB opens gorm over a sqlmock connection so the exact SQL the
// repository issues can be asserted. Default transactions are skipped
// because Reserve always runs on a caller-supplied handle.
func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gdb, mock
}

var reserveUpdate = regexp.QuoteMeta(`UPDATE "seats" SET`)

func TestReserveFlipsAllRequestedSeats(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := NewRepository(gdb)
	eventID := uuid.New()

	mock.ExpectExec(reserveUpdate).
		WithArgs(false, sqlmock.AnyArg(), eventID.String(), "A1", "A2", true).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Reserve(gdb, eventID, []string{"A1", "A2"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveShortfallIsAConflict(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := NewRepository(gdb)
	eventID := uuid.New()

	// one of the two seats was already taken: the conditional update
	// matches a single row and the reservation must not stand
	mock.ExpectExec(reserveUpdate).
		WithArgs(false, sqlmock.AnyArg(), eventID.String(), "A1", "A2", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reserve(gdb, eventID, []string{"A1", "A2"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveConflictRollsBackEnclosingTransaction(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := NewRepository(gdb)
	eventID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(reserveUpdate).
		WithArgs(false, sqlmock.AnyArg(), eventID.String(), "A1", true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := gdb.Transaction(func(tx *gorm.DB) error {
		return repo.Reserve(tx, eventID, []string{"A1"})
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// the rollback expectation being consumed proves the partial flip
	// never persists
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveNoSeatsIsANoOp(t *testing.T) {
	gdb, mock := newMockedDB(t)
	repo := NewRepository(gdb)

	require.NoError(t, repo.Reserve(gdb, uuid.New(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
