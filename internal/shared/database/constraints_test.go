package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MigrateConstraints runs on every boot, so each statement it issues has
// to be idempotent and accepted by Postgres as written.
func TestMigrateConstraintsIssuesIdempotentIndexStatements(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_transaction_lines_event_id")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_transaction_lines_ticket_id")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, MigrateConstraints(gdb))
	assert.NoError(t, mock.ExpectationsWereMet())
}
