package audit_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spock-lang/spock/internal/audit"
)

func TestRecordInsertsEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := audit.NewStore(db)

	entry := audit.Entry{
		RequestID: "req-1",
		KeyID:     "key-1",
		Source:    "1.  p ∧ q .$",
		Result:    "True",
		CreatedAt: time.Unix(0, 0),
	}
	mock.ExpectExec("INSERT INTO evaluate_requests").
		WithArgs(entry.RequestID, entry.KeyID, entry.Source, entry.Stage, entry.Result, entry.Message, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Record(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordWrapsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := audit.NewStore(db)

	entry := audit.Entry{RequestID: "req-2", KeyID: "key-1", Source: "x", CreatedAt: time.Unix(0, 0)}
	mock.ExpectExec("INSERT INTO evaluate_requests").WillReturnError(errors.New("connection reset"))

	err = store.Record(context.Background(), entry)
	assert.Error(t, err)
}

func TestFindByRequestIDReturnsEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := audit.NewStore(db)

	created := time.Unix(1700000000, 0)
	rows := sqlmock.NewRows([]string{"request_id", "key_id", "source", "stage", "result", "message", "created_at"}).
		AddRow("req-3", "key-1", "1.  p .$", "", "True", "", created)
	mock.ExpectQuery("SELECT request_id, key_id, source, stage, result, message, created_at").
		WithArgs("req-3").
		WillReturnRows(rows)

	entry, err := store.FindByRequestID(context.Background(), "req-3")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "req-3", entry.RequestID)
	assert.Equal(t, "True", entry.Result)
}

func TestFindByRequestIDReturnsNilWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := audit.NewStore(db)

	mock.ExpectQuery("SELECT request_id, key_id, source, stage, result, message, created_at").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	entry, err := store.FindByRequestID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
