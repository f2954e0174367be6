package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestSQLite_Apply_RollsBackOnFailedWrite(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv").
		WithArgs("token", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO kv").
		WithArgs("user", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Apply(context.Background(), Put("token", []byte("t")), Put("user", []byte("{}")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kv[user]")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_Apply_CommitsAllOps(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM kv").WithArgs("token").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM kv").WithArgs("user").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, s.Apply(context.Background(), Remove("token"), Remove("user")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_Apply_BeginFails(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := s.Apply(context.Background(), Put("token", []byte("t")))
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_Get_WrapsQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("token").
		WillReturnError(errors.New("no such table: kv"))

	_, err := s.Get(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get kv[token]")
	assert.NoError(t, mock.ExpectationsWereMet())
}
