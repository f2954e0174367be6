package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SetAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("h.p.s")))

	v, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("h.p.s"), v)
}

func TestSQLite_Get_Absent_ReturnsNilNil(t *testing.T) {
	s := openTestStore(t)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLite_Set_Overwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestSQLite_Delete_IsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "x", []byte{1}))
	require.NoError(t, s.Delete(ctx, "x"))
	require.NoError(t, s.Delete(ctx, "x"))

	v, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLite_Apply_WritesAndDeletesTogether(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "emailForOtp", []byte("a@b.com")))

	err := s.Apply(ctx,
		Put("token", []byte("h.p.s")),
		Put("user", []byte(`{"id":1}`)),
		Remove("emailForOtp"),
	)
	require.NoError(t, err)

	tok, _ := s.Get(ctx, "token")
	usr, _ := s.Get(ctx, "user")
	pending, _ := s.Get(ctx, "emailForOtp")
	assert.Equal(t, []byte("h.p.s"), tok)
	assert.Equal(t, []byte(`{"id":1}`), usr)
	assert.Nil(t, pending)
}

func TestSQLite_Apply_RollsBackOnFailure(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", []byte("old")))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := s.Apply(cancelled, Put("token", []byte("new")), Put("user", []byte("u")))
	require.Error(t, err)

	tok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), tok)
}

func TestSQLite_ClosedDB_ErrorsWrapped(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	s := NewSQLiteStore(db)
	require.NoError(t, db.Close())

	_, err = s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get kv[k]")

	err = s.Set(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set kv[k]")
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "pulse.db")

	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, "sqlite::memory:")
	require.NoError(t, err)
	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)
	require.NoError(t, s.Close())

	s, err = Open(ctx, filepath.Join(t.TempDir(), "plain.db"))
	require.NoError(t, err)
	_, ok = s.(*SQLiteStore)
	assert.True(t, ok)
	require.NoError(t, s.Close())

	_, err = Open(ctx, "")
	require.Error(t, err)
}
