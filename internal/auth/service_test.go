package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/limjemmy/takenote/internal/db"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.InitSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRegister(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "Ada", user.Name)
	require.Equal(t, "ada@example.com", user.Email)
	require.Empty(t, user.Password)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "", "hunter2")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "Ada", "ada@example.com", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "ada@example.com", "hunter3")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMissingFields)
}

func TestRegisterStoresHashedCredential(t *testing.T) {
	conn := newTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	var stored string
	require.NoError(t, conn.QueryRow(
		"SELECT password FROM users WHERE email = ?", "ada@example.com").Scan(&stored))
	require.NotEqual(t, "hunter2", stored)
}

func TestLogin(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "ada@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Equal(t, "Ada", user.Name)
	require.Empty(t, user.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginAgainstOAuthAccount(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	// A Google account has no password; a password login against its
	// email must fail like any other credential mismatch.
	require.NoError(t, svc.UpsertGoogleUser(ctx, &GoogleProfile{
		ID: "g-123", Name: "Ada", Email: "ada@gmail.com", Picture: "p1",
	}))

	_, err := svc.Login(ctx, "ada@gmail.com", "whatever")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.Login(context.Background(), "", "hunter2")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestUpsertGoogleUser(t *testing.T) {
	conn := newTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()

	require.NoError(t, svc.UpsertGoogleUser(ctx, &GoogleProfile{
		ID: "g-123", Name: "Ada", Email: "ada@gmail.com", Picture: "p1",
	}))
	require.NoError(t, svc.UpsertGoogleUser(ctx, &GoogleProfile{
		ID: "g-123", Name: "Ada L.", Email: "ada.l@gmail.com", Picture: "p2",
	}))

	var count int
	require.NoError(t, conn.QueryRow(
		"SELECT COUNT(*) FROM users WHERE google_id = ?", "g-123").Scan(&count))
	require.Equal(t, 1, count)

	var name, email, picture string
	require.NoError(t, conn.QueryRow(
		"SELECT name, email, picture FROM users WHERE google_id = ?", "g-123",
	).Scan(&name, &email, &picture))
	require.Equal(t, "Ada L.", name)
	require.Equal(t, "ada.l@gmail.com", email)
	require.Equal(t, "p2", picture)
}
