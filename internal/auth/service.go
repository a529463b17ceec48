package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/limjemmy/takenote/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields = errors.New("missing fields")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// Service handles password accounts and OAuth account upserts.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Register creates a password account. The credential is stored as a
// bcrypt hash and never returned.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password) VALUES (?, ?, ?)",
		name, email, string(hashed))
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user := models.User{}
	err = s.db.QueryRowContext(ctx,
		"SELECT id, name, email FROM users WHERE id = ?", id,
	).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Login verifies an email/password pair and returns the account's public
// fields. Unknown email and wrong password are distinct errors even though
// the HTTP layer reports both as 401.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user := models.User{}
	// OAuth accounts have a NULL password; logging in against one by
	// email is a credential mismatch, not a store failure.
	var stored sql.NullString
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &stored)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if !stored.Valid {
		return nil, ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.String), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return &user, nil
}

// UpsertGoogleUser creates the account keyed by the Google subject id on
// first login and refreshes name/email/picture on every later one. Update
// first, insert on zero rows: portable across both drivers, and the store
// serializes conflicting writes.
func (s *Service) UpsertGoogleUser(ctx context.Context, p *GoogleProfile) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, picture = ? WHERE google_id = ?",
		p.Name, p.Email, p.Picture, p.ID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (google_id, name, email, picture) VALUES (?, ?, ?, ?)",
		p.ID, p.Name, p.Email, p.Picture)
	return err
}
