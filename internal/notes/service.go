package notes

import (
	"context"
	"database/sql"
	"errors"

	"github.com/limjemmy/takenote/internal/models"
)

var (
	ErrMissingFields = errors.New("title/content required")
	ErrNotFound      = errors.New("note not found")
)

// Service performs note CRUD scoped to an owner reference supplied by the
// caller. There is no per-request authentication in this contract, so
// update and delete act on the id alone.
// TODO: require proof of ownership on update/delete once requests carry a
// verified identity.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// List returns every note owned by the given reference, oldest first.
// The empty result is a non-nil slice so it serializes as [].
func (s *Service) List(ctx context.Context, owner Owner) ([]models.Note, error) {
	var rows *sql.Rows
	var err error

	switch owner.kind {
	case ownerInternal:
		rows, err = s.db.QueryContext(ctx,
			"SELECT id, user_id, google_id, title, content FROM notes WHERE user_id = ? ORDER BY id",
			owner.internalID)
	case ownerExternal:
		rows, err = s.db.QueryContext(ctx,
			"SELECT id, user_id, google_id, title, content FROM notes WHERE google_id = ? ORDER BY id",
			owner.externalID)
	default:
		return nil, ErrMissingOwner
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.GoogleID, &n.Title, &n.Content); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

// Create inserts a note for the owner and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, owner Owner, title, content string) (*models.Note, error) {
	if title == "" || content == "" {
		return nil, ErrMissingFields
	}

	var userID *int64
	var googleID *string
	switch owner.kind {
	case ownerInternal:
		userID = &owner.internalID
	case ownerExternal:
		googleID = &owner.externalID
	default:
		return nil, ErrMissingOwner
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (user_id, google_id, title, content) VALUES (?, ?, ?, ?)",
		userID, googleID, title, content)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Note{
		ID:       id,
		UserID:   userID,
		GoogleID: googleID,
		Title:    title,
		Content:  content,
	}, nil
}

// Update overwrites title and content. A missing id is an ErrNotFound,
// not a silent success.
func (s *Service) Update(ctx context.Context, id int64, title, content string) error {
	if title == "" || content == "" {
		return ErrMissingFields
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		title, content, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a note. Deleting an id that never existed is still a
// success.
func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	return err
}
