package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Link struct {
	ID          string    `db:"id"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	PostedBy    string    `db:"posted_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// ListOptions narrows and orders a feed query. Filter matches links whose url
// OR description contains the substring. Skip/First window the result set;
// First <= 0 means no limit. OrderBy is one of the keys in orderColumns; empty
// falls back to newest-first.
type ListOptions struct {
	Filter  string
	Skip    int
	First   int
	OrderBy string
}

// orderColumns maps the public orderBy keys to ORDER BY clauses. Keys are
// interpolated into SQL, so only values from this map may ever be used.
var orderColumns = map[string]string{
	"createdAt_ASC":    "created_at ASC",
	"createdAt_DESC":   "created_at DESC",
	"url_ASC":          "url ASC",
	"url_DESC":         "url DESC",
	"description_ASC":  "description ASC",
	"description_DESC": "description DESC",
}

// ValidOrderKey reports whether key is an accepted orderBy value.
func ValidOrderKey(key string) bool {
	_, ok := orderColumns[key]
	return ok
}

type LinkStore struct {
	db *sqlx.DB
}

func NewLinkStore(db *sqlx.DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) q(query string) string { return s.db.Rebind(query) }

func (s *LinkStore) Create(ctx context.Context, url, description, postedBy string) (*Link, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO links (id, url, description, posted_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, url, description, postedBy, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *LinkStore) GetByID(ctx context.Context, id string) (*Link, error) {
	var l Link
	err := s.db.GetContext(ctx, &l, s.q(`SELECT * FROM links WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns the links matching opts. Callers must validate opts.OrderBy
// with ValidOrderKey first; an unknown key falls back to newest-first here.
func (s *LinkStore) List(ctx context.Context, opts ListOptions) ([]*Link, error) {
	query := `SELECT * FROM links`
	var args []any

	if opts.Filter != "" {
		pattern := "%" + opts.Filter + "%"
		query += ` WHERE url LIKE ? OR description LIKE ?`
		args = append(args, pattern, pattern)
	}

	order, ok := orderColumns[opts.OrderBy]
	if !ok {
		order = "created_at DESC"
	}
	query += ` ORDER BY ` + order

	first := opts.First
	if first <= 0 && opts.Skip > 0 {
		// OFFSET requires a LIMIT in SQLite and MySQL.
		first = 1<<31 - 1
	}
	if first > 0 {
		query += ` LIMIT ?`
		args = append(args, first)
	}
	if opts.Skip > 0 {
		query += ` OFFSET ?`
		args = append(args, opts.Skip)
	}

	links := []*Link{}
	if err := s.db.SelectContext(ctx, &links, s.q(query), args...); err != nil {
		return nil, err
	}
	return links, nil
}

// Count returns the number of links matching filter, ignoring any
// pagination window.
func (s *LinkStore) Count(ctx context.Context, filter string) (int, error) {
	query := `SELECT COUNT(*) FROM links`
	var args []any
	if filter != "" {
		pattern := "%" + filter + "%"
		query += ` WHERE url LIKE ? OR description LIKE ?`
		args = append(args, pattern, pattern)
	}

	var count int
	if err := s.db.GetContext(ctx, &count, s.q(query), args...); err != nil {
		return 0, err
	}
	return count, nil
}
