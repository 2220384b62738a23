package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Vote struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	LinkID    string    `db:"link_id"`
	CreatedAt time.Time `db:"created_at"`
}

type VoteStore struct {
	db *sqlx.DB
}

func NewVoteStore(db *sqlx.DB) *VoteStore {
	return &VoteStore{db: db}
}

func (s *VoteStore) q(query string) string { return s.db.Rebind(query) }

// Exists reports whether userID has already voted for linkID.
func (s *VoteStore) Exists(ctx context.Context, userID, linkID string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.q(`
		SELECT COUNT(*) FROM votes WHERE user_id = ? AND link_id = ?
	`), userID, linkID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create records a vote by userID for linkID. Returns ErrDuplicateVote if the
// pair already exists: the unique index on (user_id, link_id) catches the
// race where two concurrent votes both pass the Exists pre-check.
func (s *VoteStore) Create(ctx context.Context, userID, linkID string) (*Vote, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO votes (id, user_id, link_id, created_at)
		VALUES (?, ?, ?, ?)
	`), id, userID, linkID, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateVote
		}
		return nil, err
	}

	var v Vote
	err = s.db.GetContext(ctx, &v, s.q(`SELECT * FROM votes WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
