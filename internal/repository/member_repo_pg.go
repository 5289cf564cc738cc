package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Membership carries what pricing needs from the identity side: whether
// the holder discount applies and at what rate.
type Membership struct {
	UserID          string
	DiscountActive  bool
	DiscountPercent float64
}

type MemberRepository interface {
	GetMembership(ctx context.Context, userID string) (*Membership, error)
}

type PGMemberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(db *pgxpool.Pool) MemberRepository {
	return &PGMemberRepository{db: db}
}

// GetMembership returns a zero-value membership for unknown users; only
// infrastructure errors propagate.
func (r *PGMemberRepository) GetMembership(ctx context.Context, userID string) (*Membership, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, discount_active, discount_percent FROM members WHERE user_id=$1`, userID)
	var m Membership
	if err := row.Scan(&m.UserID, &m.DiscountActive, &m.DiscountPercent); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &Membership{UserID: userID}, nil
		}
		return nil, err
	}
	return &m, nil
}

var _ MemberRepository = (*PGMemberRepository)(nil)
