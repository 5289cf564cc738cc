package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nmoreaux/skylux/internal/domain"
)

type PurchaseRepository interface {
	CreatePending(ctx context.Context, purchase *domain.OffsetPurchase) error
	GetByToken(ctx context.Context, token string) (*domain.OffsetPurchase, error)
	UpdateStatus(ctx context.Context, token string, status domain.PurchaseStatus) (*domain.OffsetPurchase, error)
	ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.OffsetPurchase, error)
}

type PGPurchaseRepository struct {
	db *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) PurchaseRepository {
	return &PGPurchaseRepository{db: db}
}

func (r *PGPurchaseRepository) CreatePending(ctx context.Context, purchase *domain.OffsetPurchase) error {
	purchase.Status = domain.PurchaseStatusPending
	return r.db.QueryRow(ctx, `INSERT INTO offset_purchases (offer_id, token, emission_tons, cost_cents, currency, email, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		purchase.OfferID, purchase.Token, purchase.EmissionTons, purchase.CostCents, purchase.Currency, purchase.Email, purchase.Status, purchase.ExpiresAt).
		Scan(&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt)
}

func (r *PGPurchaseRepository) GetByToken(ctx context.Context, token string) (*domain.OffsetPurchase, error) {
	row := r.db.QueryRow(ctx, `SELECT id, offer_id, token, emission_tons, cost_cents, currency, email, status, expires_at, created_at, updated_at FROM offset_purchases WHERE token=$1`, token)
	var p domain.OffsetPurchase
	if err := row.Scan(&p.ID, &p.OfferID, &p.Token, &p.EmissionTons, &p.CostCents, &p.Currency, &p.Email, &p.Status, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGPurchaseRepository) UpdateStatus(ctx context.Context, token string, status domain.PurchaseStatus) (*domain.OffsetPurchase, error) {
	row := r.db.QueryRow(ctx, `UPDATE offset_purchases SET status=$1, updated_at=now() WHERE token=$2 RETURNING id, offer_id, token, emission_tons, cost_cents, currency, email, status, expires_at, created_at, updated_at`, status, token)
	var p domain.OffsetPurchase
	if err := row.Scan(&p.ID, &p.OfferID, &p.Token, &p.EmissionTons, &p.CostCents, &p.Currency, &p.Email, &p.Status, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGPurchaseRepository) ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.OffsetPurchase, error) {
	rows, err := r.db.Query(ctx, `UPDATE offset_purchases SET status=$1, updated_at=now() WHERE status=$2 AND expires_at <= $3 RETURNING id, offer_id, token, emission_tons, cost_cents, currency, email, status, expires_at, created_at, updated_at`,
		domain.PurchaseStatusExpired, domain.PurchaseStatusPending, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.OffsetPurchase
	for rows.Next() {
		var p domain.OffsetPurchase
		if err := rows.Scan(&p.ID, &p.OfferID, &p.Token, &p.EmissionTons, &p.CostCents, &p.Currency, &p.Email, &p.Status, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		expired = append(expired, p)
	}
	return expired, rows.Err()
}

var _ PurchaseRepository = (*PGPurchaseRepository)(nil)
