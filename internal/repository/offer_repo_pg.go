package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nmoreaux/skylux/internal/domain"
)

type OfferRepository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	ListByType(ctx context.Context, offerType domain.OfferType) ([]domain.Offer, error)
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
}

type PGOfferRepository struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) OfferRepository {
	return &PGOfferRepository{db: db}
}

const offerColumns = `id, type, title, base_price_cents, currency, capacity, duration_text, location, details, created_at, updated_at`

func (r *PGOfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY base_price_cents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOffers(rows)
}

func (r *PGOfferRepository) ListByType(ctx context.Context, offerType domain.OfferType) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM offers WHERE type=$1 ORDER BY base_price_cents`, offerType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOffers(rows)
}

func (r *PGOfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id=$1`, id)
	var o domain.Offer
	var details []byte
	if err := row.Scan(&o.ID, &o.Type, &o.Title, &o.BasePriceCents, &o.Currency, &o.Capacity, &o.DurationText, &o.Location, &details, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := attachDetails(&o, details); err != nil {
		return nil, err
	}
	return &o, nil
}

type offerRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOffers(rows offerRows) ([]domain.Offer, error) {
	offers := make([]domain.Offer, 0)
	for rows.Next() {
		var o domain.Offer
		var details []byte
		if err := rows.Scan(&o.ID, &o.Type, &o.Title, &o.BasePriceCents, &o.Currency, &o.Capacity, &o.DurationText, &o.Location, &details, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		if err := attachDetails(&o, details); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// attachDetails unmarshals the variant payload into the field matching the
// discriminant. Unknown types keep only the common fields.
func attachDetails(o *domain.Offer, details []byte) error {
	if len(details) == 0 {
		return nil
	}
	var err error
	switch o.Type {
	case domain.OfferPrivateJet, domain.OfferHelicopter:
		o.Jet = &domain.JetDetails{}
		err = json.Unmarshal(details, o.Jet)
	case domain.OfferYacht:
		o.Yacht = &domain.YachtDetails{}
		err = json.Unmarshal(details, o.Yacht)
	case domain.OfferAdventurePackage:
		o.Package = &domain.PackageDetails{}
		err = json.Unmarshal(details, o.Package)
	case domain.OfferEmptyLeg:
		o.EmptyLeg = &domain.EmptyLegDetails{}
		err = json.Unmarshal(details, o.EmptyLeg)
	case domain.OfferLuxuryCar, domain.OfferGroundTransport:
		o.Car = &domain.CarDetails{}
		err = json.Unmarshal(details, o.Car)
	}
	if err != nil {
		return fmt.Errorf("offer %d details: %w", o.ID, err)
	}
	return nil
}

var _ OfferRepository = (*PGOfferRepository)(nil)
