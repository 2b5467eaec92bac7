package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// ErrDuplicateCustomer señala que ya existe un perfil para el customer_id.
// La unicidad la garantiza la constraint de la tabla, no un pre-chequeo.
var ErrDuplicateCustomer = errors.New("brand profile already exists for customer")

// BrandProfileRepository define el contrato de persistencia de perfiles.
type BrandProfileRepository interface {
	Create(ctx context.Context, profile domain.BrandProfile) error
	GetByCustomerID(ctx context.Context, customerID string) (domain.BrandProfile, error)
	DeleteByCustomerID(ctx context.Context, customerID string) error
}

// PgBrandProfileRepository implementa BrandProfileRepository usando pgxpool.
type PgBrandProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgBrandProfileRepository(pool *pgxpool.Pool) *PgBrandProfileRepository {
	return &PgBrandProfileRepository{pool: pool}
}

func (r *PgBrandProfileRepository) Create(ctx context.Context, profile domain.BrandProfile) error {
	attrs, err := json.Marshal(profile.VoiceAttributes)
	if err != nil {
		return fmt.Errorf("marshal voice attributes: %w", err)
	}

	const query = `
		INSERT INTO brand_profiles (id, customer_id, brand_name, voice_attributes, sample_content, confidence_score, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.CustomerID,
		profile.BrandName,
		attrs,
		profile.SampleContent,
		profile.ConfidenceScore,
		profile.Active,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation sobre customer_id.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCustomer
		}
		return err
	}
	return nil
}

func (r *PgBrandProfileRepository) GetByCustomerID(ctx context.Context, customerID string) (domain.BrandProfile, error) {
	const query = `
		SELECT id, customer_id, brand_name, voice_attributes, sample_content, confidence_score, active, created_at, updated_at
		FROM brand_profiles
		WHERE customer_id = $1
	`
	var (
		profile domain.BrandProfile
		attrs   []byte
	)
	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&profile.ID,
		&profile.CustomerID,
		&profile.BrandName,
		&attrs,
		&profile.SampleContent,
		&profile.ConfidenceScore,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return domain.BrandProfile{}, err
	}
	if err := json.Unmarshal(attrs, &profile.VoiceAttributes); err != nil {
		return domain.BrandProfile{}, fmt.Errorf("unmarshal voice attributes: %w", err)
	}
	return profile, nil
}

func (r *PgBrandProfileRepository) DeleteByCustomerID(ctx context.Context, customerID string) error {
	const query = `
		DELETE FROM brand_profiles
		WHERE customer_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
