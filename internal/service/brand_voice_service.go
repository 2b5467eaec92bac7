package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/analyzer"
	"github.com/satya-supercluster/brand-voice-service/internal/cache"
	"github.com/satya-supercluster/brand-voice-service/internal/domain"
	"github.com/satya-supercluster/brand-voice-service/internal/events"
	"github.com/satya-supercluster/brand-voice-service/internal/repository"
)

var (
	// ErrProfileExists indica un create contra un customer_id ya registrado.
	ErrProfileExists = errors.New("brand profile already exists")
	// ErrProfileNotFound indica que no hay perfil para el customer_id.
	ErrProfileNotFound = errors.New("brand profile not found")
)

// BrandVoiceService orquesta perfiles de voz de marca contra el store, el
// cache de lectura y el bus de eventos, invocando los motores puros de
// extraccion, comparacion y feedback.
type BrandVoiceService struct {
	logger     *zap.Logger
	profiles   repository.BrandProfileRepository
	analyzer   analyzer.Analyzer
	cache      cache.ProfileCache
	publisher  events.Publisher
	comparator ComparisonEngine
	feedback   FeedbackEngine
}

func NewBrandVoiceService(
	logger *zap.Logger,
	profiles repository.BrandProfileRepository,
	an analyzer.Analyzer,
	profileCache cache.ProfileCache,
	publisher events.Publisher,
) *BrandVoiceService {
	if profileCache == nil {
		profileCache = cache.NewNoopProfileCache()
	}
	if publisher == nil {
		publisher = events.NewDisabledPublisher()
	}
	return &BrandVoiceService{
		logger:    logger,
		profiles:  profiles,
		analyzer:  an,
		cache:     profileCache,
		publisher: publisher,
	}
}

// CreateProfile extrae el vector de voz del contenido de muestra y persiste
// el perfil. La unicidad por customer_id la decide la constraint del store.
func (s *BrandVoiceService) CreateProfile(ctx context.Context, customerID, brandName, sampleContent string) (domain.ProfileView, error) {
	vector, err := s.analyzer.Analyze(ctx, sampleContent)
	if err != nil {
		return domain.ProfileView{}, fmt.Errorf("analyze sample content: %w", err)
	}

	now := time.Now().UTC()
	profile := domain.BrandProfile{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		BrandName:       brandName,
		VoiceAttributes: vector,
		SampleContent:   sampleContent,
		ConfidenceScore: analyzer.Confidence(vector),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return domain.ProfileView{}, ErrProfileExists
		}
		return domain.ProfileView{}, fmt.Errorf("create brand profile: %w", err)
	}

	s.publisher.PublishProfileCreated(profile)
	s.logger.Info("brand profile created",
		zap.String("customer_id", customerID),
		zap.String("profile_id", profile.ID),
		zap.Float64("confidence_score", profile.ConfidenceScore),
	)
	return profileView(profile), nil
}

// GetProfile devuelve la vista del perfil, sirviendola del cache cuando hay
// hit y poblandolo en el miss.
func (s *BrandVoiceService) GetProfile(ctx context.Context, customerID string) (domain.ProfileView, error) {
	if view, ok := s.cache.Get(ctx, customerID); ok {
		return view, nil
	}

	profile, err := s.profiles.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ProfileView{}, ErrProfileNotFound
		}
		return domain.ProfileView{}, fmt.Errorf("get brand profile: %w", err)
	}

	view := profileView(profile)
	s.cache.Set(ctx, customerID, view)
	return view, nil
}

// ValidateContent compara el contenido candidato contra el vector de
// referencia del perfil. contentType es metadata de paso y no influye en el
// puntaje.
func (s *BrandVoiceService) ValidateContent(ctx context.Context, customerID, content, contentType string) (domain.ValidationResult, error) {
	start := time.Now()

	profile, err := s.profiles.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ValidationResult{}, ErrProfileNotFound
		}
		return domain.ValidationResult{}, fmt.Errorf("get brand profile: %w", err)
	}

	candidate, err := s.analyzer.Analyze(ctx, content)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("analyze content: %w", err)
	}

	scores, consistency := s.comparator.Compare(profile.VoiceAttributes, candidate)
	issues := s.feedback.Issues(scores, profile.VoiceAttributes)
	verdict := s.feedback.Verdict(consistency)

	s.publisher.PublishValidationPerformed(customerID, consistency, verdict)
	s.logger.Info("content validated",
		zap.String("customer_id", customerID),
		zap.Float64("consistency_score", consistency),
		zap.String("verdict", verdict),
		zap.String("content_type", contentType),
	)

	return domain.ValidationResult{
		CustomerID:       customerID,
		ConsistencyScore: consistency,
		Verdict:          verdict,
		Issues:           issues,
		DetailedScores:   scores,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// DeleteProfile elimina el perfil, invalida su entrada de cache y emite el
// evento de borrado.
func (s *BrandVoiceService) DeleteProfile(ctx context.Context, customerID string) error {
	if err := s.profiles.DeleteByCustomerID(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("delete brand profile: %w", err)
	}

	s.cache.Invalidate(ctx, customerID)
	s.publisher.PublishProfileDeleted(customerID)
	s.logger.Info("brand profile deleted", zap.String("customer_id", customerID))
	return nil
}

func profileView(p domain.BrandProfile) domain.ProfileView {
	return domain.ProfileView{
		ProfileID:       p.ID,
		CustomerID:      p.CustomerID,
		BrandName:       p.BrandName,
		VoiceAttributes: p.VoiceAttributes,
		ConfidenceScore: p.ConfidenceScore,
		Status:          p.Status(),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}
