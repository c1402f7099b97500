package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"configurator-service/internal/database/redis"
	"configurator-service/internal/models"

	"github.com/google/uuid"
)

const (
	sessionKeyPrefix = "configurator:session:"
	sessionTTL       = 24 * time.Hour
)

// SessionService holds the live selection state of in-progress
// configurator sessions in Redis and re-derives the price on every
// selection change.
type SessionService struct {
	store *redis.Client
	rates IExchangeRateService
	calc  *PriceCalculator
}

func NewSessionService(store *redis.Client, rates IExchangeRateService, calc *PriceCalculator) *SessionService {
	return &SessionService{
		store: store,
		rates: rates,
		calc:  calc,
	}
}

func (s *SessionService) CreateSession(ctx context.Context) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.New(),
		Selection: models.Selection{Customizations: models.Customizations{AddOns: []string{}}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	data, err := s.store.Get(ctx, sessionKeyPrefix+id.String())
	if err != nil {
		if redis.IsMissing(err) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// UpdateSelection replaces the session's selection and returns the session
// with its freshly derived price.
func (s *SessionService) UpdateSelection(ctx context.Context, id uuid.UUID, selection models.Selection) (*models.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Selection = selection
	session.UpdatedAt = time.Now()

	rate := s.rates.GetRate(ctx)
	price := s.calc.Calculate(selection.ServiceType, selection.PackageID, selection.Customizations, rate.Rate)
	session.Price = &price

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetPrice derives the session's price against the current rate.
func (s *SessionService) GetPrice(ctx context.Context, id uuid.UUID) (*models.CalculatedPrice, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	rate := s.rates.GetRate(ctx)
	price := s.calc.Calculate(
		session.Selection.ServiceType,
		session.Selection.PackageID,
		session.Selection.Customizations,
		rate.Rate,
	)
	return &price, nil
}

func (s *SessionService) save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, sessionKeyPrefix+session.ID.String(), data, sessionTTL); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}
