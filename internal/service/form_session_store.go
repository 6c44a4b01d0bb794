package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-form/internal/cache"
	"quiz-form/internal/domain"
	"quiz-form/internal/logger"

	"go.uber.org/zap"
)

// FormSessionStore keeps form sessions between events.
type FormSessionStore interface {
	Load(ctx context.Context, formID string) (*domain.FormSession, error)
	Save(ctx context.Context, session *domain.FormSession) error
	Delete(ctx context.Context, formID string) error
}

// cacheFormSessionStore stores sessions as JSON in a domain.Cache with a TTL
// refreshed on every save.
type cacheFormSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewFormSessionStore creates a session store on top of cache.
func NewFormSessionStore(c domain.Cache, ttl time.Duration) FormSessionStore {
	return &cacheFormSessionStore{
		cache: c,
		ttl:   ttl,
	}
}

func (s *cacheFormSessionStore) Load(ctx context.Context, formID string) (*domain.FormSession, error) {
	key := cache.FormSessionKey(formID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Form session cache miss", zap.String("key", key))
			return nil, domain.NewFormNotFoundError(formID)
		}
		logger.Get().Error("Failed to load form session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load form session %s", formID), err)
	}

	var session domain.FormSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Failed to unmarshal form session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode form session %s", formID), err)
	}
	return &session, nil
}

func (s *cacheFormSessionStore) Save(ctx context.Context, session *domain.FormSession) error {
	if session == nil || session.ID == "" {
		return domain.NewInvalidInputError("cannot store a form session without an id")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to encode form session", err)
	}

	key := cache.FormSessionKey(session.ID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to save form session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to save form session %s", session.ID), err)
	}
	logger.Get().Debug("Saved form session", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *cacheFormSessionStore) Delete(ctx context.Context, formID string) error {
	if err := s.cache.Delete(ctx, cache.FormSessionKey(formID)); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete form session %s", formID), err)
	}
	return nil
}
