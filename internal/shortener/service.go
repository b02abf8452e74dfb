package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// maxCreateAttempts bounds the collision retry loop for generated codes.
const maxCreateAttempts = 5

// Service orchestrates mapping creation, lookup, and deletion against a
// Store. It keeps no state between calls; every operation is a single round
// trip (plus bounded retries on generated-code collisions).
type Service struct {
	store        Store
	generateCode CodeGenerator
	logger       *zap.Logger
	now          func() time.Time
}

// NewService creates a mapping service with an injected code generator.
func NewService(store Store, generator CodeGenerator, logger *zap.Logger) *Service {
	return &Service{
		store:        store,
		generateCode: generator,
		logger:       logger,
		now:          time.Now,
	}
}

// Create persists a new mapping. When customCode is empty a code is
// generated, retrying on collisions up to maxCreateAttempts total inserts.
// A supplied customCode is attempted exactly once; a collision surfaces as
// *DuplicateError naming the code.
func (s *Service) Create(ctx context.Context, customCode, originalURL string) (*Mapping, error) {
	if originalURL == "" {
		return nil, ErrEmptyURL
	}

	if customCode != "" {
		return s.createCustom(ctx, customCode, originalURL)
	}

	return s.createGenerated(ctx, originalURL)
}

func (s *Service) createCustom(ctx context.Context, code, originalURL string) (*Mapping, error) {
	if !ValidCode(code) {
		return nil, ErrInvalidCode
	}

	mapping := &Mapping{
		Code:        Code(code),
		OriginalURL: originalURL,
		CreatedAt:   s.now(),
	}

	err := s.store.Insert(ctx, mapping)
	if errors.Is(err, ErrCodeExists) {
		// The caller chose this code; tell them it's taken, never retry.
		return nil, &DuplicateError{Code: mapping.Code}
	}

	if err != nil {
		return nil, fmt.Errorf("creating mapping: %w", err)
	}

	return mapping, nil
}

func (s *Service) createGenerated(ctx context.Context, originalURL string) (*Mapping, error) {
	var err error

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		mapping := &Mapping{
			Code:        Code(s.generateCode()),
			OriginalURL: originalURL,
			CreatedAt:   s.now(),
		}

		err = s.store.Insert(ctx, mapping)
		if err == nil {
			return mapping, nil
		}

		if !errors.Is(err, ErrCodeExists) {
			return nil, fmt.Errorf("creating mapping: %w", err)
		}

		s.logger.Warn("generated code collided, retrying",
			zap.String("code", string(mapping.Code)),
			zap.Int("attempt", attempt),
		)
	}

	// Exhaustion is reported as a creation failure, indistinguishable from
	// any other store failure.
	return nil, fmt.Errorf("creating mapping: %w", err)
}

// Lookup retrieves the mapping for an exact code match. Returns ErrNotFound
// when no mapping exists.
func (s *Service) Lookup(ctx context.Context, code string) (*Mapping, error) {
	mapping, err := s.store.GetByCode(ctx, Code(code))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("looking up mapping: %w", err)
	}

	return mapping, nil
}

// Delete removes the mapping for a code. Deleting an absent code succeeds.
func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.store.DeleteByCode(ctx, Code(code)); err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}

	return nil
}
