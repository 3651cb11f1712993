package service

import (
	"context"
	"strings"

	"hunttrack/internal/modules/application/domain"
	applicationout "hunttrack/internal/modules/application/port/out"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/id"
	"hunttrack/internal/platform/tx"
)

type ApplicationService struct {
	clock    clock.Clock
	idGen    id.Generator
	tx       tx.Manager
	repo     applicationout.Repository
	statuses domain.StatusSet
}

func NewApplicationService(clock clock.Clock, idGen id.Generator, txm tx.Manager, repo applicationout.Repository, statuses domain.StatusSet) *ApplicationService {
	return &ApplicationService{clock: clock, idGen: idGen, tx: txm, repo: repo, statuses: statuses}
}

func (s *ApplicationService) Statuses() domain.StatusSet {
	return s.statuses
}

// Create assigns the id and last_updated, then persists the record. The
// applied date defaults to today and the status to the initial one.
func (s *ApplicationService) Create(ctx context.Context, draft domain.Application) (domain.Application, error) {
	now := s.clock.Now()
	if draft.AppliedDate.IsZero() {
		draft.AppliedDate = clock.Day(now)
	}
	if strings.TrimSpace(draft.Status) == "" {
		draft.Status = s.statuses.Initial()
	}
	application, err := draft.Normalize(s.statuses)
	if err != nil {
		return domain.Application{}, err
	}
	application.ID = s.idGen.New()
	application.LastUpdated = now
	if err := application.Validate(s.statuses); err != nil {
		return domain.Application{}, err
	}
	err = s.tx.Within(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, application)
	})
	if err != nil {
		return domain.Application{}, err
	}
	return application, nil
}

// Update merges patch into the stored record and re-validates the result.
// A rejected patch leaves the stored row untouched.
func (s *ApplicationService) Update(ctx context.Context, id string, patch domain.Patch) (domain.Application, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Application{}, apperrors.Invalid("id", "required")
	}
	var updated domain.Application
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if patch.Empty() {
			updated = current
			return nil
		}
		merged, err := current.Apply(patch).Normalize(s.statuses)
		if err != nil {
			return err
		}
		merged.LastUpdated = s.clock.Now()
		if err := merged.Validate(s.statuses); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, merged); err != nil {
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		return domain.Application{}, err
	}
	return updated, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (domain.Application, error) {
	return s.repo.Get(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context, filter domain.Filter) ([]domain.Application, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	canonical := make([]string, 0, len(filter.Statuses))
	for _, status := range filter.Statuses {
		value, err := s.statuses.Canonical(status)
		if err != nil {
			return nil, err
		}
		canonical = append(canonical, value)
	}
	filter.Statuses = canonical
	return s.repo.List(ctx, filter)
}

// Delete removes the row only. Attachment files stay where they are.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.tx.Within(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func (s *ApplicationService) Reset(ctx context.Context) (int, error) {
	var deleted int
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		n, err := s.repo.Reset(ctx)
		deleted = n
		return err
	})
	return deleted, err
}
