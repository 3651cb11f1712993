package service

import (
	"context"
	"strings"

	"hunttrack/internal/modules/study/domain"
	studyout "hunttrack/internal/modules/study/port/out"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/id"
	"hunttrack/internal/platform/tx"
)

type StudyService struct {
	clock clock.Clock
	idGen id.Generator
	tx    tx.Manager
	repo  studyout.Repository
}

func NewStudyService(clock clock.Clock, idGen id.Generator, txm tx.Manager, repo studyout.Repository) *StudyService {
	return &StudyService{clock: clock, idGen: idGen, tx: txm, repo: repo}
}

func (s *StudyService) Create(ctx context.Context, draft domain.StudyLog) (domain.StudyLog, error) {
	now := s.clock.Now()
	if draft.Date.IsZero() {
		draft.Date = now
	}
	log := draft.Normalize()
	log.ID = s.idGen.New()
	log.LastUpdated = now
	if err := log.Validate(); err != nil {
		return domain.StudyLog{}, err
	}
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, log)
	})
	if err != nil {
		return domain.StudyLog{}, err
	}
	return log, nil
}

func (s *StudyService) Update(ctx context.Context, id string, patch domain.Patch) (domain.StudyLog, error) {
	if strings.TrimSpace(id) == "" {
		return domain.StudyLog{}, apperrors.Invalid("id", "required")
	}
	var updated domain.StudyLog
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if patch.Empty() {
			updated = current
			return nil
		}
		merged := current.Apply(patch)
		merged.LastUpdated = s.clock.Now()
		if err := merged.Validate(); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, merged); err != nil {
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		return domain.StudyLog{}, err
	}
	return updated, nil
}

func (s *StudyService) Get(ctx context.Context, id string) (domain.StudyLog, error) {
	return s.repo.Get(ctx, id)
}

func (s *StudyService) List(ctx context.Context, filter domain.Filter) ([]domain.StudyLog, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *StudyService) Delete(ctx context.Context, id string) error {
	return s.tx.Within(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func (s *StudyService) Reset(ctx context.Context) (int, error) {
	var deleted int
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		n, err := s.repo.Reset(ctx)
		deleted = n
		return err
	})
	return deleted, err
}
