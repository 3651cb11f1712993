package out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"

	"hunttrack/internal/modules/application/domain"
	applicationout "hunttrack/internal/modules/application/port/out"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

const table = "job_applications"

var columns = []string{"id", "company", "role", "status", "applied_date", "resume_ref", "cover_letter_ref", "notes", "last_updated"}

type applicationRow struct {
	ID             string `db:"id"`
	Company        string `db:"company"`
	Role           string `db:"role"`
	Status         string `db:"status"`
	AppliedDate    string `db:"applied_date"`
	ResumeRef      string `db:"resume_ref"`
	CoverLetterRef string `db:"cover_letter_ref"`
	Notes          string `db:"notes"`
	LastUpdated    string `db:"last_updated"`
}

type DBRRepository struct {
	sess   *dbr.Session
	logger *zap.Logger
}

func NewDBRRepository(sess *dbr.Session, logger *zap.Logger) applicationout.Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DBRRepository{sess: sess, logger: logger.Named("applications")}
}

func (r *DBRRepository) Create(ctx context.Context, application domain.Application) error {
	row := toRow(application)
	_, err := r.sess.InsertInto(table).
		Columns(columns...).
		Record(&row).
		ExecContext(ctx)
	if err != nil {
		r.logger.Error("insert application", zap.String("id", application.ID), zap.Error(err))
		return apperrors.Storage("insert application", err)
	}
	return nil
}

func (r *DBRRepository) Update(ctx context.Context, application domain.Application) error {
	row := toRow(application)
	result, err := r.sess.Update(table).
		Set("company", row.Company).
		Set("role", row.Role).
		Set("status", row.Status).
		Set("applied_date", row.AppliedDate).
		Set("resume_ref", row.ResumeRef).
		Set("cover_letter_ref", row.CoverLetterRef).
		Set("notes", row.Notes).
		Set("last_updated", row.LastUpdated).
		Where("id = ?", row.ID).
		ExecContext(ctx)
	if err != nil {
		r.logger.Error("update application", zap.String("id", application.ID), zap.Error(err))
		return apperrors.Storage("update application", err)
	}
	return requireRow(result, application.ID)
}

func (r *DBRRepository) Get(ctx context.Context, id string) (domain.Application, error) {
	row := applicationRow{}
	err := r.sess.Select(columns...).
		From(table).
		Where("id = ?", id).
		LoadOneContext(ctx, &row)
	if errors.Is(err, dbr.ErrNotFound) {
		return domain.Application{}, apperrors.NotFound("application", id)
	}
	if err != nil {
		r.logger.Error("get application", zap.String("id", id), zap.Error(err))
		return domain.Application{}, apperrors.Storage("get application", err)
	}
	return fromRow(row)
}

func (r *DBRRepository) List(ctx context.Context, filter domain.Filter) ([]domain.Application, error) {
	stmt := r.sess.Select(columns...).From(table)
	if len(filter.Statuses) > 0 {
		stmt = stmt.Where(dbr.Eq("status", filter.Statuses))
	}
	if filter.From != nil {
		stmt = stmt.Where(dbr.Gte("applied_date", filter.From.Format(clock.DateLayout)))
	}
	if filter.To != nil {
		stmt = stmt.Where(dbr.Lte("applied_date", filter.To.Format(clock.DateLayout)))
	}
	rows := []applicationRow{}
	if _, err := stmt.OrderAsc("applied_date").OrderAsc("id").LoadContext(ctx, &rows); err != nil {
		r.logger.Error("list applications", zap.Error(err))
		return nil, apperrors.Storage("list applications", err)
	}
	out := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		application, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, application)
	}
	return out, nil
}

func (r *DBRRepository) Delete(ctx context.Context, id string) error {
	result, err := r.sess.DeleteFrom(table).Where("id = ?", id).ExecContext(ctx)
	if err != nil {
		r.logger.Error("delete application", zap.String("id", id), zap.Error(err))
		return apperrors.Storage("delete application", err)
	}
	return requireRow(result, id)
}

func (r *DBRRepository) Reset(ctx context.Context) (int, error) {
	result, err := r.sess.DeleteFrom(table).ExecContext(ctx)
	if err != nil {
		r.logger.Error("reset applications", zap.Error(err))
		return 0, apperrors.Storage("reset applications", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage("reset applications", err)
	}
	return int(n), nil
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func requireRow(result rowsAffected, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("rows affected", err)
	}
	if n == 0 {
		return apperrors.NotFound("application", id)
	}
	return nil
}

func toRow(a domain.Application) applicationRow {
	return applicationRow{
		ID:             a.ID,
		Company:        a.Company,
		Role:           a.Role,
		Status:         a.Status,
		AppliedDate:    a.AppliedDate.Format(clock.DateLayout),
		ResumeRef:      a.ResumeRef,
		CoverLetterRef: a.CoverLetterRef,
		Notes:          a.Notes,
		LastUpdated:    a.LastUpdated.UTC().Format(time.RFC3339Nano),
	}
}

func fromRow(row applicationRow) (domain.Application, error) {
	applied, err := clock.ParseDate(row.AppliedDate)
	if err != nil {
		return domain.Application{}, apperrors.Storage("decode application", fmt.Errorf("applied_date %q: %w", row.AppliedDate, err))
	}
	updated, err := time.Parse(time.RFC3339Nano, row.LastUpdated)
	if err != nil {
		return domain.Application{}, apperrors.Storage("decode application", fmt.Errorf("last_updated %q: %w", row.LastUpdated, err))
	}
	return domain.Application{
		ID:             row.ID,
		Company:        row.Company,
		Role:           row.Role,
		Status:         row.Status,
		AppliedDate:    applied,
		ResumeRef:      row.ResumeRef,
		CoverLetterRef: row.CoverLetterRef,
		Notes:          row.Notes,
		LastUpdated:    updated.UTC(),
	}, nil
}
