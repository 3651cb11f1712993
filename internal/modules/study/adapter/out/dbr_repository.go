package out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"

	"hunttrack/internal/modules/study/domain"
	studyout "hunttrack/internal/modules/study/port/out"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

const table = "study_logs"

var columns = []string{"id", "date", "minutes_studied", "topic_notes", "last_updated"}

type studyLogRow struct {
	ID          string `db:"id"`
	Date        string `db:"date"`
	Minutes     int    `db:"minutes_studied"`
	TopicNotes  string `db:"topic_notes"`
	LastUpdated string `db:"last_updated"`
}

type DBRRepository struct {
	sess   *dbr.Session
	logger *zap.Logger
}

func NewDBRRepository(sess *dbr.Session, logger *zap.Logger) studyout.Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DBRRepository{sess: sess, logger: logger.Named("study_logs")}
}

func (r *DBRRepository) Create(ctx context.Context, log domain.StudyLog) error {
	row := toRow(log)
	if _, err := r.sess.InsertInto(table).Columns(columns...).Record(&row).ExecContext(ctx); err != nil {
		r.logger.Error("insert study log", zap.String("id", log.ID), zap.Error(err))
		return apperrors.Storage("insert study log", err)
	}
	return nil
}

func (r *DBRRepository) Update(ctx context.Context, log domain.StudyLog) error {
	row := toRow(log)
	result, err := r.sess.Update(table).
		Set("date", row.Date).
		Set("minutes_studied", row.Minutes).
		Set("topic_notes", row.TopicNotes).
		Set("last_updated", row.LastUpdated).
		Where("id = ?", row.ID).
		ExecContext(ctx)
	if err != nil {
		r.logger.Error("update study log", zap.String("id", log.ID), zap.Error(err))
		return apperrors.Storage("update study log", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("update study log", err)
	}
	if n == 0 {
		return apperrors.NotFound("study log", log.ID)
	}
	return nil
}

func (r *DBRRepository) Get(ctx context.Context, id string) (domain.StudyLog, error) {
	row := studyLogRow{}
	err := r.sess.Select(columns...).From(table).Where("id = ?", id).LoadOneContext(ctx, &row)
	if errors.Is(err, dbr.ErrNotFound) {
		return domain.StudyLog{}, apperrors.NotFound("study log", id)
	}
	if err != nil {
		r.logger.Error("get study log", zap.String("id", id), zap.Error(err))
		return domain.StudyLog{}, apperrors.Storage("get study log", err)
	}
	return fromRow(row)
}

func (r *DBRRepository) List(ctx context.Context, filter domain.Filter) ([]domain.StudyLog, error) {
	stmt := r.sess.Select(columns...).From(table)
	if filter.From != nil {
		stmt = stmt.Where(dbr.Gte("date", filter.From.Format(clock.DateLayout)))
	}
	if filter.To != nil {
		stmt = stmt.Where(dbr.Lte("date", filter.To.Format(clock.DateLayout)))
	}
	rows := []studyLogRow{}
	if _, err := stmt.OrderAsc("date").OrderAsc("id").LoadContext(ctx, &rows); err != nil {
		r.logger.Error("list study logs", zap.Error(err))
		return nil, apperrors.Storage("list study logs", err)
	}
	out := make([]domain.StudyLog, 0, len(rows))
	for _, row := range rows {
		log, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, log)
	}
	return out, nil
}

func (r *DBRRepository) Delete(ctx context.Context, id string) error {
	result, err := r.sess.DeleteFrom(table).Where("id = ?", id).ExecContext(ctx)
	if err != nil {
		r.logger.Error("delete study log", zap.String("id", id), zap.Error(err))
		return apperrors.Storage("delete study log", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete study log", err)
	}
	if n == 0 {
		return apperrors.NotFound("study log", id)
	}
	return nil
}

func (r *DBRRepository) Reset(ctx context.Context) (int, error) {
	result, err := r.sess.DeleteFrom(table).ExecContext(ctx)
	if err != nil {
		r.logger.Error("reset study logs", zap.Error(err))
		return 0, apperrors.Storage("reset study logs", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage("reset study logs", err)
	}
	return int(n), nil
}

func toRow(l domain.StudyLog) studyLogRow {
	return studyLogRow{
		ID:          l.ID,
		Date:        l.Date.Format(clock.DateLayout),
		Minutes:     l.Minutes,
		TopicNotes:  l.TopicNotes,
		LastUpdated: l.LastUpdated.UTC().Format(time.RFC3339Nano),
	}
}

func fromRow(row studyLogRow) (domain.StudyLog, error) {
	date, err := clock.ParseDate(row.Date)
	if err != nil {
		return domain.StudyLog{}, apperrors.Storage("decode study log", fmt.Errorf("date %q: %w", row.Date, err))
	}
	updated, err := time.Parse(time.RFC3339Nano, row.LastUpdated)
	if err != nil {
		return domain.StudyLog{}, apperrors.Storage("decode study log", fmt.Errorf("last_updated %q: %w", row.LastUpdated, err))
	}
	return domain.StudyLog{
		ID:          row.ID,
		Date:        date,
		Minutes:     row.Minutes,
		TopicNotes:  row.TopicNotes,
		LastUpdated: updated.UTC(),
	}, nil
}
