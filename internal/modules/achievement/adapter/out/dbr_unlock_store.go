package out

import (
	"context"
	"time"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"

	achievementout "hunttrack/internal/modules/achievement/port/out"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/sqlstore"
)

const table = "achievement_unlocks"

type unlockRow struct {
	ID         string `db:"id"`
	UnlockedAt string `db:"unlocked_at"`
}

type DBRUnlockStore struct {
	sess   *dbr.Session
	logger *zap.Logger
}

func NewDBRUnlockStore(sess *dbr.Session, logger *zap.Logger) achievementout.UnlockStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DBRUnlockStore{sess: sess, logger: logger.Named("achievements")}
}

func (s *DBRUnlockStore) Unlocked(ctx context.Context) (map[string]time.Time, error) {
	rows := []unlockRow{}
	if _, err := s.sess.Select("id", "unlocked_at").From(table).LoadContext(ctx, &rows); err != nil {
		s.logger.Error("load unlocks", zap.Error(err))
		return nil, apperrors.Storage("load unlocks", err)
	}
	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		at, err := time.Parse(time.RFC3339Nano, r.UnlockedAt)
		if err != nil {
			s.logger.Warn("unparseable unlock time", zap.String("id", r.ID), zap.String("value", r.UnlockedAt))
		}
		out[r.ID] = at
	}
	return out, nil
}

// Unlock records all ids in one transaction.
func (s *DBRUnlockStore) Unlock(ctx context.Context, ids []string, at time.Time) error {
	stamp := at.UTC().Format(time.RFC3339Nano)
	err := sqlstore.InTx(ctx, s.sess, func(tx *dbr.Tx) error {
		for _, id := range ids {
			row := unlockRow{ID: id, UnlockedAt: stamp}
			if _, err := tx.InsertInto(table).Columns("id", "unlocked_at").Record(&row).ExecContext(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("insert unlocks", zap.Strings("ids", ids), zap.Error(err))
		return apperrors.Storage("insert unlocks", err)
	}
	return nil
}
