package sqlstore

import (
	"time"

	"go.uber.org/zap"
)

// Receiver forwards dbr query events to zap. Queries and timings log at
// debug; failures log at error.
type Receiver struct {
	logger *zap.Logger
}

func NewReceiver(logger *zap.Logger) *Receiver {
	return &Receiver{logger: logger}
}

func (r *Receiver) Event(eventName string) {
	r.logger.Debug(eventName)
}

func (r *Receiver) EventKv(eventName string, kvs map[string]string) {
	r.logger.Debug(eventName, fields(kvs)...)
}

func (r *Receiver) EventErr(eventName string, err error) error {
	r.logger.Error(eventName, zap.Error(err))
	return err
}

func (r *Receiver) EventErrKv(eventName string, err error, kvs map[string]string) error {
	r.logger.Error(eventName, append(fields(kvs), zap.Error(err))...)
	return err
}

func (r *Receiver) Timing(eventName string, nanoseconds int64) {
	r.logger.Debug(eventName, zap.Duration("took", time.Duration(nanoseconds)))
}

func (r *Receiver) TimingKv(eventName string, nanoseconds int64, kvs map[string]string) {
	r.logger.Debug(eventName, append(fields(kvs), zap.Duration("took", time.Duration(nanoseconds)))...)
}

func fields(kvs map[string]string) []zap.Field {
	out := make([]zap.Field, 0, len(kvs)+1)
	for k, v := range kvs {
		out = append(out, zap.String(k, v))
	}
	return out
}
