package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as warning.
const slowQuery = 200 * time.Millisecond

// logger writes the gorm output with zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	l.Logger.Info().Str("component", "gorm").Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	l.Logger.Warn().Str("component", "gorm").Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	l.Logger.Error().Str("component", "gorm").Msgf(s, args...)
}

// Trace logs every statement on debug level. Failed statements are
// logged as errors, slow ones as warnings. A missing record is not an error.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.Logger.Debug()
	msg := "statement"

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound):
		event = l.Logger.Error().Err(err)
		msg = "statement failed"
	case elapsed > slowQuery:
		event = l.Logger.Warn()
		msg = "slow statement"
	}

	event.Str("component", "gorm").Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg(msg)
}
