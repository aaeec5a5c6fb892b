package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// passthroughTx выполняет fn без транзакции и считает откаты
type passthroughTx struct {
	calls     int
	rollbacks int
}

func (t *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if err := fn(ctx); err != nil {
		t.rollbacks++
		return err
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}
