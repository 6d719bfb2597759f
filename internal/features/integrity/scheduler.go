package integrity

import (
	"context"

	"go-eventcrm/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewScheduler runs the sweep on the configured cadence for the life of
// the application.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, sweeper *Sweeper, logger *zap.Logger) (*cron.Cron, error) {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(cfg.IntegritySchedule, func() {
		if _, err := sweeper.Sweep(context.Background()); err != nil {
			logger.Error("scheduled integrity sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting integrity scheduler", zap.String("schedule", cfg.IntegritySchedule))
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return scheduler, nil
}
