package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"fleetbook/internal/pkg/config"
	"fleetbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartHoldSweeper),
)

// StartHoldSweeper runs the hold-expiry sweep on a fixed interval for the
// lifetime of the app. The sweep endpoint covers the same ground on demand;
// this loop is what keeps deadlines honest when nobody calls it.
func StartHoldSweeper(lc fx.Lifecycle, cfg config.Config, cmds commands.PaymentCommands, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled {
		logger.Info("hold sweeper is disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go runHoldSweeper(ctx, cfg.Sweeper.Interval, cmds, logger, done)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

func runHoldSweeper(ctx context.Context, interval time.Duration, cmds commands.PaymentCommands, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("hold sweeper started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("hold sweeper stopped")
			return
		case <-ticker.C:
			cancelled, err := cmds.SweepExpiredHolds(ctx)
			if err != nil {
				logger.Error("hold sweep failed", "error", err.Error())
				continue
			}
			if cancelled > 0 {
				logger.Info("expired holds cancelled", "count", cancelled)
			}
		}
	}
}
