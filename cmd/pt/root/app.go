package root

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seant15/gamify-timesheet/internal/advice"
	"github.com/seant15/gamify-timesheet/internal/config"
	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/grid"
	"github.com/seant15/gamify-timesheet/internal/storage"
)

type app struct {
	cfg *config.Config
	svc *engine.Service
	log *zap.Logger
}

// openApp wires config, logging, storage and the engine together for a
// command invocation.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log := newLogger(cfg.Logging.Level)

	path := cfg.DataPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	svc := engine.NewService(storage.NewSnapshotStore(db), log,
		engine.WithLayout(grid.Layout{
			OriginHour:   cfg.Grid.OriginHour,
			EndHour:      cfg.Grid.EndHour,
			HourHeightPx: cfg.Grid.HourHeightPx,
		}),
		engine.WithRevertDelay(time.Duration(cfg.Rewards.RevertDelaySeconds)*time.Second),
	)

	cleanup := func() {
		_ = log.Sync()
		_ = db.Close()
	}
	return &app{cfg: cfg, svc: svc, log: log}, cleanup, nil
}

func (a *app) adviceClient() *advice.Client {
	return advice.NewClient(a.cfg.Advice.Endpoint,
		time.Duration(a.cfg.Advice.TimeoutSeconds)*time.Second, a.log)
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
