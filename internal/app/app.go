package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nonabeauty/storeadmin/config"
	"github.com/nonabeauty/storeadmin/internal/auth"
	"github.com/nonabeauty/storeadmin/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	storage   *store.Storage
	authMgr   *auth.Manager
	sched     *cron.Cron
	bus       EventBus.Bus
	startTime time.Time
}

// Ensure Application implements all provider interfaces
var (
	_ StoreProvider     = (*Application)(nil)
	_ AuthProvider      = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Storage {
	return a.storage
}

func (a *Application) Auth() *auth.Manager {
	return a.authMgr
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) StartTime() time.Time {
	return a.startTime
}

// OverrideStore replaces the storage handle (used in tests)
func (a *Application) OverrideStore(st *store.Storage) {
	a.storage = st
}

func (a *Application) Init() error {
	a.startTime = time.Now()

	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()
	cfg.InitDirs()

	a.bus = EventBus.New()
	// swallowed storage failures surface here instead of vanishing
	_ = a.bus.Subscribe(store.TopicStoreError, func(op, key string, err error) {
		zap.L().Error("storage failure observed",
			zap.String("op", op), zap.String("key", key), zap.Error(err))
	})

	a.storage, err = store.Open(filepath.Join(cfg.System.Workdir, "data", "storeadmin.db"), a.bus)
	if err != nil {
		return err
	}
	zap.S().Infof("store opened, workdir: %s", cfg.System.Workdir)

	a.authMgr = auth.NewManager(a.storage)
	a.checkAdminCredential()
	a.checkSiteConfig()

	a.initJob()
	return nil
}

// initLogger follows the logger modes: development/production console
// output, with rotated file output when enabled.
func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// InitDb drops every stored record and reseeds the defaults
func (a *Application) InitDb() {
	a.storage.Reset()
	a.checkAdminCredential()
	a.checkSiteConfig()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.storage != nil {
		_ = a.storage.Close()
	}
	_ = zap.L().Sync()
}
