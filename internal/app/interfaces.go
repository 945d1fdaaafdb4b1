package app

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nonabeauty/storeadmin/config"
	"github.com/nonabeauty/storeadmin/internal/auth"
	"github.com/nonabeauty/storeadmin/internal/store"
)

// StoreProvider provides key-value store access
type StoreProvider interface {
	Store() *store.Storage
}

// AuthProvider provides the session/auth manager
type AuthProvider interface {
	Auth() *auth.Manager
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application
// context. Services should depend on specific providers or this
// combined interface.
type AppContext interface {
	StoreProvider
	AuthProvider
	ConfigProvider
	SchedulerProvider

	StartTime() time.Time
	InitDb()
}
