package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// SysConfig holds general runtime settings
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig holds the admin web server settings
type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Secret signs both the session cookie and issued API tokens
	Secret string `yaml:"secret"`
	// AssetsDir is an optional static directory served at the web root
	AssetsDir string `yaml:"assets_dir"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// BackupConfig controls the scheduled JSON snapshot job
type BackupConfig struct {
	Cron string `yaml:"cron"`
	Keep int    `yaml:"keep"`
}

type AppConfig struct {
	System SysConfig    `yaml:"system"`
	Web    WebConfig    `yaml:"web"`
	Logger LogConfig    `yaml:"logger"`
	Backup BackupConfig `yaml:"backup"`
}

func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "data"), 0o755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "backups"), 0o755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "logs"), 0o755)
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "StoreAdmin",
			Location: "Africa/Cairo",
			Workdir:  "/var/storeadmin",
		},
		Web: WebConfig{
			Host:   "0.0.0.0",
			Port:   1816,
			Secret: "9b6de5cc-0731-1203-xxtx-0f568ac9da37",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: true,
			Filename:   "/var/storeadmin/storeadmin.log",
		},
		Backup: BackupConfig{
			Cron: "@daily",
			Keep: 14,
		},
	}
}

// LoadConfig reads the yaml config file when present and applies
// environment overrides, falling back to defaults for everything else.
func LoadConfig(cfile string) *AppConfig {
	appconfig := DefaultAppConfig()
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, appconfig)
		}
	}

	setEnvString("NONA_SYSTEM_WORKDIR", &appconfig.System.Workdir)
	setEnvString("NONA_SYSTEM_LOCATION", &appconfig.System.Location)
	setEnvBool("NONA_SYSTEM_DEBUG", &appconfig.System.Debug)
	setEnvString("NONA_WEB_HOST", &appconfig.Web.Host)
	setEnvInt("NONA_WEB_PORT", &appconfig.Web.Port)
	setEnvString("NONA_WEB_SECRET", &appconfig.Web.Secret)
	setEnvString("NONA_LOGGER_MODE", &appconfig.Logger.Mode)
	setEnvString("NONA_BACKUP_CRON", &appconfig.Backup.Cron)
	setEnvInt("NONA_BACKUP_KEEP", &appconfig.Backup.Keep)

	return appconfig
}

func setEnvString(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvInt(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBool(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}
