package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	spec := a.appConfig.Backup.Cron
	if spec == "" {
		spec = "@daily"
	}
	if _, err := a.sched.AddFunc(spec, a.snapshotJob); err != nil {
		zap.L().Error("failed to schedule snapshot job", zap.String("spec", spec), zap.Error(err))
	}

	if _, err := a.sched.AddFunc("@every 5m", a.resourceSampleJob); err != nil {
		zap.L().Error("failed to schedule resource sampling", zap.Error(err))
	}
}

// StartScheduler runs the cron loop until ctx-free Stop via Release
func (a *Application) StartScheduler() {
	a.sched.Start()
	zap.L().Info("scheduler started", zap.Int("jobs", len(a.sched.Entries())))
}

// snapshotJob writes a timestamped JSON export into the backups dir
func (a *Application) snapshotJob() {
	dir := filepath.Join(a.appConfig.System.Workdir, "backups")
	path, err := a.storage.Snapshot(dir, a.appConfig.Backup.Keep)
	if err != nil {
		zap.L().Error("scheduled snapshot failed", zap.Error(err))
		return
	}
	zap.L().Info("scheduled snapshot written", zap.String("file", path))
}

// resourceSampleJob logs process CPU and memory usage
func (a *Application) resourceSampleJob() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	cpuPercent, _ := proc.CPUPercent()
	memInfo, _ := proc.MemoryInfo()
	var rss uint64
	if memInfo != nil {
		rss = memInfo.RSS
	}
	zap.L().Debug("process resources",
		zap.Float64("cpu_percent", cpuPercent),
		zap.Uint64("rss_bytes", rss))
}
