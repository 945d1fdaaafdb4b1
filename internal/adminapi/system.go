package adminapi

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"

	"github.com/nonabeauty/storeadmin/internal/webserver"
)

func registerSystemRoutes() {
	webserver.ApiGET("/system/status", getSystemStatus)
}

// getSystemStatus reports service uptime and process resource usage
func getSystemStatus(c echo.Context) error {
	app := GetApp(c)
	status := map[string]interface{}{
		"appid":  app.Config().System.Appid,
		"uptime": time.Since(app.StartTime()).Round(time.Second).String(),
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpuPercent, err := proc.CPUPercent(); err == nil {
			status["cpu_percent"] = cpuPercent
		}
		if memInfo, err := proc.MemoryInfo(); err == nil {
			status["rss_bytes"] = memInfo.RSS
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status["host_mem_used_percent"] = vm.UsedPercent
	}
	return ok(c, status)
}
