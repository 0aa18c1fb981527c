package adaptor

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"ecommerce-api/pkg/utils"
)

// SystemHandler serves the operational endpoints: welcome, health and
// per-instance server info.
type SystemHandler struct {
	serverID  string
	appName   string
	startedAt time.Time
}

func NewSystemHandler(serverID, appName string) *SystemHandler {
	return &SystemHandler{
		serverID:  serverID,
		appName:   appName,
		startedAt: time.Now(),
	}
}

// Welcome handles GET /
func (h *SystemHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Welcome to %s (Server: %s)", h.appName, h.serverID)
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type serverInfo struct {
	ServerID string     `json:"serverId"`
	Hostname string     `json:"hostname"`
	Platform string     `json:"platform"`
	Uptime   float64    `json:"uptime"`
	Memory   memoryInfo `json:"memory"`
}

type memoryInfo struct {
	Alloc uint64 `json:"alloc"`
	Sys   uint64 `json:"sys"`
}

// ServerInfo handles GET /server-info, identifying which replica served
// the request.
func (h *SystemHandler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	utils.ResponseJSON(w, http.StatusOK, true, "Server info", serverInfo{
		ServerID: h.serverID,
		Hostname: hostname,
		Platform: runtime.GOOS,
		Uptime:   time.Since(h.startedAt).Seconds(),
		Memory: memoryInfo{
			Alloc: mem.Alloc,
			Sys:   mem.Sys,
		},
	}, nil)
}
