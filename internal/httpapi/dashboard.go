package httpapi

import (
	"net/http"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
)

// onlineWindow is how recent a successful query must be for a server to
// count as online.
const onlineWindow = 5 * time.Minute

func (s *Server) handleDashboardRuntime(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(s.startTime)
	ok(w, map[string]any{
		"uptime_ms":    uptime.Milliseconds(),
		"uptime_human": uptime.Round(time.Second).String(),
		"started_at":   s.startTime.UTC().Format(time.RFC3339),
		"llm_sessions": s.sessions.ActiveCount(),
		"fleet_size":   s.fleet.Count(),
	})
}

func (s *Server) handleDashboardBotStats(w http.ResponseWriter, r *http.Request) {
	byStatus := make(map[string]int)
	for _, b := range s.fleet.All() {
		byStatus[b.Status().String()]++
	}
	ok(w, map[string]any{
		"total":     s.fleet.Count(),
		"by_status": byStatus,
		"spawned":   byStatus[bot.Spawned.String()],
		"sessions":  s.sessions.SessionsInfo(),
	})
}

func (s *Server) handleDashboardServerStats(w http.ResponseWriter, r *http.Request) {
	servers, err := s.store.ListServers(r.Context())
	if err != nil {
		s.log.Error("server stats", "error", err)
		fail(w, http.StatusInternalServerError, "failed to load servers")
		return
	}

	online := 0
	now := time.Now()
	for _, sv := range servers {
		if !sv.LastUpdate.IsZero() && now.Sub(sv.LastUpdate) < onlineWindow {
			online++
		}
	}
	ok(w, map[string]any{
		"total":   len(servers),
		"online":  online,
		"offline": len(servers) - online,
	})
}
