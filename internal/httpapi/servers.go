package httpapi

import (
	"net/http"
)

func (s *Server) handleServerList(w http.ResponseWriter, r *http.Request) {
	servers, err := s.store.ListServers(r.Context())
	if err != nil {
		s.log.Error("server list", "error", err)
		fail(w, http.StatusInternalServerError, "failed to list servers")
		return
	}
	ok(w, map[string]any{"servers": servers})
}

func (s *Server) handleServerAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Host == "" || req.Port <= 0 || req.Port > 65535 {
		fail(w, http.StatusBadRequest, "host and port are required")
		return
	}

	sv, err := s.store.CreateServer(r.Context(), req.Host, req.Port)
	if err != nil {
		fail(w, http.StatusBadRequest, "server already exists or could not be created")
		return
	}
	ok(w, sv)
}

func (s *Server) handleServerDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DBID int64 `json:"dbid"`
	}
	if !decode(w, r, &req) {
		return
	}

	// Runtime bots bound to this server go away with the cascade: drop
	// their fleet entries and sessions first.
	bots, err := s.store.ListBots(r.Context())
	if err == nil {
		for _, row := range bots {
			if row.ServerID == req.DBID {
				s.sessions.EndSessionForBot(row.UUID)
				s.fleet.Remove(row.UUID)
			}
		}
	}

	if err := s.store.DeleteServer(r.Context(), req.DBID); err != nil {
		s.log.Error("server delete", "error", err)
		fail(w, http.StatusInternalServerError, "failed to delete server")
		return
	}
	ok(w, nil)
}

func (s *Server) handleServerQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ServerID int64 `json:"server_id"`
	}
	if !decode(w, r, &req) {
		return
	}
	sv, err := s.store.GetServer(r.Context(), req.ServerID)
	if err != nil {
		fail(w, http.StatusNotFound, "server not found")
		return
	}

	info, ping, err := s.querier.QueryInfo(r.Context(), sv.Host, sv.Port)
	if err != nil {
		fail(w, http.StatusBadGateway, "server is offline or unreachable")
		return
	}
	ok(w, map[string]any{
		"name":        info.Hostname,
		"gamemode":    info.Gamemode,
		"language":    info.Language,
		"players":     info.Players,
		"max_players": info.MaxPlayers,
		"password":    info.Password,
		"ping_ms":     ping.Milliseconds(),
	})
}
