package httpapi

import (
	"net/http"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/llm"
	"github.com/nextlevelbuilder/botmaster/internal/store"
)

// botView is the list representation of a bot: its stored row plus the
// live connection state.
type botView struct {
	UUID         string  `json:"uuid"`
	Name         string  `json:"name"`
	ServerID     int64   `json:"server_id"`
	Host         string  `json:"host"`
	Port         int     `json:"port"`
	Status       string  `json:"status"`
	Health       float32 `json:"health"`
	Armor        float32 `json:"armor"`
	Invulnerable bool    `json:"invulnerable"`
	SystemPrompt string  `json:"system_prompt"`
	HasSession   bool    `json:"has_llm_session"`
}

func (s *Server) handleBotList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ListBots(r.Context())
	if err != nil {
		s.log.Error("bot list", "error", err)
		fail(w, http.StatusInternalServerError, "failed to list bots")
		return
	}

	views := make([]botView, 0, len(rows))
	for _, row := range rows {
		v := botView{
			UUID:         row.UUID,
			Name:         row.Name,
			ServerID:     row.ServerID,
			Host:         row.Host,
			Port:         row.Port,
			Status:       bot.Disconnected.String(),
			Invulnerable: row.Invulnerable,
			SystemPrompt: row.SystemPrompt,
		}
		if live, okGet := s.fleet.Get(row.UUID); okGet {
			v.Status = live.Status().String()
			v.Health = live.Health()
			v.Armor = live.Armor()
		}
		_, v.HasSession = s.sessions.SessionForBot(row.UUID)
		views = append(views, v)
	}
	ok(w, map[string]any{"bots": views})
}

func (s *Server) handleBotCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		ServerID      int64  `json:"server_id"`
		Invulnerable  bool   `json:"invulnerable"`
		SystemPrompt  string `json:"system_prompt"`
		Password      string `json:"password"`
		LLMProviderID int64  `json:"llm_provider_id"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		fail(w, http.StatusBadRequest, "name is required")
		return
	}
	sv, err := s.store.GetServer(r.Context(), req.ServerID)
	if err != nil {
		fail(w, http.StatusBadRequest, "server not found")
		return
	}

	data := store.BotData{
		Name:         req.Name,
		ServerID:     sv.ID,
		Host:         sv.Host,
		Port:         sv.Port,
		Invulnerable: req.Invulnerable,
		SystemPrompt: req.SystemPrompt,
	}
	live := s.newBot(data)
	live.SetPassword(req.Password)
	data.UUID = live.UUID()

	if err := s.store.CreateBot(r.Context(), data); err != nil {
		s.log.Error("bot create", "error", err)
		fail(w, http.StatusInternalServerError, "failed to create bot")
		return
	}
	s.fleet.Add(live)

	if req.LLMProviderID > 0 {
		providerRow, err := s.store.GetProvider(r.Context(), req.LLMProviderID)
		if err != nil {
			fail(w, http.StatusBadRequest, "llm provider not found")
			return
		}
		s.sessions.CreateSession(live, llm.NewProvider(providerRow))
	}

	ok(w, map[string]any{"uuid": live.UUID()})
}

func (s *Server) handleBotDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID string `json:"uuid"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.UUID == "" {
		fail(w, http.StatusBadRequest, "uuid is required")
		return
	}

	s.sessions.EndSessionForBot(req.UUID)
	s.fleet.Remove(req.UUID)
	if err := s.store.DeleteBot(r.Context(), req.UUID); err != nil {
		s.log.Error("bot delete", "error", err)
		fail(w, http.StatusInternalServerError, "failed to delete bot")
		return
	}
	ok(w, nil)
}

func (s *Server) handleBotSetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID     string `json:"uuid"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}
	live, okGet := s.fleet.Get(req.UUID)
	if !okGet {
		fail(w, http.StatusNotFound, "bot not found")
		return
	}
	live.SetPassword(req.Password)
	ok(w, nil)
}

func (s *Server) handleBotReconnect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID string `json:"uuid"`
	}
	if !decode(w, r, &req) {
		return
	}
	live, okGet := s.fleet.Get(req.UUID)
	if !okGet {
		fail(w, http.StatusNotFound, "bot not found")
		return
	}
	live.Disconnect()
	ok(w, map[string]any{"status": live.Status().String()})
}

func (s *Server) handleBotEnableLLM(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID       string `json:"uuid"`
		ProviderID int64  `json:"provider_id"`
	}
	if !decode(w, r, &req) {
		return
	}
	live, okGet := s.fleet.Get(req.UUID)
	if !okGet {
		fail(w, http.StatusNotFound, "bot not found")
		return
	}
	providerRow, err := s.store.GetProvider(r.Context(), req.ProviderID)
	if err != nil {
		fail(w, http.StatusBadRequest, "llm provider not found")
		return
	}
	sessionID := s.sessions.CreateSession(live, llm.NewProvider(providerRow))
	ok(w, map[string]any{"session_id": sessionID})
}

func (s *Server) handleBotDisableLLM(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID string `json:"uuid"`
	}
	if !decode(w, r, &req) {
		return
	}
	if !s.sessions.EndSessionForBot(req.UUID) {
		fail(w, http.StatusNotFound, "no active session for bot")
		return
	}
	ok(w, nil)
}

func (s *Server) handleBotUpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UUID         string `json:"uuid"`
		SystemPrompt string `json:"system_prompt"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.store.UpdateBotPrompt(r.Context(), req.UUID, req.SystemPrompt); err != nil {
		s.log.Error("bot update prompt", "error", err)
		fail(w, http.StatusInternalServerError, "failed to update prompt")
		return
	}
	if live, okGet := s.fleet.Get(req.UUID); okGet {
		live.SetSystemPrompt(req.SystemPrompt)
	}
	ok(w, nil)
}
