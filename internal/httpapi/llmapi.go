package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nextlevelbuilder/botmaster/internal/store"
)

// maskKey hides stored API keys from list/get responses.
func maskKey(p *store.LLMProviderData) {
	if p.APIKey != "" {
		p.APIKey = "***"
	}
}

func (s *Server) handleLLMList(w http.ResponseWriter, r *http.Request) {
	providers, err := s.store.ListProviders(r.Context())
	if err != nil {
		s.log.Error("llm list", "error", err)
		fail(w, http.StatusInternalServerError, "failed to list providers")
		return
	}
	for i := range providers {
		maskKey(&providers[i])
	}
	ok(w, map[string]any{"providers": providers})
}

func (s *Server) handleLLMCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		BaseURL string `json:"base_url"`
		APIKey  string `json:"api_key"`
		Model   string `json:"model"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.BaseURL == "" || req.Model == "" {
		fail(w, http.StatusBadRequest, "name, base_url and model are required")
		return
	}

	p, err := s.store.CreateProvider(r.Context(), store.LLMProviderData{
		Name:    req.Name,
		APIKey:  req.APIKey,
		BaseURL: req.BaseURL,
		Model:   req.Model,
	})
	if err != nil {
		fail(w, http.StatusBadRequest, "provider already exists or could not be created")
		return
	}
	maskKey(&p)
	ok(w, p)
}

func (s *Server) handleLLMUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		BaseURL string `json:"base_url"`
		APIKey  string `json:"api_key"`
		Model   string `json:"model"`
	}
	if !decode(w, r, &req) {
		return
	}
	current, err := s.store.GetProvider(r.Context(), req.ID)
	if err != nil {
		fail(w, http.StatusNotFound, "provider not found")
		return
	}

	if req.Name != "" {
		current.Name = req.Name
	}
	if req.BaseURL != "" {
		current.BaseURL = req.BaseURL
	}
	if req.Model != "" {
		current.Model = req.Model
	}
	// "***" is the masked placeholder from list responses; never store it.
	if req.APIKey != "" && req.APIKey != "***" {
		current.APIKey = req.APIKey
	}

	if err := s.store.UpdateProvider(r.Context(), current); err != nil {
		s.log.Error("llm update", "error", err)
		fail(w, http.StatusInternalServerError, "failed to update provider")
		return
	}
	ok(w, nil)
}

func (s *Server) handleLLMDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !decode(w, r, &req) {
		return
	}
	err := s.store.DeleteProvider(r.Context(), req.ID)
	if errors.Is(err, store.ErrProviderInUse) {
		fail(w, http.StatusForbidden, "provider has active sessions")
		return
	}
	if err != nil {
		s.log.Error("llm delete", "error", err)
		fail(w, http.StatusInternalServerError, "failed to delete provider")
		return
	}
	ok(w, nil)
}

func (s *Server) handleLLMGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	p, err := s.store.GetProvider(r.Context(), id)
	if err != nil {
		fail(w, http.StatusNotFound, "provider not found")
		return
	}
	maskKey(&p)
	ok(w, p)
}
