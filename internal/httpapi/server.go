// Package httpapi is the HTTP control plane: bot/server/provider CRUD,
// dashboard stats, the static web UI and the live console feed.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/config"
	"github.com/nextlevelbuilder/botmaster/internal/fleet"
	"github.com/nextlevelbuilder/botmaster/internal/llm"
	"github.com/nextlevelbuilder/botmaster/internal/querier"
	"github.com/nextlevelbuilder/botmaster/internal/store"
)

// BotFactory builds a runtime bot from its stored row; the serve command
// injects transport, pools and encoding.
type BotFactory func(data store.BotData) *bot.Bot

// Server is the control plane.
type Server struct {
	cfg       *config.Config
	store     *store.Store
	fleet     *fleet.Manager
	sessions  *llm.Manager
	querier   *querier.Querier
	newBot    BotFactory
	log       *slog.Logger
	startTime time.Time

	static *staticFiles

	limitMu  sync.Mutex
	limiters map[string]*rate.Limiter

	httpServer *http.Server
}

// Config wires a Server.
type Config struct {
	Config   *config.Config
	Store    *store.Store
	Fleet    *fleet.Manager
	Sessions *llm.Manager
	Querier  *querier.Querier
	NewBot   BotFactory
	Logger   *slog.Logger
}

func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s := &Server{
		cfg:       cfg.Config,
		store:     cfg.Store,
		fleet:     cfg.Fleet,
		sessions:  cfg.Sessions,
		querier:   cfg.Querier,
		newBot:    cfg.NewBot,
		log:       cfg.Logger,
		startTime: time.Now(),
		limiters:  make(map[string]*rate.Limiter),
	}
	if files, err := loadZip(cfg.Config.WebArchive); err != nil {
		s.log.Warn("web ui archive not loaded", "path", cfg.Config.WebArchive, "error", err)
	} else {
		s.static = files
	}
	return s
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/bot/list", s.handleBotList)
	mux.HandleFunc("POST /api/bot/create", s.handleBotCreate)
	mux.HandleFunc("POST /api/bot/delete", s.handleBotDelete)
	mux.HandleFunc("POST /api/bot/set_password", s.handleBotSetPassword)
	mux.HandleFunc("POST /api/bot/reconnect", s.handleBotReconnect)
	mux.HandleFunc("POST /api/bot/enable_llm", s.handleBotEnableLLM)
	mux.HandleFunc("POST /api/bot/disable_llm", s.handleBotDisableLLM)
	mux.HandleFunc("POST /api/bot/update_prompt", s.handleBotUpdatePrompt)

	mux.HandleFunc("GET /api/server/list", s.handleServerList)
	mux.HandleFunc("POST /api/server/add", s.handleServerAdd)
	mux.HandleFunc("POST /api/server/delete", s.handleServerDelete)
	mux.HandleFunc("POST /api/server/query", s.handleServerQuery)

	mux.HandleFunc("GET /api/llm/list", s.handleLLMList)
	mux.HandleFunc("POST /api/llm/create", s.handleLLMCreate)
	mux.HandleFunc("POST /api/llm/update", s.handleLLMUpdate)
	mux.HandleFunc("POST /api/llm/delete", s.handleLLMDelete)
	mux.HandleFunc("GET /api/llm/get", s.handleLLMGet)

	mux.HandleFunc("GET /api/dashboard/runtime", s.handleDashboardRuntime)
	mux.HandleFunc("GET /api/dashboard/bot_stats", s.handleDashboardBotStats)
	mux.HandleFunc("GET /api/dashboard/server_stats", s.handleDashboardServerStats)

	mux.HandleFunc("GET /api/console/ws", s.handleConsoleWS)

	mux.HandleFunc("GET /web/", s.handleStatic)
	mux.HandleFunc("GET /web", s.handleStatic)

	return s.cors(s.rateLimit(mux))
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.APIPort),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("control plane listening", "port", s.cfg.APIPort)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// --- middleware ---

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	rpm := s.cfg.RateLimitRPM
	if rpm <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		s.limitMu.Lock()
		lim, ok := s.limiters[host]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(float64(rpm)/60), rpm)
			s.limiters[host] = lim
		}
		s.limitMu.Unlock()

		if !lim.Allow() {
			fail(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- response envelope ---

type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

func respond(w http.ResponseWriter, code int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(envelope{
		Success:   success,
		Message:   message,
		Code:      code,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
}

func ok(w http.ResponseWriter, data any) {
	respond(w, http.StatusOK, true, "Success", data)
}

func fail(w http.ResponseWriter, code int, message string) {
	respond(w, code, false, message, nil)
}

// decode parses a bounded JSON body.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst); err != nil {
		fail(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
