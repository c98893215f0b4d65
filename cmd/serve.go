package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/config"
	"github.com/nextlevelbuilder/botmaster/internal/fleet"
	"github.com/nextlevelbuilder/botmaster/internal/gamedata"
	"github.com/nextlevelbuilder/botmaster/internal/httpapi"
	"github.com/nextlevelbuilder/botmaster/internal/llm"
	"github.com/nextlevelbuilder/botmaster/internal/querier"
	"github.com/nextlevelbuilder/botmaster/internal/store"
	"github.com/nextlevelbuilder/botmaster/internal/telemetry"
	"github.com/nextlevelbuilder/botmaster/internal/textenc"
	"github.com/nextlevelbuilder/botmaster/internal/tools"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/world"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the orchestrator (tick loop, session worker, querier, control plane)",
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	}
}

func runServe() {
	setupLogging()
	log := slog.Default()

	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Error("telemetry setup failed", "error", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}

	st, err := store.Open(cfg.DBPath, log)
	if err != nil {
		log.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	prompt, err := config.LoadPrompt(cfg.PromptPath, log)
	if err != nil {
		log.Warn("base prompt not loaded", "path", cfg.PromptPath, "error", err)
		prompt = nil
	} else if err := prompt.Watch(ctx); err != nil {
		log.Warn("prompt watch failed", "error", err)
	}
	basePrompt := func() string {
		if prompt == nil {
			return ""
		}
		return prompt.Text()
	}

	text := textenc.New(cfg.MessageEncoding)
	shared := world.NewSharedPool()
	raycaster := transport.FlatWorld{}

	objects := gamedata.NewObjectNames()
	if err := objects.LoadFile(cfg.ObjectNamesPath); err != nil {
		log.Info("object names not loaded", "path", cfg.ObjectNamesPath)
	}

	dispatcher := llm.NewDispatcher(log)
	sessions := llm.NewManager(llm.ManagerConfig{
		Dispatcher: dispatcher,
		Store:      st,
		BasePrompt: basePrompt,
		Logger:     log,
	})
	tools.RegisterAll(dispatcher, tools.Deps{
		Sessions: sessions,
		Shared:   shared,
		Objects:  objects,
	})

	policy := fleet.PolicyQueued
	if cfg.ConnectionPolicy == config.PolicyAggressive {
		policy = fleet.PolicyAggressive
	}
	manager := fleet.NewManager(fleet.NewQueue(policy), log)

	// The game-client transport is pluggable; the loopback stands in until
	// a wire implementation is linked.
	newBot := func(data store.BotData) *bot.Bot {
		return bot.New(bot.Config{
			Name:         data.Name,
			UUID:         data.UUID,
			Host:         data.Host,
			Port:         data.Port,
			Invulnerable: data.Invulnerable,
			SystemPrompt: data.SystemPrompt,
			Transport:    transport.NewLoopback(),
			Raycaster:    raycaster,
			Shared:       shared,
			Text:         text,
			Logger:       log,
		})
	}

	// Load the persisted fleet.
	rows, err := st.ListBots(ctx)
	if err != nil {
		log.Error("fleet load failed", "error", err)
	}
	for _, row := range rows {
		shared.AddServer(world.Addr{Host: row.Host, Port: row.Port})
		manager.Add(newBot(row))
	}
	log.Info("fleet loaded", "bots", len(rows))

	// Restore persisted LLM sessions.
	restoreSessions(ctx, st, sessions, manager, log)

	q := querier.New(querier.Config{
		Store:    st,
		Text:     text,
		Logger:   log,
		Interval: time.Duration(cfg.QueryIntervalSec) * time.Second,
		Timeout:  time.Duration(cfg.QueryTimeoutMs) * time.Millisecond,
		Schedule: cfg.QuerySchedule,
	})
	q.OnUpdated = func(res querier.Result) {
		manager.Publish(fleet.Event{
			Type: "server.updated",
			Data: map[string]any{
				"id":      res.Server.ID,
				"name":    res.Info.Hostname,
				"players": res.Info.Players,
				"ping_ms": res.Ping.Milliseconds(),
			},
		})
	}
	q.OnOffline = func(sv store.ServerData) {
		manager.Publish(fleet.Event{
			Type: "server.offline",
			Data: map[string]any{"id": sv.ID},
		})
	}

	api := httpapi.New(httpapi.Config{
		Config:   cfg,
		Store:    st,
		Fleet:    manager,
		Sessions: sessions,
		Querier:  q,
		NewBot:   newBot,
		Logger:   log,
	})

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); manager.Run(ctx) }()
	go func() { defer wg.Done(); sessions.Run(ctx) }()
	go func() { defer wg.Done(); q.Run(ctx) }()

	if err := api.Run(ctx); err != nil {
		log.Error("control plane failed", "error", err)
		stop()
	}
	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Warn("telemetry shutdown", "error", err)
	}
	log.Info("botmaster shutdown complete")
}

// restoreSessions rebinds persisted active sessions to their bots and
// providers. Rows whose bot or provider is gone are dropped.
func restoreSessions(ctx context.Context, st *store.Store, sessions *llm.Manager, manager *fleet.Manager, log *slog.Logger) {
	rows, err := st.ListActiveSessions(ctx)
	if err != nil {
		log.Error("session restore failed", "error", err)
		return
	}
	restored := 0
	for _, row := range rows {
		live, okGet := manager.Get(row.BotUUID)
		if !okGet {
			log.Warn("session bot missing, dropping", "session", row.SessionID, "bot", row.BotUUID)
			_ = st.DeleteSession(ctx, row.SessionID)
			continue
		}
		providerRow, err := st.GetProvider(ctx, row.ProviderID)
		if err != nil {
			log.Warn("session provider missing, dropping", "session", row.SessionID)
			_ = st.DeleteSession(ctx, row.SessionID)
			continue
		}
		sessions.RestoreSession(row.SessionID, live, llm.NewProvider(providerRow))
		restored++
	}
	log.Info("llm sessions restored", "count", restored)
}
