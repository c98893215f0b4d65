// Package store is the SQLite persistence layer: servers, bots, LLM
// providers and LLM sessions. Schema lives in embedded migrations applied
// on open.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrProviderInUse is returned when deleting a provider an active session
// still references.
var ErrProviderInUse = errors.New("provider has active sessions")

// Store wraps the SQLite database.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite serialises writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMigrator builds a migrator over the embedded migration set.
func NewMigrator(s *Store) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	driver, err := sqlitemigrate.WithInstance(s.db, &sqlitemigrate.Config{})
	if err != nil {
		return nil, err
	}
	return migrate.NewWithInstance("iofs", src, "sqlite", driver)
}

func (s *Store) migrate() error {
	m, err := NewMigrator(s)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the raw handle for the migrate CLI subcommand.
func (s *Store) DB() *sql.DB { return s.db }

// --- servers ---

// ServerData is one row of the servers table.
type ServerData struct {
	ID         int64     `json:"id"`
	Host       string    `json:"host"`
	Port       int       `json:"port"`
	Name       string    `json:"name"`
	Gamemode   string    `json:"gamemode"`
	Rule       string    `json:"rule"`
	Language   string    `json:"language"`
	Players    int       `json:"players"`
	MaxPlayers int       `json:"max_players"`
	Ping       float64   `json:"ping"`
	LastUpdate time.Time `json:"last_update"`
	CreatedAt  time.Time `json:"created_at"`
}

const serverColumns = "id, host, port, name, gamemode, rule, language, players, max_players, ping, last_update, created_at"

func scanServer(row interface{ Scan(...any) error }) (ServerData, error) {
	var sv ServerData
	var lastUpdate, createdAt sql.NullString
	err := row.Scan(&sv.ID, &sv.Host, &sv.Port, &sv.Name, &sv.Gamemode, &sv.Rule,
		&sv.Language, &sv.Players, &sv.MaxPlayers, &sv.Ping, &lastUpdate, &createdAt)
	if err != nil {
		return sv, err
	}
	sv.LastUpdate = parseTime(lastUpdate.String)
	sv.CreatedAt = parseTime(createdAt.String)
	return sv, nil
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CreateServer inserts a server; (host, port) must be unique.
func (s *Store) CreateServer(ctx context.Context, host string, port int) (ServerData, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO servers (host, port, name, gamemode, rule, language, players, max_players, ping, last_update, created_at)
		 VALUES (?, ?, '', '', '', '', 0, 0, 0, '', ?)`,
		host, port, now)
	if err != nil {
		return ServerData{}, fmt.Errorf("create server: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetServer(ctx, id)
}

// GetServer fetches one server by id.
func (s *Store) GetServer(ctx context.Context, id int64) (ServerData, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+serverColumns+" FROM servers WHERE id = ?", id)
	return scanServer(row)
}

// ListServers returns every server row.
func (s *Store) ListServers(ctx context.Context) ([]ServerData, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+serverColumns+" FROM servers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	defer rows.Close()

	var out []ServerData
	for rows.Next() {
		sv, err := scanServer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// DeleteServer removes a server; bots on it cascade away.
func (s *Store) DeleteServer(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM servers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete server: %w", err)
	}
	return nil
}

// UpdateServerQuery persists a successful querier round for a server.
func (s *Store) UpdateServerQuery(ctx context.Context, id int64, name, gamemode, language string, players, maxPlayers int, ping float64, lastUpdate time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE servers SET name = ?, gamemode = ?, language = ?, players = ?, max_players = ?, ping = ?, last_update = ? WHERE id = ?`,
		name, gamemode, language, players, maxPlayers, ping, lastUpdate.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("update server %d: %w", id, err)
	}
	return nil
}

// --- bots ---

// BotData is one row of the bots table joined with its server address.
type BotData struct {
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	ServerID     int64     `json:"server_id"`
	Host         string    `json:"host"`
	Port         int       `json:"port"`
	Invulnerable bool      `json:"invulnerable"`
	SystemPrompt string    `json:"system_prompt"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateBot inserts a bot row.
func (s *Store) CreateBot(ctx context.Context, b BotData) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bots (uuid, name, server_id, invulnerable, system_prompt, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		b.UUID, b.Name, b.ServerID, boolInt(b.Invulnerable), b.SystemPrompt, now)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ListBots returns every bot with its server address resolved.
func (s *Store) ListBots(ctx context.Context) ([]BotData, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT b.uuid, b.name, b.server_id, s.host, s.port, b.invulnerable, b.system_prompt, b.created_at
		 FROM bots b JOIN servers s ON s.id = b.server_id ORDER BY b.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}
	defer rows.Close()

	var out []BotData
	for rows.Next() {
		var b BotData
		var invulnerable int
		var createdAt string
		if err := rows.Scan(&b.UUID, &b.Name, &b.ServerID, &b.Host, &b.Port, &invulnerable, &b.SystemPrompt, &createdAt); err != nil {
			return nil, err
		}
		b.Invulnerable = invulnerable != 0
		b.CreatedAt = parseTime(createdAt)
		out = append(out, b)
	}
	return out, rows.Err()
}

// DeleteBot removes a bot row.
func (s *Store) DeleteBot(ctx context.Context, uuid string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM bots WHERE uuid = ?", uuid)
	if err != nil {
		return fmt.Errorf("delete bot: %w", err)
	}
	return nil
}

// UpdateBotPrompt replaces a bot's stored system prompt.
func (s *Store) UpdateBotPrompt(ctx context.Context, uuid, prompt string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE bots SET system_prompt = ? WHERE uuid = ?", prompt, uuid)
	if err != nil {
		return fmt.Errorf("update bot prompt: %w", err)
	}
	return nil
}

// --- llm providers ---

// LLMProviderData is one row of the llm_providers table.
type LLMProviderData struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"`
	BaseURL   string    `json:"base_url"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProvider inserts a provider; name must be unique.
func (s *Store) CreateProvider(ctx context.Context, p LLMProviderData) (LLMProviderData, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_providers (name, api_key, base_url, model, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.APIKey, p.BaseURL, p.Model, now)
	if err != nil {
		return LLMProviderData{}, fmt.Errorf("create provider: %w", err)
	}
	p.ID, _ = res.LastInsertId()
	p.CreatedAt = parseTime(now)
	return p, nil
}

// GetProvider fetches one provider by id.
func (s *Store) GetProvider(ctx context.Context, id int64) (LLMProviderData, error) {
	var p LLMProviderData
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, api_key, base_url, model, created_at FROM llm_providers WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.APIKey, &p.BaseURL, &p.Model, &createdAt)
	if err != nil {
		return p, err
	}
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}

// ListProviders returns every provider row.
func (s *Store) ListProviders(ctx context.Context) ([]LLMProviderData, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, api_key, base_url, model, created_at FROM llm_providers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var out []LLMProviderData
	for rows.Next() {
		var p LLMProviderData
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.APIKey, &p.BaseURL, &p.Model, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(createdAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProvider overwrites the mutable provider fields.
func (s *Store) UpdateProvider(ctx context.Context, p LLMProviderData) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE llm_providers SET name = ?, api_key = ?, base_url = ?, model = ? WHERE id = ?",
		p.Name, p.APIKey, p.BaseURL, p.Model, p.ID)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// DeleteProvider removes a provider unless an active session references it.
func (s *Store) DeleteProvider(ctx context.Context, id int64) error {
	var active int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM llm_sessions WHERE provider_id = ? AND is_active = 1", id).Scan(&active)
	if err != nil {
		return fmt.Errorf("check provider sessions: %w", err)
	}
	if active > 0 {
		return ErrProviderInUse
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM llm_providers WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}

// --- llm sessions ---

// LLMSessionData is one row of the llm_sessions table.
type LLMSessionData struct {
	ID           int64     `json:"id"`
	SessionID    string    `json:"session_id"`
	BotUUID      string    `json:"bot_uuid"`
	ProviderID   int64     `json:"provider_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// CreateSession inserts a session row.
func (s *Store) CreateSession(ctx context.Context, sessionID, botUUID string, providerID int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_sessions (session_id, bot_uuid, provider_id, is_active, created_at, last_activity)
		 VALUES (?, ?, ?, 1, ?, ?)`,
		sessionID, botUUID, providerID, now, now)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// ListActiveSessions returns every active session row.
func (s *Store) ListActiveSessions(ctx context.Context) ([]LLMSessionData, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, bot_uuid, provider_id, is_active, created_at, last_activity
		 FROM llm_sessions WHERE is_active = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []LLMSessionData
	for rows.Next() {
		var d LLMSessionData
		var active int
		var createdAt, lastActivity string
		if err := rows.Scan(&d.ID, &d.SessionID, &d.BotUUID, &d.ProviderID, &active, &createdAt, &lastActivity); err != nil {
			return nil, err
		}
		d.IsActive = active != 0
		d.CreatedAt = parseTime(createdAt)
		d.LastActivity = parseTime(lastActivity)
		out = append(out, d)
	}
	return out, rows.Err()
}

// TouchSession bumps a session's last_activity.
func (s *Store) TouchSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE llm_sessions SET last_activity = ? WHERE session_id = ?",
		time.Now().UTC().Format(time.RFC3339), sessionID)
	return err
}

// DeleteSession removes a session row.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM llm_sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteSessionsForBot removes every session bound to a bot.
func (s *Store) DeleteSessionsForBot(ctx context.Context, botUUID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM llm_sessions WHERE bot_uuid = ?", botUUID)
	if err != nil {
		return fmt.Errorf("delete sessions for bot: %w", err)
	}
	return nil
}
