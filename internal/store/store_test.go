package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestServerCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sv, err := s.CreateServer(ctx, "gta.example", 7777)
	if err != nil {
		t.Fatalf("CreateServer: %v", err)
	}
	if sv.ID == 0 || sv.Host != "gta.example" || sv.Port != 7777 {
		t.Errorf("unexpected server: %+v", sv)
	}

	// Duplicate (host, port) must be rejected.
	if _, err := s.CreateServer(ctx, "gta.example", 7777); err == nil {
		t.Error("duplicate server accepted")
	}

	if err := s.UpdateServerQuery(ctx, sv.ID, "Test Server", "Freeroam", "en", 7, 100, 42, sv.CreatedAt); err != nil {
		t.Fatalf("UpdateServerQuery: %v", err)
	}
	got, err := s.GetServer(ctx, sv.ID)
	if err != nil {
		t.Fatalf("GetServer: %v", err)
	}
	if got.Name != "Test Server" || got.Gamemode != "Freeroam" || got.Players != 7 || got.MaxPlayers != 100 {
		t.Errorf("query update not persisted: %+v", got)
	}

	if err := s.DeleteServer(ctx, sv.ID); err != nil {
		t.Fatalf("DeleteServer: %v", err)
	}
	servers, _ := s.ListServers(ctx)
	if len(servers) != 0 {
		t.Errorf("ListServers after delete = %d rows", len(servers))
	}
}

func TestBotCascadeOnServerDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sv, _ := s.CreateServer(ctx, "h", 7777)
	if err := s.CreateBot(ctx, BotData{UUID: "u1", Name: "bot1", ServerID: sv.ID}); err != nil {
		t.Fatalf("CreateBot: %v", err)
	}

	if err := s.DeleteServer(ctx, sv.ID); err != nil {
		t.Fatalf("DeleteServer: %v", err)
	}
	bots, _ := s.ListBots(ctx)
	if len(bots) != 0 {
		t.Errorf("bots survived server delete: %+v", bots)
	}
}

func TestProviderDeleteRestrictedByActiveSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sv, _ := s.CreateServer(ctx, "h", 7777)
	_ = s.CreateBot(ctx, BotData{UUID: "u1", Name: "bot1", ServerID: sv.ID})
	p, err := s.CreateProvider(ctx, LLMProviderData{Name: "test", APIKey: "k", BaseURL: "http://x", Model: "m"})
	if err != nil {
		t.Fatalf("CreateProvider: %v", err)
	}
	if err := s.CreateSession(ctx, "abcdef0123456789", "u1", p.ID); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if err := s.DeleteProvider(ctx, p.ID); err != ErrProviderInUse {
		t.Fatalf("DeleteProvider with active session = %v, want ErrProviderInUse", err)
	}

	if err := s.DeleteSession(ctx, "abcdef0123456789"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if err := s.DeleteProvider(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProvider after session removal: %v", err)
	}
}

func TestSessionRestoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sv, _ := s.CreateServer(ctx, "h", 7777)
	_ = s.CreateBot(ctx, BotData{UUID: "u1", Name: "bot1", ServerID: sv.ID})
	p, _ := s.CreateProvider(ctx, LLMProviderData{Name: "test", APIKey: "k", BaseURL: "http://x", Model: "m"})
	_ = s.CreateSession(ctx, "1111222233334444", "u1", p.ID)

	sessions, err := s.ListActiveSessions(ctx)
	if err != nil {
		t.Fatalf("ListActiveSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	got := sessions[0]
	if got.SessionID != "1111222233334444" || got.BotUUID != "u1" || got.ProviderID != p.ID || !got.IsActive {
		t.Errorf("unexpected session row: %+v", got)
	}
}
