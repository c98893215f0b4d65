package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/config"
	"github.com/nextlevelbuilder/botmaster/internal/fleet"
	"github.com/nextlevelbuilder/botmaster/internal/llm"
	"github.com/nextlevelbuilder/botmaster/internal/querier"
	"github.com/nextlevelbuilder/botmaster/internal/store"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/world"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"), nil)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	shared := world.NewSharedPool()
	dispatcher := llm.NewDispatcher(nil)
	sessions := llm.NewManager(llm.ManagerConfig{Dispatcher: dispatcher, Store: st})
	manager := fleet.NewManager(fleet.NewQueue(fleet.PolicyQueued), nil)

	cfg := config.Default()
	cfg.RateLimitRPM = 0 // tests hammer the API
	cfg.WebArchive = filepath.Join(t.TempDir(), "missing.zip")

	s := New(Config{
		Config:   cfg,
		Store:    st,
		Fleet:    manager,
		Sessions: sessions,
		Querier:  querier.New(querier.Config{Store: st}),
		NewBot: func(data store.BotData) *bot.Bot {
			return bot.New(bot.Config{
				Name:         data.Name,
				UUID:         data.UUID,
				Host:         data.Host,
				Port:         data.Port,
				Invulnerable: data.Invulnerable,
				SystemPrompt: data.SystemPrompt,
				Transport:    transport.NewLoopback(),
				Shared:       shared,
			})
		},
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, st
}

func postJSON(t *testing.T, url string, body any) envelope {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func getJSON(t *testing.T, url string) envelope {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestEnvelopeShape(t *testing.T) {
	_, ts, _ := newTestServer(t)
	env := getJSON(t, ts.URL+"/api/server/list")
	if !env.Success || env.Code != http.StatusOK || env.Message != "Success" || env.Timestamp == 0 {
		t.Errorf("envelope = %+v", env)
	}
}

func TestServerAddListDelete(t *testing.T) {
	_, ts, _ := newTestServer(t)

	add := postJSON(t, ts.URL+"/api/server/add", map[string]any{"host": "gta.example", "port": 7777})
	if !add.Success {
		t.Fatalf("add failed: %+v", add)
	}

	dup := postJSON(t, ts.URL+"/api/server/add", map[string]any{"host": "gta.example", "port": 7777})
	if dup.Success {
		t.Error("duplicate server accepted")
	}

	invalid := postJSON(t, ts.URL+"/api/server/add", map[string]any{"host": "", "port": 0})
	if invalid.Success || invalid.Code != http.StatusBadRequest {
		t.Errorf("invalid add = %+v", invalid)
	}

	list := getJSON(t, ts.URL+"/api/server/list")
	data := list.Data.(map[string]any)
	servers := data["servers"].([]any)
	if len(servers) != 1 {
		t.Fatalf("server list length = %d", len(servers))
	}
	id := servers[0].(map[string]any)["id"].(float64)

	del := postJSON(t, ts.URL+"/api/server/delete", map[string]any{"dbid": id})
	if !del.Success {
		t.Fatalf("delete failed: %+v", del)
	}
}

func TestBotLifecycleOverAPI(t *testing.T) {
	s, ts, _ := newTestServer(t)

	sv := postJSON(t, ts.URL+"/api/server/add", map[string]any{"host": "h", "port": 7777})
	id := sv.Data.(map[string]any)["id"].(float64)

	create := postJSON(t, ts.URL+"/api/bot/create", map[string]any{
		"name":      "apibot",
		"server_id": id,
		"password":  "secret",
	})
	if !create.Success {
		t.Fatalf("bot create failed: %+v", create)
	}
	uuid := create.Data.(map[string]any)["uuid"].(string)

	if s.fleet.Count() != 1 {
		t.Fatalf("fleet count = %d after create", s.fleet.Count())
	}
	live, okGet := s.fleet.Get(uuid)
	if !okGet || live.Password() != "secret" {
		t.Fatal("live bot missing or password not applied")
	}

	list := getJSON(t, ts.URL+"/api/bot/list")
	bots := list.Data.(map[string]any)["bots"].([]any)
	if len(bots) != 1 {
		t.Fatalf("bot list length = %d", len(bots))
	}
	view := bots[0].(map[string]any)
	if view["status"] != "DISCONNECTED" || view["name"] != "apibot" {
		t.Errorf("bot view = %v", view)
	}

	del := postJSON(t, ts.URL+"/api/bot/delete", map[string]any{"uuid": uuid})
	if !del.Success {
		t.Fatalf("bot delete failed: %+v", del)
	}
	if s.fleet.Count() != 0 {
		t.Error("fleet not emptied by delete")
	}
}

func TestEnableDisableLLM(t *testing.T) {
	s, ts, _ := newTestServer(t)

	sv := postJSON(t, ts.URL+"/api/server/add", map[string]any{"host": "h", "port": 7777})
	serverID := sv.Data.(map[string]any)["id"].(float64)
	create := postJSON(t, ts.URL+"/api/bot/create", map[string]any{"name": "b", "server_id": serverID})
	uuid := create.Data.(map[string]any)["uuid"].(string)

	prov := postJSON(t, ts.URL+"/api/llm/create", map[string]any{
		"name": "deepseek", "base_url": "https://api.deepseek.example/chat/completions",
		"api_key": "sk-x", "model": "deepseek-chat",
	})
	if !prov.Success {
		t.Fatalf("provider create failed: %+v", prov)
	}
	provID := prov.Data.(map[string]any)["id"].(float64)

	enable := postJSON(t, ts.URL+"/api/bot/enable_llm", map[string]any{"uuid": uuid, "provider_id": provID})
	if !enable.Success {
		t.Fatalf("enable_llm failed: %+v", enable)
	}
	if s.sessions.ActiveCount() != 1 {
		t.Fatalf("ActiveCount = %d after enable", s.sessions.ActiveCount())
	}

	// Provider delete is forbidden while the session lives.
	delProv := postJSON(t, ts.URL+"/api/llm/delete", map[string]any{"id": provID})
	if delProv.Success || delProv.Code != http.StatusForbidden {
		t.Errorf("provider delete with active session = %+v", delProv)
	}

	disable := postJSON(t, ts.URL+"/api/bot/disable_llm", map[string]any{"uuid": uuid})
	if !disable.Success {
		t.Fatalf("disable_llm failed: %+v", disable)
	}
	if s.sessions.ActiveCount() != 0 {
		t.Error("session survived disable")
	}

	delProv2 := postJSON(t, ts.URL+"/api/llm/delete", map[string]any{"id": provID})
	if !delProv2.Success {
		t.Errorf("provider delete after disable = %+v", delProv2)
	}
}

func TestProviderKeyMasked(t *testing.T) {
	_, ts, _ := newTestServer(t)
	created := postJSON(t, ts.URL+"/api/llm/create", map[string]any{
		"name": "p", "base_url": "http://x", "api_key": "sk-secret", "model": "m",
	})
	if key := created.Data.(map[string]any)["api_key"]; key != "***" {
		t.Errorf("api_key in response = %v", key)
	}

	list := getJSON(t, ts.URL+"/api/llm/list")
	providers := list.Data.(map[string]any)["providers"].([]any)
	if key := providers[0].(map[string]any)["api_key"]; key != "***" {
		t.Errorf("api_key in list = %v", key)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	_, ts, _ := newTestServer(t)

	runtime := getJSON(t, ts.URL+"/api/dashboard/runtime")
	if !runtime.Success {
		t.Errorf("runtime = %+v", runtime)
	}
	stats := getJSON(t, ts.URL+"/api/dashboard/server_stats")
	data := stats.Data.(map[string]any)
	if data["total"].(float64) != 0 || data["online"].(float64) != 0 {
		t.Errorf("server_stats = %v", data)
	}
}

func TestCORSHeaders(t *testing.T) {
	_, ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/server/list")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/server/list", nil)
	pre, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	pre.Body.Close()
	if pre.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d", pre.StatusCode)
	}
}
