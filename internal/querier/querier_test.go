package querier

import (
	"testing"

	"github.com/nextlevelbuilder/botmaster/internal/textenc"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
)

func testQuerier() *Querier {
	return New(Config{Text: textenc.New("GBK")})
}

// replyHeader fabricates the 11-byte echo header a server prepends.
func replyHeader(op byte) *wire.Writer {
	return wire.NewWriter().
		Raw([]byte("SAMP")).
		Raw([]byte{127, 0, 0, 1}).
		U16(7777).
		U8(op)
}

func TestBuildInfoPacket(t *testing.T) {
	pkt, err := BuildPacket("127.0.0.1", 7777, OpInfo, "", "")
	if err != nil {
		t.Fatalf("BuildPacket: %v", err)
	}
	want := replyHeader(OpInfo).Bytes()
	if len(pkt) != len(want) {
		t.Fatalf("packet length = %d, want %d", len(pkt), len(want))
	}
	for i := range want {
		if pkt[i] != want[i] {
			t.Fatalf("packet[%d] = %#x, want %#x (pkt=%v)", i, pkt[i], want[i], pkt)
		}
	}
}

func TestBuildRconPacket(t *testing.T) {
	pkt, err := BuildPacket("127.0.0.1", 7777, OpRcon, "secret", "players")
	if err != nil {
		t.Fatalf("BuildPacket: %v", err)
	}
	r := wire.NewReader(pkt)
	r.Skip(replyHeaderLen)
	if pw := r.String16(); pw != "secret" {
		t.Errorf("password = %q, want secret", pw)
	}
	if cmd := r.String16(); cmd != "players" {
		t.Errorf("command = %q, want players", cmd)
	}
	if !r.OK() || r.Remaining() != 0 {
		t.Errorf("trailing bytes or short packet: ok=%v remaining=%d", r.OK(), r.Remaining())
	}
}

func TestParseInfo(t *testing.T) {
	reply := replyHeader(OpInfo).
		U8(1).
		U16(7).
		U16(100).
		String32("Test Server").
		String32("Freeroam").
		String32("en").
		Bytes()

	info, err := testQuerier().ParseInfo(reply)
	if err != nil {
		t.Fatalf("ParseInfo: %v", err)
	}
	want := Info{Password: true, Players: 7, MaxPlayers: 100, Hostname: "Test Server", Gamemode: "Freeroam", Language: "en"}
	if info != want {
		t.Errorf("ParseInfo = %+v, want %+v", info, want)
	}
}

func TestParseInfoTruncated(t *testing.T) {
	reply := replyHeader(OpInfo).U8(0).U16(3).Bytes() // missing everything after players
	if _, err := testQuerier().ParseInfo(reply); err == nil {
		t.Error("truncated info reply parsed without error")
	}
}

func TestParsePlayers(t *testing.T) {
	reply := replyHeader(OpPlayers).
		U16(2).
		U8(0).String8("Alice").I32(150).I32(40).
		U8(1).String8("Bob").I32(-5).I32(120).
		Bytes()

	players, err := ParsePlayers(reply)
	if err != nil {
		t.Fatalf("ParsePlayers: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("got %d players, want 2", len(players))
	}
	if players[0].Name != "Alice" || players[0].Score != 150 || players[0].Ping != 40 {
		t.Errorf("player 0 = %+v", players[0])
	}
	if players[1].Name != "Bob" || players[1].Score != -5 {
		t.Errorf("player 1 = %+v", players[1])
	}
}

func TestParseRules(t *testing.T) {
	reply := replyHeader(OpRules).
		U16(2).
		String8("weather").String8("10").
		String8("worldtime").String8("12:00").
		Bytes()

	rules, err := ParseRules(reply)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rules) != 2 || rules[0].Name != "weather" || rules[1].Value != "12:00" {
		t.Errorf("ParseRules = %+v", rules)
	}
}

func TestParseRcon(t *testing.T) {
	reply := replyHeader(OpRcon).
		String16("line one").
		String16("line two").
		U16(0).
		Bytes()

	out, err := ParseRcon(reply)
	if err != nil {
		t.Fatalf("ParseRcon: %v", err)
	}
	if out != "line one\nline two\n" {
		t.Errorf("ParseRcon = %q", out)
	}
}
