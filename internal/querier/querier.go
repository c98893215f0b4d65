// Package querier polls known game servers over UDP with the classic
// "SAMP" query protocol, parses the fixed binary reply format and persists
// the results.
package querier

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/adhocore/gronx"

	"github.com/nextlevelbuilder/botmaster/internal/store"
	"github.com/nextlevelbuilder/botmaster/internal/textenc"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
)

// Query opcodes.
const (
	OpInfo    byte = 'i'
	OpPlayers byte = 'c'
	OpRules   byte = 'r'
	OpRcon    byte = 'x'
)

const (
	// DefaultInterval is the polling cadence.
	DefaultInterval = 30 * time.Second
	// DefaultTimeout bounds one UDP round trip.
	DefaultTimeout = 5 * time.Second

	replyHeaderLen = 11
	recvBufferSize = 2048
)

// Info is a parsed 'i' reply.
type Info struct {
	Password   bool
	Players    int
	MaxPlayers int
	Hostname   string
	Gamemode   string
	Language   string
}

// PlayerEntry is one row of a parsed 'c' reply.
type PlayerEntry struct {
	ID    int
	Name  string
	Score int
	Ping  int
}

// Rule is one row of a parsed 'r' reply.
type Rule struct {
	Name  string
	Value string
}

// Result is the outcome of one server round trip.
type Result struct {
	Server store.ServerData
	Info   Info
	Ping   time.Duration
}

// Querier is the background polling worker.
type Querier struct {
	store    *store.Store
	text     *textenc.Converter
	log      *slog.Logger
	interval time.Duration
	timeout  time.Duration

	// schedule, when non-empty, is a cron expression gating cycles.
	schedule string
	cron     gronx.Gronx

	// OnUpdated fires after a server row was refreshed; OnOffline fires
	// when a server did not answer in time.
	OnUpdated func(Result)
	OnOffline func(store.ServerData)
}

// Config wires a Querier.
type Config struct {
	Store    *store.Store
	Text     *textenc.Converter
	Logger   *slog.Logger
	Interval time.Duration
	Timeout  time.Duration
	Schedule string // optional cron expression
}

func New(cfg Config) *Querier {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Text == nil {
		cfg.Text = textenc.New("")
	}
	return &Querier{
		store:    cfg.Store,
		text:     cfg.Text,
		log:      cfg.Logger,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		schedule: cfg.Schedule,
		cron:     *gronx.New(),
	}
}

// Run polls until ctx is cancelled.
func (q *Querier) Run(ctx context.Context) {
	q.log.Info("server querier started", "interval", q.interval)
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			q.log.Info("server querier stopped")
			return
		case <-ticker.C:
			if q.schedule != "" {
				if due, err := q.cron.IsDue(q.schedule, time.Now()); err != nil || !due {
					continue
				}
			}
			q.Cycle(ctx)
		}
	}
}

// Cycle queries every known server once.
func (q *Querier) Cycle(ctx context.Context) {
	servers, err := q.store.ListServers(ctx)
	if err != nil {
		q.log.Error("querier: load servers", "error", err)
		return
	}
	q.log.Debug("querying servers", "count", len(servers))

	for _, sv := range servers {
		if ctx.Err() != nil {
			return
		}
		if sv.Host == "" || sv.Port <= 0 {
			continue
		}
		q.QueryServer(ctx, sv)
	}
}

// QueryServer performs one info round trip and persists the outcome.
func (q *Querier) QueryServer(ctx context.Context, sv store.ServerData) {
	info, ping, err := q.QueryInfo(ctx, sv.Host, sv.Port)
	if err != nil {
		q.log.Debug("server offline", "server", fmt.Sprintf("%s:%d", sv.Host, sv.Port), "error", err)
		if q.OnOffline != nil {
			q.OnOffline(sv)
		}
		return
	}

	now := time.Now()
	err = q.store.UpdateServerQuery(ctx, sv.ID, info.Hostname, info.Gamemode, info.Language,
		info.Players, info.MaxPlayers, float64(ping.Milliseconds()), now)
	if err != nil {
		q.log.Error("querier: persist result", "server", sv.ID, "error", err)
		return
	}

	sv.Name = info.Hostname
	sv.Gamemode = info.Gamemode
	sv.Language = info.Language
	sv.Players = info.Players
	sv.MaxPlayers = info.MaxPlayers
	sv.LastUpdate = now
	if q.OnUpdated != nil {
		q.OnUpdated(Result{Server: sv, Info: info, Ping: ping})
	}
}

// QueryInfo sends an 'i' packet and parses the reply.
func (q *Querier) QueryInfo(ctx context.Context, host string, port int) (Info, time.Duration, error) {
	reply, ping, err := q.roundTrip(ctx, host, port, OpInfo, "", "")
	if err != nil {
		return Info{}, 0, err
	}
	info, err := q.ParseInfo(reply)
	return info, ping, err
}

// QueryPlayers sends a 'c' packet and parses the reply.
func (q *Querier) QueryPlayers(ctx context.Context, host string, port int) ([]PlayerEntry, error) {
	reply, _, err := q.roundTrip(ctx, host, port, OpPlayers, "", "")
	if err != nil {
		return nil, err
	}
	return ParsePlayers(reply)
}

// QueryRules sends an 'r' packet and parses the reply.
func (q *Querier) QueryRules(ctx context.Context, host string, port int) ([]Rule, error) {
	reply, _, err := q.roundTrip(ctx, host, port, OpRules, "", "")
	if err != nil {
		return nil, err
	}
	return ParseRules(reply)
}

// SendRcon sends an 'x' packet carrying an rcon command and collects the
// response lines.
func (q *Querier) SendRcon(ctx context.Context, host string, port int, password, command string) (string, error) {
	reply, _, err := q.roundTrip(ctx, host, port, OpRcon, password, command)
	if err != nil {
		return "", err
	}
	return ParseRcon(reply)
}

func (q *Querier) roundTrip(ctx context.Context, host string, port int, op byte, rconPassword, command string) ([]byte, time.Duration, error) {
	packet, err := BuildPacket(host, port, op, rconPassword, command)
	if err != nil {
		return nil, 0, err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, 0, fmt.Errorf("dial %s:%d: %w", host, port, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(q.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	conn.SetDeadline(deadline)

	start := time.Now()
	if _, err := conn.Write(packet); err != nil {
		return nil, 0, fmt.Errorf("send query: %w", err)
	}

	buf := make([]byte, recvBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, 0, fmt.Errorf("query timeout: %w", err)
	}
	return buf[:n], time.Since(start), nil
}

// BuildPacket assembles one query datagram: the "SAMP" magic, the resolved
// IPv4 of the destination, the little-endian port and the opcode. Rcon
// packets append the length-prefixed password and command.
func BuildPacket(host string, port int, op byte, rconPassword, command string) ([]byte, error) {
	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}
	var ip4 net.IP
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			ip4 = v4
			break
		}
	}
	if ip4 == nil {
		return nil, fmt.Errorf("resolve %s: no IPv4 address", host)
	}

	w := wire.NewWriter().
		Raw([]byte("SAMP")).
		Raw(ip4).
		U16(uint16(port)).
		U8(op)
	if op == OpRcon {
		w.String16(rconPassword).String16(command)
	}
	return w.Bytes(), nil
}

// ParseInfo decodes an 'i' reply, skipping the 11-byte echo header.
func (q *Querier) ParseInfo(reply []byte) (Info, error) {
	if len(reply) < replyHeaderLen {
		return Info{}, fmt.Errorf("info reply too short: %d bytes", len(reply))
	}
	r := wire.NewReader(reply)
	r.Skip(replyHeaderLen)

	info := Info{
		Password:   r.U8() != 0,
		Players:    int(r.U16()),
		MaxPlayers: int(r.U16()),
	}
	info.Hostname = q.text.EnsureUTF8(r.String32())
	info.Gamemode = q.text.EnsureUTF8(r.String32())
	info.Language = q.text.EnsureUTF8(r.String32())
	if !r.OK() {
		return Info{}, fmt.Errorf("malformed info reply")
	}
	return info, nil
}

// ParsePlayers decodes a 'c' reply.
func ParsePlayers(reply []byte) ([]PlayerEntry, error) {
	if len(reply) < replyHeaderLen {
		return nil, fmt.Errorf("players reply too short: %d bytes", len(reply))
	}
	r := wire.NewReader(reply)
	r.Skip(replyHeaderLen)

	count := int(r.U16())
	out := make([]PlayerEntry, 0, count)
	for i := 0; i < count; i++ {
		p := PlayerEntry{
			ID:   int(r.U8()),
			Name: r.String8(),
		}
		p.Score = int(r.I32())
		p.Ping = int(r.I32())
		if !r.OK() {
			return nil, fmt.Errorf("malformed players reply at entry %d", i)
		}
		out = append(out, p)
	}
	return out, nil
}

// ParseRules decodes an 'r' reply.
func ParseRules(reply []byte) ([]Rule, error) {
	if len(reply) < replyHeaderLen {
		return nil, fmt.Errorf("rules reply too short: %d bytes", len(reply))
	}
	r := wire.NewReader(reply)
	r.Skip(replyHeaderLen)

	count := int(r.U16())
	out := make([]Rule, 0, count)
	for i := 0; i < count; i++ {
		rule := Rule{
			Name:  r.String8(),
			Value: r.String8(),
		}
		if !r.OK() {
			return nil, fmt.Errorf("malformed rules reply at entry %d", i)
		}
		out = append(out, rule)
	}
	return out, nil
}

// ParseRcon decodes an 'x' reply: length-prefixed lines terminated by a
// zero-length record.
func ParseRcon(reply []byte) (string, error) {
	if len(reply) < replyHeaderLen {
		return "", fmt.Errorf("rcon reply too short: %d bytes", len(reply))
	}
	r := wire.NewReader(reply)
	r.Skip(replyHeaderLen)

	var out string
	for r.Remaining() >= 2 {
		line := r.String16()
		if !r.OK() || line == "" {
			break
		}
		out += line + "\n"
	}
	return out, nil
}
