package transport

import "sync"

// Loopback is an in-process transport used by tests and by the serve
// command when no game client implementation is linked in. Inbound events
// are injected with Deliver; outbound traffic is recorded.
type Loopback struct {
	mu        sync.Mutex
	connected bool
	host      string
	port      int
	inbound   []Event

	// SentRPCs and SentRaw record outbound traffic in order.
	SentRPCs []SentRPC
	SentRaw  []SentRaw

	// OnConnect, when set, runs synchronously inside Connect. Tests use it
	// to script the server side of the handshake.
	OnConnect func(l *Loopback)
}

// SentRPC is one recorded SendRPC call.
type SentRPC struct {
	ID      int
	Payload []byte
}

// SentRaw is one recorded Send call.
type SentRaw struct {
	Channel     byte
	Payload     []byte
	Reliability Reliability
	Priority    Priority
}

func NewLoopback() *Loopback { return &Loopback{} }

func (l *Loopback) Connect(host string, port int) error {
	l.mu.Lock()
	l.connected = true
	l.host = host
	l.port = port
	l.mu.Unlock()
	if l.OnConnect != nil {
		l.OnConnect(l)
	}
	return nil
}

func (l *Loopback) Disconnect() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = false
	l.inbound = nil
}

func (l *Loopback) SendRPC(id int, payload []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.SentRPCs = append(l.SentRPCs, SentRPC{ID: id, Payload: payload})
}

func (l *Loopback) Send(channel byte, payload []byte, rel Reliability, prio Priority) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.SentRaw = append(l.SentRaw, SentRaw{Channel: channel, Payload: payload, Reliability: rel, Priority: prio})
}

func (l *Loopback) Poll() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.inbound
	l.inbound = nil
	return out
}

// Deliver queues events for the next Poll.
func (l *Loopback) Deliver(events ...Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inbound = append(l.inbound, events...)
}

// Connected reports whether Connect has been called without a matching
// Disconnect.
func (l *Loopback) Connected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

// LastRPC returns the most recent recorded RPC, or ok=false.
func (l *Loopback) LastRPC() (SentRPC, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.SentRPCs) == 0 {
		return SentRPC{}, false
	}
	return l.SentRPCs[len(l.SentRPCs)-1], true
}

// RPCsByID returns every recorded RPC with the given opcode.
func (l *Loopback) RPCsByID(id int) []SentRPC {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []SentRPC
	for _, r := range l.SentRPCs {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}
