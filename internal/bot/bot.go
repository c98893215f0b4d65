// Package bot implements the per-bot protocol state machine: connection
// lifecycle, movement kinematics, pathing, dialog and chat bookkeeping, and
// the periodic synthetic on-foot sync.
package bot

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/textenc"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

// Status is the protocol lifecycle state of a bot.
type Status int

const (
	Disconnected Status = iota
	Connecting
	WaitForJoin
	Connected
	Spawned
)

func (s Status) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case Connecting:
		return "CONNECTING"
	case WaitForJoin:
		return "WAIT_FOR_JOIN"
	case Connected:
		return "CONNECTED"
	case Spawned:
		return "SPAWNED"
	}
	return "UNKNOWN"
}

// Behaviour flag bits.
const (
	FlagMoving = 1 << iota
	FlagDead
	FlagDriving
	FlagAiming
	FlagReloading
	FlagShooting
	FlagJacking
	FlagExiting
	FlagPlaying
	FlagMeleeAttack
	FlagUnmoving
)

// Movepath execution states.
type MovepathStatus int

const (
	MovepathInactive MovepathStatus = iota
	MovepathActive
	MovepathPaused
	MovepathCompleted
)

const (
	// connectionDelay throttles reconnect attempts after a reset.
	connectionDelay = 4000 * time.Millisecond
	// respawnDelay is how long a dead bot waits before respawning.
	respawnDelay = 4000 * time.Millisecond
	// syncInterval paces the synthetic on-foot sync.
	syncInterval = 40 * time.Millisecond
	// maxChatbox bounds the simulated chatbox.
	maxChatbox = 64

	invalidPlayerID = 0xFFFF
)

// Dialog is the currently displayed server dialog, if any.
type Dialog struct {
	ID          int
	Style       int
	Title       string
	Body        string
	LeftButton  string
	RightButton string
}

// Config wires a new Bot.
type Config struct {
	Name         string
	UUID         string // generated when empty
	Host         string
	Port         int
	Password     string
	SystemPrompt string
	Invulnerable bool

	Transport transport.Transport
	Raycaster transport.Raycaster
	Shared    *world.SharedPool
	Text      *textenc.Converter
	Logger    *slog.Logger

	// Now overrides the clock; tests use it to drive time.
	Now func() time.Time
}

// Bot is one synthetic game client. All mutable state is guarded by mu:
// the tick loop and tool handlers run on different goroutines.
type Bot struct {
	mu sync.Mutex

	name         string
	uuid         string
	host         string
	port         int
	password     string
	systemPrompt string
	invulnerable bool

	tr     transport.Transport
	ray    transport.Raycaster
	shared *world.SharedPool
	pool   *world.StreamablePool
	text   *textenc.Converter
	log    *slog.Logger
	now    func() time.Time

	status     Status
	playerID   uint16
	gameInited bool

	position geom.Vec3
	velocity geom.Vec3
	quat     geom.Quat
	angle    float32
	health        float32
	armor         float32
	skin          int
	weapon        int
	specialAction int
	flags         int

	// Input state mirrored into the on-foot sync.
	keysUD uint16
	keysLR uint16
	keys   uint32

	// Movement bookkeeping.
	destination   geom.Vec3
	moveType      int
	moveSpeed     float32
	moveStart     time.Time
	moveTick      time.Time
	moveDuration  time.Duration
	moveStopDelay time.Duration

	// Movepath.
	movepath       []geom.Vec3
	waypointIndex  int
	movepathStatus MovepathStatus
	movepathLoop   bool

	reconnectAt time.Time
	deathAt     time.Time
	lastSyncAt  time.Time

	chatbox         []string
	unreadMessages  []string
	importantEvents []string

	dialog       Dialog
	dialogActive bool
}

// New creates a disconnected bot.
func New(cfg Config) *Bot {
	id := cfg.UUID
	if id == "" {
		id = uuid.NewString()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	text := cfg.Text
	if text == nil {
		text = textenc.New("")
	}
	ray := cfg.Raycaster
	if ray == nil {
		ray = transport.FlatWorld{}
	}

	b := &Bot{
		name:         cfg.Name,
		uuid:         id,
		host:         cfg.Host,
		port:         cfg.Port,
		password:     cfg.Password,
		systemPrompt: cfg.SystemPrompt,
		invulnerable: cfg.Invulnerable,
		tr:           cfg.Transport,
		ray:          ray,
		shared:       cfg.Shared,
		pool:         world.NewStreamablePool(),
		text:         text,
		log:          log,
		now:          now,
		status:       Disconnected,
		playerID:     invalidPlayerID,
		health:       100,
	}
	b.log.Info("bot created", "name", b.name, "uuid", b.uuid)
	return b
}

// Identity and configuration accessors.

func (b *Bot) Name() string { b.mu.Lock(); defer b.mu.Unlock(); return b.name }

func (b *Bot) UUID() string { return b.uuid }

func (b *Bot) Addr() world.Addr {
	b.mu.Lock()
	defer b.mu.Unlock()
	return world.Addr{Host: b.host, Port: b.port}
}

func (b *Bot) Host() string { b.mu.Lock(); defer b.mu.Unlock(); return b.host }

func (b *Bot) Port() int { b.mu.Lock(); defer b.mu.Unlock(); return b.port }

func (b *Bot) Password() string { b.mu.Lock(); defer b.mu.Unlock(); return b.password }

func (b *Bot) SetPassword(p string) { b.mu.Lock(); defer b.mu.Unlock(); b.password = p }

func (b *Bot) SystemPrompt() string { b.mu.Lock(); defer b.mu.Unlock(); return b.systemPrompt }

func (b *Bot) SetSystemPrompt(p string) { b.mu.Lock(); defer b.mu.Unlock(); b.systemPrompt = p }

func (b *Bot) Status() Status { b.mu.Lock(); defer b.mu.Unlock(); return b.status }

func (b *Bot) PlayerID() uint16 { b.mu.Lock(); defer b.mu.Unlock(); return b.playerID }

func (b *Bot) GameInited() bool { b.mu.Lock(); defer b.mu.Unlock(); return b.gameInited }

func (b *Bot) Position() geom.Vec3 { b.mu.Lock(); defer b.mu.Unlock(); return b.position }

func (b *Bot) Velocity() geom.Vec3 { b.mu.Lock(); defer b.mu.Unlock(); return b.velocity }

func (b *Bot) Health() float32 { b.mu.Lock(); defer b.mu.Unlock(); return b.health }

func (b *Bot) Armor() float32 { b.mu.Lock(); defer b.mu.Unlock(); return b.armor }

func (b *Bot) Angle() float32 { b.mu.Lock(); defer b.mu.Unlock(); return b.angle }

// Pool exposes the per-bot streamable resources.
func (b *Bot) Pool() *world.StreamablePool { return b.pool }

// Flag reports a behaviour bit.
func (b *Bot) Flag(bit int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flags&bit != 0
}

func (b *Bot) setFlag(bit int, on bool) {
	if on {
		b.flags |= bit
	} else {
		b.flags &^= bit
	}
}

// IsConnected reports whether the bot holds a live server slot.
func (b *Bot) IsConnected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status == Connected || b.status == Spawned
}

// CheckConnectionDelay reports whether the reconnect throttle has elapsed.
func (b *Bot) CheckConnectionDelay() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.now().Sub(b.reconnectAt) > connectionDelay
}

// Connect starts a connection attempt. No-op unless Disconnected.
func (b *Bot) Connect() error {
	b.mu.Lock()
	if b.status != Disconnected {
		b.mu.Unlock()
		return nil
	}
	b.status = Connecting
	b.reconnectAt = b.now()
	host, port := b.host, b.port
	b.mu.Unlock()

	b.log.Info("bot connecting", "name", b.name, "server", fmt.Sprintf("%s:%d", host, port))
	if err := b.tr.Connect(host, port); err != nil {
		b.mu.Lock()
		b.resetLocked()
		b.mu.Unlock()
		return fmt.Errorf("connect %s:%d: %w", host, port, err)
	}
	return nil
}

// Disconnect tears down the connection and resets the state machine.
func (b *Bot) Disconnect() {
	b.mu.Lock()
	if b.status == Disconnected {
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	b.tr.Disconnect()

	b.mu.Lock()
	b.resetLocked()
	b.mu.Unlock()
	b.log.Info("bot disconnected", "name", b.name)
}

// resetLocked returns the machine to Disconnected and clears per-connection
// state. Callers hold mu.
func (b *Bot) resetLocked() {
	b.status = Disconnected
	b.playerID = invalidPlayerID
	b.gameInited = false
	b.reconnectAt = b.now()
	b.lastSyncAt = time.Time{}
	b.pool.Clear()
}

// Process drains transport events and advances the simulation one tick.
func (b *Bot) Process() {
	for _, ev := range b.tr.Poll() {
		b.handleEvent(ev)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != Spawned {
		return
	}
	now := b.now()

	if b.flags&FlagDead != 0 {
		if now.Sub(b.deathAt) > respawnDelay {
			b.health = 100
			b.sendSpawnLocked()
		}
		return
	}

	if b.flags&FlagMoving != 0 {
		b.advanceMovementLocked(now)
	}

	if now.Sub(b.lastSyncAt) > syncInterval {
		b.sendOnFootLocked()
		b.lastSyncAt = now
	}
}

// advanceMovementLocked integrates position and handles arrival.
func (b *Bot) advanceMovementLocked(now time.Time) {
	elapsed := now.Sub(b.moveStart)
	if elapsed < b.moveDuration {
		tickDiff := now.Sub(b.moveTick)
		if tickDiff > 0 {
			b.position = b.position.Add(b.velocity.Scale(float32(tickDiff.Milliseconds())))
			b.moveTick = now
		}
		return
	}
	if elapsed <= b.moveDuration+b.moveStopDelay {
		return
	}

	if b.movepathStatus == MovepathActive && len(b.movepath) > 0 {
		b.waypointIndex++
		if b.waypointIndex >= len(b.movepath) {
			if b.movepathLoop {
				b.waypointIndex = 0
			} else {
				b.movepathStatus = MovepathCompleted
				b.stopLocked()
				return
			}
		}
		next := b.movepath[b.waypointIndex]
		moveType := b.moveType
		if moveType == 0 {
			moveType = protocol.MoveTypeRun
		}
		speed := b.moveSpeed
		if speed <= 0 {
			speed = protocol.MoveSpeedRun
		}
		b.goLocked(next, moveType, 0, true, speed, 0, 0)
		return
	}

	b.stopLocked()
}

// Go starts a move toward point. Radius jitters the destination; distOffset
// stretches or shrinks the travel distance; stopDelay keeps the bot in the
// moving state after arrival.
func (b *Bot) Go(point geom.Vec3, moveType int, radius float32, setAngle bool, speed, distOffset float32, stopDelay time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.goLocked(point, moveType, radius, setAngle, speed, distOffset, stopDelay)
}

func (b *Bot) goLocked(point geom.Vec3, moveType int, radius float32, setAngle bool, speed, distOffset float32, stopDelay time.Duration) {
	udKey := b.keysUD
	keys := b.keys &^ (protocol.KeyWalk | protocol.KeySprint)

	auto := func(s float32) bool { return abs32(s-protocol.MoveSpeedAuto) < 0.001 }

	switch moveType {
	case protocol.MoveTypeAuto, protocol.MoveTypeWalk, protocol.MoveTypeRun, protocol.MoveTypeSprint:
		udKey |= protocol.KeyAnalogUp
		if moveType == protocol.MoveTypeAuto && auto(speed) {
			moveType = protocol.MoveTypeRun
		}
		if auto(speed) {
			switch moveType {
			case protocol.MoveTypeWalk:
				speed = protocol.MoveSpeedWalk
			case protocol.MoveTypeRun:
				speed = protocol.MoveSpeedRun
			case protocol.MoveTypeSprint:
				speed = protocol.MoveSpeedSprint
			}
		} else if moveType == protocol.MoveTypeAuto {
			moveType = nearestMoveType(speed)
		}
		switch moveType {
		case protocol.MoveTypeWalk:
			keys |= protocol.KeyWalk
		case protocol.MoveTypeSprint:
			keys |= protocol.KeySprint
		}
	case protocol.MoveTypeDrive:
		keys |= protocol.KeySprint
		if auto(speed) {
			speed = 1.0
		}
	}

	b.keysUD = udKey
	b.keys = keys
	b.updateMovingDataLocked(point, radius, setAngle, speed, distOffset)
	b.setFlag(FlagMoving, true)
	b.moveType = moveType
	b.moveStopDelay = stopDelay
}

// nearestMoveType snaps an explicit speed to the closest named gait.
func nearestMoveType(speed float32) int {
	type cand struct {
		t int
		s float32
	}
	cands := []cand{
		{protocol.MoveTypeWalk, protocol.MoveSpeedWalk},
		{protocol.MoveTypeRun, protocol.MoveSpeedRun},
		{protocol.MoveTypeSprint, protocol.MoveSpeedSprint},
	}
	best := cands[0]
	bestDiff := abs32(speed - best.s)
	for _, c := range cands[1:] {
		if d := abs32(speed - c.s); d < bestDiff {
			best, bestDiff = c, d
		}
	}
	return best.t
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// updateMovingDataLocked computes destination, facing, velocity and travel
// duration for the current move.
func (b *Bot) updateMovingDataLocked(dest geom.Vec3, radius float32, setAngle bool, speed, distOffset float32) {
	if radius > 0 {
		dest.X += (rand.Float32()*2 - 1) * radius
		dest.Y += (rand.Float32()*2 - 1) * radius
	}

	pos := b.position
	dist := pos.Dist(dest)

	var front geom.Vec3
	if dist > 0 {
		front = dest.Sub(pos).Normalize()
	}
	angle := geom.FacingAngle(front)

	if distOffset != 0 {
		dist += distOffset
		rad := float64(angle) * math.Pi / 180
		dest.X = pos.X + float32(math.Cos(rad))*dist
		dest.Y = pos.Y + float32(math.Sin(rad))*dist
		if dist > 0 {
			front = dest.Sub(pos).Normalize()
		}
	}

	if setAngle {
		b.angle = angle
		b.quat = geom.QuatFromFacing(angle)
	}

	front = front.Scale(speed / 100) // step per millisecond
	b.velocity = front

	if l := front.Len(); l != 0 {
		b.moveDuration = time.Duration(dist/l) * time.Millisecond
	} else {
		b.moveDuration = 0
	}
	now := b.now()
	b.moveStart = now
	b.moveTick = now
	b.destination = dest
	b.moveSpeed = speed
}

// Stop halts movement and releases the movement keys.
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *Bot) stopLocked() {
	if b.flags&FlagMoving == 0 {
		return
	}
	b.setFlag(FlagMoving, false)
	b.velocity = geom.Vec3{}

	if b.flags&FlagDriving != 0 {
		b.keys &^= protocol.KeySprint
	} else {
		b.keysUD &^= protocol.KeyAnalogUp
		b.keys &^= protocol.KeyWalk | protocol.KeySprint
	}
	b.moveDuration = 0
	b.moveStart = time.Time{}
}

// Kill puts the bot into the dead state and announces the death.
func (b *Bot) Kill(reason int, killerID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.killLocked(reason, killerID)
}

func (b *Bot) killLocked(reason int, killerID int) {
	if b.flags&FlagMoving != 0 {
		b.stopLocked()
	}
	b.setFlag(FlagDead, true)
	b.health = 0
	b.sendOnFootLocked()

	payload := wire.NewWriter().
		U8(uint8(reason)).
		U16(uint16(killerID)).
		Bytes()
	b.tr.SendRPC(protocol.RPCDeath, payload)
	b.deathAt = b.now()
}

// onSpawnedLocked runs after every successful spawn, respawns included.
func (b *Bot) onSpawnedLocked() {
	b.setFlag(FlagDead, false)
	b.goLocked(geom.Vec3{X: 300, Y: 200, Z: 13.5622}, protocol.MoveTypeWalk, 0, true, protocol.MoveSpeedRun, 0, 0)
}

// takeDamageLocked applies simulated bullet damage; armor absorbs first.
func (b *Bot) takeDamageLocked(weapon int, damage float32, shooter int) {
	if b.invulnerable {
		return
	}
	if b.armor > 0 {
		b.armor -= damage
		if b.armor < 0 {
			b.health += b.armor // spill, armor is negative
			b.armor = 0
		}
	} else {
		b.health -= damage
	}
	if b.health <= 0 {
		b.killLocked(weapon, shooter)
	}
}

// SendChat sends chat text, or a server command when it starts with '/'.
func (b *Bot) SendChat(text string) {
	if text == "" {
		return
	}
	wireText := b.text.Encode(text)
	if text[0] == '/' {
		payload := wire.NewWriter().String32(wireText).Bytes()
		b.tr.SendRPC(protocol.RPCServerCommand, payload)
		return
	}
	payload := wire.NewWriter().String8(wireText).Bytes()
	b.tr.SendRPC(protocol.RPCChat, payload)
}

// DialogActive reports whether a server dialog is showing.
func (b *Bot) DialogActive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialogActive
}

// CurrentDialog returns the active dialog.
func (b *Bot) CurrentDialog() (Dialog, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialog, b.dialogActive
}

// SendDialogResponse answers the active dialog and clears it.
func (b *Bot) SendDialogResponse(leftButton bool, input string, listItem int) {
	b.mu.Lock()
	id := b.dialog.ID
	b.dialogActive = false
	b.mu.Unlock()

	button := uint8(0)
	if leftButton {
		button = 1
	}
	payload := wire.NewWriter().
		I16(int16(id)).
		U8(button).
		I16(int16(listItem)).
		String8(b.text.Encode(input)).
		Bytes()
	b.tr.SendRPC(protocol.RPCDialogResponse, payload)
}

// SendPickup announces picking up an item.
func (b *Bot) SendPickup(pickupID int) {
	payload := wire.NewWriter().I32(int32(pickupID)).Bytes()
	b.tr.SendRPC(protocol.RPCPickedUpPickup, payload)
}

// sendSpawnLocked transitions to Spawned and announces the spawn.
func (b *Bot) sendSpawnLocked() {
	b.tr.SendRPC(protocol.RPCSpawn, nil)
	first := b.status != Spawned
	b.status = Spawned
	if first {
		b.log.Info("bot spawned", "name", b.name)
	}
	b.onSpawnedLocked()
}

// sendOnFootLocked serialises the current on-foot snapshot onto the player
// sync channel.
func (b *Bot) sendOnFootLocked() {
	w := wire.NewWriter().
		U16(b.keysLR).
		U16(b.keysUD).
		U32(b.keys).
		F32(b.position.X).F32(b.position.Y).F32(b.position.Z).
		F32(b.quat.W).F32(b.quat.X).F32(b.quat.Y).F32(b.quat.Z).
		U8(uint8(b.health)).
		U8(uint8(b.armor)).
		F32(b.velocity.X).F32(b.velocity.Y).F32(b.velocity.Z).
		U8(uint8(b.weapon)).
		U8(uint8(b.specialAction))
	b.tr.Send(protocol.PacketPlayerSync, w.Bytes(), transport.UnreliableSequenced, transport.PriorityHigh)
}

// addImportantEventLocked records a world event for the next LLM snapshot.
func (b *Bot) addImportantEventLocked(ev string) {
	b.importantEvents = append(b.importantEvents, ev)
}

// addChatLocked records an inbound chat line.
func (b *Bot) addChatLocked(msg string) {
	b.chatbox = append(b.chatbox, msg)
	if len(b.chatbox) > maxChatbox {
		b.chatbox = b.chatbox[1:]
	}
	b.unreadMessages = append(b.unreadMessages, msg)
}

// UnreadMessages returns and clears the unread chat buffer.
func (b *Bot) UnreadMessages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.unreadMessages
	b.unreadMessages = nil
	return out
}

// Chatbox returns a copy of the bounded chatbox history.
func (b *Bot) Chatbox() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.chatbox))
	copy(out, b.chatbox)
	return out
}

// Movepath management.

// CreateMovepath loads waypoints and leaves the path inactive.
func (b *Bot) CreateMovepath(points []geom.Vec3, loop bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.movepath = append([]geom.Vec3(nil), points...)
	b.waypointIndex = 0
	b.movepathLoop = loop
	b.movepathStatus = MovepathInactive
}

// ClearMovepath drops the path.
func (b *Bot) ClearMovepath() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.movepath = nil
	b.waypointIndex = 0
	b.movepathStatus = MovepathInactive
	b.movepathLoop = false
}

// StartMovepath begins walking the loaded path from its first waypoint.
func (b *Bot) StartMovepath() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.movepath) == 0 {
		return
	}
	b.movepathStatus = MovepathActive
	b.waypointIndex = 0
	moveType := b.moveType
	if moveType == 0 {
		moveType = protocol.MoveTypeRun
	}
	speed := b.moveSpeed
	if speed <= 0 {
		speed = protocol.MoveSpeedRun
	}
	b.goLocked(b.movepath[0], moveType, 0, true, speed, 0, 0)
}

// MovepathStatus returns the path execution state.
func (b *Bot) MovepathStatus() MovepathStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.movepathStatus
}

// WaypointCount returns the number of loaded waypoints.
func (b *Bot) WaypointCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.movepath)
}

// SetPosition force-places the bot (used by tests and the control plane).
func (b *Bot) SetPosition(p geom.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = p
}
