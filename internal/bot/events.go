package bot

import (
	"github.com/nextlevelbuilder/botmaster/internal/gamedata"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

// handleEvent routes one inbound transport event through the state machine.
func (b *Bot) handleEvent(ev transport.Event) {
	if ev.Kind.IsError() {
		b.log.Warn("bot connection reset", "name", b.name, "kind", ev.Kind, "reason", ev.Reason)
		b.mu.Lock()
		b.resetLocked()
		b.mu.Unlock()
		return
	}

	switch ev.Kind {
	case transport.EventAuthChallenge:
		b.sendAuthResponse(ev.Salt)
		b.mu.Lock()
		if b.status == Connecting {
			b.status = WaitForJoin
		}
		b.mu.Unlock()

	case transport.EventAccepted:
		b.mu.Lock()
		b.playerID = ev.PlayerID
		b.status = Connected
		b.mu.Unlock()
		b.sendClientJoin(ev.Challenge)
		b.log.Info("bot accepted", "name", b.name, "player_id", ev.PlayerID)

	case transport.EventRPC:
		b.handleRPC(ev.RPCID, ev.Payload)

	case transport.EventSync:
		b.handleSync(ev)
	}
}

// sendAuthResponse answers the server's auth challenge from the compiled-in
// key table.
func (b *Bot) sendAuthResponse(salt string) {
	response, ok := authKeyResponse(salt)
	if !ok {
		b.log.Error("unknown auth challenge", "name", b.name, "challenge", salt)
		return
	}
	payload := wire.NewWriter().
		U8(protocol.PacketAuthKey).
		String8(response).
		Bytes()
	b.tr.Send(protocol.PacketAuthKey, payload, transport.Reliable, transport.PrioritySystem)
}

// sendClientJoin emits the join RPC with the challenge response.
func (b *Bot) sendClientJoin(challenge uint32) {
	b.mu.Lock()
	name := b.name
	b.mu.Unlock()

	auth := genGPCI()
	payload := wire.NewWriter().
		I32(protocol.NetVersion).
		U8(1). // mod
		String8(name).
		U32(challenge ^ protocol.NetVersion).
		String8(auth).
		String8(protocol.ClientVersion).
		Bytes()
	b.tr.SendRPC(protocol.RPCClientJoin, payload)
}

// handleSync applies inbound kinematic packets.
func (b *Bot) handleSync(ev transport.Event) {
	switch ev.Sync {
	case transport.SyncPlayer:
		b.handlePlayerSync(int(ev.SyncFrom), ev.SyncData)
	case transport.SyncVehicle:
		b.handleVehicleSync(ev.SyncData)
	case transport.SyncBullet:
		b.handleBulletSync(int(ev.SyncFrom), ev.SyncData)
	}
}

// handlePlayerSync mirrors a remote player's on-foot state into the shared
// pool. The payload layout matches the one the bot itself emits.
func (b *Bot) handlePlayerSync(playerID int, r *wire.Reader) {
	if r == nil {
		return
	}
	r.U16() // left/right keys
	r.U16() // up/down keys
	r.U32() // keys
	pos := readVec3(r)
	r.F32() // quat w
	r.F32() // quat x
	r.F32() // quat y
	r.F32() // quat z
	health := float32(r.U8())
	armor := float32(r.U8())
	vel := readVec3(r)
	weapon := int(r.U8())
	special := int(r.U8())
	if !r.OK() {
		return
	}
	b.shared.UpdatePlayer(b.Addr(), playerID, world.PlayerState{
		Position:      pos,
		Velocity:      vel,
		Health:        health,
		Armor:         armor,
		Weapon:        weapon,
		SpecialAction: special,
	})
}

// handleVehicleSync mirrors an in-car sync into the shared pool.
func (b *Bot) handleVehicleSync(r *wire.Reader) {
	if r == nil {
		return
	}
	vehicleID := int(r.U16())
	r.U16() // left/right keys
	r.U16() // up/down keys
	r.U16() // keys
	r.F32() // quat w
	r.F32() // quat x
	r.F32() // quat y
	r.F32() // quat z
	pos := readVec3(r)
	vel := readVec3(r)
	health := r.F32()
	if !r.OK() {
		return
	}
	b.shared.UpdateVehicle(b.Addr(), vehicleID, world.VehicleState{
		Position: pos,
		Velocity: vel,
		Health:   health,
	})
}

// handleBulletSync simulates incoming fire: armor soaks damage first, the
// spill lands on health, and a lethal hit kills with the weapon as reason.
func (b *Bot) handleBulletSync(shooter int, r *wire.Reader) {
	if r == nil {
		return
	}
	r.U8() // hit type
	hitID := int(r.U16())
	weapon := int(r.U8())
	if !r.OK() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if hitID != int(b.playerID) {
		return
	}
	b.takeDamageLocked(weapon, gamedata.WeaponDamage(weapon), shooter)
}
