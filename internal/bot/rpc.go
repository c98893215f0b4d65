package bot

import (
	"fmt"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

func readVec3(r *wire.Reader) geom.Vec3 {
	return geom.Vec3{X: r.F32(), Y: r.F32(), Z: r.F32()}
}

// handleRPC decodes a reliable typed message and applies it. Forced state
// mutations append an important event so the LLM learns about them on the
// next snapshot.
func (b *Bot) handleRPC(id int, r *wire.Reader) {
	if r == nil {
		r = wire.NewReader(nil)
	}
	addr := b.Addr()

	switch id {
	case protocol.RPCInitGame:
		b.mu.Lock()
		b.gameInited = true
		b.mu.Unlock()
		b.log.Info("bot joined", "name", b.name, "player_id", b.PlayerID())
		b.tr.SendRPC(protocol.RPCRequestClass, wire.NewWriter().I32(0).Bytes())

	case protocol.RPCSetPlayerPos:
		pos := readVec3(r)
		if !r.OK() {
			return
		}
		b.mu.Lock()
		if b.flags&FlagUnmoving == 0 {
			b.position = pos
			b.addImportantEventLocked(fmt.Sprintf("Your position was set to %g,%g,%g", pos.X, pos.Y, pos.Z))
		}
		b.mu.Unlock()

	case protocol.RPCSetPlayerHealth:
		health := r.F32()
		if !r.OK() {
			return
		}
		b.mu.Lock()
		if !b.invulnerable {
			b.health = health
			b.addImportantEventLocked(fmt.Sprintf("Your health was set to %g", health))
		}
		b.mu.Unlock()

	case protocol.RPCSetPlayerArmour:
		armor := r.F32()
		if !r.OK() {
			return
		}
		b.mu.Lock()
		if !b.invulnerable {
			b.armor = armor
			b.addImportantEventLocked(fmt.Sprintf("Your armor was set to %g", armor))
		}
		b.mu.Unlock()

	case protocol.RPCSetSpawnInfo:
		r.U8()  // team
		r.U32() // skin
		r.U8()  // unused
		pos := readVec3(r)
		if !r.OK() {
			return
		}
		b.mu.Lock()
		b.status = Connected
		b.position = pos
		b.mu.Unlock()
		b.tr.SendRPC(protocol.RPCRequestSpawn, nil)

	case protocol.RPCRequestClass:
		r.U8()  // request response
		r.U8()  // team
		r.U32() // skin
		r.U8()  // unused
		pos := readVec3(r)
		if !r.OK() {
			return
		}
		b.mu.Lock()
		b.status = Connected
		b.position = pos
		b.mu.Unlock()
		b.tr.SendRPC(protocol.RPCRequestSpawn, nil)

	case protocol.RPCRequestSpawn:
		accepted := r.U8()
		if !r.OK() || accepted == 0 {
			return
		}
		b.mu.Lock()
		b.sendSpawnLocked()
		b.mu.Unlock()

	case protocol.RPCClientMessage:
		r.U32() // color
		msg := r.String32()
		if !r.OK() {
			return
		}
		b.mu.Lock()
		b.addChatLocked(b.text.EnsureUTF8(msg))
		b.mu.Unlock()

	case protocol.RPCChat:
		playerID := r.U16()
		msg := r.String8()
		if !r.OK() || int(playerID) >= protocol.MaxPlayers {
			return
		}
		b.mu.Lock()
		b.addChatLocked(b.text.EnsureUTF8(msg))
		b.mu.Unlock()

	case protocol.RPCShowDialog:
		d := Dialog{}
		d.ID = int(r.I16())
		d.Style = int(r.U8())
		d.Title = b.text.EnsureUTF8(r.String8())
		d.LeftButton = b.text.EnsureUTF8(r.String8())
		d.RightButton = b.text.EnsureUTF8(r.String8())
		d.Body = b.text.EnsureUTF8(r.String16()) // body arrives length-prefixed, decompressed by the transport
		if !r.OK() {
			return
		}
		b.mu.Lock()
		b.dialog = d
		b.dialogActive = true
		b.mu.Unlock()

	case protocol.RPCCreateExplosion:
		pos := readVec3(r)
		if !r.OK() {
			return
		}
		b.mu.Lock()
		if pos.Dist(b.position) < 100 {
			b.addImportantEventLocked(fmt.Sprintf("An explosion appeared at %g %g %g", pos.X, pos.Y, pos.Z))
		}
		b.mu.Unlock()

	case protocol.RPCServerJoin:
		playerID := int(r.U16())
		r.I32() // color
		isNPC := r.U8() != 0
		name := r.String8()
		if !r.OK() || len(name) > 24 {
			return
		}
		b.shared.AddPlayer(addr, world.Player{
			ID:        playerID,
			Name:      b.text.EnsureUTF8(name),
			Health:    100,
			Position:  geom.Vec3{X: 1e9, Y: 1e9, Z: 1e9}, // unknown until first stream-in
			VehicleID: -1,
			IsNPC:     isNPC,
		})

	case protocol.RPCServerQuit:
		playerID := int(r.U16())
		if !r.OK() {
			return
		}
		b.shared.RemovePlayerByID(addr, playerID)

	case protocol.RPCWorldPlayerAdd:
		playerID := int(r.U16())
		r.U8()  // team
		r.U32() // skin
		pos := readVec3(r)
		if !r.OK() {
			return
		}
		b.shared.UpdatePlayerPos(addr, playerID, pos)
		b.shared.IncrementPlayerStream(addr, playerID)
		b.mu.Lock()
		b.addImportantEventLocked(fmt.Sprintf("Player %s (ID:%d) has entered your streaming range at %g %g %g",
			b.shared.PlayerName(addr, playerID), playerID, pos.X, pos.Y, pos.Z))
		b.mu.Unlock()

	case protocol.RPCWorldPlayerRemove:
		playerID := int(r.U16())
		if !r.OK() {
			return
		}
		name := b.shared.PlayerName(addr, playerID)
		b.shared.DecrementPlayerStream(addr, playerID)
		b.mu.Lock()
		b.addImportantEventLocked(fmt.Sprintf("Player %s (ID:%d) has left your streaming range", name, playerID))
		b.mu.Unlock()

	case protocol.RPCWorldVehicleAdd:
		vehicleID := int(r.U16())
		model := int(r.I32())
		pos := readVec3(r)
		r.F32() // rotation
		r.U8()  // color 1
		r.U8()  // color 2
		health := r.F32()
		if !r.OK() {
			return
		}
		b.shared.UpdateVehicleModel(addr, vehicleID, model, pos)
		b.shared.AddVehicle(addr, world.Vehicle{
			ID:       vehicleID,
			Model:    model,
			Health:   health,
			Position: pos,
		})
		b.shared.IncrementVehicleStream(addr, vehicleID)

	case protocol.RPCWorldVehicleRemove:
		vehicleID := int(r.U16())
		if !r.OK() {
			return
		}
		b.shared.DecrementVehicleStream(addr, vehicleID)

	case protocol.RPCCreatePickup:
		pickupID := int(r.I32())
		model := int(r.U32())
		r.U32() // pickup type
		pos := readVec3(r)
		if !r.OK() {
			return
		}
		b.pool.AddPickup(world.Pickup{ID: pickupID, Model: model, Position: pos})

	case protocol.RPCDestroyPickup:
		pickupID := int(r.I32())
		if !r.OK() {
			return
		}
		b.pool.RemovePickup(pickupID)

	case protocol.RPCCreateObject:
		objectID := int(r.U16())
		model := int(r.U32())
		pos := readVec3(r)
		rot := readVec3(r)
		drawDist := r.F32()
		if !r.OK() {
			return
		}
		b.pool.AddObject(world.Object{
			ID:           objectID,
			Model:        model,
			Position:     pos,
			Rotation:     rot,
			DrawDistance: drawDist,
		})

	case protocol.RPCDestroyObject:
		objectID := int(r.U16())
		if !r.OK() {
			return
		}
		b.pool.RemoveObject(objectID)

	case protocol.RPCCreate3DTextLabel:
		labelID := int(r.U16())
		r.U32() // color
		pos := readVec3(r)
		drawDist := r.F32()
		testLOS := r.U8() != 0
		attachedPlayer := int(r.U16())
		attachedVehicle := int(r.U16())
		text := r.String16()
		if !r.OK() {
			return
		}
		if attachedPlayer == 0xFFFF {
			attachedPlayer = -1
		}
		if attachedVehicle == 0xFFFF {
			attachedVehicle = -1
		}
		b.pool.AddLabel(world.Label{
			ID:              labelID,
			Position:        pos,
			AttachedPlayer:  attachedPlayer,
			AttachedVehicle: attachedVehicle,
			Text:            b.text.EnsureUTF8(text),
			DrawDistance:    drawDist,
			TestLOS:         testLOS,
		})

	case protocol.RPCUpdate3DTextLabel:
		labelID := int(r.U16())
		if !r.OK() {
			return
		}
		b.pool.RemoveLabel(labelID)
	}
}
