package bot

import (
	"github.com/nextlevelbuilder/botmaster/internal/gamedata"
	"github.com/nextlevelbuilder/botmaster/internal/geom"
)

// snapshotRange is the radius of the "what's around me" counts.
const snapshotRange = 300.0

// StateSnapshot builds the JSON-ready state handed to the LLM each round.
// Reading the snapshot consumes the unread-chat and important-event
// buffers.
func (b *Bot) StateSnapshot() map[string]any {
	addr := b.Addr()

	b.mu.Lock()
	pos := b.position
	status := b.status
	health := b.health
	armor := b.armor
	moving := b.flags&FlagMoving != 0
	unread := b.unreadMessages
	events := b.importantEvents
	b.unreadMessages = nil
	b.importantEvents = nil
	dialog := b.dialog
	dialogActive := b.dialogActive
	b.mu.Unlock()

	state := map[string]any{
		"position": map[string]any{
			"x":    geom.Round2(pos.X),
			"y":    geom.Round2(pos.Y),
			"z":    geom.Round2(pos.Z),
			"zone": gamedata.ZoneName(pos.X, pos.Y),
		},
		"status": status.String(),
		"health": geom.Round2(health),
		"armor":  geom.Round2(armor),
	}

	players := b.shared.PlayersInRange(addr, pos, snapshotRange, true)
	streamed := make([]map[string]any, 0, len(players))
	for _, p := range players {
		streamed = append(streamed, map[string]any{
			"name":     p.Name,
			"health":   geom.Round2(p.Health),
			"weapon":   gamedata.WeaponName(p.Weapon),
			"distance": geom.Round2(p.Position.Dist(pos)),
			"x":        geom.Round2(p.Position.X),
			"y":        geom.Round2(p.Position.Y),
			"z":        geom.Round2(p.Position.Z),
		})
	}
	state["streamed_players"] = streamed
	state["streamed_vehicles"] = len(b.shared.VehiclesInRange(addr, pos, snapshotRange))
	state["streamed_pickups"] = len(b.pool.PickupsInRange(pos, snapshotRange))
	state["streamed_3d_labels"] = len(b.pool.LabelsInRange(pos, snapshotRange))

	state["is_moving"] = moving
	state["new_chat_message"] = append([]string{}, unread...)
	state["important_events"] = append([]string{}, events...)

	if dialogActive {
		state["has_active_dialog"] = true
		state["dialog"] = dialogJSON(dialog)
	} else {
		state["has_active_dialog"] = false
	}
	return state
}

func dialogJSON(d Dialog) map[string]any {
	return map[string]any{
		"title":        d.Title,
		"type":         dialogStyleName(d.Style),
		"content":      d.Body,
		"left_button":  d.LeftButton,
		"right_button": d.RightButton,
	}
}

func dialogStyleName(style int) string {
	switch style {
	case 0:
		return "message_box"
	case 1:
		return "input_box"
	case 2:
		return "list_box"
	case 3:
		return "input_password_box"
	case 4, 5:
		return "tablist_box"
	}
	return "unknown"
}
