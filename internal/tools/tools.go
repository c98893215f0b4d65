// Package tools registers the concrete LLM-callable functions that act on
// a bot: self status reads, situation awareness listings and world
// interaction.
package tools

import (
	"sort"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/gamedata"
	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/llm"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

// Range constants shared by the tool handlers.
const (
	listRange     = 300.0 // neighborhood listings
	pickupRange   = 3.0   // pickup interaction
	exploreMax    = 150.0 // random_explore distance cap
	maxObjectList = 100   // list_objects result cap
	labelNearby   = 2.0   // "attached" label search around objects/pickups
)

// Deps wires the tool handlers to the rest of the core.
type Deps struct {
	Sessions *llm.Manager
	Shared   *world.SharedPool
	Objects  *gamedata.ObjectNames
}

// RegisterAll installs every bot tool into the dispatcher.
func RegisterAll(d *llm.Dispatcher, deps Deps) {
	registerSelfStatus(d, deps)
	registerSituationAwareness(d, deps)
	registerWorldInteraction(d, deps)
}

// --- helpers ---

func (deps Deps) resolveBot(sessionID string) (*bot.Bot, map[string]any) {
	b, ok := deps.Sessions.BotForSession(sessionID)
	if !ok {
		return nil, llm.Errorf("Bot not found for session")
	}
	return b, nil
}

func schema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func numParam(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func strParam(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func boolParam(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func floatArg(args map[string]any, key string) (float32, bool) {
	v, ok := args[key].(float64)
	return float32(v), ok
}

func intArg(args map[string]any, key string) (int, bool) {
	v, ok := args[key].(float64)
	return int(v), ok
}

func strArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

func vecJSON(v geom.Vec3) map[string]any {
	return map[string]any{
		"x": geom.Round2(v.X),
		"y": geom.Round2(v.Y),
		"z": geom.Round2(v.Z),
	}
}

func labelTexts(labels []world.Label) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.Text)
	}
	return out
}

// moveParams resolves the move_type argument shared by the goto family.
func moveParams(args map[string]any) (int, float32, map[string]any) {
	moveType, ok := strArg(args, "move_type")
	if !ok {
		return protocol.MoveTypeSprint, protocol.MoveSpeedSprint, nil
	}
	t, speed, valid := bot.DefaultMoveParams(moveType)
	if !valid {
		return 0, 0, llm.Errorf("Invalid move_type. Use 'walk', 'run'")
	}
	return t, speed, nil
}

// --- self status ---

func registerSelfStatus(d *llm.Dispatcher, deps Deps) {
	d.Register("get_position", "Get the bot's current position coordinates",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			pos := b.Position()
			return llm.Success(map[string]any{"x": pos.X, "y": pos.Y, "z": pos.Z})
		})

	d.Register("get_password", "Get the bot's server password",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			return llm.Success(map[string]any{"password": b.Password()})
		})

	d.Register("get_self_status", "Get comprehensive bot status information",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			return llm.Success(map[string]any{
				"name":          b.Name(),
				"player_id":     b.PlayerID(),
				"status":        b.Status().String(),
				"position":      vecJSON(b.Position()),
				"velocity":      vecJSON(b.Velocity()),
				"health":        b.Health(),
				"armor":         b.Armor(),
				"angle":         b.Angle(),
				"is_moving":     b.Flag(bot.FlagMoving),
				"is_dead":       b.Flag(bot.FlagDead),
				"is_driving":    b.Flag(bot.FlagDriving),
				"is_connected":  b.IsConnected(),
				"dialog_active": b.DialogActive(),
			})
		})

	d.Register("get_chatbox_history", "Get unread chat messages from the chatbox",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			return llm.Success(map[string]any{"messages": b.UnreadMessages()})
		})
}

// --- situation awareness ---

func registerSituationAwareness(d *llm.Dispatcher, deps Deps) {
	d.Register("list_players", "List all players within 300m",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			pos := b.Position()
			players := deps.Shared.PlayersInRange(b.Addr(), pos, listRange, true)
			out := make([]map[string]any, 0, len(players))
			for _, p := range players {
				entry := map[string]any{
					"id":       p.ID,
					"name":     p.Name,
					"position": vecJSON(p.Position),
					"velocity": vecJSON(p.Velocity),
					"health":   geom.Round2(p.Health),
					"armor":    geom.Round2(p.Armor),
					"weapon":   gamedata.WeaponName(p.Weapon),
					"skin":     p.Skin,
					"is_npc":   p.IsNPC,
				}
				if texts := labelTexts(b.Pool().LabelsAttachedToPlayer(p.ID)); len(texts) > 0 {
					entry["attached_labels"] = texts
				}
				out = append(out, entry)
			}
			return llm.Success(map[string]any{"players": out})
		})

	d.Register("list_vehicles", "List all vehicles within 300m",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			vehicles := deps.Shared.VehiclesInRange(b.Addr(), b.Position(), listRange)
			out := make([]map[string]any, 0, len(vehicles))
			for _, v := range vehicles {
				entry := map[string]any{
					"id":         v.ID,
					"model_id":   v.Model,
					"model_name": gamedata.VehicleName(v.Model),
					"position":   vecJSON(v.Position),
					"velocity":   vecJSON(v.Velocity),
					"health":     geom.Round2(v.Health),
				}
				if texts := labelTexts(b.Pool().LabelsAttachedToVehicle(v.ID)); len(texts) > 0 {
					entry["attached_labels"] = texts
				}
				out = append(out, entry)
			}
			return llm.Success(map[string]any{"vehicles": out})
		})

	d.Register("list_objects", "List all objects within 300m",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			pos := b.Position()
			objects := b.Pool().ObjectsInRange(pos, listRange)

			// Cap at the nearest 100, ascending by distance. Object ids mean
			// nothing from the player's point of view, so they are omitted.
			sort.Slice(objects, func(i, j int) bool {
				return objects[i].Position.DistSq(pos) < objects[j].Position.DistSq(pos)
			})
			if len(objects) > maxObjectList {
				objects = objects[:maxObjectList]
			}

			out := make([]map[string]any, 0, len(objects))
			for _, o := range objects {
				entry := map[string]any{
					"model_name": deps.Objects.Name(o.Model),
					"position":   vecJSON(o.Position),
				}
				if texts := labelTexts(b.Pool().LabelsInRange(o.Position, labelNearby)); len(texts) > 0 {
					entry["attached_labels"] = texts
				}
				out = append(out, entry)
			}
			return llm.Success(map[string]any{"objects": out})
		})

	d.Register("list_objects_text", "List all objects with text within 300m",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			objects := b.Pool().ObjectsInRange(b.Position(), listRange)
			out := make([]map[string]any, 0)
			for _, o := range objects {
				if o.MaterialText == "" {
					continue
				}
				out = append(out, map[string]any{
					"model_name": deps.Objects.Name(o.Model),
					"position":   vecJSON(o.Position),
					"text":       o.MaterialText,
				})
			}
			return llm.Success(map[string]any{"objects_with_text": out})
		})

	d.Register("list_pickups", "List all pickups within 300m",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			pickups := b.Pool().PickupsInRange(b.Position(), listRange)
			out := make([]map[string]any, 0, len(pickups))
			for _, p := range pickups {
				entry := map[string]any{
					"id":         p.ID,
					"model_name": deps.Objects.Name(p.Model),
					"position":   vecJSON(p.Position),
				}
				if texts := labelTexts(b.Pool().LabelsInRangeLinear(p.Position, labelNearby)); len(texts) > 0 {
					entry["attached_labels"] = texts
				}
				out = append(out, entry)
			}
			return llm.Success(map[string]any{"pickups": out})
		})

	d.Register("list_labels", "List all 3D text labels within 300m",
		schema(map[string]any{}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			labels := b.Pool().LabelsInRange(b.Position(), listRange)
			out := make([]map[string]any, 0, len(labels))
			for _, l := range labels {
				text := l.Text
				if text == "" {
					text = "[empty]"
				}
				out = append(out, map[string]any{
					"id":               l.ID,
					"text":             text,
					"position":         vecJSON(l.Position),
					"attached_player":  l.AttachedPlayer,
					"attached_vehicle": l.AttachedVehicle,
				})
			}
			return llm.Success(map[string]any{"labels": out})
		})

	d.Register("list_server_player", "List all players in the server",
		schema(map[string]any{
			"npc_included": boolParam("Whether to include server NPCs into your search or not"),
		}),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			npcIncluded, _ := args["npc_included"].(bool)
			players := deps.Shared.AllPlayers(b.Addr(), npcIncluded)
			out := make([]map[string]any, 0, len(players))
			for _, p := range players {
				out = append(out, map[string]any{
					"id":     p.ID,
					"name":   p.Name,
					"is_npc": p.IsNPC,
				})
			}
			return llm.Success(map[string]any{"players": out})
		})
}

// --- world interaction ---

func registerWorldInteraction(d *llm.Dispatcher, deps Deps) {
	gotoSchema := schema(map[string]any{
		"x":         numParam("X coordinate"),
		"y":         numParam("Y coordinate"),
		"z":         numParam("Z coordinate"),
		"move_type": strParam("Movement type: walk, run"),
		"radius":    numParam("Arrival radius"),
	}, "x", "y", "z", "move_type")

	d.Register("goto", "Move to specified coordinates within 150m", gotoSchema,
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			x, okX := floatArg(args, "x")
			y, okY := floatArg(args, "y")
			z, okZ := floatArg(args, "z")
			if !okX || !okY || !okZ {
				return llm.Errorf("X, Y, Z coordinates required")
			}
			moveType, speed, errResult := moveParams(args)
			if errResult != nil {
				return errResult
			}
			dest := geom.Vec3{X: x, Y: y, Z: z}
			b.GoWithPath(dest, moveType, speed)
			return llm.Success(map[string]any{"destination": map[string]any{"x": x, "y": y, "z": z}})
		})

	d.Register("forced_goto", "Move to specified coordinates within 150m, ignoring collision", gotoSchema,
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			x, okX := floatArg(args, "x")
			y, okY := floatArg(args, "y")
			z, okZ := floatArg(args, "z")
			if !okX || !okY || !okZ {
				return llm.Errorf("X, Y, Z coordinates required")
			}
			moveType, speed, errResult := moveParams(args)
			if errResult != nil {
				return errResult
			}
			radius, _ := floatArg(args, "radius")
			b.GoStraight(geom.Vec3{X: x, Y: y, Z: z}, moveType, radius, speed)
			return llm.Success(map[string]any{"destination": map[string]any{"x": x, "y": y, "z": z}})
		})

	d.Register("random_explore", "Move to a random 3D position nearby",
		schema(map[string]any{
			"move_type": strParam("Movement type: walk, run"),
			"dist":      numParam("Exploration distance"),
		}, "move_type", "dist"),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			dist, ok := floatArg(args, "dist")
			if !ok {
				return llm.Errorf("Distance parameter required")
			}
			if dist > exploreMax {
				return llm.Errorf("Distance parameter out of range")
			}
			moveType, speed, errResult := moveParams(args)
			if errResult != nil {
				return errResult
			}
			target := b.RandomExplore(moveType, speed, dist)
			return llm.Success(map[string]any{"destination": map[string]any{"x": target.X, "y": target.Y, "z": target.Z}})
		})

	d.Register("chat", "Type/Send a chat message",
		schema(map[string]any{"msg": strParam("Message to send in chat")}, "msg"),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			msg, ok := strArg(args, "msg")
			if !ok {
				return llm.Errorf("Message parameter required")
			}
			b.SendChat(msg)
			return llm.Success(map[string]any{"message_sent": msg})
		})

	d.Register("command", "Type/Send a command (like /help etc.)",
		schema(map[string]any{"cmd": strParam("Command to execute")}, "cmd"),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			cmd, ok := strArg(args, "cmd")
			if !ok {
				return llm.Errorf("Command parameter required")
			}
			if cmd != "" && cmd[0] != '/' {
				cmd = "/" + cmd
			}
			b.SendChat(cmd)
			return llm.Success(map[string]any{"command_sent": cmd})
		})

	d.Register("dialog_response", "Respond to an active dialog",
		schema(map[string]any{
			"button":   boolParam("True for left button, false for right button"),
			"listitem": numParam("Selected list item index (-1 if none), required for dialog type of list_box"),
			"input":    strParam("Input text for input dialogs"),
		}, "button"),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			if !b.DialogActive() {
				return llm.Errorf("No active dialog to respond to")
			}
			button, ok := args["button"].(bool)
			if !ok {
				return llm.Errorf("Button parameter required")
			}
			listItem := -1
			if v, ok := intArg(args, "listitem"); ok {
				listItem = v
			}
			input, _ := strArg(args, "input")
			b.SendDialogResponse(button, input, listItem)

			side := "right"
			if button {
				side = "left"
			}
			return llm.Success(map[string]any{
				"button_clicked": side,
				"listitem":       listItem,
				"input":          input,
			})
		})

	d.Register("send_pickup", "Pick up an item by pickup ID within 3m",
		schema(map[string]any{"pickup_id": numParam("ID of the pickup to collect")}, "pickup_id"),
		func(args map[string]any, sessionID string) map[string]any {
			b, errResult := deps.resolveBot(sessionID)
			if errResult != nil {
				return errResult
			}
			pickupID, ok := intArg(args, "pickup_id")
			if !ok {
				return llm.Errorf("Pickup ID parameter required")
			}
			pos, found := b.Pool().PickupPosition(pickupID)
			if !found {
				return llm.Errorf("Pickup %d is not streamed in", pickupID)
			}
			if dist := pos.Dist(b.Position()); dist > pickupRange {
				return llm.Errorf("Pickup is too far, distance: %.2f", dist)
			}
			b.SendPickup(pickupID)
			return llm.Success(map[string]any{"pickup_id": pickupID})
		})
}
