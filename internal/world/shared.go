// Package world caches the entities game servers stream to bots: a shared,
// reference-counted pool of players and vehicles per server, and a per-bot
// pool of pickups, objects and 3D text labels.
package world

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
)

// Addr identifies a game server.
type Addr struct {
	Host string
	Port int
}

func (a Addr) String() string { return fmt.Sprintf("%s:%d", a.Host, a.Port) }

// Player is one remote player entry in the shared pool.
type Player struct {
	ID            int
	Name          string
	Health        float32
	Armor         float32
	Position      geom.Vec3
	Velocity      geom.Vec3
	IsNPC         bool
	Skin          int
	Weapon        int
	SpecialAction int
	VehicleID     int
	StreamCount   int
}

// Vehicle is one remote vehicle entry in the shared pool.
type Vehicle struct {
	ID          int
	Model       int
	Health      float32
	Position    geom.Vec3
	Velocity    geom.Vec3
	StreamCount int
}

const maxSharedEntries = 2000

// serverEntities holds the dense arrays and dedup sets for one server.
type serverEntities struct {
	players       []Player
	vehicles      []Vehicle
	playerHashes  map[uint64]struct{}
	vehicleHashes map[uint64]struct{}
}

func newServerEntities() *serverEntities {
	return &serverEntities{
		players:       make([]Player, 0, 64),
		vehicles:      make([]Vehicle, 0, 64),
		playerHashes:  make(map[uint64]struct{}),
		vehicleHashes: make(map[uint64]struct{}),
	}
}

// SharedPool dedups world entities across every bot connected to the same
// server. An entry lives as long as at least one bot streams it.
type SharedPool struct {
	mu      sync.RWMutex
	servers map[Addr]*serverEntities
}

func NewSharedPool() *SharedPool {
	return &SharedPool{servers: make(map[Addr]*serverEntities)}
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func hashInt(v int) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	h.Write(b[:])
	return h.Sum64()
}

// mix folds a secondary hash into the primary one, golden-ratio style.
func mix(hash, other uint64) uint64 {
	return hash ^ (other + 0x9e3779b9 + (hash << 6) + (hash >> 2))
}

func playerHash(p Player) uint64 {
	return mix(hashInt(p.ID), hashString(p.Name))
}

func vehicleHash(v Vehicle) uint64 {
	return mix(hashInt(v.ID), hashInt(v.Model))
}

func (sp *SharedPool) entities(addr Addr) *serverEntities {
	e, ok := sp.servers[addr]
	if !ok {
		e = newServerEntities()
		sp.servers[addr] = e
	}
	return e
}

// AddServer pre-creates the entity record for a server.
func (sp *SharedPool) AddServer(addr Addr) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.entities(addr)
}

// RemoveServer drops every cached entity for a server.
func (sp *SharedPool) RemoveServer(addr Addr) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	delete(sp.servers, addr)
}

// AddPlayer inserts a player unless an identical (id, name) entry exists or
// the pool is full.
func (sp *SharedPool) AddPlayer(addr Addr, p Player) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	h := playerHash(p)
	if _, dup := e.playerHashes[h]; dup {
		return
	}
	if len(e.players) >= maxSharedEntries {
		return
	}
	e.players = append(e.players, p)
	e.playerHashes[h] = struct{}{}
}

// AddVehicle inserts a vehicle unless an identical (id, model) entry exists
// or the pool is full.
func (sp *SharedPool) AddVehicle(addr Addr, v Vehicle) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	h := vehicleHash(v)
	if _, dup := e.vehicleHashes[h]; dup {
		return
	}
	if len(e.vehicles) >= maxSharedEntries {
		return
	}
	e.vehicles = append(e.vehicles, v)
	e.vehicleHashes[h] = struct{}{}
}

// UpdatePlayerPos updates a player's position in place.
func (sp *SharedPool) UpdatePlayerPos(addr Addr, id int, pos geom.Vec3) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.players {
		if e.players[i].ID == id {
			e.players[i].Position = pos
			return
		}
	}
}

// PlayerState is the kinematic slice of a player carried by sync packets.
type PlayerState struct {
	Position      geom.Vec3
	Velocity      geom.Vec3
	Health        float32
	Armor         float32
	Weapon        int
	SpecialAction int
}

// UpdatePlayer applies a full on-foot state to a player entry.
func (sp *SharedPool) UpdatePlayer(addr Addr, id int, st PlayerState) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.players {
		if e.players[i].ID == id {
			p := &e.players[i]
			p.Position = st.Position
			p.Velocity = st.Velocity
			p.Health = st.Health
			p.Armor = st.Armor
			p.Weapon = st.Weapon
			p.SpecialAction = st.SpecialAction
			return
		}
	}
}

// VehicleState is the kinematic slice of a vehicle carried by sync packets.
type VehicleState struct {
	Position geom.Vec3
	Velocity geom.Vec3
	Health   float32
}

// UpdateVehicle applies an in-car sync state to a vehicle entry.
func (sp *SharedPool) UpdateVehicle(addr Addr, id int, st VehicleState) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.vehicles {
		if e.vehicles[i].ID == id {
			v := &e.vehicles[i]
			v.Position = st.Position
			v.Velocity = st.Velocity
			v.Health = st.Health
			return
		}
	}
}

// UpdateVehicleModel updates a vehicle's model and position in place.
func (sp *SharedPool) UpdateVehicleModel(addr Addr, id, model int, pos geom.Vec3) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.vehicles {
		if e.vehicles[i].ID == id {
			e.vehicles[i].Model = model
			e.vehicles[i].Position = pos
			return
		}
	}
}

func (sp *SharedPool) removePlayerAt(e *serverEntities, i int) {
	delete(e.playerHashes, playerHash(e.players[i]))
	last := len(e.players) - 1
	if i < last {
		e.players[i] = e.players[last]
	}
	e.players = e.players[:last]
}

func (sp *SharedPool) removeVehicleAt(e *serverEntities, i int) {
	delete(e.vehicleHashes, vehicleHash(e.vehicles[i]))
	last := len(e.vehicles) - 1
	if i < last {
		e.vehicles[i] = e.vehicles[last]
	}
	e.vehicles = e.vehicles[:last]
}

// IncrementPlayerStream bumps the refcount of a streamed player.
func (sp *SharedPool) IncrementPlayerStream(addr Addr, id int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.players {
		if e.players[i].ID == id {
			e.players[i].StreamCount++
			return
		}
	}
}

// DecrementPlayerStream drops the refcount; at zero the entry is removed by
// swapping with the last element.
func (sp *SharedPool) DecrementPlayerStream(addr Addr, id int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.players {
		if e.players[i].ID == id {
			e.players[i].StreamCount--
			if e.players[i].StreamCount <= 0 {
				sp.removePlayerAt(e, i)
			}
			return
		}
	}
}

// IncrementVehicleStream bumps the refcount of a streamed vehicle.
func (sp *SharedPool) IncrementVehicleStream(addr Addr, id int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.vehicles {
		if e.vehicles[i].ID == id {
			e.vehicles[i].StreamCount++
			return
		}
	}
}

// DecrementVehicleStream drops the refcount; at zero the entry is removed.
func (sp *SharedPool) DecrementVehicleStream(addr Addr, id int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.vehicles {
		if e.vehicles[i].ID == id {
			e.vehicles[i].StreamCount--
			if e.vehicles[i].StreamCount <= 0 {
				sp.removeVehicleAt(e, i)
			}
			return
		}
	}
}

// RemovePlayerByID removes a player entry regardless of refcount.
func (sp *SharedPool) RemovePlayerByID(addr Addr, id int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.players {
		if e.players[i].ID == id {
			sp.removePlayerAt(e, i)
			return
		}
	}
}

// RemovePlayerByName removes a player entry by name.
func (sp *SharedPool) RemovePlayerByName(addr Addr, name string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.players {
		if e.players[i].Name == name {
			sp.removePlayerAt(e, i)
			return
		}
	}
}

// RemoveVehicle removes a vehicle entry regardless of refcount.
func (sp *SharedPool) RemoveVehicle(addr Addr, id int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	for i := range e.vehicles {
		if e.vehicles[i].ID == id {
			sp.removeVehicleAt(e, i)
			return
		}
	}
}

// Clear drops every entity cached for a server but keeps its record.
func (sp *SharedPool) Clear(addr Addr) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	e := sp.entities(addr)
	e.players = e.players[:0]
	e.vehicles = e.vehicles[:0]
	e.playerHashes = make(map[uint64]struct{})
	e.vehicleHashes = make(map[uint64]struct{})
}

// PlayerName resolves a player id to its name, or "".
func (sp *SharedPool) PlayerName(addr Addr, id int) string {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	e, ok := sp.servers[addr]
	if !ok {
		return ""
	}
	for i := range e.players {
		if e.players[i].ID == id {
			return e.players[i].Name
		}
	}
	return ""
}

// PlayerCount returns the number of live player entries for a server.
func (sp *SharedPool) PlayerCount(addr Addr) int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	if e, ok := sp.servers[addr]; ok {
		return len(e.players)
	}
	return 0
}

// VehicleCount returns the number of live vehicle entries for a server.
func (sp *SharedPool) VehicleCount(addr Addr) int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	if e, ok := sp.servers[addr]; ok {
		return len(e.vehicles)
	}
	return 0
}

// PlayersInRange returns copies of every player within range of pos.
func (sp *SharedPool) PlayersInRange(addr Addr, pos geom.Vec3, rng float32, includeNPCs bool) []Player {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	var out []Player
	e, ok := sp.servers[addr]
	if !ok {
		return out
	}
	rangeSq := rng * rng
	for i := range e.players {
		p := e.players[i]
		if !includeNPCs && p.IsNPC {
			continue
		}
		if p.Position.DistSq(pos) <= rangeSq {
			out = append(out, p)
		}
	}
	return out
}

// AllPlayers returns copies of every player entry for a server.
func (sp *SharedPool) AllPlayers(addr Addr, includeNPCs bool) []Player {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	var out []Player
	e, ok := sp.servers[addr]
	if !ok {
		return out
	}
	for i := range e.players {
		p := e.players[i]
		if !includeNPCs && p.IsNPC {
			continue
		}
		out = append(out, p)
	}
	return out
}

// VehiclesInRange returns copies of every vehicle within range of pos.
func (sp *SharedPool) VehiclesInRange(addr Addr, pos geom.Vec3, rng float32) []Vehicle {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	var out []Vehicle
	e, ok := sp.servers[addr]
	if !ok {
		return out
	}
	rangeSq := rng * rng
	for i := range e.vehicles {
		v := e.vehicles[i]
		if v.Position.DistSq(pos) <= rangeSq {
			out = append(out, v)
		}
	}
	return out
}
