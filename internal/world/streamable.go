package world

import (
	"math"
	"sync"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
)

// Pickup is a collectable item streamed to one bot.
type Pickup struct {
	ID       int
	Model    int
	Position geom.Vec3
}

// Object is a static world object streamed to one bot.
type Object struct {
	ID           int
	Model        int
	Position     geom.Vec3
	Rotation     geom.Vec3
	DrawDistance float32
	MaterialText string
}

// Label is a 3D text label streamed to one bot. Attachment ids are -1 when
// the label floats free.
type Label struct {
	ID              int
	Position        geom.Vec3
	AttachedPlayer  int
	AttachedVehicle int
	Text            string
	DrawDistance    float32
	TestLOS         bool
}

// Capacity limits for the per-bot streamable pool.
const (
	MaxPickups = 4096
	MaxObjects = 1000
	MaxLabels  = 1024
)

// gridCellSize is the spatial hash cell edge, in world units.
const gridCellSize = 2.0

// GridCoord addresses one cell of the label spatial hash.
type GridCoord struct {
	X, Y, Z int
}

func gridCoordOf(p geom.Vec3) GridCoord {
	return GridCoord{
		X: int(math.Floor(float64(p.X) / gridCellSize)),
		Y: int(math.Floor(float64(p.Y) / gridCellSize)),
		Z: int(math.Floor(float64(p.Z) / gridCellSize)),
	}
}

// StreamablePool caches the entities a server streams to a single bot.
// Labels additionally live in a spatial hash and in two attachment indices;
// remove keeps all three structures consistent through the swap-with-last.
type StreamablePool struct {
	mu sync.Mutex

	pickups []Pickup
	objects []Object
	labels  []Label

	pickupIdx map[int]int
	objectIdx map[int]int
	labelIdx  map[int]int

	labelGrid       map[GridCoord][]int
	labelsByPlayer  map[int][]int
	labelsByVehicle map[int][]int
}

func NewStreamablePool() *StreamablePool {
	p := &StreamablePool{}
	p.reset()
	return p
}

func (p *StreamablePool) reset() {
	p.pickups = p.pickups[:0]
	p.objects = p.objects[:0]
	p.labels = p.labels[:0]
	p.pickupIdx = make(map[int]int)
	p.objectIdx = make(map[int]int)
	p.labelIdx = make(map[int]int)
	p.labelGrid = make(map[GridCoord][]int)
	p.labelsByPlayer = make(map[int][]int)
	p.labelsByVehicle = make(map[int][]int)
}

// Clear empties the pool; called when a bot disconnects.
func (p *StreamablePool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

// AddPickup stores a pickup; full pool or duplicate id is a no-op overwrite
// of the index only.
func (p *StreamablePool) AddPickup(pk Pickup) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.pickups) >= MaxPickups {
		return
	}
	p.pickupIdx[pk.ID] = len(p.pickups)
	p.pickups = append(p.pickups, pk)
}

// AddObject stores an object.
func (p *StreamablePool) AddObject(o Object) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.objects) >= MaxObjects {
		return
	}
	p.objectIdx[o.ID] = len(p.objects)
	p.objects = append(p.objects, o)
}

// AddLabel stores a label and indexes it in the spatial hash and the
// attachment maps.
func (p *StreamablePool) AddLabel(l Label) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.labels) >= MaxLabels {
		return
	}
	idx := len(p.labels)
	p.labels = append(p.labels, l)
	p.labelIdx[l.ID] = idx
	p.indexLabel(idx)
}

func (p *StreamablePool) indexLabel(idx int) {
	l := p.labels[idx]
	cell := gridCoordOf(l.Position)
	p.labelGrid[cell] = append(p.labelGrid[cell], idx)
	if l.AttachedPlayer != -1 {
		p.labelsByPlayer[l.AttachedPlayer] = append(p.labelsByPlayer[l.AttachedPlayer], idx)
	}
	if l.AttachedVehicle != -1 {
		p.labelsByVehicle[l.AttachedVehicle] = append(p.labelsByVehicle[l.AttachedVehicle], idx)
	}
}

func removeIndex(indices []int, idx int) []int {
	for i, v := range indices {
		if v == idx {
			return append(indices[:i], indices[i+1:]...)
		}
	}
	return indices
}

func (p *StreamablePool) unindexLabel(idx int) {
	l := p.labels[idx]
	cell := gridCoordOf(l.Position)
	if rest := removeIndex(p.labelGrid[cell], idx); len(rest) > 0 {
		p.labelGrid[cell] = rest
	} else {
		delete(p.labelGrid, cell)
	}
	if l.AttachedPlayer != -1 {
		if rest := removeIndex(p.labelsByPlayer[l.AttachedPlayer], idx); len(rest) > 0 {
			p.labelsByPlayer[l.AttachedPlayer] = rest
		} else {
			delete(p.labelsByPlayer, l.AttachedPlayer)
		}
	}
	if l.AttachedVehicle != -1 {
		if rest := removeIndex(p.labelsByVehicle[l.AttachedVehicle], idx); len(rest) > 0 {
			p.labelsByVehicle[l.AttachedVehicle] = rest
		} else {
			delete(p.labelsByVehicle, l.AttachedVehicle)
		}
	}
}

// RemovePickup removes by id via swap-with-last; missing ids are no-ops.
func (p *StreamablePool) RemovePickup(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.pickupIdx[id]
	if !ok {
		return
	}
	delete(p.pickupIdx, id)
	last := len(p.pickups) - 1
	if idx < last {
		p.pickups[idx] = p.pickups[last]
		p.pickupIdx[p.pickups[idx].ID] = idx
	}
	p.pickups = p.pickups[:last]
}

// RemoveObject removes by id via swap-with-last.
func (p *StreamablePool) RemoveObject(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.objectIdx[id]
	if !ok {
		return
	}
	delete(p.objectIdx, id)
	last := len(p.objects) - 1
	if idx < last {
		p.objects[idx] = p.objects[last]
		p.objectIdx[p.objects[idx].ID] = idx
	}
	p.objects = p.objects[:last]
}

// RemoveLabel removes by id. Both the removed label and the swapped-in last
// label are taken out of the spatial and attachment indices exactly once,
// and the survivor is re-indexed under its new slot.
func (p *StreamablePool) RemoveLabel(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.labelIdx[id]
	if !ok {
		return
	}
	p.unindexLabel(idx)
	delete(p.labelIdx, id)

	last := len(p.labels) - 1
	if idx < last {
		p.unindexLabel(last)
		p.labels[idx] = p.labels[last]
		p.labelIdx[p.labels[idx].ID] = idx
		p.indexLabel(idx)
	}
	p.labels = p.labels[:last]
}

// PickupPosition returns a pickup's position, or (zero, false) for unknown
// ids.
func (p *StreamablePool) PickupPosition(id int) (geom.Vec3, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx, ok := p.pickupIdx[id]; ok {
		return p.pickups[idx].Position, true
	}
	return geom.Vec3{}, false
}

func (p *StreamablePool) PickupCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pickups)
}

func (p *StreamablePool) ObjectCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.objects)
}

func (p *StreamablePool) LabelCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.labels)
}

// PickupsInRange returns copies of every pickup within rng of pos.
func (p *StreamablePool) PickupsInRange(pos geom.Vec3, rng float32) []Pickup {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Pickup
	rangeSq := rng * rng
	for i := range p.pickups {
		if p.pickups[i].Position.DistSq(pos) <= rangeSq {
			out = append(out, p.pickups[i])
		}
	}
	return out
}

// ObjectsInRange returns copies of every object within rng of pos.
func (p *StreamablePool) ObjectsInRange(pos geom.Vec3, rng float32) []Object {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Object
	rangeSq := rng * rng
	for i := range p.objects {
		if p.objects[i].Position.DistSq(pos) <= rangeSq {
			out = append(out, p.objects[i])
		}
	}
	return out
}

// LabelsInRange walks the cell neighborhood covering the query sphere, then
// filters by squared distance.
func (p *StreamablePool) LabelsInRange(pos geom.Vec3, rng float32) []Label {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Label
	rangeSq := rng * rng
	lo := gridCoordOf(pos.Sub(geom.Vec3{X: rng, Y: rng, Z: rng}))
	hi := gridCoordOf(pos.Add(geom.Vec3{X: rng, Y: rng, Z: rng}))

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				for _, idx := range p.labelGrid[GridCoord{x, y, z}] {
					l := p.labels[idx]
					if l.Position.DistSq(pos) <= rangeSq {
						out = append(out, l)
					}
				}
			}
		}
	}
	return out
}

// LabelsInRangeLinear is the brute-force variant, used for tiny radii where
// the cell walk overhead dominates.
func (p *StreamablePool) LabelsInRangeLinear(pos geom.Vec3, rng float32) []Label {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Label
	rangeSq := rng * rng
	for i := range p.labels {
		if p.labels[i].Position.DistSq(pos) <= rangeSq {
			out = append(out, p.labels[i])
		}
	}
	return out
}

// LabelsAttachedToPlayer returns the labels pinned to a player.
func (p *StreamablePool) LabelsAttachedToPlayer(playerID int) []Label {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Label
	for _, idx := range p.labelsByPlayer[playerID] {
		out = append(out, p.labels[idx])
	}
	return out
}

// LabelsAttachedToVehicle returns the labels pinned to a vehicle.
func (p *StreamablePool) LabelsAttachedToVehicle(vehicleID int) []Label {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Label
	for _, idx := range p.labelsByVehicle[vehicleID] {
		out = append(out, p.labels[idx])
	}
	return out
}

// LabelByID returns a copy of the label with the given id.
func (p *StreamablePool) LabelByID(id int) (Label, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx, ok := p.labelIdx[id]; ok {
		return p.labels[idx], true
	}
	return Label{}, false
}

// gridIndexSize reports the number of label indices referenced by the
// spatial hash; used by invariant checks in tests.
func (p *StreamablePool) gridIndexSize() int {
	n := 0
	for _, v := range p.labelGrid {
		n += len(v)
	}
	return n
}
