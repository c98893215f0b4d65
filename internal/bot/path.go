package bot

import (
	"math/rand"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

const (
	// maxPathSpan bounds pathfinding; longer requests return no path.
	maxPathSpan = 150.0
	// sampleSpacing is the disc sampling grid step.
	sampleSpacing = 1.0
	// stepHeight is the maximum climbable height difference between two
	// walkable samples.
	stepHeight = 1.08
)

// findPath samples a disc of ground points between from and to, connects
// samples whose height difference is climbable, and BFS-walks from start to
// goal. Returns nil when the span is too long or the goal is unreachable.
func (b *Bot) findPath(from, to geom.Vec3) []geom.Vec3 {
	if from.Dist(to) > maxPathSpan {
		return nil
	}

	center := geom.Vec3{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
	dx := to.X - from.X
	dy := to.Y - from.Y
	radius := float32(0)
	if r := dx*dx + dy*dy; r > 0 {
		radius = geom.Vec3{X: dx, Y: dy}.Len()
	}

	var nodes []geom.Vec3
	for x := -radius; x <= radius; x += sampleSpacing {
		for y := -radius; y <= radius; y += sampleSpacing {
			if x*x+y*y > radius*radius {
				continue
			}
			px := center.X + x
			py := center.Y + y
			hit, ok := b.ray.Raycast(
				geom.Vec3{X: px, Y: py, Z: 1000},
				geom.Vec3{X: px, Y: py, Z: -1000},
			)
			if ok {
				nodes = append(nodes, hit)
			}
		}
	}

	start := len(nodes)
	nodes = append(nodes, from)
	goal := len(nodes)
	nodes = append(nodes, to)

	n := len(nodes)
	visited := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	queue := []int{start}
	visited[start] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if abs32(nodes[u].Z-nodes[v].Z) < stepHeight {
				visited[v] = true
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}

	if !visited[goal] {
		return nil
	}

	var path []geom.Vec3
	for at := goal; at != -1; at = prev[at] {
		path = append(path, nodes[at])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// GoWithPath moves toward dest through the pathfinder. An unobstructed,
// near-level destination is walked directly; otherwise the computed path is
// loaded as a movepath. An unreachable goal records a pathfinder failure
// event and starts no movement.
func (b *Bot) GoWithPath(dest geom.Vec3, moveType int, speed float32) {
	b.ClearMovepath()

	b.mu.Lock()
	pos := b.position
	b.mu.Unlock()

	if _, blocked := b.ray.Raycast(pos, dest); !blocked {
		if abs32(pos.Z-dest.Z) < 3 {
			b.Go(dest, moveType, 0, true, speed, 0, 0)
			return
		}
	}

	path := b.findPath(pos, dest)
	if len(path) == 0 {
		b.mu.Lock()
		b.addImportantEventLocked("Pathfinder failed! Target too far or the goal too complex!")
		b.mu.Unlock()
		return
	}
	b.log.Debug("path found", "name", b.Name(), "waypoints", len(path))

	b.CreateMovepath(path, false)
	b.mu.Lock()
	b.moveType = moveType
	b.moveSpeed = speed
	b.mu.Unlock()
	b.StartMovepath()
}

// RandomExplore walks to a random reachable point within dist of the bot,
// projecting the target down onto the ground.
func (b *Bot) RandomExplore(moveType int, speed, dist float32) geom.Vec3 {
	pos := b.Position()
	x := pos.X + (rand.Float32()*2-1)*dist
	y := pos.Y + (rand.Float32()*2-1)*dist
	z := b.ray.GroundZ(x, y)
	target := geom.Vec3{X: x, Y: y, Z: z}
	b.GoWithPath(target, moveType, speed)
	return target
}

// DefaultMoveParams translates a tool-facing move_type string into gait and
// speed. The LLM's "walk" maps to the run gait: real players never hold the
// walk key, so a walking bot reads as a bot.
func DefaultMoveParams(moveType string) (int, float32, bool) {
	switch moveType {
	case "walk":
		return protocol.MoveTypeRun, protocol.MoveSpeedRun, true
	case "run":
		return protocol.MoveTypeSprint, protocol.MoveSpeedSprint, true
	}
	return 0, 0, false
}

// GoStraight is the forced variant bypassing the pathfinder.
func (b *Bot) GoStraight(dest geom.Vec3, moveType int, radius float32, speed float32) {
	b.Go(dest, moveType, radius, true, speed, 0, 0)
}

// moveTimings exposes movement bookkeeping to tests.
func (b *Bot) moveTimings() (time.Duration, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.moveDuration, b.moveStopDelay
}
