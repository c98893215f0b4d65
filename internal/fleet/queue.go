// Package fleet owns the set of live bots: the registry the control plane
// mutates, the connection admission queue and the tick loop that drives
// every bot.
package fleet

import (
	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/world"
)

// Policy decides how disconnected bots are admitted to connect attempts.
type Policy int

const (
	// PolicyQueued serialises joins per destination server. Many servers
	// drop a client when two join from the same origin within a short
	// window.
	PolicyQueued Policy = iota
	// PolicyAggressive admits every eligible bot at once.
	PolicyAggressive
)

// Queue decides, per tick, which disconnected bots may call connect.
type Queue struct {
	policy Policy
}

func NewQueue(policy Policy) *Queue {
	return &Queue{policy: policy}
}

// TryConnect walks the fleet and admits eligible disconnected bots,
// returning how many connection attempts were started.
func (q *Queue) TryConnect(bots []*bot.Bot) int {
	// Pre-mark servers that already have a join in flight: any bot that is
	// past Disconnected but has not finished game init yet.
	pending := make(map[world.Addr][]*bot.Bot)
	for _, b := range bots {
		if b.Status() != bot.Disconnected && !b.GameInited() {
			addr := b.Addr()
			pending[addr] = append(pending[addr], b)
		}
	}

	var admitted []*bot.Bot
	for _, b := range bots {
		if b.Status() != bot.Disconnected {
			continue
		}
		if !b.CheckConnectionDelay() {
			continue
		}
		addr := b.Addr()
		if q.policy == PolicyQueued {
			if len(pending[addr]) > 0 {
				continue
			}
			pending[addr] = append(pending[addr], b)
		}
		admitted = append(admitted, b)
	}

	count := 0
	for _, b := range admitted {
		if b.Status() == bot.Disconnected {
			if err := b.Connect(); err == nil {
				count++
			}
		}
	}
	return count
}
