// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workload

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/ava-labs/burstcache/utils/buffer"
)

var _ buffer.Delayed[string] = Event{}

// Event is a write of a payload to a key. Events for the same key are
// deduplicated while they wait to be flushed.
type Event struct {
	key     string
	payload int
	readyAt time.Time
}

func (e Event) Key() string {
	return e.key
}

func (e Event) Payload() int {
	return e.payload
}

func (e Event) ReadyAt() time.Time {
	return e.readyAt
}

// generator produces random events over a bounded key and payload space.
type generator struct {
	rng          *rand.Rand
	distinctKeys int
	payloads     int
}

func newGenerator(seed uint64, distinctKeys, payloads int) *generator {
	return &generator{
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec
		distinctKeys: distinctKeys,
		payloads:     payloads,
	}
}

// next returns an event that becomes ready at [readyAt].
func (g *generator) next(readyAt time.Time) Event {
	return Event{
		key:     keyName(g.rng.IntN(g.distinctKeys)),
		payload: g.rng.IntN(g.payloads),
		readyAt: readyAt,
	}
}

func keyName(i int) string {
	return "key-" + strconv.Itoa(i)
}

func renderPayload(p int) string {
	return "payload-" + strconv.Itoa(p)
}
