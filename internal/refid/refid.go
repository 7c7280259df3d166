package refid

import (
	"fmt"
	"sync"
	"time"
)

const prefix = "TOPUP"

// Generator hands out sortable transaction references of the form
// TOPUP-<unix ms>. Two calls inside the same millisecond bump the counter
// past the last issued value, so references never collide within the
// process lifetime.
type Generator struct {
	mu   sync.Mutex
	last int64
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return fmt.Sprintf("%s-%d", prefix, ms)
}
