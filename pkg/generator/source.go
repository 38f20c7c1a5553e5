package generator

import (
	"math/rand/v2"
	"sync"
	"time"

	"digital.vasic.alchemy/pkg/config"
)

// source is the random source shared by every generator. Access is
// serialised so generators can be used from parallel tests.
var source = struct {
	mu  sync.Mutex
	rng *rand.Rand
}{
	rng: newRand(uint64(time.Now().UnixNano())),
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed makes every generator deterministic from seed on.
func Seed(seed uint64) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.rng = newRand(seed)
}

// Configure seeds the generators from c. A zero seed leaves the
// current source untouched.
func Configure(c *config.Config) {
	if c != nil && c.Seed != 0 {
		Seed(c.Seed)
	}
}

func withRand[T any](fn func(r *rand.Rand) T) T {
	source.mu.Lock()
	defer source.mu.Unlock()
	return fn(source.rng)
}

// reader adapts the shared source to io.Reader for uuid generation.
type reader struct{}

func (reader) Read(p []byte) (int, error) {
	withRand(func(r *rand.Rand) struct{} {
		fill(r, p)
		return struct{}{}
	})
	return len(p), nil
}

func fill(r *rand.Rand, p []byte) {
	for i := 0; i < len(p); i += 8 {
		v := r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
}
