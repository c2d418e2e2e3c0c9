package palette

import (
	"errors"
	"fmt"
	"sync"
)

// Pair identifies a color-pair slot on a terminal surface.
type Pair int

// PairDefault is the terminal's default attribute. It always stands for
// (Unset, Unset) and is never handed out for another combination.
const PairDefault Pair = 0

const (
	// SlotBase keeps allocated slots clear of low slots that the hosting
	// environment may have claimed.
	SlotBase = 100
	// DefaultMaxPairs is the pair capacity most terminals report.
	DefaultMaxPairs = 256
)

// ErrPairsExhausted is returned when no further color-pair slot is available.
var ErrPairsExhausted = errors.New("color pairs exhausted")

// Key is a foreground/background combination.
type Key struct {
	Fg, Bg Color
}

// PairInitializer registers a pair with the terminal.
type PairInitializer interface {
	InitPair(pair Pair, fg, bg Color) error
}

// Registry hands out color-pair slots. Entries are never evicted, so a slot
// stays bound to its combination for the lifetime of the registry.
type Registry struct {
	mu       sync.Mutex
	init     PairInitializer
	maxPairs int
	slots    map[Key]Pair
}

// NewRegistry creates a registry that registers new pairs through init.
// maxPairs bounds slot ids (exclusive); values <= SlotBase fall back to
// DefaultMaxPairs.
func NewRegistry(init PairInitializer, maxPairs int) *Registry {
	if maxPairs <= SlotBase {
		maxPairs = DefaultMaxPairs
	}
	return &Registry{
		init:     init,
		maxPairs: maxPairs,
		slots:    map[Key]Pair{{Unset, Unset}: PairDefault},
	}
}

// Resolve returns the slot bound to (fg, bg), allocating and registering a
// new one on first use.
func (r *Registry) Resolve(fg, bg Color) (Pair, error) {
	key := Key{Fg: fg, Bg: bg}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pair, ok := r.slots[key]; ok {
		return pair, nil
	}

	pair := Pair(SlotBase + len(r.slots))
	if int(pair) >= r.maxPairs {
		return PairDefault, fmt.Errorf("resolve %s on %s: %w (%d slots in use)", fg, bg, ErrPairsExhausted, len(r.slots)-1)
	}
	if r.init != nil {
		if err := r.init.InitPair(pair, fg, bg); err != nil {
			return PairDefault, fmt.Errorf("init pair %d: %w", pair, err)
		}
	}
	r.slots[key] = pair
	return pair, nil
}

// Len reports the number of bound combinations, including the default.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Capacity reports the exclusive upper bound on slot ids.
func (r *Registry) Capacity() int {
	return r.maxPairs
}
