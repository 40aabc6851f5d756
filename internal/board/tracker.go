package board

import (
	"fmt"
	"math"

	"github.com/starford/scratchpad/internal/apperr"
	"github.com/starford/scratchpad/internal/models"
)

// MaxTrackerDelta bounds a single tracker adjustment made over a transport.
const MaxTrackerDelta = 1000

// AdjustTracker adds delta to one counter, never going below zero, and
// returns the new value. The sum saturates instead of wrapping. A change
// that leaves the value as it was is not a mutation.
func (b *Board) AdjustTracker(c models.Counter, delta int) (int, bool, error) {
	if !c.Valid() {
		return 0, false, fmt.Errorf("board: adjust %q: %w", c, apperr.ErrUnknownCounter)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	before := b.doc.Tracker.Get(c)
	b.doc.Tracker.Set(c, saturatingAdd(before, delta))
	after := b.doc.Tracker.Get(c)
	if after == before {
		return after, false, nil
	}
	b.commit(KindTrackerChanged)
	return after, true, nil
}

func saturatingAdd(v, delta int) int {
	switch {
	case delta > 0 && v > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && v < math.MinInt-delta:
		return math.MinInt
	}
	return v + delta
}
