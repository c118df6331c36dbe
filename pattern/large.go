package pattern

import (
	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/rng"
)

// LargePat is one slot of the large-pattern dictionary: a 64-bit Zobrist
// signature, the spatial pattern id it names, and the move probability
// learned for it.
type LargePat struct {
	Key  uint64
	ID   int32
	Prob float64
}

// DefaultKSize is the production table size: 2^25 slots. A full table at
// this size costs on the order of a few hundred megabytes, matching the
// michi family's documented footprint; tests build smaller dictionaries
// via NewLargeDict.
const DefaultKSize = 1 << 25

// LargeDict is an open-addressed hash table over LargePat, keyed by
// Zobrist signature with double hashing for probing. Slot zero-key means
// empty: no real pattern may legitimately hash to 0 (collision odds are
// 2^-64, treated as acceptable per the package this is modeled on).
type LargeDict struct {
	table []LargePat
	mask  uint64
}

// NewLargeDict allocates a dictionary with room for size slots. size is
// rounded up to the next power of two so probing can mask instead of mod.
func NewLargeDict(size int) *LargeDict {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}
	return &LargeDict{table: make([]LargePat, n), mask: n - 1}
}

// probingPrimes are the fixed step sizes double hashing chooses from,
// indexed by bits 45-48 of the key. All odd, so every step is coprime
// with the power-of-two table size and a probe sequence visits every
// slot before repeating.
var probingPrimes = [16]uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59}

func (d *LargeDict) probe(key uint64) (start, step uint64) {
	start = (key >> 20) & d.mask
	step = probingPrimes[(key>>45)&15]
	return
}

// Insert adds or overwrites the slot for key. It returns false if the
// table is full and no slot could be found, which should never happen in
// practice since dictionaries are sized generously ahead of loading.
func (d *LargeDict) Insert(key uint64, id int32, prob float64) bool {
	if key == 0 {
		return false
	}
	start, step := d.probe(key)
	idx := start
	for i := uint64(0); i <= d.mask; i++ {
		slot := &d.table[idx]
		if slot.Key == 0 || slot.Key == key {
			slot.Key, slot.ID, slot.Prob = key, id, prob
			return true
		}
		idx = (idx + step) & d.mask
	}
	return false
}

// Lookup finds the slot for key, if any.
func (d *LargeDict) Lookup(key uint64) (LargePat, bool) {
	if key == 0 {
		return LargePat{}, false
	}
	start, step := d.probe(key)
	idx := start
	for i := uint64(0); i <= d.mask; i++ {
		slot := d.table[idx]
		if slot.Key == 0 {
			return LargePat{}, false
		}
		if slot.Key == key {
			return slot, true
		}
		idx = (idx + step) & d.mask
	}
	return LargePat{}, false
}

// Len reports how many non-empty slots the table holds. O(n); intended
// for diagnostics, not the hot path.
func (d *LargeDict) Len() int {
	n := 0
	for _, s := range d.table {
		if s.Key != 0 {
			n++
		}
	}
	return n
}

// zobristSeed fixes the large-pattern hash words across runs: the
// dictionary on disk is keyed against whatever words generated it, so
// they cannot be reseeded per-process the way playout randomness is.
const zobristSeed = 0xA5A5F00D

var zobristWords = buildZobristWords()

func buildZobristWords() [NumRings][][4]uint64 {
	src := rng.New(zobristSeed)
	var words [NumRings][][4]uint64
	for r := 0; r < NumRings; r++ {
		words[r] = make([][4]uint64, len(rings[r]))
		for i := range words[r] {
			for c := 0; c < 4; c++ {
				hi := uint64(src.Uint32())
				lo := uint64(src.Uint32())
				words[r][i][c] = hi<<32 | lo
			}
		}
	}
	return words
}

// colorCodeAt reads the color gridcular offset (dx,dy) away from pt, off
// the edge of the real board counting as Out the same as the board's own
// border. A dedicated bordered "large board" array is unnecessary: a
// bounds check against Geometry does the same job without a second
// parallel representation to keep in sync.
func colorCodeAt(p *board.Position, pt board.Point, dx, dy int) uint8 {
	row, col := p.Geom.RowCol(pt)
	row += dy
	col += dx
	if !p.Geom.InBoard(row, col) {
		return board.Out.Code()
	}
	return p.Color(p.Geom.Pt(row, col)).Code()
}

// ExtendSignature folds ring (0-indexed, 0..NumRings-1) of pt's
// neighborhood into acc, returning the new accumulated signature. Calling
// it for ring=0,1,2,... in order reproduces the incremental radius-by-
// radius signature the matcher probes at each step.
func ExtendSignature(p *board.Position, pt board.Point, ring int, acc uint64) uint64 {
	for i, off := range rings[ring] {
		code := colorCodeAt(p, pt, off.dx, off.dy)
		acc ^= zobristWords[ring][i][code]
	}
	return acc
}

// LargePatternProbability implements large_pattern_probability: it grows
// the signature ring by ring, probing the dictionary at every radius. The
// largest matching radius wins; once a ring fails to match past the last
// successful one, the search gives up early rather than walking all 12
// rings on every call.
func LargePatternProbability(p *board.Position, dict *LargeDict, pt board.Point) (float64, bool) {
	var acc uint64
	found := false
	bestProb := 0.0
	lastMatched := -1
	for s := 0; s < NumRings; s++ {
		acc = ExtendSignature(p, pt, s, acc)
		if lp, ok := dict.Lookup(acc); ok {
			bestProb = lp.Prob
			found = true
			lastMatched = s
			continue
		}
		if found && s > lastMatched {
			break
		}
	}
	return bestProb, found
}
