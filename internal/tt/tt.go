// Package tt implements the transposition table: a power-of-two,
// open-addressed (single-slot-per-index, no chaining) array of
// entries indexed by the low bits of a Zobrist hash, with
// depth-preferred replacement.
package tt

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// Key is the position package's Zobrist hash type, re-exported here so
// callers only need to import tt, not tt and position both, to work
// with table entries.
type Key = position.Key

var out = message.NewPrinter(language.English)

// Flag classifies what kind of bound Entry.Score represents.
type Flag uint8

// The three bound kinds a stored score can be.
const (
	None Flag = iota
	Exact
	Lower
	Upper
)

// entrySize is used purely to size the table from a byte budget; kept
// next to Entry because it has to be updated by hand when Entry's
// fields change.
const entrySize = 8 /*hash*/ + 4 /*score*/ + 2 /*move*/ + 1 /*depth*/ + 1 /*flag*/

// Entry is one transposition table slot.
type Entry struct {
	Hash  Key
	Score Value
	Move  Move
	Depth int8
	Flag  Flag
}

// MinSizeMiB and MaxSizeMiB bound the table size accepted by New and
// Resize; requests outside the window are clamped, per the engine's
// configuration error-handling policy.
const (
	MinSizeMiB = 1
	MaxSizeMiB = 1024
)

// Table is the transposition table. The zero value is not usable;
// create one with New.
type Table struct {
	entries []Entry
	mask    uint64

	Puts    uint64
	Hits    uint64
	Misses  uint64
	Stores  uint64
}

// clampSizeMiB restricts sizeMiB to [MinSizeMiB, MaxSizeMiB],
// returning whether it had to clamp (for the caller to log).
func clampSizeMiB(sizeMiB int) (int, bool) {
	switch {
	case sizeMiB < MinSizeMiB:
		return MinSizeMiB, true
	case sizeMiB > MaxSizeMiB:
		return MaxSizeMiB, true
	default:
		return sizeMiB, false
	}
}

// New creates a Table sized to the largest power-of-two entry count
// that fits within sizeMiB. Returns the requested size after clamping
// (SizeMiB reports the memory the entries actually use) and whether
// the requested size was clamped into range.
func New(sizeMiB int) (*Table, int, bool) {
	sizeMiB, clamped := clampSizeMiB(sizeMiB)
	bytes := uint64(sizeMiB) * 1024 * 1024
	numEntries := uint64(1) << uint(math.Floor(math.Log2(float64(bytes)/float64(entrySize))))
	if numEntries == 0 {
		numEntries = 1
	}
	t := &Table{
		entries: make([]Entry, numEntries),
		mask:    numEntries - 1,
	}
	return t, sizeMiB, clamped
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry stored for key and true, or a zero Entry
// and false if the slot holds a different key (a miss, whether from
// an empty slot or a genuine collision — both are indistinguishable
// and both are treated as "not found").
func (t *Table) Probe(key Key) (Entry, bool) {
	e := &t.entries[t.index(key)]
	if e.Hash != key || e.Flag == None {
		t.Misses++
		return Entry{}, false
	}
	t.Hits++
	return *e, true
}

// Store writes an entry for key, subject to depth-preferred
// replacement: a slot is overwritten when it is empty, holds a
// different key, or the incoming depth is at least as deep as what's
// stored.
func (t *Table) Store(key Key, score Value, move Move, depth int8, flag Flag) {
	if len(t.entries) == 0 {
		return
	}
	t.Stores++
	e := &t.entries[t.index(key)]
	if e.Hash != key || depth >= e.Depth {
		*e = Entry{Hash: key, Score: score, Move: move, Depth: depth, Flag: flag}
	}
}

// Clear zeros every entry, parallelized across a worker pool of
// goroutines so a large table clears quickly. errgroup is used purely
// for its supervision: the workers never fail and Clear returns no
// error.
func (t *Table) Clear() {
	const workers = 16
	if len(t.entries) == 0 {
		return
	}
	g, _ := errgroup.WithContext(context.Background())
	chunk := (len(t.entries) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(t.entries) {
			break
		}
		end := start + chunk
		if end > len(t.entries) {
			end = len(t.entries)
		}
		g.Go(func() error {
			clear := t.entries[start:end]
			for i := range clear {
				clear[i] = Entry{}
			}
			return nil
		})
	}
	_ = g.Wait()
	t.Puts, t.Hits, t.Misses, t.Stores = 0, 0, 0, 0
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// SizeMiB returns the table's memory footprint in mebibytes.
func (t *Table) SizeMiB() int {
	return len(t.entries) * entrySize / (1024 * 1024)
}

// Hashfull estimates how full the table is in permille, as UCI's
// `info hashfull` expects, by sampling the first 1000 slots.
func (t *Table) Hashfull() int {
	if len(t.entries) == 0 {
		return 0
	}
	n := len(t.entries)
	if n > 1000 {
		n = 1000
	}
	used := 0
	for i := 0; i < n; i++ {
		if t.entries[i].Flag != None {
			used++
		}
	}
	return used * 1000 / n
}

// String summarizes table occupancy and traffic for logging.
func (t *Table) String() string {
	return out.Sprintf("tt: %d entries (%d MiB), %d stores, %d hits, %d misses",
		len(t.entries), t.SizeMiB(), t.Stores, t.Hits, t.Misses)
}
