package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/tidewaterlabs/gambit/internal/types"
)

func TestNewClampsSize(t *testing.T) {
	_, mib, clamped := New(0)
	assert.Equal(t, MinSizeMiB, mib)
	assert.True(t, clamped)

	_, mib, clamped = New(100000)
	assert.Equal(t, MaxSizeMiB, mib)
	assert.True(t, clamped)

	_, mib, clamped = New(16)
	assert.Equal(t, 16, mib)
	assert.False(t, clamped)
}

func TestStoreAndProbe(t *testing.T) {
	table, _, _ := New(1)
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	table.Store(Key(12345), Value(50), m, 4, Exact)

	e, ok := table.Probe(Key(12345))
	assert.True(t, ok)
	assert.Equal(t, Value(50), e.Score)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, Exact, e.Flag)
}

func TestProbeMiss(t *testing.T) {
	table, _, _ := New(1)
	_, ok := table.Probe(Key(999))
	assert.False(t, ok)
}

func TestStoreDepthPreferredReplacement(t *testing.T) {
	table, _, _ := New(1)
	m := NewMove(SqE2, SqE4, Normal, PtNone)

	// index() depends only on the masked key bits, so two keys that
	// share the low bits collide in the same slot.
	mask := table.mask
	keyA := Key(1)
	keyB := Key(mask + 2) // differs from keyA in the high bits only

	table.Store(keyA, Value(10), m, 8, Exact)
	table.Store(keyA, Value(20), m, 2, Exact) // same key, shallower: must not replace
	e, ok := table.Probe(keyA)
	assert.True(t, ok)
	assert.Equal(t, Value(10), e.Score)

	table.Store(keyB, Value(30), m, 9, Exact) // different key in the same slot: must replace
	e, ok = table.Probe(keyB)
	assert.True(t, ok)
	assert.Equal(t, Value(30), e.Score)
}

func TestClear(t *testing.T) {
	table, _, _ := New(1)
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	table.Store(Key(1), Value(10), m, 4, Exact)
	assert.Equal(t, uint64(1), table.Stores)

	table.Clear()
	_, ok := table.Probe(Key(1))
	assert.False(t, ok)
	assert.Equal(t, uint64(0), table.Stores)
}

func TestHashfull(t *testing.T) {
	table, _, _ := New(1)
	assert.Equal(t, 0, table.Hashfull())
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	for i := 0; i < 100; i++ {
		table.Store(Key(i), Value(1), m, 1, Exact)
	}
	assert.Greater(t, table.Hashfull(), 0)
}
