package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnIsCentered(t *testing.T) {
	tests := []struct {
		kind  Kind
		cols  int
		wantX int
	}{
		{KindI, 10, 3},
		{KindJ, 10, 4},
		{KindL, 10, 4},
		{KindO, 10, 4},
		{KindS, 10, 4},
		{KindZ, 10, 4},
		{KindT, 10, 4},
		{KindI, 7, 1},
		{KindO, 7, 2},
	}

	for _, tc := range tests {
		p := SpawnKind(tc.kind, tc.cols)
		assert.Equal(t, tc.wantX, p.X, "kind %s on %d columns", tc.kind, tc.cols)
		assert.Zero(t, p.Y)
		assert.Equal(t, int(tc.kind), p.Color)
		assert.True(t, p.Shape.Equal(ShapeOf(tc.kind)))
	}
}

func TestGeneratorUsesRandomizer(t *testing.T) {
	gen := NewGenerator(10, NewSequenceRandomizer(6, 0, 3))

	assert.Equal(t, KindT, gen.Spawn().Kind)
	assert.Equal(t, KindI, gen.Spawn().Kind)
	assert.Equal(t, KindO, gen.Spawn().Kind)
	assert.Equal(t, KindT, gen.Spawn().Kind, "sequence wraps around")
}

func TestGeneratorProducesEveryKind(t *testing.T) {
	gen := NewGenerator(10, NewRandRandomizer(7))
	seen := make(map[Kind]int)
	for i := 0; i < 700; i++ {
		seen[gen.Spawn().Kind]++
	}

	require.Len(t, seen, KindCount)
	for _, k := range Kinds {
		assert.Greater(t, seen[k], 50, "kind %s is underrepresented", k)
	}
}

func TestGeneratorSameSeedSameSequence(t *testing.T) {
	a := NewGenerator(10, NewRandRandomizer(99))
	b := NewGenerator(10, NewRandRandomizer(99))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Spawn().Kind, b.Spawn().Kind, "spawn %d", i)
	}
}

func TestSequenceRandomizerBounds(t *testing.T) {
	r := NewSequenceRandomizer(-1, 9)
	assert.Equal(t, 6, r.NextIndex(7))
	assert.Equal(t, 2, r.NextIndex(7))

	empty := NewSequenceRandomizer()
	assert.Zero(t, empty.NextIndex(7))
}

func TestSpawnReturnsFreshShape(t *testing.T) {
	gen := NewGenerator(10, NewSequenceRandomizer(0))
	p := gen.Spawn()
	p.Shape[0][0] = 0

	assert.Equal(t, 4, gen.Spawn().Shape.Cells())
}
