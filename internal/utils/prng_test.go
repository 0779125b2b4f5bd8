package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewPRNGService(1)
	b := NewPRNGService(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Intn(1 << 30) != b.Intn(1 << 30) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestFloatRangeBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.FloatRange(0.5, 1.0)
		assert.GreaterOrEqual(t, v, 0.5)
		assert.Less(t, v, 1.0)
	}
}
