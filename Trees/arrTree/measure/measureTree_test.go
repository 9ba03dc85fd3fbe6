package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	keys := []int{12, 15, 5, 8, 1, 8}
	for _, mk := range stores(len(keys)) {
		s := mk()
		t.Run(s.name, func(t *testing.T) {
			for i, k := range keys {
				s.put(k, i)
			}
			v, ok := s.get(8)
			require.True(t, ok)
			assert.Equal(t, 5, v)
			v, ok = s.get(12)
			require.True(t, ok)
			assert.Equal(t, 0, v)
			_, ok = s.get(100)
			assert.False(t, ok)
		})
	}
}

func TestMeanStddev(t *testing.T) {
	avg, dev := meanStddev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, avg, 1e-9)
	assert.InDelta(t, 2.0, dev, 1e-9)
}
