package Trees

import (
	"math/rand"
	"testing"
)

const (
	bAddN = 100000
)

var bR = rand.New(rand.NewSource(0))

func create(b *testing.B) (*PointerTree[int, int], []int) {
	b.Helper()
	tree := New[int, int]()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = bR.Int()
		tree.Put(all[i], i)
	}
	return tree, all
}

func BenchmarkPut(b *testing.B) {
	for range b.N {
		tree := New[int, int]()
		for i := range bAddN {
			tree.Put(bR.Int(), i)
		}
	}
}

var sideEff int

func BenchmarkGet(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = tree.Get(all[i%bAddN])
	}
}

func BenchmarkSelect(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff, _ = tree.Select(i % bAddN)
	}
}

func BenchmarkDelete(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}
