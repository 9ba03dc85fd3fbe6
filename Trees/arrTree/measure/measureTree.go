package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"testing"
	"text/tabwriter"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/Trees/arrTree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN = flag.Int("n", 100000, "number of random keys put into each structure")
	bRuns = flag.Int("runs", 5, "benchmark runs per structure")
	seed  = flag.Int64("seed", 0, "seed of the key generator")
)

// store is one structure under measurement: put then get every key once.
type store struct {
	name string
	put  func(k, v int)
	get  func(k int) (int, bool)
}

type kv struct{ k, v int }

func (a kv) Less(than llrb.Item) bool {
	return a.k < than.(kv).k
}

func stores(hint int) []func() store {
	return []func() store{
		func() store {
			t := Trees.New[int, int]()
			return store{"PointerTree", t.Put, t.Get}
		},
		func() store {
			t := arrTree.New[int, int](hint)
			return store{"ArenaTree", func(k, v int) { t.Put(k, v) }, t.Get}
		},
		func() store {
			t := btree.NewG[kv](32, func(a, b kv) bool { return a.k < b.k })
			return store{"google/btree", func(k, v int) { t.ReplaceOrInsert(kv{k, v}) }, func(k int) (int, bool) {
				a, ok := t.Get(kv{k: k})
				return a.v, ok
			}}
		},
		func() store {
			t := llrb.New()
			return store{"GoLLRB", func(k, v int) { t.ReplaceOrInsert(kv{k, v}) }, func(k int) (int, bool) {
				if a := t.Get(kv{k: k}); a != nil {
					return a.(kv).v, true
				}
				return 0, false
			}}
		},
		func() store {
			t := redblacktree.NewWithIntComparator()
			return store{"gods/redblacktree", func(k, v int) { t.Put(k, v) }, func(k int) (int, bool) {
				if a, ok := t.Get(k); ok {
					return a.(int), true
				}
				return 0, false
			}}
		},
		func() store {
			m := haxmap.New[int, int]()
			return store{"haxmap", m.Set, m.Get}
		},
		func() store {
			m := hashmap.New[int, int]()
			return store{"cornelk/hashmap", m.Set, m.Get}
		},
	}
}

var sideEff int

// benchmark returns a benchmark that fills a fresh store with keys and then
// looks every key up again.
func benchmark(mk func() store, keys []int) func(*testing.B) {
	return func(b *testing.B) {
		for range b.N {
			s := mk()
			for i, k := range keys {
				s.put(k, i)
			}
			for _, k := range keys {
				v, ok := s.get(k)
				if !ok {
					b.Fatalf("%s lost key %d", s.name, k)
				}
				sideEff = v
			}
		}
	}
}

func meanStddev(xs []float64) (float64, float64) {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	avg := sum / float64(len(xs))
	sum = 0
	for _, x := range xs {
		d := x - avg
		sum += d * d
	}
	return avg, math.Sqrt(sum / float64(len(xs)))
}

func main() {
	testing.Init()
	flag.Parse()
	if *bAddN <= 0 || *bRuns <= 0 {
		fmt.Fprintln(os.Stderr, "measure: -n and -runs must be positive")
		os.Exit(2)
	}
	r := rand.New(rand.NewSource(*seed))
	keys := make([]int, *bAddN)
	for i := range keys {
		keys[i] = r.Int()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "structure\tmean ms/op\tstddev ms/op\t\n")
	for _, mk := range stores(*bAddN) {
		cs := make([]float64, 0, *bRuns)
		for range *bRuns {
			br := testing.Benchmark(benchmark(mk, keys))
			cs = append(cs, float64(br.NsPerOp())/1e6)
		}
		avg, dev := meanStddev(cs)
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t\n", mk().name, avg, dev)
	}
	w.Flush()
}
