package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 14

// keys in random order, so the unbalanced tree gets an average shape.
var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB
// and https://github.com/emirpasic/gods, which are balanced.
func setupBST(tb testing.TB) *Trees.BST[int, uint32] {
	tb.Helper()
	t := Trees.NewOrdered[int, uint32](benchmarkItemCount)
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func setupBTree(tb testing.TB) *btree.BTreeG[int] {
	tb.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(tb testing.TB) *llrb.LLRB {
	tb.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func setupRBTree(tb testing.TB) *redblacktree.Tree {
	tb.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, struct{}{})
	}
	return t
}

// the hash maps only give a lower bound for membership tests, they don't keep order.
func setupHashMap(tb testing.TB) *hashmap.Map[int, struct{}] {
	tb.Helper()
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupHaxMap(tb testing.TB) *haxmap.Map[int, struct{}] {
	tb.Helper()
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func BenchmarkInsertBST(b *testing.B) {
	for range b.N {
		setupBST(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkInsertRBTree(b *testing.B) {
	for range b.N {
		setupRBTree(b)
	}
}

func BenchmarkHasBST(b *testing.B) {
	t := setupBST(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(llrb.Int(k)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := t.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkRemoveBST(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBST(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func BenchmarkRemoveBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(k)
		}
	}
}

func BenchmarkRemoveLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkRemoveRBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupRBTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func BenchmarkInOrderBST(b *testing.B) {
	t := setupBST(b)
	b.ResetTimer()
	var st []uint32
	for range b.N {
		n := 0
		st = t.Walk(Trees.InOrderWalk, func(int) bool {
			n++
			return true
		}, st)
		if n != benchmarkItemCount {
			b.Fail()
		}
	}
}

func BenchmarkInOrderBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		n := 0
		t.Ascend(func(int) bool {
			n++
			return true
		})
		if n != benchmarkItemCount {
			b.Fail()
		}
	}
}

// TestSameOrder checks that all ordered containers above agree before they
// are compared.
func TestSameOrder(t *testing.T) {
	bst, bt, lr, rb := setupBST(t), setupBTree(t), setupLLRB(t), setupRBTree(t)
	got := bst.InOrder()
	i := 0
	bt.Ascend(func(k int) bool {
		if got[i] != k {
			t.Errorf("btree element %d is %d, want %d", i, k, got[i])
		}
		i++
		return true
	})
	i = 0
	lr.AscendGreaterOrEqual(llrb.Int(-1), func(k llrb.Item) bool {
		if got[i] != int(k.(llrb.Int)) {
			t.Errorf("llrb element %d is %v, want %d", i, k, got[i])
		}
		i++
		return true
	})
	for i, k := range rb.Keys() {
		if got[i] != k.(int) {
			t.Errorf("redblacktree element %d is %v, want %d", i, k, got[i])
		}
	}
	if len(got) != benchmarkItemCount || bt.Len() != len(got) || lr.Len() != len(got) || rb.Size() != len(got) {
		t.Errorf("sizes differ")
	}
}
