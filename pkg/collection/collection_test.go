package collection_test

import (
	"testing"

	"github.com/familycar/datastore/pkg/collection"
)

func TestFilterAndReject(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	even := func(n int) bool { return n%2 == 0 }

	got := collection.Filter(nums, even)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Filter = %v, want [2 4]", got)
	}

	odd := collection.Reject(nums, even)
	if len(odd) != 3 {
		t.Errorf("Reject = %v, want [1 3 5]", odd)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := collection.Filter(nil, func(int) bool { return true })
	if got != nil {
		t.Errorf("Filter(nil) = %v, want nil", got)
	}
}

func TestFirst(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}

	v, ok := collection.First(words, func(s string) bool { return len(s) == 4 })
	if !ok || v != "beta" {
		t.Errorf("First = %q, %v, want beta, true", v, ok)
	}

	_, ok = collection.First(words, func(s string) bool { return s == "delta" })
	if ok {
		t.Error("First should miss on delta")
	}
}

func TestFindIndex(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}

	if i := collection.FindIndex(words, func(s string) bool { return s == "gamma" }); i != 2 {
		t.Errorf("FindIndex = %d, want 2", i)
	}
	if i := collection.FindIndex(words, func(s string) bool { return s == "delta" }); i != -1 {
		t.Errorf("FindIndex miss = %d, want -1", i)
	}
}

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * n })
	if len(got) != 3 || got[2] != 9 {
		t.Errorf("Map = %v, want [1 4 9]", got)
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	got := collection.SortedKeys(m)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("SortedKeys = %v, want [a b c]", got)
	}
}
