package seq

import "testing"

func TestPartition(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	rest, matched := Partition([]int{1, 2, 3, 4, 5}, even)
	if !intSliceEqual(rest, []int{1, 3, 5}) {
		t.Errorf("rest = %v, want [1 3 5]", rest)
	}
	if !intSliceEqual(matched, []int{2, 4}) {
		t.Errorf("matched = %v, want [2 4]", matched)
	}
}

func TestPartition_ConcatIsPermutation(t *testing.T) {
	in := []int{5, 2, 8, 1, 2}
	even := func(n int) bool { return n%2 == 0 }
	rest, matched := Partition(in, even)
	if len(rest)+len(matched) != len(in) {
		t.Fatalf("sizes %d+%d != %d", len(rest), len(matched), len(in))
	}
	for _, n := range rest {
		if even(n) {
			t.Errorf("rest element %d satisfies predicate", n)
		}
	}
	for _, n := range matched {
		if !even(n) {
			t.Errorf("matched element %d fails predicate", n)
		}
	}
}

func TestPartition_Empty(t *testing.T) {
	rest, matched := Partition([]int{}, func(int) bool { return true })
	if len(rest) != 0 || len(matched) != 0 {
		t.Errorf("expected two empty groups, got %v / %v", rest, matched)
	}
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	groups := GroupBy(words, func(s string) byte { return s[0] })
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if !strSliceEqual(groups['a'], []string{"apple", "avocado"}) {
		t.Errorf("group a = %v", groups['a'])
	}
	if !strSliceEqual(groups['b'], []string{"banana", "blueberry"}) {
		t.Errorf("group b = %v", groups['b'])
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]int{1, 2, 1, 3, 2, 4})
	if !intSliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v, want [1 2 3 4]", got)
	}
}

func TestChunk(t *testing.T) {
	got := Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	if !intSliceEqual(got[0], []int{1, 2}) || !intSliceEqual(got[1], []int{3, 4}) || !intSliceEqual(got[2], []int{5}) {
		t.Errorf("got %v", got)
	}
}

func TestChunk_SizeBelowOne(t *testing.T) {
	got := Chunk([]int{1, 2}, 0)
	if len(got) != 2 {
		t.Errorf("size 0 should clamp to 1, got %v", got)
	}
}

func TestKeysValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := Sorted(Keys(m))
	if !strSliceEqual(keys, []string{"a", "b"}) {
		t.Errorf("keys = %v", keys)
	}
	vals := Sorted(Values(m))
	if !intSliceEqual(vals, []int{1, 2}) {
		t.Errorf("values = %v", vals)
	}
}
