package pipeline

import (
	"context"
	"strconv"
	"strings"
	"testing"

	kiterrors "github.com/seqkit/seqkit/errors"
	"github.com/seqkit/seqkit/option"
)

func TestApply_SingleStage(t *testing.T) {
	got, err := Apply(context.Background(), []int{1, 2, 3, 4},
		FilterStage(func(n int) bool { return n%2 == 0 }))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestApplyChain(t *testing.T) {
	words := []string{"peter", "", "roxana", "", "jacob"}
	got, err := ApplyChain(context.Background(), words,
		FilterStage(func(s string) bool { return s != "" }),
		MapStage(func(s string) (string, error) { return strings.ToUpper(s), nil }),
		SortStage[string](),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"JACOB", "PETER", "ROXANA"}) {
		t.Errorf("got %v", got)
	}
}

func TestApplyChain_EachStageCompletes(t *testing.T) {
	// Sorting after filtering only sees the filtered values, proving the
	// filter ran to completion before the sort began.
	got, err := ApplyChain(context.Background(), []int{5, 2, 4, 1, 3},
		FilterStage(func(n int) bool { return n != 5 }),
		SortStage[int](),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v, want [1 2 3 4]", got)
	}
}

func TestApplyChain_InputNotMutated(t *testing.T) {
	in := []int{3, 1, 2}
	_, err := ApplyChain(context.Background(), in, SortStage[int]())
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(in, []int{3, 1, 2}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestApplyChain_Empty(t *testing.T) {
	got, err := ApplyChain(context.Background(), []int{},
		MapStage(func(n int) (int, error) { return n * 2, nil }),
		SortStage[int](),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestApplyChain_NoStages(t *testing.T) {
	got, err := ApplyChain(context.Background(), []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want input back", got)
	}
}

func TestMapStage_FailureAbortsChain(t *testing.T) {
	laterRan := false
	spy := Stage[string]{
		name: "spy",
		run: func(items []string) ([]string, error) {
			laterRan = true
			return items, nil
		},
	}
	_, err := ApplyChain(context.Background(), []string{"1", "x", "3"},
		MapStage(func(s string) (string, error) {
			if _, err := strconv.Atoi(s); err != nil {
				return "", err
			}
			return s, nil
		}),
		spy,
	)
	if err == nil {
		t.Fatal("expected error from failing map stage")
	}
	if !kiterrors.IsConversion(err) {
		t.Errorf("expected conversion error, got %v", err)
	}
	if te, ok := kiterrors.AsTransform(err); !ok || te.Index != 1 {
		t.Errorf("expected failure at element 1, got %v", err)
	}
	if laterRan {
		t.Error("later stage ran after a failing stage")
	}
}

func TestCompactMapStage(t *testing.T) {
	got, err := Apply(context.Background(), []string{"1", "2", "three", "four", "5"},
		CompactMapStage(func(s string) option.Option[string] {
			if _, err := strconv.Atoi(s); err != nil {
				return option.None[string]()
			}
			return option.Some(s)
		}))
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"1", "2", "5"}) {
		t.Errorf("got %v, want [1 2 5]", got)
	}
}

func TestFlatMapStage(t *testing.T) {
	got, err := Apply(context.Background(), []int{1, 2},
		FlatMapStage(func(n int) []int { return []int{n, n} }))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 1, 2, 2}) {
		t.Errorf("got %v, want [1 1 2 2]", got)
	}
}

func TestRemoveStage(t *testing.T) {
	got, err := Apply(context.Background(), []int{1, 2, 3, 4},
		RemoveStage(func(n int) bool { return n > 2 }))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSortByStage(t *testing.T) {
	got, err := Apply(context.Background(), []string{"bb", "a", "ccc"},
		SortByStage(func(a, b string) int { return len(b) - len(a) }))
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"ccc", "bb", "a"}) {
		t.Errorf("got %v, want longest first", got)
	}
}

func TestApplyChain_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ApplyChain(ctx, []int{1, 2}, SortStage[int]())
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	te, ok := kiterrors.AsTransform(err)
	if !ok || te.Code != kiterrors.ErrCodeStageAborted {
		t.Errorf("expected stage abort, got %v", err)
	}
}

func TestStage_Name(t *testing.T) {
	if got := SortStage[int]().Name(); got != "sort" {
		t.Errorf("Name() = %q, want sort", got)
	}
	if got := CompactMapStage(func(n int) option.Option[int] { return option.Some(n) }).Name(); got != "compact_map" {
		t.Errorf("Name() = %q, want compact_map", got)
	}
}
