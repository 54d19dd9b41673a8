package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestConversion_Fields(t *testing.T) {
	cause := stderrors.New("not a number")
	err := Conversion("map", 3, cause)
	if err.Code != ErrCodeConversion {
		t.Errorf("expected code %s, got %s", ErrCodeConversion, err.Code)
	}
	if err.Stage != "map" {
		t.Errorf("expected stage 'map', got %q", err.Stage)
	}
	if err.Index != 3 {
		t.Errorf("expected index 3, got %d", err.Index)
	}
	if err.Cause != cause {
		t.Error("cause not retained")
	}
}

func TestConversion_ErrorString(t *testing.T) {
	err := Conversion("map", 2, stderrors.New("bad input"))
	msg := err.Error()
	for _, want := range []string{"CONVERSION_FAILED", "map", "element 2", "bad input"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error string %q missing %q", msg, want)
		}
	}
}

func TestStageAborted_NoIndex(t *testing.T) {
	err := StageAborted("sort", stderrors.New("upstream failed"))
	if err.Index != -1 {
		t.Errorf("expected index -1, got %d", err.Index)
	}
	if strings.Contains(err.Error(), "element") {
		t.Errorf("error string should not mention an element: %q", err.Error())
	}
}

func TestWithValue(t *testing.T) {
	err := Conversion("map", 0, stderrors.New("boom")).WithValue("three")
	if err.Value != "three" {
		t.Errorf("expected value 'three', got %v", err.Value)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Conversion("map", 1, cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestIsConversion(t *testing.T) {
	conv := Conversion("map", 0, stderrors.New("x"))
	if !IsConversion(conv) {
		t.Error("IsConversion on a conversion error should be true")
	}
	if !IsConversion(fmt.Errorf("wrapped: %w", conv)) {
		t.Error("IsConversion should see through wrapping")
	}
	if IsConversion(StageAborted("sort", nil)) {
		t.Error("IsConversion on a stage abort should be false")
	}
	if IsConversion(stderrors.New("plain")) {
		t.Error("IsConversion on a plain error should be false")
	}
}

func TestAsTransform(t *testing.T) {
	orig := StageAborted("filter", stderrors.New("x"))
	te, ok := AsTransform(fmt.Errorf("chain: %w", orig))
	if !ok || te.Stage != "filter" {
		t.Errorf("AsTransform = (%v, %v), want original error", te, ok)
	}
	if _, ok := AsTransform(stderrors.New("plain")); ok {
		t.Error("AsTransform on a plain error should report false")
	}
}
