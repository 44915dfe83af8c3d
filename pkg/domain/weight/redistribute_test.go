// 指示: miu200521358
package weight

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestRedistributeReplaceScalesOthersProportionally(t *testing.T) {
	got, err := Redistribute(WeightSet{"A": 0.5, "B": 0.3, "C": 0.2}, "A", 0.8, BlendReplace)
	require.NoError(t, err)

	want := WeightSet{"A": 0.8, "B": 0.12, "C": 0.08}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("redistribute mismatch (-want +got):\n%s", diff)
	}
	if !scalar.EqualWithinAbs(got.Sum(), 1.0, 1e-9) {
		t.Fatalf("sum should stay 1: %v", got.Sum())
	}
}

func TestRedistributeAddClampsAndRescales(t *testing.T) {
	got, err := Redistribute(WeightSet{"A": 0.4, "B": 0.6}, "A", 0.3, BlendAdd)
	require.NoError(t, err)
	if diff := cmp.Diff(WeightSet{"A": 0.7, "B": 0.3}, got, approx); diff != "" {
		t.Fatalf("add mismatch (-want +got):\n%s", diff)
	}

	got, err = Redistribute(WeightSet{"A": 0.8, "B": 0.2}, "A", 0.5, BlendAdd)
	require.NoError(t, err)
	if diff := cmp.Diff(WeightSet{"A": 1.0, "B": 0}, got, approx); diff != "" {
		t.Fatalf("add clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestRedistributeSubtractClampsAtZero(t *testing.T) {
	got, err := Redistribute(WeightSet{"A": 0.2, "B": 0.8}, "A", 0.5, BlendSubtract)
	require.NoError(t, err)
	if diff := cmp.Diff(WeightSet{"A": 0, "B": 1.0}, got, approx); diff != "" {
		t.Fatalf("subtract mismatch (-want +got):\n%s", diff)
	}
}

func TestRedistributeZeroOthersLeavesThemAtZero(t *testing.T) {
	got, err := Redistribute(WeightSet{"A": 1.0, "B": 0, "C": 0}, "A", 0.4, BlendReplace)
	require.NoError(t, err)
	if diff := cmp.Diff(WeightSet{"A": 0.4, "B": 0, "C": 0}, got); diff != "" {
		t.Fatalf("zero others mismatch (-want +got):\n%s", diff)
	}

	got, err = Redistribute(WeightSet{"A": 0}, "A", 0.6, BlendReplace)
	require.NoError(t, err)
	if diff := cmp.Diff(WeightSet{"A": 0.6}, got); diff != "" {
		t.Fatalf("single group mismatch (-want +got):\n%s", diff)
	}
}

func TestRedistributeReplaceAboveOneNeverGoesNegative(t *testing.T) {
	got, err := Redistribute(WeightSet{"A": 0.5, "B": 0.5}, "A", 1.5, BlendReplace)
	require.NoError(t, err)
	if got["B"] != 0 {
		t.Fatalf("others should drop to zero: %v", got)
	}
	if got["A"] != 1.5 {
		t.Fatalf("replace should not clamp: %v", got)
	}
}

func TestRedistributeRequiresActiveGroup(t *testing.T) {
	_, err := Redistribute(WeightSet{"B": 1.0}, "A", 0.5, BlendReplace)
	if !errors.Is(err, ErrActiveGroupMissing) {
		t.Fatalf("expected ErrActiveGroupMissing: %v", err)
	}
}

func TestRedistributeRejectsInvalidInput(t *testing.T) {
	_, err := Redistribute(WeightSet{"A": -0.2, "B": 1.2}, "A", 0.5, BlendReplace)
	require.ErrorIs(t, err, ErrInvalidWeightSet)

	_, err = Redistribute(WeightSet{"A": 0.2}, "A", -0.5, BlendReplace)
	require.ErrorIs(t, err, ErrInvalidWeight)

	_, err = Redistribute(WeightSet{"A": 0.2}, "A", 0.5, BlendMode(9))
	require.ErrorIs(t, err, ErrInvalidBlendMode)
}

func TestRedistributeDoesNotMutateInput(t *testing.T) {
	input := WeightSet{"A": 0.5, "B": 0.5}
	_, err := Redistribute(input, "A", 0.9, BlendReplace)
	require.NoError(t, err)
	require.Equal(t, WeightSet{"A": 0.5, "B": 0.5}, input)
}

func TestParseBlendMode(t *testing.T) {
	for input, want := range map[string]BlendMode{
		"":         BlendReplace,
		"REPLACE":  BlendReplace,
		"add":      BlendAdd,
		"Subtract": BlendSubtract,
		"sub":      BlendSubtract,
	} {
		got, err := ParseBlendMode(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
	_, err := ParseBlendMode("multiply")
	require.ErrorIs(t, err, ErrInvalidBlendMode)
}
