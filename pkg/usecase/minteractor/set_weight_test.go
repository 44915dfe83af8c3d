// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_weightcopy/pkg/domain/model"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
)

const setWeightTestMesh = `
groups: [A, B, C]
selected: [0]
vertices:
  - weights: {A: 0.5, B: 0.3, C: 0.2}
  - weights: {A: 0.4, B: 0.6}
  - weights: {B: 1.0}
  - weights: {}
`

func TestSetWeightReplaceRedistributesOthers(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, setWeightTestMesh))
	result, err := uc.SetWeight(SetWeightRequest{Group: "A", Value: 0.8, Mode: weight.BlendReplace})
	require.NoError(t, err)
	require.Equal(t, []int{0}, result.UpdatedVertices)

	want := weight.WeightSet{"A": 0.8, "B": 0.12, "C": 0.08}
	if diff := cmp.Diff(want, mustShow(t, uc, 0), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("set weight mismatch (-want +got):\n%s", diff)
	}
}

func TestSetWeightAddClamps(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, setWeightTestMesh))
	_, err := uc.SetWeight(SetWeightRequest{Targets: []int{1}, Group: "A", Value: 0.3, Mode: weight.BlendAdd})
	require.NoError(t, err)

	want := weight.WeightSet{"A": 0.7, "B": 0.3}
	if diff := cmp.Diff(want, mustShow(t, uc, 1), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("add mismatch (-want +got):\n%s", diff)
	}
}

func TestSetWeightTreatsMissingGroupAsZero(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, setWeightTestMesh))
	_, err := uc.SetWeight(SetWeightRequest{Targets: []int{2}, Group: "A", Value: 0.25, Mode: weight.BlendReplace})
	require.NoError(t, err)

	want := weight.WeightSet{"A": 0.25, "B": 0.75}
	if diff := cmp.Diff(want, mustShow(t, uc, 2), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("missing group mismatch (-want +got):\n%s", diff)
	}
}

func TestSetWeightSubtractOnVertexWithoutGroups(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, setWeightTestMesh))
	result, err := uc.SetWeight(SetWeightRequest{Targets: []int{3}, Group: "D", Value: 0.5, Mode: weight.BlendSubtract})
	require.NoError(t, err)
	require.Equal(t, weight.WeightSet{"D": 0}, mustShow(t, uc, 3))
	require.Contains(t, result.Warnings, model.WeightWarningGroupCreated)
}

func TestSetWeightValidatesBeforeMutation(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, setWeightTestMesh))
	_, err := uc.SetWeight(SetWeightRequest{Targets: []int{0}, Group: "A", Value: -0.5, Mode: weight.BlendReplace})
	require.ErrorIs(t, err, weight.ErrInvalidWeight)

	_, err = uc.SetWeight(SetWeightRequest{Targets: []int{0}, Group: " ", Value: 0.5})
	require.ErrorIs(t, err, weight.ErrInvalidWeightSet)

	require.Equal(t, weight.WeightSet{"A": 0.5, "B": 0.3, "C": 0.2}, mustShow(t, uc, 0))
}

func TestSetWeightReportsFailedVertices(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, setWeightTestMesh))
	recorder := &progressRecorder{}
	result, err := uc.SetWeight(SetWeightRequest{
		Targets:          []int{7, 1},
		Group:            "B",
		Value:            1.0,
		ProgressReporter: recorder,
	})
	require.ErrorIs(t, err, weight.ErrVertexNotFound)
	require.Equal(t, []int{7}, result.FailedVertices)
	require.Equal(t, []int{1}, result.UpdatedVertices)
	require.Equal(t, weight.WeightSet{"A": 0, "B": 1.0}, result.Weights[1])
	require.Equal(t, []WeightProgressEventType{
		WeightProgressEventTypeTargetsResolved,
		WeightProgressEventTypeVertexWeightSet,
		WeightProgressEventTypeCompleted,
	}, recorder.types())
}
