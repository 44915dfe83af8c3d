// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/miu200521358/mu_weightcopy/pkg/domain/model"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
)

const normalizeTestMesh = `
groups: [A, B]
vertices:
  - weights: {A: 3, B: 1}
  - weights: {A: 0, B: 0}
  - weights: {}
  - weights: {A: 0.25, B: 0.75}
`

func TestNormalizeScalesLiveWeights(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, normalizeTestMesh))
	result, err := uc.Normalize(NormalizeRequest{Targets: []int{0, 3}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 3}, result.NormalizedVertices)

	got := mustShow(t, uc, 0)
	require.InDelta(t, 0.75, got["A"], 1e-9)
	require.InDelta(t, 0.25, got["B"], 1e-9)
	if !scalar.EqualWithinAbs(mustShow(t, uc, 3).Sum(), 1.0, 1e-6) {
		t.Fatalf("already normalized vertex should stay normalized")
	}
	require.InDelta(t, 0.25, mustShow(t, uc, 3)["A"], 1e-12)
}

func TestNormalizeSkipsZeroTotal(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, normalizeTestMesh))
	result, err := uc.Normalize(NormalizeRequest{Targets: []int{1, 2}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, result.SkippedVertices)
	require.Empty(t, result.NormalizedVertices)
	require.Equal(t, []string{model.WeightWarningNormalizeSkipped}, result.Warnings)

	require.Equal(t, weight.WeightSet{"A": 0, "B": 0}, mustShow(t, uc, 1))
	require.Empty(t, mustShow(t, uc, 2))
}

func TestNormalizeReportsUnknownVertex(t *testing.T) {
	uc := newTestUsecase(newTestMesh(t, normalizeTestMesh))
	result, err := uc.Normalize(NormalizeRequest{Targets: []int{5}})
	require.ErrorIs(t, err, weight.ErrVertexNotFound)
	require.Equal(t, []int{5}, result.FailedVertices)
}
