// 指示: miu200521358
package io_mesh

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
)

const sampleMeshYAML = `
groups: [Arm, Elbow]
selected: [2, 1]
vertices:
  - weights: {Arm: 0.7, Elbow: 0.3}
  - weights: {Hand: 1.0}
  - weights: {}
`

func TestDecodeBuildsGroupsInDeclaredOrder(t *testing.T) {
	mesh, err := Decode([]byte(sampleMeshYAML))
	require.NoError(t, err)

	require.Equal(t, 3, mesh.VertexCount())
	require.Equal(t, []string{"Arm", "Elbow", "Hand"}, mesh.VertexGroupNames())
	require.Equal(t, []int{1, 2}, mesh.SelectedVertexIndexes())

	value, ok := mesh.VertexGroupWeight(1, "Hand")
	require.True(t, ok)
	require.Equal(t, 1.0, value)
	_, ok = mesh.VertexGroupWeight(2, "Arm")
	require.False(t, ok)
}

func TestDecodeRejectsNegativeWeight(t *testing.T) {
	_, err := Decode([]byte("vertices:\n  - weights: {Arm: -0.5}\n"))
	require.True(t, errors.Is(err, weight.ErrInvalidWeightSet), "err=%v", err)
}

func TestRepositorySaveThenLoadKeepsMemberships(t *testing.T) {
	mesh, err := Decode([]byte(sampleMeshYAML))
	require.NoError(t, err)
	require.NoError(t, mesh.SetVertexGroupWeight(2, "Elbow", 0))

	repo := NewMeshRepository()
	path := filepath.Join(t.TempDir(), "out", "mesh.yaml")
	require.NoError(t, repo.Save(path, mesh))

	loaded, err := repo.Load(path)
	require.NoError(t, err)
	value, ok := loaded.VertexGroupWeight(2, "Elbow")
	require.True(t, ok, "zero weight membership should survive")
	require.Equal(t, 0.0, value)
	require.Equal(t, mesh.VertexGroupNames(), loaded.VertexGroupNames())
}

func TestRepositoryLoadRequiresYAMLExt(t *testing.T) {
	repo := NewMeshRepository()
	require.False(t, repo.CanLoad("mesh.pmx"))
	require.True(t, repo.CanLoad("mesh.YML"))

	_, err := repo.Load("mesh.pmx")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), ".yaml"))
}

func TestRepositoryLoadReportsMissingFile(t *testing.T) {
	_, err := NewMeshRepository().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist), "err=%v", err)
}
