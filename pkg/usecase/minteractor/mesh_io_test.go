// 指示: miu200521358
package minteractor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/io_mesh"
)

func TestLoadAndSaveMeshWithDefaultRepositories(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "in.yaml")
	outPath := filepath.Join(tempDir, "out.yaml")

	repo := io_mesh.NewMeshRepository()
	require.NoError(t, repo.Save(inPath, newTestMesh(t, pasteTestMesh)))

	uc := NewWeightCopyUsecase(WeightCopyUsecaseDeps{MeshReader: repo, MeshWriter: repo})
	mesh, err := uc.LoadMesh(nil, inPath)
	require.NoError(t, err)
	uc.SetMesh(mesh)

	_, err = uc.Copy(CopyRequest{VertexIndex: 0})
	require.NoError(t, err)
	_, err = uc.Paste(PasteRequest{Targets: []int{3}})
	require.NoError(t, err)
	require.NoError(t, uc.SaveMesh(nil, outPath, uc.Mesh()))

	saved, err := repo.Load(outPath)
	require.NoError(t, err)
	value, ok := saved.VertexGroupWeight(3, "Arm")
	require.True(t, ok)
	require.Equal(t, 0.6, value)
}

func TestLoadMeshRequiresRepository(t *testing.T) {
	uc := NewWeightCopyUsecase(WeightCopyUsecaseDeps{})
	_, err := uc.LoadMesh(nil, "mesh.yaml")
	require.Error(t, err)
	require.Error(t, uc.SaveMesh(nil, "mesh.yaml", io_mesh.NewMesh(1)))
}

func TestLoadMeshRejectsUnsupportedExt(t *testing.T) {
	uc := NewWeightCopyUsecase(WeightCopyUsecaseDeps{MeshReader: io_mesh.NewMeshRepository()})
	_, err := uc.LoadMesh(nil, "mesh.pmx")
	require.Error(t, err)
}

func TestSaveMeshRequiresPath(t *testing.T) {
	repo := io_mesh.NewMeshRepository()
	uc := NewWeightCopyUsecase(WeightCopyUsecaseDeps{MeshWriter: repo})
	require.Error(t, uc.SaveMesh(nil, " ", io_mesh.NewMesh(1)))
	require.Error(t, uc.SaveMesh(nil, "out.yaml", nil))
}
