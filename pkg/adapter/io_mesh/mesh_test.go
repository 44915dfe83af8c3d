// 指示: miu200521358
package io_mesh

import (
	"errors"
	"testing"

	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
)

func TestMeshSetVertexGroupWeightRequiresGroup(t *testing.T) {
	mesh := NewMesh(2)
	err := mesh.SetVertexGroupWeight(0, "Arm", 0.5)
	if !errors.Is(err, weight.ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup: %v", err)
	}

	if err := mesh.NewVertexGroup("Arm"); err != nil {
		t.Fatalf("new group failed: %v", err)
	}
	if err := mesh.NewVertexGroup("Arm"); err != nil {
		t.Fatalf("new group should be idempotent: %v", err)
	}
	if got := len(mesh.VertexGroupNames()); got != 1 {
		t.Fatalf("group count mismatch: got=%d want=%d", got, 1)
	}
	if err := mesh.SetVertexGroupWeight(0, "Arm", 0.5); err != nil {
		t.Fatalf("set weight failed: %v", err)
	}
	value, ok := mesh.VertexGroupWeight(0, "Arm")
	if !ok || value != 0.5 {
		t.Fatalf("weight mismatch: got=%v ok=%v", value, ok)
	}
	if _, ok := mesh.VertexGroupWeight(1, "Arm"); ok {
		t.Fatalf("vertex 1 should not be a member")
	}
}

func TestMeshRemoveVertexFromGroupReportsNotAMember(t *testing.T) {
	mesh := NewMesh(1)
	_ = mesh.NewVertexGroup("Arm")
	err := mesh.RemoveVertexFromGroup(0, "Arm")
	if !errors.Is(err, weight.ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember: %v", err)
	}

	_ = mesh.SetVertexGroupWeight(0, "Arm", 1.0)
	if err := mesh.RemoveVertexFromGroup(0, "Arm"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := mesh.VertexGroupWeight(0, "Arm"); ok {
		t.Fatalf("vertex should be removed from group")
	}
}

func TestMeshRejectsUnknownVertex(t *testing.T) {
	mesh := NewMesh(1)
	_ = mesh.NewVertexGroup("Arm")
	if err := mesh.SetVertexGroupWeight(5, "Arm", 1.0); !errors.Is(err, weight.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound: %v", err)
	}
	if err := mesh.RemoveVertexFromGroup(-1, "Arm"); !errors.Is(err, weight.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound: %v", err)
	}
	if err := mesh.SetSelectedVertexIndexes([]int{0, 3}); !errors.Is(err, weight.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound: %v", err)
	}
}

func TestMeshSelectionIsSortedAndDeduplicated(t *testing.T) {
	mesh := NewMesh(4)
	if err := mesh.SetSelectedVertexIndexes([]int{3, 1, 3, 0}); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	got := mesh.SelectedVertexIndexes()
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("selection mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection mismatch: got=%v want=%v", got, want)
		}
	}
}

func TestMeshEditContextRestoresMode(t *testing.T) {
	mesh := NewMesh(1)
	mesh.SetMode(ModeEdit)
	restore, err := mesh.EnterEditContext()
	if err != nil {
		t.Fatalf("enter failed: %v", err)
	}
	if mesh.Mode() != ModeObject {
		t.Fatalf("mode mismatch: got=%s want=%s", mesh.Mode(), ModeObject)
	}
	restore()
	if mesh.Mode() != ModeEdit {
		t.Fatalf("mode should be restored: got=%s", mesh.Mode())
	}
}
