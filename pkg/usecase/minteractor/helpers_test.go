// 指示: miu200521358
package minteractor

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/io_mesh"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/shared/base/logging"
)

// newTestMesh はYAMLからテスト用メッシュを生成する。
func newTestMesh(t *testing.T, doc string) *io_mesh.Mesh {
	t.Helper()
	mesh, err := io_mesh.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode mesh failed: %v", err)
	}
	return mesh
}

// newTestUsecase はログを捨てるユースケースを生成する。
func newTestUsecase(mesh *io_mesh.Mesh) *WeightCopyUsecase {
	return NewWeightCopyUsecase(WeightCopyUsecaseDeps{
		Mesh:   mesh,
		Logger: logging.NewLogger(slog.NewTextHandler(io.Discard, nil)),
	})
}

// newBufferedUsecase はログをバッファへ書くユースケースを生成する。
func newBufferedUsecase(mesh *io_mesh.Mesh) (*WeightCopyUsecase, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	uc := NewWeightCopyUsecase(WeightCopyUsecaseDeps{
		Mesh:   mesh,
		Logger: logging.NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	return uc, buf
}

// mustShow は頂点の現在のウェイトを返す。
func mustShow(t *testing.T, uc *WeightCopyUsecase, vertexIndex int) weight.WeightSet {
	t.Helper()
	result, err := uc.Show(vertexIndex)
	if err != nil {
		t.Fatalf("show vertex %d failed: %v", vertexIndex, err)
	}
	return result.Weights
}

// progressRecorder は進捗イベントを記録する。
type progressRecorder struct {
	events []WeightProgressEvent
}

func (r *progressRecorder) ReportWeightProgress(event WeightProgressEvent) {
	r.events = append(r.events, event)
}

func (r *progressRecorder) types() []WeightProgressEventType {
	types := make([]WeightProgressEventType, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}
	return types
}
