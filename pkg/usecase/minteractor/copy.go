// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
)

// Copy は1頂点のウェイトを読み取り、セッションのクリップボードを置き換える。
// UseSelection なら選択頂点の先頭をコピー元にする。
func (uc *WeightCopyUsecase) Copy(request CopyRequest) (*CopyResult, error) {
	mesh, err := uc.resolveMesh(request.Mesh)
	if err != nil {
		return nil, err
	}

	vertexIndex := request.VertexIndex
	if request.UseSelection {
		selected := mesh.SelectedVertexIndexes()
		if len(selected) == 0 {
			return nil, ErrNoSourceVertex
		}
		vertexIndex = selected[0]
	}

	weights, err := extractWeightSet(mesh, vertexIndex, request.SkipZeroWeights)
	if err != nil {
		return nil, fmt.Errorf("頂点%dのウェイト取得に失敗しました: %w", vertexIndex, err)
	}
	if err := uc.clipboard.Store(vertexIndex, weights); err != nil {
		return nil, err
	}

	uc.logger.Info(messages.LogCopySuccess, vertexIndex, weights)
	return &CopyResult{VertexIndex: vertexIndex, Weights: weights}, nil
}

// ClearClipboard はクリップボードを未コピーの状態へ戻す。以降の貼り付けは失敗する。
func (uc *WeightCopyUsecase) ClearClipboard() {
	uc.logger.Info(messages.LogClipboardCleared, uc.clipboard.SourceVertex())
	uc.clipboard.Clear()
}

// Show は頂点の現在のウェイトを返す。ウェイト0の所属も含む。
func (uc *WeightCopyUsecase) Show(vertexIndex int) (*CopyResult, error) {
	mesh, err := uc.resolveMesh(nil)
	if err != nil {
		return nil, err
	}
	weights, err := extractWeightSet(mesh, vertexIndex, false)
	if err != nil {
		return nil, err
	}
	return &CopyResult{VertexIndex: vertexIndex, Weights: weights}, nil
}
