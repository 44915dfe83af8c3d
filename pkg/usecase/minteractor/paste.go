// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/model"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// Paste はウェイト集合を対象頂点へ貼り付ける。
// 頂点ごとにクリア・書き込み・正規化の順で処理し、失敗した頂点があっても残りを続ける。
// 失敗があれば結果と合わせて結合したエラーを返す。処理済み頂点は戻さない。
func (uc *WeightCopyUsecase) Paste(request PasteRequest) (*PasteResult, error) {
	mesh, err := uc.resolveMesh(request.Mesh)
	if err != nil {
		return nil, err
	}

	source := request.WeightSet
	if source == nil {
		loaded, ok := uc.clipboard.Load()
		if !ok {
			return nil, weight.ErrClipboardUnset
		}
		source = loaded
	} else {
		source = source.Clone()
	}
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("貼り付けるウェイトが不正です: %w", err)
	}

	targets := resolveTargets(mesh, request.Targets)
	reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
		Type:        WeightProgressEventTypeTargetsResolved,
		TargetCount: len(targets),
	})

	var warnings model.WarningSet
	result := &PasteResult{Weights: source, Targets: targets}
	if len(targets) == 0 {
		warnings.Add(model.WeightWarningNoTargets)
		uc.logger.Warn(messages.LogNoTargets)
		result.Warnings = warnings.IDs()
		return result, nil
	}
	if len(source) == 0 {
		warnings.Add(model.WeightWarningEmptyClipboardPasted)
	}

	restore, err := enterEditContext(mesh)
	if err != nil {
		return nil, err
	}
	defer restore()

	var errs []error
	for _, vertexIndex := range targets {
		if err := uc.pasteVertex(mesh, vertexIndex, source, request.Settings, &warnings); err != nil {
			errs = append(errs, fmt.Errorf("頂点%d: %w", vertexIndex, err))
			result.FailedVertices = append(result.FailedVertices, vertexIndex)
			warnings.Add(model.WeightWarningVertexFailed)
			uc.logger.Warn(messages.LogVertexFailed, vertexIndex, err)
			continue
		}
		result.PastedVertices = append(result.PastedVertices, vertexIndex)
		reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
			Type:        WeightProgressEventTypeVertexPasted,
			VertexIndex: vertexIndex,
			TargetCount: len(targets),
		})
	}

	result.Warnings = warnings.IDs()
	reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
		Type:        WeightProgressEventTypeCompleted,
		TargetCount: len(targets),
	})
	uc.logger.Info(messages.LogPasteSuccess, len(result.PastedVertices), request.Settings.ClearExisting, request.Settings.Normalize)
	return result, errors.Join(errs...)
}

// pasteVertex は1頂点へウェイトを貼り付ける。
func (uc *WeightCopyUsecase) pasteVertex(
	mesh moutput.IMeshEditor,
	vertexIndex int,
	source weight.WeightSet,
	settings PasteSettings,
	warnings *model.WarningSet,
) error {
	if !mesh.HasVertex(vertexIndex) {
		return fmt.Errorf("%w: %d", weight.ErrVertexNotFound, vertexIndex)
	}
	if settings.ClearExisting {
		if err := clearVertexWeights(mesh, vertexIndex); err != nil {
			return fmt.Errorf("既存ウェイトのクリアに失敗しました: %w", err)
		}
	}
	if err := mergeWeightSet(mesh, vertexIndex, source, warnings, uc.logger); err != nil {
		return fmt.Errorf("ウェイトの書き込みに失敗しました: %w", err)
	}
	if settings.Normalize {
		if _, err := normalizeVertexWeights(mesh, vertexIndex, warnings, uc.logger); err != nil {
			return fmt.Errorf("ウェイトの正規化に失敗しました: %w", err)
		}
	}
	return nil
}
