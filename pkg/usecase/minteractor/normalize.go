// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/model"
)

// Normalize は対象頂点の現在のウェイトを合計1へ正規化する。
func (uc *WeightCopyUsecase) Normalize(request NormalizeRequest) (*NormalizeResult, error) {
	mesh, err := uc.resolveMesh(request.Mesh)
	if err != nil {
		return nil, err
	}

	targets := resolveTargets(mesh, request.Targets)
	reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
		Type:        WeightProgressEventTypeTargetsResolved,
		TargetCount: len(targets),
	})

	var warnings model.WarningSet
	result := &NormalizeResult{Targets: targets}
	if len(targets) == 0 {
		warnings.Add(model.WeightWarningNoTargets)
		uc.logger.Warn(messages.LogNoTargets)
		result.Warnings = warnings.IDs()
		return result, nil
	}

	restore, err := enterEditContext(mesh)
	if err != nil {
		return nil, err
	}
	defer restore()

	var errs []error
	for _, vertexIndex := range targets {
		normalized, err := normalizeVertexWeights(mesh, vertexIndex, &warnings, uc.logger)
		if err != nil {
			errs = append(errs, fmt.Errorf("頂点%d: %w", vertexIndex, err))
			result.FailedVertices = append(result.FailedVertices, vertexIndex)
			warnings.Add(model.WeightWarningVertexFailed)
			uc.logger.Warn(messages.LogVertexFailed, vertexIndex, err)
			continue
		}
		if !normalized {
			result.SkippedVertices = append(result.SkippedVertices, vertexIndex)
			continue
		}
		result.NormalizedVertices = append(result.NormalizedVertices, vertexIndex)
		reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
			Type:        WeightProgressEventTypeVertexNormalized,
			VertexIndex: vertexIndex,
			TargetCount: len(targets),
		})
	}

	result.Warnings = warnings.IDs()
	reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
		Type:        WeightProgressEventTypeCompleted,
		TargetCount: len(targets),
	})
	uc.logger.Info(messages.LogNormalizeSuccess, len(result.NormalizedVertices))
	return result, errors.Join(errs...)
}
