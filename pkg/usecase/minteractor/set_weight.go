// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/model"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// SetWeight は対象頂点の指定グループのウェイトを変更し、他グループを比率を保って按分する。
// 対象頂点が指定グループに未所属なら、ウェイト0で所属しているものとして扱う。
func (uc *WeightCopyUsecase) SetWeight(request SetWeightRequest) (*SetWeightResult, error) {
	mesh, err := uc.resolveMesh(request.Mesh)
	if err != nil {
		return nil, err
	}
	group := weight.NormalizeGroupName(request.Group)
	if strings.TrimSpace(group) == "" {
		return nil, fmt.Errorf("%w: グループ名が空です", weight.ErrInvalidWeightSet)
	}
	// 値とモードは頂点に依らないので先に検証する
	if _, err := weight.Redistribute(weight.WeightSet{group: 0}, group, request.Value, request.Mode); err != nil {
		return nil, err
	}

	targets := resolveTargets(mesh, request.Targets)
	reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
		Type:        WeightProgressEventTypeTargetsResolved,
		TargetCount: len(targets),
	})

	var warnings model.WarningSet
	result := &SetWeightResult{Targets: targets, Weights: map[int]weight.WeightSet{}}
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
		updated, err := uc.setVertexWeight(mesh, vertexIndex, group, request.Value, request.Mode, &warnings)
		if err != nil {
			errs = append(errs, fmt.Errorf("頂点%d: %w", vertexIndex, err))
			result.FailedVertices = append(result.FailedVertices, vertexIndex)
			warnings.Add(model.WeightWarningVertexFailed)
			uc.logger.Warn(messages.LogVertexFailed, vertexIndex, err)
			continue
		}
		result.UpdatedVertices = append(result.UpdatedVertices, vertexIndex)
		result.Weights[vertexIndex] = updated
		reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
			Type:        WeightProgressEventTypeVertexWeightSet,
			VertexIndex: vertexIndex,
			TargetCount: len(targets),
		})
	}

	result.Warnings = warnings.IDs()
	reportWeightProgress(request.ProgressReporter, WeightProgressEvent{
		Type:        WeightProgressEventTypeCompleted,
		TargetCount: len(targets),
	})
	uc.logger.Info(messages.LogSetWeightSuccess, group, request.Value, request.Mode, len(result.UpdatedVertices))
	return result, errors.Join(errs...)
}

// setVertexWeight は1頂点のウェイトを再配分して書き戻す。
func (uc *WeightCopyUsecase) setVertexWeight(
	mesh moutput.IMeshEditor,
	vertexIndex int,
	group string,
	value float64,
	mode weight.BlendMode,
	warnings *model.WarningSet,
) (weight.WeightSet, error) {
	current, err := extractWeightSet(mesh, vertexIndex, false)
	if err != nil {
		return nil, err
	}
	if _, member := current[group]; !member {
		current[group] = 0
	}
	updated, err := weight.Redistribute(current, group, value, mode)
	if err != nil {
		return nil, err
	}
	if err := mergeWeightSet(mesh, vertexIndex, updated, warnings, uc.logger); err != nil {
		return nil, err
	}
	return updated, nil
}
