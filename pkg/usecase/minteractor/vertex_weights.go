// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/model"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/shared/base/logging"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// extractWeightSet は頂点の所属グループとウェイトを読み取る。
// 未所属グループは含めない。skipZero なら所属していてもウェイト0のグループを除く。
func extractWeightSet(reader moutput.IVertexGroupReader, vertexIndex int, skipZero bool) (weight.WeightSet, error) {
	if !reader.HasVertex(vertexIndex) {
		return nil, fmt.Errorf("%w: %d", weight.ErrVertexNotFound, vertexIndex)
	}
	entries := map[string]float64{}
	for _, groupName := range reader.VertexGroupNames() {
		value, member := reader.VertexGroupWeight(vertexIndex, groupName)
		if !member {
			continue
		}
		entries[groupName] = value
	}
	weights, err := weight.NewWeightSet(entries)
	if err != nil || !skipZero {
		return weights, err
	}
	return weights.NonZero(), nil
}

// writeVertexWeight は頂点のグループウェイトを置き換える。
// グループが無ければ作成してから書き込み直す。
func writeVertexWeight(
	mesh moutput.IMeshEditor,
	vertexIndex int,
	groupName string,
	value float64,
	warnings *model.WarningSet,
	logger logging.ILogger,
) error {
	err := mesh.SetVertexGroupWeight(vertexIndex, groupName, value)
	if err == nil || !errors.Is(err, weight.ErrUnknownGroup) {
		return err
	}
	if err := mesh.NewVertexGroup(groupName); err != nil {
		return fmt.Errorf("頂点グループの作成に失敗しました: %s: %w", groupName, err)
	}
	warnings.Add(model.WeightWarningGroupCreated)
	logger.Info(messages.LogGroupCreated, groupName)
	return mesh.SetVertexGroupWeight(vertexIndex, groupName, value)
}

// mergeWeightSet は src の各グループウェイトを頂点へ置き換えで書き込む。
// src に無いグループの所属はそのまま残す。
func mergeWeightSet(
	mesh moutput.IMeshEditor,
	vertexIndex int,
	src weight.WeightSet,
	warnings *model.WarningSet,
	logger logging.ILogger,
) error {
	for _, groupName := range src.Names() {
		if err := writeVertexWeight(mesh, vertexIndex, groupName, src[groupName], warnings, logger); err != nil {
			return err
		}
	}
	return nil
}

// clearVertexWeights は頂点をメッシュの全グループから外す。未所属は無視する。
func clearVertexWeights(mesh moutput.IMeshEditor, vertexIndex int) error {
	for _, groupName := range mesh.VertexGroupNames() {
		err := mesh.RemoveVertexFromGroup(vertexIndex, groupName)
		if err == nil || errors.Is(err, weight.ErrNotAMember) {
			continue
		}
		return err
	}
	return nil
}

// normalizeVertexWeights は頂点の現在のウェイトを合計1へ正規化する。
// 合計が0以下なら何もせず false を返す。
func normalizeVertexWeights(
	mesh moutput.IMeshEditor,
	vertexIndex int,
	warnings *model.WarningSet,
	logger logging.ILogger,
) (bool, error) {
	current, err := extractWeightSet(mesh, vertexIndex, false)
	if err != nil {
		return false, err
	}
	if current.Sum() <= 0 {
		warnings.Add(model.WeightWarningNormalizeSkipped)
		logger.Debug(messages.LogNormalizeSkipped, vertexIndex)
		return false, nil
	}
	normalized := current.Normalized()
	for _, groupName := range normalized.Names() {
		if err := writeVertexWeight(mesh, vertexIndex, groupName, normalized[groupName], warnings, logger); err != nil {
			return false, err
		}
	}
	return true, nil
}
