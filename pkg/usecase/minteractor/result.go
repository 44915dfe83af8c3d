// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// PasteSettings は貼り付け時の設定を表す。
type PasteSettings struct {
	// ClearExisting は貼り付け前に対象頂点の全グループ所属を外すかどうか。
	ClearExisting bool
	// Normalize は貼り付け後に対象頂点のウェイトを正規化するかどうか。
	Normalize bool
}

// CopyRequest はウェイトコピー要求を表す。
type CopyRequest struct {
	Mesh            moutput.IMeshEditor
	VertexIndex     int
	UseSelection    bool
	SkipZeroWeights bool
}

// CopyResult はウェイトコピー結果を表す。
type CopyResult struct {
	VertexIndex int
	Weights     weight.WeightSet
}

// PasteRequest はウェイト貼り付け要求を表す。
// WeightSet が nil ならセッションのクリップボードを使う。
type PasteRequest struct {
	Mesh             moutput.IMeshEditor
	Targets          []int
	Settings         PasteSettings
	WeightSet        weight.WeightSet
	ProgressReporter IWeightProgressReporter
}

// PasteResult はウェイト貼り付け結果を表す。
type PasteResult struct {
	Weights        weight.WeightSet
	Targets        []int
	PastedVertices []int
	FailedVertices []int
	Warnings       []string
}

// SetWeightRequest はウェイト値設定要求を表す。
type SetWeightRequest struct {
	Mesh             moutput.IMeshEditor
	Targets          []int
	Group            string
	Value            float64
	Mode             weight.BlendMode
	ProgressReporter IWeightProgressReporter
}

// SetWeightResult はウェイト値設定結果を表す。
type SetWeightResult struct {
	Targets         []int
	UpdatedVertices []int
	FailedVertices  []int
	Weights         map[int]weight.WeightSet
	Warnings        []string
}

// NormalizeRequest は正規化要求を表す。
type NormalizeRequest struct {
	Mesh             moutput.IMeshEditor
	Targets          []int
	ProgressReporter IWeightProgressReporter
}

// NormalizeResult は正規化結果を表す。
type NormalizeResult struct {
	Targets            []int
	NormalizedVertices []int
	SkippedVertices    []int
	FailedVertices     []int
	Warnings           []string
}

// WeightProgressEventType はウェイト処理の進捗イベント種別を表す。
type WeightProgressEventType string

const (
	// WeightProgressEventTypeTargetsResolved は対象頂点解決完了イベントを表す。
	WeightProgressEventTypeTargetsResolved WeightProgressEventType = "targets_resolved"
	// WeightProgressEventTypeVertexPasted は1頂点の貼り付け完了イベントを表す。
	WeightProgressEventTypeVertexPasted WeightProgressEventType = "vertex_pasted"
	// WeightProgressEventTypeVertexNormalized は1頂点の正規化完了イベントを表す。
	WeightProgressEventTypeVertexNormalized WeightProgressEventType = "vertex_normalized"
	// WeightProgressEventTypeVertexWeightSet は1頂点のウェイト設定完了イベントを表す。
	WeightProgressEventTypeVertexWeightSet WeightProgressEventType = "vertex_weight_set"
	// WeightProgressEventTypeCompleted は処理完了イベントを表す。
	WeightProgressEventTypeCompleted WeightProgressEventType = "completed"
)

// WeightProgressEvent はウェイト処理の進捗イベントを表す。
type WeightProgressEvent struct {
	Type        WeightProgressEventType
	VertexIndex int
	TargetCount int
}

// IWeightProgressReporter はウェイト処理の進捗通知契約を表す。
type IWeightProgressReporter interface {
	// ReportWeightProgress はウェイト処理進捗を通知する。
	ReportWeightProgress(event WeightProgressEvent)
}

// reportWeightProgress はウェイト処理の進捗を通知する。
func reportWeightProgress(reporter IWeightProgressReporter, event WeightProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportWeightProgress(event)
}
