// 指示: miu200521358
package weight

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PresetWeights はクイック指定用のウェイト値一覧。
var PresetWeights = []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0}

// Redistribute は active のウェイトを value と mode で変更し、
// 他グループを元の比率のまま残り (1 - 新ウェイト) へ按分した集合を返す。
// active は ws に含まれている必要がある。未所属なら呼び出し側が0で追加してから呼ぶ。
func Redistribute(ws WeightSet, active string, value float64, mode BlendMode) (WeightSet, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	active = NormalizeGroupName(active)
	prior, ok := ws[active]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActiveGroupMissing, active)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeight, value)
	}

	var newWeight float64
	switch mode {
	case BlendReplace:
		if value < 0 {
			return nil, fmt.Errorf("%w: 負の値は指定できません: %v", ErrInvalidWeight, value)
		}
		newWeight = value
	case BlendAdd:
		newWeight = clamp01(prior + value)
	case BlendSubtract:
		newWeight = clamp01(prior - value)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidBlendMode, mode)
	}

	otherNames := make([]string, 0, len(ws))
	for _, name := range ws.Names() {
		if name != active {
			otherNames = append(otherNames, name)
		}
	}
	othersSum := floats.Sum(ws.values(otherNames))
	remaining := math.Max(0, 1-newWeight)

	out := make(WeightSet, len(ws))
	for _, name := range otherNames {
		// 他グループが全て0なら割らずにそのまま残す
		if othersSum <= 0 {
			out[name] = ws[name]
			continue
		}
		out[name] = ws[name] * remaining / othersSum
	}
	out[active] = newWeight
	return out, nil
}

// clamp01 は値を [0, 1] に丸める。
func clamp01(value float64) float64 {
	return math.Min(1, math.Max(0, value))
}
