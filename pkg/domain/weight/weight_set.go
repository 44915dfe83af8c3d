// 指示: miu200521358
// Package weight は頂点ウェイト集合とその正規化・再配分を提供する。
package weight

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/floats"
)

// WeightSet は1頂点分のグループ名→ウェイトの対応を表す。
// 値として扱い、変更系の操作は新しい集合を返す。
type WeightSet map[string]float64

// NormalizeGroupName はグループ名をNFCへ揃える。
func NormalizeGroupName(name string) string {
	return norm.NFC.String(name)
}

// NewWeightSet は入力を検証し、グループ名をNFCへ揃えたウェイト集合を生成する。
func NewWeightSet(entries map[string]float64) (WeightSet, error) {
	ws := make(WeightSet, len(entries))
	for name, value := range entries {
		key := NormalizeGroupName(name)
		if _, exists := ws[key]; exists {
			return nil, fmt.Errorf("%w: グループ名が重複しています: %s", ErrInvalidWeightSet, key)
		}
		ws[key] = value
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Validate は空のグループ名・負値・NaN・無限大を検出する。
func (ws WeightSet) Validate() error {
	for _, name := range ws.Names() {
		value := ws[name]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: グループ名が空です", ErrInvalidWeightSet)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeightSet, name, value)
		}
		if value < 0 {
			return fmt.Errorf("%w: 負のウェイトです: %s=%v", ErrInvalidWeightSet, name, value)
		}
	}
	return nil
}

// Clone は独立した複製を返す。nil は空集合として複製する。
func (ws WeightSet) Clone() WeightSet {
	out := make(WeightSet, len(ws))
	for name, value := range ws {
		out[name] = value
	}
	return out
}

// Names はグループ名を昇順で返す。
func (ws WeightSet) Names() []string {
	names := make([]string, 0, len(ws))
	for name := range ws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get はグループのウェイトと所属有無を返す。
func (ws WeightSet) Get(name string) (float64, bool) {
	value, ok := ws[NormalizeGroupName(name)]
	return value, ok
}

// Sum はウェイト合計を返す。丸め誤差を再現可能にするためグループ名順で加算する。
func (ws WeightSet) Sum() float64 {
	return floats.Sum(ws.values(ws.Names()))
}

// Normalized は合計が1になるよう各ウェイトを割った集合を返す。
// 合計が0以下の場合は変更せずに複製を返す。
func (ws WeightSet) Normalized() WeightSet {
	total := ws.Sum()
	if total <= 0 {
		return ws.Clone()
	}
	out := make(WeightSet, len(ws))
	for name, value := range ws {
		out[name] = value / total
	}
	return out
}

// Merged は src の各エントリで上書きした集合を返す。src に無いグループは維持する。
func (ws WeightSet) Merged(src WeightSet) WeightSet {
	out := ws.Clone()
	for name, value := range src {
		out[NormalizeGroupName(name)] = value
	}
	return out
}

// NonZero はウェイトが0のエントリを除いた集合を返す。
func (ws WeightSet) NonZero() WeightSet {
	out := make(WeightSet, len(ws))
	for name, value := range ws {
		if value == 0 {
			continue
		}
		out[name] = value
	}
	return out
}

// String は名前順の表示用文字列を返す。
func (ws WeightSet) String() string {
	parts := make([]string, 0, len(ws))
	for _, name := range ws.Names() {
		parts = append(parts, fmt.Sprintf("%s:%.6g", name, ws[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (ws WeightSet) values(names []string) []float64 {
	values := make([]float64, 0, len(names))
	for _, name := range names {
		values = append(values, ws[name])
	}
	return values
}
