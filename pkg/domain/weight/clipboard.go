// 指示: miu200521358
package weight

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Clipboard は最後にコピーした1頂点分のウェイトを保持する。
// 保存時にスナップショットを取るため、コピー元の後続編集は反映されない。
type Clipboard struct {
	weights      WeightSet
	sourceVertex int
	stored       bool
}

// NewClipboard は空のクリップボードを生成する。
func NewClipboard() *Clipboard {
	return &Clipboard{sourceVertex: -1}
}

// Store はウェイト集合の複製で内容を丸ごと置き換える。
func (c *Clipboard) Store(sourceVertex int, ws WeightSet) error {
	snapshot := WeightSet{}
	if err := deepcopy.Copy(&snapshot, ws); err != nil {
		return fmt.Errorf("クリップボードへの複製に失敗しました: %w", err)
	}
	if snapshot == nil {
		snapshot = WeightSet{}
	}
	c.weights = snapshot
	c.sourceVertex = sourceVertex
	c.stored = true
	return nil
}

// Load は保持中のウェイト集合の複製と、コピー済みかどうかを返す。
func (c *Clipboard) Load() (WeightSet, bool) {
	if c == nil || !c.stored {
		return nil, false
	}
	return c.weights.Clone(), true
}

// SourceVertex はコピー元頂点INDEXを返す。未コピーなら -1。
func (c *Clipboard) SourceVertex() int {
	if c == nil {
		return -1
	}
	return c.sourceVertex
}

// Clear は未コピー状態へ戻す。
func (c *Clipboard) Clear() {
	c.weights = nil
	c.sourceVertex = -1
	c.stored = false
}
