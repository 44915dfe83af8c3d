// 指示: miu200521358
// Package io_mesh は頂点グループを持つメッシュのメモリ実装とYAML入出力を提供する。
package io_mesh

import (
	"fmt"
	"sort"
	"strings"

	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
)

// Mode はメッシュの編集モードを表す。
type Mode string

const (
	// ModeObject はオブジェクトモード。頂点グループの書き込みはこのモードで行う。
	ModeObject Mode = "OBJECT"
	// ModeEdit は編集モード。頂点選択はこのモードで保持される。
	ModeEdit Mode = "EDIT"
)

// Mesh は頂点グループと頂点ごとの所属ウェイトを保持する。
type Mesh struct {
	groups       []string
	groupIndexes map[string]int
	vertices     []map[string]float64
	selected     []int
	mode         Mode
}

// NewMesh は頂点数を指定して空のメッシュを生成する。
func NewMesh(vertexCount int) *Mesh {
	if vertexCount < 0 {
		vertexCount = 0
	}
	vertices := make([]map[string]float64, vertexCount)
	for i := range vertices {
		vertices[i] = map[string]float64{}
	}
	return &Mesh{
		groupIndexes: map[string]int{},
		vertices:     vertices,
		mode:         ModeEdit,
	}
}

// VertexCount は頂点数を返す。
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// Mode は現在の編集モードを返す。
func (m *Mesh) Mode() Mode {
	return m.mode
}

// SetMode は編集モードを設定する。
func (m *Mesh) SetMode(mode Mode) {
	m.mode = mode
}

// EnterEditContext は頂点グループを書き込めるモードへ切り替え、元のモードへ戻す関数を返す。
func (m *Mesh) EnterEditContext() (func(), error) {
	previous := m.mode
	m.mode = ModeObject
	return func() { m.mode = previous }, nil
}

// VertexGroupNames は頂点グループ名を作成順で返す。
func (m *Mesh) VertexGroupNames() []string {
	names := make([]string, len(m.groups))
	copy(names, m.groups)
	return names
}

// HasVertex は頂点INDEXが存在するか判定する。
func (m *Mesh) HasVertex(vertexIndex int) bool {
	return vertexIndex >= 0 && vertexIndex < len(m.vertices)
}

// VertexGroupWeight は頂点のグループウェイトを返す。
func (m *Mesh) VertexGroupWeight(vertexIndex int, groupName string) (float64, bool) {
	if !m.HasVertex(vertexIndex) {
		return 0, false
	}
	value, ok := m.vertices[vertexIndex][weight.NormalizeGroupName(groupName)]
	return value, ok
}

// SelectedVertexIndexes は選択中の頂点INDEXを昇順で返す。
func (m *Mesh) SelectedVertexIndexes() []int {
	indexes := make([]int, len(m.selected))
	copy(indexes, m.selected)
	return indexes
}

// SetSelectedVertexIndexes は頂点選択を置き換える。重複は除く。
func (m *Mesh) SetSelectedVertexIndexes(indexes []int) error {
	seen := map[int]struct{}{}
	selected := make([]int, 0, len(indexes))
	for _, index := range indexes {
		if !m.HasVertex(index) {
			return fmt.Errorf("%w: %d", weight.ErrVertexNotFound, index)
		}
		if _, exists := seen[index]; exists {
			continue
		}
		seen[index] = struct{}{}
		selected = append(selected, index)
	}
	sort.Ints(selected)
	m.selected = selected
	return nil
}

// NewVertexGroup は頂点グループを作成する。同名グループが既にあれば何もしない。
func (m *Mesh) NewVertexGroup(groupName string) error {
	name := weight.NormalizeGroupName(groupName)
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("頂点グループ名が空です")
	}
	if _, exists := m.groupIndexes[name]; exists {
		return nil
	}
	m.groupIndexes[name] = len(m.groups)
	m.groups = append(m.groups, name)
	return nil
}

// SetVertexGroupWeight は頂点のグループウェイトを置き換える。
func (m *Mesh) SetVertexGroupWeight(vertexIndex int, groupName string, value float64) error {
	if !m.HasVertex(vertexIndex) {
		return fmt.Errorf("%w: %d", weight.ErrVertexNotFound, vertexIndex)
	}
	name := weight.NormalizeGroupName(groupName)
	if _, exists := m.groupIndexes[name]; !exists {
		return fmt.Errorf("%w: %s", weight.ErrUnknownGroup, name)
	}
	m.vertices[vertexIndex][name] = value
	return nil
}

// RemoveVertexFromGroup は頂点をグループから外す。
func (m *Mesh) RemoveVertexFromGroup(vertexIndex int, groupName string) error {
	if !m.HasVertex(vertexIndex) {
		return fmt.Errorf("%w: %d", weight.ErrVertexNotFound, vertexIndex)
	}
	name := weight.NormalizeGroupName(groupName)
	if _, exists := m.groupIndexes[name]; !exists {
		return fmt.Errorf("%w: %s", weight.ErrUnknownGroup, name)
	}
	if _, member := m.vertices[vertexIndex][name]; !member {
		return fmt.Errorf("%w: vertex=%d group=%s", weight.ErrNotAMember, vertexIndex, name)
	}
	delete(m.vertices[vertexIndex], name)
	return nil
}
