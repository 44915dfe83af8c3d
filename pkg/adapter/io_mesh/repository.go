// 指示: miu200521358
package io_mesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// meshDocument はメッシュYAMLの構造を表す。頂点INDEXは vertices 内の位置。
type meshDocument struct {
	Groups   []string         `yaml:"groups,omitempty"`
	Selected []int            `yaml:"selected,omitempty"`
	Vertices []vertexDocument `yaml:"vertices"`
}

// vertexDocument は1頂点分のグループ所属を表す。
type vertexDocument struct {
	Weights map[string]float64 `yaml:"weights"`
}

// MeshRepository はメッシュYAMLの読み書きを行う。
type MeshRepository struct{}

// NewMeshRepository はメッシュリポジトリを生成する。
func NewMeshRepository() *MeshRepository {
	return &MeshRepository{}
}

// CanLoad は拡張子から読み込み可否を判定する。
func (r *MeshRepository) CanLoad(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load はメッシュYAMLを読み込む。
func (r *MeshRepository) Load(path string) (moutput.IMeshEditor, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("入力拡張子が .yaml ではありません: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("メッシュファイルの読み込みに失敗しました: %w", err)
	}
	mesh, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("メッシュファイルの解析に失敗しました: %s: %w", path, err)
	}
	return mesh, nil
}

// Save はメッシュをYAMLとして保存する。
func (r *MeshRepository) Save(path string, mesh moutput.IMeshEditor) error {
	meshData, ok := mesh.(*Mesh)
	if !ok {
		return fmt.Errorf("保存対象メッシュの型が不正です: %T", mesh)
	}
	data, err := Encode(meshData)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("メッシュファイルの保存に失敗しました: %w", err)
	}
	return nil
}

// Decode はYAMLからメッシュを復元する。
// groups に無いグループ名が頂点側にあれば名前順で末尾に追加する。
func Decode(data []byte) (*Mesh, error) {
	var doc meshDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	mesh := NewMesh(len(doc.Vertices))
	for _, name := range doc.Groups {
		if err := mesh.NewVertexGroup(name); err != nil {
			return nil, err
		}
	}
	for vertexIndex, vertex := range doc.Vertices {
		ws, err := weight.NewWeightSet(vertex.Weights)
		if err != nil {
			return nil, fmt.Errorf("頂点%d: %w", vertexIndex, err)
		}
		for _, name := range ws.Names() {
			if err := mesh.NewVertexGroup(name); err != nil {
				return nil, err
			}
			if err := mesh.SetVertexGroupWeight(vertexIndex, name, ws[name]); err != nil {
				return nil, err
			}
		}
	}
	if err := mesh.SetSelectedVertexIndexes(doc.Selected); err != nil {
		return nil, fmt.Errorf("選択頂点が不正です: %w", err)
	}
	return mesh, nil
}

// Encode はメッシュをYAMLへ変換する。
func Encode(mesh *Mesh) ([]byte, error) {
	doc := meshDocument{
		Groups:   mesh.VertexGroupNames(),
		Selected: mesh.SelectedVertexIndexes(),
		Vertices: make([]vertexDocument, len(mesh.vertices)),
	}
	for vertexIndex, memberships := range mesh.vertices {
		// yaml.v3 はマップのキーを昇順で出力する
		doc.Vertices[vertexIndex] = vertexDocument{Weights: weight.WeightSet(memberships).Clone()}
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("メッシュのYAML変換に失敗しました: %w", err)
	}
	return data, nil
}
