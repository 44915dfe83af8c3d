// 指示: miu200521358
package moutput

// IVertexGroupReader はホストの頂点グループ参照契約を表す。
type IVertexGroupReader interface {
	// VertexGroupNames はメッシュの頂点グループ名を定義順で返す。
	VertexGroupNames() []string
	// VertexGroupWeight は頂点のグループウェイトを返す。未所属なら false。
	VertexGroupWeight(vertexIndex int, groupName string) (float64, bool)
	// HasVertex は頂点INDEXが存在するか判定する。
	HasVertex(vertexIndex int) bool
}

// IMeshEditor はホストの頂点グループ編集契約を表す。
type IMeshEditor interface {
	IVertexGroupReader
	// SelectedVertexIndexes は選択中の頂点INDEXを昇順で返す。
	SelectedVertexIndexes() []int
	// NewVertexGroup は頂点グループを作成する。既存なら何もしない。
	NewVertexGroup(groupName string) error
	// SetVertexGroupWeight は頂点のグループウェイトを置き換える。グループが無ければ weight.ErrUnknownGroup。
	SetVertexGroupWeight(vertexIndex int, groupName string, value float64) error
	// RemoveVertexFromGroup は頂点をグループから外す。未所属なら weight.ErrNotAMember。
	RemoveVertexFromGroup(vertexIndex int, groupName string) error
}

// IEditContext は編集モードの一時切り替え契約を表す。
type IEditContext interface {
	// EnterEditContext は編集可能なモードへ切り替え、元のモードへ戻す関数を返す。
	EnterEditContext() (restore func(), err error)
}

// IMeshReader はメッシュ読み込み契約を表す。
type IMeshReader interface {
	CanLoad(path string) bool
	Load(path string) (IMeshEditor, error)
}

// IMeshWriter はメッシュ保存契約を表す。
type IMeshWriter interface {
	Save(path string, mesh IMeshEditor) error
}
