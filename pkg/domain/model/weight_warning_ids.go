// 指示: miu200521358
package model

const (
	// WeightWarningGroupCreated は貼り付け先メッシュに頂点グループを新規作成した警告。
	WeightWarningGroupCreated = "WeightWarningGroupCreated"
	// WeightWarningNormalizeSkipped はウェイト合計が0のため正規化しなかった警告。
	WeightWarningNormalizeSkipped = "WeightWarningNormalizeSkipped"
	// WeightWarningEmptyClipboardPasted は空のウェイト集合を貼り付けた警告。
	WeightWarningEmptyClipboardPasted = "WeightWarningEmptyClipboardPasted"
	// WeightWarningVertexFailed は一部頂点の処理に失敗した警告。
	WeightWarningVertexFailed = "WeightWarningVertexFailed"
	// WeightWarningNoTargets は対象頂点が選択されていない警告。
	WeightWarningNoTargets = "WeightWarningNoTargets"
)

// WarningSet は警告IDの重複なし集合を保持する。追加順を維持する。
type WarningSet struct {
	ids  []string
	seen map[string]struct{}
}

// Add は警告IDを追加する。既出IDは無視する。
func (s *WarningSet) Add(id string) {
	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}
	if _, exists := s.seen[id]; exists {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Has は警告IDを含むか判定する。
func (s *WarningSet) Has(id string) bool {
	_, exists := s.seen[id]
	return exists
}

// IDs は追加順の警告ID一覧を返す。
func (s *WarningSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
