// 指示: miu200521358
package weight

import "errors"

var (
	// ErrNotAMember は頂点が指定グループに所属していないことを表す。
	ErrNotAMember = errors.New("頂点はグループに所属していません")
	// ErrUnknownGroup は指定名の頂点グループがメッシュに存在しないことを表す。
	ErrUnknownGroup = errors.New("頂点グループが存在しません")
	// ErrVertexNotFound は頂点INDEXがメッシュの範囲外であることを表す。
	ErrVertexNotFound = errors.New("頂点が存在しません")
	// ErrInvalidWeightSet はウェイト集合が不正であることを表す。
	ErrInvalidWeightSet = errors.New("ウェイト集合が不正です")
	// ErrInvalidWeight は指定ウェイト値が不正であることを表す。
	ErrInvalidWeight = errors.New("ウェイト値が不正です")
	// ErrInvalidBlendMode はブレンドモードが不正であることを表す。
	ErrInvalidBlendMode = errors.New("ブレンドモードが不正です")
	// ErrActiveGroupMissing は再配分対象グループがウェイト集合に含まれていないことを表す。
	ErrActiveGroupMissing = errors.New("対象グループがウェイト集合に含まれていません")
	// ErrClipboardUnset はクリップボードへ一度もコピーされていないことを表す。
	ErrClipboardUnset = errors.New("クリップボードにウェイトがコピーされていません")
)
