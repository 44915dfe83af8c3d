// 指示: miu200521358
// Package messages は画面・ログ表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。キーは日本語表示文をそのまま兼ねる。
const (
	HelpUsageTitle = "使い方"
	HelpUsage      = "頂点ウェイトをコピーし、選択頂点へ貼り付けます"

	LabelCopy      = "ウェイトコピー"
	LabelPaste     = "ウェイト貼り付け"
	LabelClear     = "既存ウェイトをクリア"
	LabelNormalize = "ウェイトを正規化"
	LabelSetWeight = "ウェイト値設定"

	MessageMeshRequired   = "メッシュファイルを指定してください (--mesh)"
	MessageLoadFailed     = "メッシュ読み込み失敗"
	MessageSaveFailed     = "メッシュ保存失敗"
	MessageSaved          = "保存しました: %s"
	MessageShowVertex     = "頂点%d: %s"
	MessagePresetWeights  = "プリセットウェイト: %s"
	MessageWarning        = "警告: %s"
	MessageScriptLineFail = "%d行目: %v"
	MessageCopyResult     = "頂点%dのウェイトをコピーしました: %s"
	MessagePasteResult    = "%d頂点へ貼り付けました"
	MessageSetResult      = "%d頂点のウェイトを設定しました"
	MessageNormalizeRes   = "%d頂点を正規化しました"
	MessageClipboardClear = "クリップボードを空にしました"

	LogSessionStart     = "セッション開始: %s"
	LogCopySuccess      = "ウェイトコピー: 頂点%d %s"
	LogPasteSuccess     = "ウェイト貼り付け: %d頂点 (clear=%t normalize=%t)"
	LogSetWeightSuccess = "ウェイト設定: %s=%v (%s) %d頂点"
	LogNormalizeSuccess = "ウェイト正規化: %d頂点"
	LogVertexFailed     = "頂点%dの処理に失敗しました: %v"
	LogGroupCreated     = "頂点グループを作成しました: %s"
	LogNoTargets        = "対象頂点が選択されていません"
	LogNormalizeSkipped = "ウェイト合計が0のため正規化しません: 頂点%d"
	LogClipboardCleared = "クリップボードを空にしました: コピー元頂点%d"
)
