// 指示: miu200521358
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// englishMessages は英語表示文。日本語はキーそのものを使う。
var englishMessages = map[string]string{
	HelpUsageTitle: "Usage",
	HelpUsage:      "Copy vertex weights and paste them onto the selected vertices",

	LabelCopy:      "Copy Weights",
	LabelPaste:     "Paste Weights",
	LabelClear:     "Clear existing weights",
	LabelNormalize: "Normalize weights",
	LabelSetWeight: "Set weight value",

	MessageMeshRequired:   "Specify a mesh file (--mesh)",
	MessageLoadFailed:     "Failed to load mesh",
	MessageSaveFailed:     "Failed to save mesh",
	MessageSaved:          "Saved: %s",
	MessageShowVertex:     "Vertex %d: %s",
	MessagePresetWeights:  "Preset weights: %s",
	MessageWarning:        "Warning: %s",
	MessageScriptLineFail: "line %d: %v",
	MessageCopyResult:     "Copied weights of vertex %d: %s",
	MessagePasteResult:    "Pasted onto %d vertices",
	MessageSetResult:      "Set weights on %d vertices",
	MessageNormalizeRes:   "Normalized %d vertices",
	MessageClipboardClear: "Clipboard cleared",

	LogSessionStart:     "session started: %s",
	LogCopySuccess:      "copied weights: vertex %d %s",
	LogPasteSuccess:     "pasted weights: %d vertices (clear=%t normalize=%t)",
	LogSetWeightSuccess: "set weight: %s=%v (%s) %d vertices",
	LogNormalizeSuccess: "normalized weights: %d vertices",
	LogVertexFailed:     "vertex %d failed: %v",
	LogGroupCreated:     "created vertex group: %s",
	LogNoTargets:        "no target vertices selected",
	LogNormalizeSkipped: "weight total is 0, normalize skipped: vertex %d",
	LogClipboardCleared: "clipboard cleared: source vertex %d",
}

func init() {
	for key, text := range englishMessages {
		if err := message.SetString(language.English, key, text); err != nil {
			panic(err)
		}
	}
}

// NewPrinter は言語名に対応する表示用プリンタを返す。英語以外は日本語。
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		return message.NewPrinter(language.Japanese)
	}
	if base, _ := tag.Base(); base.String() == "en" {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(language.Japanese)
}
