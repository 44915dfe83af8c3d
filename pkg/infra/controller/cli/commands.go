// 指示: miu200521358
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/minteractor"
)

// annotationNoMesh はメッシュ読み込みが不要なコマンドに付ける注釈キー。
const annotationNoMesh = "no-mesh"

// addOperationCommands はウェイト操作コマンドを親コマンドへ登録する。
// 単発実行とセッション行の両方で同じ定義を使う。
func addOperationCommands(parent *cobra.Command, a *app) {
	parent.AddCommand(
		newCopyCommand(a),
		newPasteCommand(a),
		newSetWeightCommand(a),
		newNormalizeCommand(a),
		newShowCommand(a),
		newPresetsCommand(a),
		newClearClipboardCommand(a),
	)
}

func newCopyCommand(a *app) *cobra.Command {
	var vertexIndex int
	cmd := &cobra.Command{
		Use:   "copy",
		Short: messages.LabelCopy,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.copy(vertexIndex, boolFlagOr(cmd, "skip-zero", a.cfg.Copy.SkipZeroWeights))
		},
	}
	cmd.Flags().IntVar(&vertexIndex, "vertex", -1, "コピー元頂点 (未指定なら選択頂点の先頭)")
	cmd.Flags().Bool("skip-zero", true, "ウェイト0の所属をコピーしない")
	return cmd
}

func newPasteCommand(a *app) *cobra.Command {
	var from int
	var targets []int
	cmd := &cobra.Command{
		Use:   "paste",
		Short: messages.LabelPaste,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from >= 0 {
				if err := a.copy(from, boolFlagOr(cmd, "skip-zero", a.cfg.Copy.SkipZeroWeights)); err != nil {
					return err
				}
			}
			settings := minteractor.PasteSettings{
				ClearExisting: boolFlagOr(cmd, "clear", a.cfg.Paste.ClearExisting),
				Normalize:     boolFlagOr(cmd, "normalize", a.cfg.Paste.Normalize),
			}
			result, err := a.usecase.Paste(minteractor.PasteRequest{Targets: targets, Settings: settings})
			if result != nil {
				a.markDirty(len(result.PastedVertices))
				a.println(messages.MessagePasteResult, len(result.PastedVertices))
				a.printWarnings(result.Warnings)
			}
			return a.finishMutation(err)
		},
	}
	cmd.Flags().IntVar(&from, "from", -1, "貼り付け前にコピーする頂点")
	cmd.Flags().IntSliceVar(&targets, "to", nil, "貼り付け先頂点 (未指定なら選択頂点)")
	cmd.Flags().Bool("clear", false, messages.LabelClear)
	cmd.Flags().Bool("normalize", false, messages.LabelNormalize)
	cmd.Flags().Bool("skip-zero", true, "ウェイト0の所属をコピーしない")
	return cmd
}

func newSetWeightCommand(a *app) *cobra.Command {
	var group string
	var value float64
	var preset int
	var mode string
	var targets []int
	cmd := &cobra.Command{
		Use:   "set-weight",
		Short: messages.LabelSetWeight,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blendMode, err := weight.ParseBlendMode(mode)
			if err != nil {
				return err
			}
			resolved, err := resolveWeightValue(cmd.Flags().Changed("value"), value, preset)
			if err != nil {
				return err
			}
			result, err := a.usecase.SetWeight(minteractor.SetWeightRequest{
				Targets: targets,
				Group:   group,
				Value:   resolved,
				Mode:    blendMode,
			})
			if result != nil {
				a.markDirty(len(result.UpdatedVertices))
				a.println(messages.MessageSetResult, len(result.UpdatedVertices))
				for _, vertexIndex := range result.UpdatedVertices {
					a.println(messages.MessageShowVertex, vertexIndex, result.Weights[vertexIndex])
				}
				a.printWarnings(result.Warnings)
			}
			return a.finishMutation(err)
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "対象グループ")
	cmd.Flags().Float64Var(&value, "value", 0, "ウェイト値")
	cmd.Flags().IntVar(&preset, "preset", -1, "プリセットウェイトの番号")
	cmd.Flags().StringVar(&mode, "mode", weight.BlendReplace.String(), "合成モード (replace, add, subtract)")
	cmd.Flags().IntSliceVar(&targets, "to", nil, "対象頂点 (未指定なら選択頂点)")
	_ = cmd.MarkFlagRequired("group")
	cmd.MarkFlagsMutuallyExclusive("value", "preset")
	return cmd
}

func newNormalizeCommand(a *app) *cobra.Command {
	var targets []int
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: messages.LabelNormalize,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.usecase.Normalize(minteractor.NormalizeRequest{Targets: targets})
			if result != nil {
				a.markDirty(len(result.NormalizedVertices))
				a.println(messages.MessageNormalizeRes, len(result.NormalizedVertices))
				a.printWarnings(result.Warnings)
			}
			return a.finishMutation(err)
		},
	}
	cmd.Flags().IntSliceVar(&targets, "to", nil, "対象頂点 (未指定なら選択頂点)")
	return cmd
}

func newShowCommand(a *app) *cobra.Command {
	var vertexIndex int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "頂点ウェイト表示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.usecase.Show(vertexIndex)
			if err != nil {
				return err
			}
			a.println(messages.MessageShowVertex, result.VertexIndex, result.Weights)
			return nil
		},
	}
	cmd.Flags().IntVar(&vertexIndex, "vertex", 0, "表示する頂点")
	_ = cmd.MarkFlagRequired("vertex")
	return cmd
}

func newPresetsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "プリセットウェイト一覧",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoMesh: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(messages.MessagePresetWeights, formatPresets(weight.PresetWeights))
			return nil
		},
	}
}

func newClearClipboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "clear-clipboard",
		Short:       "クリップボードを空にする",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoMesh: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.usecase.ClearClipboard()
			a.println(messages.MessageClipboardClear)
			return nil
		},
	}
}

// copy はコピーを実行して結果を表示する。負の頂点番号は選択頂点の先頭を使う。
func (a *app) copy(vertexIndex int, skipZero bool) error {
	result, err := a.usecase.Copy(minteractor.CopyRequest{
		VertexIndex:     vertexIndex,
		UseSelection:    vertexIndex < 0,
		SkipZeroWeights: skipZero,
	})
	if err != nil {
		return err
	}
	a.println(messages.MessageCopyResult, result.VertexIndex, result.Weights)
	return nil
}

// finishMutation は一部の頂点が失敗しても、変更済みの頂点を保存してからエラーを返す。
// セッション中は最後にまとめて保存するので何もしない。
func (a *app) finishMutation(err error) error {
	if err == nil || a.inSession {
		return err
	}
	if saveErr := a.save(); saveErr != nil {
		return errors.Join(err, saveErr)
	}
	return err
}

// markDirty は1頂点以上変更されたら保存対象にする。
func (a *app) markDirty(changed int) {
	if changed > 0 {
		a.dirty = true
	}
}

// boolFlagOr は明示指定されたフラグ値、無ければ既定値を返す。
func boolFlagOr(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return fallback
	}
	return value
}

// resolveWeightValue は直接指定値かプリセット番号からウェイト値を決める。
func resolveWeightValue(valueSet bool, value float64, preset int) (float64, error) {
	if valueSet {
		return value, nil
	}
	if preset < 0 {
		return 0, fmt.Errorf("--value か --preset を指定してください")
	}
	if preset >= len(weight.PresetWeights) {
		return 0, fmt.Errorf("プリセット番号が範囲外です: %d (0-%d)", preset, len(weight.PresetWeights)-1)
	}
	return weight.PresetWeights[preset], nil
}

// formatPresets はプリセットを "番号=値" の一覧にする。
func formatPresets(presets []float64) string {
	parts := make([]string, 0, len(presets))
	for i, preset := range presets {
		parts = append(parts, strconv.Itoa(i)+"="+strconv.FormatFloat(preset, 'g', -1, 64))
	}
	return strings.Join(parts, ", ")
}
