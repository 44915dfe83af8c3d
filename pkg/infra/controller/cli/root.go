// 指示: miu200521358
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
)

// Version はビルド時に設定する。
var Version = "0.1.0"

// Execute はコマンドライン引数を解釈して実行する。
func Execute(args []string, in io.Reader, out io.Writer, errOut io.Writer) error {
	a := newApp(in, out, errOut)
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	err := root.Execute()
	if closeErr := a.closeLog(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

// newRootCommand はルートコマンドを生成する。
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "mu_weightcopy",
		Short:         messages.HelpUsage,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, needsMesh(cmd))
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.save()
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.meshPath, "mesh", "", "編集対象メッシュYAML")
	flags.StringVar(&a.outPath, "out", "", "保存先メッシュYAML (未指定なら上書き)")
	flags.StringVar(&a.configPath, "config", "", "設定ファイル")
	flags.String("log-level", "info", "ログレベル (debug, info, warn, error)")
	flags.String("log-file", "", "JSONログの出力先")
	flags.String("lang", "ja", "表示言語 (ja, en)")

	addOperationCommands(root, a)
	root.AddCommand(newSessionCommand(a))
	return root
}

// needsMesh はコマンド実行前にメッシュ読み込みが必要か判定する。
func needsMesh(cmd *cobra.Command) bool {
	if cmd.Name() == "help" {
		return false
	}
	return cmd.Annotations[annotationNoMesh] == ""
}
