// 指示: miu200521358
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
)

// newSessionCommand は1つのメッシュとクリップボードを共有して複数操作を実行するコマンドを生成する。
// 1行1コマンドで、空行と # で始まる行は読み飛ばす。途中の行が失敗したら保存しない。
func newSessionCommand(a *app) *cobra.Command {
	var scriptPath string
	cmd := &cobra.Command{
		Use:   "session",
		Short: "スクリプトの各行を同じセッションで実行",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script := a.in
			if strings.TrimSpace(scriptPath) != "" && scriptPath != "-" {
				file, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("スクリプトを開けません: %w", err)
				}
				defer file.Close()
				script = file
			}
			if script == nil {
				return errors.New("スクリプトの入力がありません")
			}
			return a.runScript(script)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "スクリプトファイル (未指定なら標準入力)")
	return cmd
}

// runScript はスクリプトを1行ずつ実行する。
func (a *app) runScript(script io.Reader) error {
	a.inSession = true
	defer func() { a.inSession = false }()

	scanner := bufio.NewScanner(script)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := a.runScriptLine(line); err != nil {
			return errors.New(a.printer.Sprintf(messages.MessageScriptLineFail, lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("スクリプトの読み込みに失敗しました: %w", err)
	}
	return nil
}

// runScriptLine は1行をシェル風に分割し、操作コマンドとして実行する。
// フラグ状態を持ち越さないよう行ごとにコマンドを作り直す。
func (a *app) runScriptLine(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("行を解釈できません: %w", err)
	}
	lineRoot := &cobra.Command{
		Use:           "session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addOperationCommands(lineRoot, a)
	lineRoot.SetArgs(words)
	lineRoot.SetOut(a.out)
	lineRoot.SetErr(a.errOut)
	return lineRoot.Execute()
}
