// 指示: miu200521358
// Package cli はコマンドラインからウェイトコピー処理を実行する。
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/io_mesh"
	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/infra/config"
	"github.com/miu200521358/mu_weightcopy/pkg/shared/base/logging"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/minteractor"
)

// app は1回のコマンド実行で共有する状態を保持する。
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	meshPath   string
	outPath    string

	cfg        config.Config
	printer    *message.Printer
	repository *io_mesh.MeshRepository
	usecase    *minteractor.WeightCopyUsecase
	closeLog   func() error
	dirty      bool
	inSession  bool
}

// newApp は入出力先を指定して実行状態を生成する。
func newApp(in io.Reader, out io.Writer, errOut io.Writer) *app {
	return &app{
		in:         in,
		out:        out,
		errOut:     errOut,
		printer:    messages.NewPrinter("ja"),
		repository: io_mesh.NewMeshRepository(),
		closeLog:   func() error { return nil },
	}
}

// setup は設定・ロガー・ユースケースを構築し、メッシュを読み込む。
func (a *app) setup(cmd *cobra.Command, needsMesh bool) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.printer = messages.NewPrinter(cfg.Lang)

	logger, closeLog, err := logging.Setup(logging.Options{
		Level:    logging.ParseLevel(cfg.Log.Level),
		Writer:   a.errOut,
		FilePath: cfg.Log.File,
	})
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	logging.SetDefaultLogger(logger)

	a.usecase = minteractor.NewWeightCopyUsecase(minteractor.WeightCopyUsecaseDeps{
		MeshReader: a.repository,
		MeshWriter: a.repository,
		Logger:     logger,
	})
	if !needsMesh {
		return nil
	}
	if strings.TrimSpace(a.meshPath) == "" {
		return errors.New(a.printer.Sprintf(messages.MessageMeshRequired))
	}
	mesh, err := a.usecase.LoadMesh(nil, a.meshPath)
	if err != nil {
		return fmt.Errorf("%s: %w", a.printer.Sprintf(messages.MessageLoadFailed), err)
	}
	a.usecase.SetMesh(mesh)
	return nil
}

// save は変更があればメッシュを保存する。出力先未指定なら入力へ上書きする。
func (a *app) save() error {
	if !a.dirty || a.usecase == nil {
		return nil
	}
	path := strings.TrimSpace(a.outPath)
	if path == "" {
		path = a.meshPath
	}
	if err := a.usecase.SaveMesh(nil, path, a.usecase.Mesh()); err != nil {
		return fmt.Errorf("%s: %w", a.printer.Sprintf(messages.MessageSaveFailed), err)
	}
	a.dirty = false
	a.printer.Fprintf(a.out, messages.MessageSaved, path)
	fmt.Fprintln(a.out)
	return nil
}

// println は翻訳済みメッセージを1行出力する。
func (a *app) println(key string, params ...any) {
	a.printer.Fprintf(a.out, key, params...)
	fmt.Fprintln(a.out)
}

// printWarnings は警告IDを1件ずつエラー出力へ書く。
func (a *app) printWarnings(warnings []string) {
	for _, warningID := range warnings {
		a.printer.Fprintf(a.errOut, messages.MessageWarning, warningID)
		fmt.Fprintln(a.errOut)
	}
}
