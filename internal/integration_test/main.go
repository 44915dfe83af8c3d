// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/io_mesh"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/minteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチ貼り付けの実行設定を表す。
type batchConfig struct {
	InputDir     string
	OutputRoot   string
	SourceVertex int
	Targets      []int
	Settings     minteractor.PasteSettings
	DryRun       bool
	FailFast     bool
}

// pasteEntry は1メッシュ分の入力情報を表す。
type pasteEntry struct {
	Index      int
	SourcePath string
	MeshName   string
	CaseDir    string
	OutputPath string
}

// pasteResult は1メッシュ分の処理結果を表す。
type pasteResult struct {
	Entry        pasteEntry
	Status       string
	Duration     time.Duration
	Err          error
	ProgressInfo string
}

// weightProgressCollector はウェイト処理の進捗イベントを収集する。
type weightProgressCollector struct {
	eventCounts map[minteractor.WeightProgressEventType]int
	targetMax   int
}

// main はメッシュYAMLを一括で読み込み、コピー元頂点のウェイトを選択頂点へ貼り付ける。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括処理を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	inputPaths, err := collectMeshPaths(config.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "入力一覧の取得に失敗しました: %v\n", err)
		return 2
	}
	entries := buildPasteEntries(config.OutputRoot, inputPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "処理対象メッシュがありません")
		return 2
	}

	results := executeBatchPaste(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" || result.Status == "partial" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultRoot, err := resolveDefaultRoot()
	if err != nil {
		return batchConfig{}, err
	}
	inputDir := flag.String("input-dir", filepath.Join(defaultRoot, "input"), "メッシュYAMLの入力ディレクトリ")
	outputRoot := flag.String("output-root", filepath.Join(defaultRoot, "output"), "処理結果の出力ルートディレクトリ")
	sourceVertex := flag.Int("source", 0, "コピー元頂点")
	targets := flag.String("to", "", "貼り付け先頂点のカンマ区切り (未指定なら選択頂点)")
	clearExisting := flag.Bool("clear", false, "貼り付け前に既存ウェイトをクリアする")
	normalize := flag.Bool("normalize", true, "貼り付け後に正規化する")
	dryRun := flag.Bool("dry-run", false, "実処理せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	if *sourceVertex < 0 {
		return batchConfig{}, fmt.Errorf("source が負です: %d", *sourceVertex)
	}
	targetIndexes, err := parseTargetIndexes(*targets)
	if err != nil {
		return batchConfig{}, err
	}
	return batchConfig{
		InputDir:     filepath.Clean(strings.TrimSpace(*inputDir)),
		OutputRoot:   filepath.Clean(trimmedOutputRoot),
		SourceVertex: *sourceVertex,
		Targets:      targetIndexes,
		Settings: minteractor.PasteSettings{
			ClearExisting: *clearExisting,
			Normalize:     *normalize,
		},
		DryRun:   *dryRun,
		FailFast: *failFast,
	}, nil
}

// parseTargetIndexes はカンマ区切りの頂点INDEXを解析する。空なら nil。
func parseTargetIndexes(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("to の頂点INDEXが不正です: %q", part)
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}

// resolveDefaultRoot はスクリプト配置ディレクトリを返す。
func resolveDefaultRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Dir(currentFilePath), nil
}

// collectMeshPaths は入力ディレクトリ直下のメッシュYAMLを名前順で返す。
func collectMeshPaths(inputDir string) ([]string, error) {
	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}
	repository := io_mesh.NewMeshRepository()
	paths := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		path := filepath.Join(inputDir, dirEntry.Name())
		if repository.CanLoad(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// buildPasteEntries は入力パス一覧から処理対象エントリを生成する。
func buildPasteEntries(outputRoot string, inputPaths []string) []pasteEntry {
	entries := make([]pasteEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		meshName := resolveMeshName(rawPath)
		safeMeshName := sanitizePathComponent(meshName)
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, safeMeshName))
		entries = append(entries, pasteEntry{
			Index:      i + 1,
			SourcePath: filepath.Clean(strings.TrimSpace(rawPath)),
			MeshName:   meshName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, safeMeshName+".yaml"),
		})
	}
	return entries
}

// executeBatchPaste は全メッシュの処理を順次実行する。
// メッシュごとにセッションを分け、クリップボードを持ち越さない。
func executeBatchPaste(config batchConfig, entries []pasteEntry) []pasteResult {
	results := make([]pasteResult, 0, len(entries))
	repository := io_mesh.NewMeshRepository()

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 処理開始: mesh=%s\n", entry.Index, total, entry.MeshName)
		usecase := minteractor.NewWeightCopyUsecase(minteractor.WeightCopyUsecaseDeps{
			MeshReader: repository,
			MeshWriter: repository,
		})
		result := pasteMeshEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 処理成功: mesh=%s output=%s elapsed=%s\n", entry.Index, total, entry.MeshName, entry.OutputPath, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.ProgressInfo) != "" {
				fmt.Printf("[%d/%d] 進捗: %s\n", entry.Index, total, result.ProgressInfo)
			}
		case "partial":
			fmt.Printf("[%d/%d] 一部失敗で保存: mesh=%s output=%s reason=%v\n", entry.Index, total, entry.MeshName, entry.OutputPath, result.Err)
			if config.FailFast {
				return results
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: mesh=%s input=%s output=%s\n", entry.Index, total, entry.MeshName, entry.SourcePath, entry.OutputPath)
		default:
			fmt.Printf("[%d/%d] 処理失敗: mesh=%s reason=%v\n", entry.Index, total, entry.MeshName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// pasteMeshEntry は1メッシュ分のコピー・貼り付け・保存を実行する。
func pasteMeshEntry(usecase *minteractor.WeightCopyUsecase, config batchConfig, entry pasteEntry) pasteResult {
	result := pasteResult{
		Entry:  entry,
		Status: "failed",
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	mesh, err := usecase.LoadMesh(nil, entry.SourcePath)
	if err != nil {
		result.Err = fmt.Errorf("LoadMeshに失敗しました: %w", err)
		return result
	}
	usecase.SetMesh(mesh)
	if _, err := usecase.Copy(minteractor.CopyRequest{VertexIndex: config.SourceVertex, SkipZeroWeights: true}); err != nil {
		result.Err = fmt.Errorf("Copyに失敗しました: %w", err)
		return result
	}
	progressCollector := newWeightProgressCollector()
	pasted, pasteErr := usecase.Paste(minteractor.PasteRequest{
		Targets:          config.Targets,
		Settings:         config.Settings,
		ProgressReporter: progressCollector,
	})
	if pasteErr != nil && (pasted == nil || len(pasted.PastedVertices) == 0) {
		result.Err = fmt.Errorf("Pasteに失敗しました: %w", pasteErr)
		return result
	}
	// 一部の頂点が失敗しても貼り付け済みの頂点は保存する
	if err := usecase.SaveMesh(nil, entry.OutputPath, mesh); err != nil {
		result.Err = fmt.Errorf("SaveMeshに失敗しました: %w", err)
		return result
	}

	result.Status = "succeeded"
	if pasteErr != nil {
		result.Status = "partial"
		result.Err = fmt.Errorf("一部の頂点でPasteに失敗しました: %w", pasteErr)
	}
	result.Duration = time.Since(startedAt)
	result.ProgressInfo = progressCollector.Summary()
	return result
}

// printBatchSummary は処理結果の集計を標準出力へ表示する。
func printBatchSummary(results []pasteResult) {
	succeeded := 0
	failed := 0
	partial := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "partial":
			partial++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf("バッチ貼り付けサマリ: total=%d succeeded=%d partial=%d failed=%d dry_run=%d\n", len(results), succeeded, partial, failed, dryRun)
}

// resolveMeshName は入力パスから拡張子を除いたメッシュ名を返す。
func resolveMeshName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		return "mesh"
	}
	return name
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "mesh"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "mesh"
	}
	return replaced
}

// newWeightProgressCollector は進捗収集器を生成する。
func newWeightProgressCollector() *weightProgressCollector {
	return &weightProgressCollector{
		eventCounts: map[minteractor.WeightProgressEventType]int{},
	}
}

// ReportWeightProgress はウェイト処理の進捗イベントを収集する。
func (collector *weightProgressCollector) ReportWeightProgress(event minteractor.WeightProgressEvent) {
	if collector == nil {
		return
	}
	collector.eventCounts[event.Type]++
	if event.TargetCount > collector.targetMax {
		collector.targetMax = event.TargetCount
	}
}

// Summary は収集した進捗の要約文字列を返す。
func (collector *weightProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for eventType := range collector.eventCounts {
		types = append(types, string(eventType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"targets=%d pasted=%d stages=%s",
		collector.targetMax,
		collector.eventCounts[minteractor.WeightProgressEventTypeVertexPasted],
		strings.Join(types, ","),
	)
}
