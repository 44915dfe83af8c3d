// 指示: miu200521358
// Package logging はアプリ共通のロガー契約と slog ベースの実装を提供する。
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

// ILogger は書式指定で出力するロガー契約を表す。
type ILogger interface {
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
	// With は属性を付与したロガーを返す。
	With(args ...any) ILogger
}

// Logger は slog.Logger を ILogger として包む。
type Logger struct {
	base *slog.Logger
}

// NewLogger はハンドラからロガーを生成する。
func NewLogger(handler slog.Handler) *Logger {
	return &Logger{base: slog.New(handler)}
}

// Options はロガー構築時の出力先設定を表す。
type Options struct {
	Level    slog.Level
	Writer   io.Writer
	FilePath string
}

// Setup はテキスト出力とJSONファイル出力を束ねたロガーを生成する。
// FilePath が空ならテキスト出力のみ。戻り値の関数でファイルを閉じる。
func Setup(opts Options) (*Logger, func() error, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	textHandler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: opts.Level})
	if strings.TrimSpace(opts.FilePath) == "" {
		return NewLogger(textHandler), func() error { return nil }, nil
	}

	file, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("ログファイルを開けませんでした: %w", err)
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: opts.Level})
	logger := NewLogger(slogmulti.Fanout(textHandler, fileHandler))
	return logger, file.Close, nil
}

// ParseLevel はログレベル名を解析する。未知の値は INFO とする。
func ParseLevel(value string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(format string, params ...any) { l.log(slog.LevelDebug, format, params) }
func (l *Logger) Info(format string, params ...any)  { l.log(slog.LevelInfo, format, params) }
func (l *Logger) Warn(format string, params ...any)  { l.log(slog.LevelWarn, format, params) }
func (l *Logger) Error(format string, params ...any) { l.log(slog.LevelError, format, params) }

// With は属性を付与したロガーを返す。
func (l *Logger) With(args ...any) ILogger {
	return &Logger{base: l.base.With(args...)}
}

func (l *Logger) log(level slog.Level, format string, params []any) {
	ctx := context.Background()
	if !l.base.Enabled(ctx, level) {
		return
	}
	message := format
	if len(params) > 0 {
		message = fmt.Sprintf(format, params...)
	}
	l.base.Log(ctx, level, message)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger ILogger = NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() ILogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。nil は無視する。
func SetDefaultLogger(logger ILogger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}
