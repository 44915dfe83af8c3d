// 指示: miu200521358
// Package config は実行設定を flag・環境変数・設定ファイル・既定値の順で解決する。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// 設定キー一覧。
const (
	KeyClearExisting   = "paste.clear_existing"
	KeyNormalize       = "paste.normalize"
	KeySkipZeroWeights = "copy.skip_zero_weights"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"
	KeyLang            = "lang"

	// EnvPrefix は環境変数の接頭辞。
	EnvPrefix = "MU_WEIGHTCOPY"
)

// flagKeys はフラグ名と設定キーの対応。
var flagKeys = map[string]string{
	"clear":     KeyClearExisting,
	"normalize": KeyNormalize,
	"skip-zero": KeySkipZeroWeights,
	"log-level": KeyLogLevel,
	"log-file":  KeyLogFile,
	"lang":      KeyLang,
}

// Config は実行設定を表す。
type Config struct {
	Paste PasteConfig
	Copy  CopyConfig
	Log   LogConfig
	Lang  string
}

// PasteConfig は貼り付け設定を表す。
type PasteConfig struct {
	ClearExisting bool
	Normalize     bool
}

// CopyConfig はコピー設定を表す。
type CopyConfig struct {
	SkipZeroWeights bool
}

// LogConfig はログ設定を表す。
type LogConfig struct {
	Level string
	File  string
}

// Load は設定を解決する。configFile が空なら設定ファイルは読まない。
// flags は未指定のフラグを無視するため、変更されたフラグのみが優先される。
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyClearExisting, false)
	v.SetDefault(KeyNormalize, false)
	v.SetDefault(KeySkipZeroWeights, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLang, "ja")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("フラグの設定反映に失敗しました: %s: %w", name, err)
			}
		}
	}

	return Config{
		Paste: PasteConfig{
			ClearExisting: v.GetBool(KeyClearExisting),
			Normalize:     v.GetBool(KeyNormalize),
		},
		Copy: CopyConfig{
			SkipZeroWeights: v.GetBool(KeySkipZeroWeights),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		Lang: v.GetString(KeyLang),
	}, nil
}
