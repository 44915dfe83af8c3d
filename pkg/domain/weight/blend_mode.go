// 指示: miu200521358
package weight

import (
	"fmt"
	"strings"
)

// BlendMode はウェイト指定時の合成方法を表す。
type BlendMode int

const (
	// BlendReplace は指定値で置き換える。
	BlendReplace BlendMode = iota
	// BlendAdd は現在値に加算する。
	BlendAdd
	// BlendSubtract は現在値から減算する。
	BlendSubtract
)

// String はブレンドモード名を返す。
func (m BlendMode) String() string {
	switch m {
	case BlendReplace:
		return "replace"
	case BlendAdd:
		return "add"
	case BlendSubtract:
		return "subtract"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// ParseBlendMode はブレンドモード名を解析する。
func ParseBlendMode(value string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "replace":
		return BlendReplace, nil
	case "add":
		return BlendAdd, nil
	case "subtract", "sub":
		return BlendSubtract, nil
	default:
		return BlendReplace, fmt.Errorf("%w: %s", ErrInvalidBlendMode, value)
	}
}
