// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// LoadMesh はメッシュを読み込む。
func (uc *WeightCopyUsecase) LoadMesh(rep moutput.IMeshReader, path string) (moutput.IMeshEditor, error) {
	repo := rep
	if repo == nil {
		repo = uc.meshReader
	}
	if repo == nil {
		return nil, fmt.Errorf("メッシュ読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("入力形式が未対応です: %s", path)
	}
	return repo.Load(path)
}

// SaveMesh はメッシュを保存する。
func (uc *WeightCopyUsecase) SaveMesh(rep moutput.IMeshWriter, path string, mesh moutput.IMeshEditor) error {
	writer := rep
	if writer == nil {
		writer = uc.meshWriter
	}
	if writer == nil {
		return fmt.Errorf("メッシュ保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if mesh == nil {
		return fmt.Errorf("保存対象メッシュが未設定です")
	}
	return writer.Save(path, mesh)
}
