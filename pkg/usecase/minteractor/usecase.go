// 指示: miu200521358
package minteractor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/miu200521358/mu_weightcopy/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_weightcopy/pkg/domain/weight"
	"github.com/miu200521358/mu_weightcopy/pkg/shared/base/logging"
	"github.com/miu200521358/mu_weightcopy/pkg/usecase/port/moutput"
)

// ErrNoSourceVertex はコピー元頂点が決まらないことを表す。
var ErrNoSourceVertex = errors.New("コピー元頂点が選択されていません")

// WeightCopyUsecaseDeps はウェイトコピーユースケースの依存を表す。
type WeightCopyUsecaseDeps struct {
	Mesh       moutput.IMeshEditor
	MeshReader moutput.IMeshReader
	MeshWriter moutput.IMeshWriter
	Logger     logging.ILogger
	Clipboard  *weight.Clipboard
}

// WeightCopyUsecase は1編集セッション分のウェイトコピー・貼り付け処理をまとめたユースケースを表す。
// クリップボードはセッションの間だけ保持する。
type WeightCopyUsecase struct {
	mesh       moutput.IMeshEditor
	meshReader moutput.IMeshReader
	meshWriter moutput.IMeshWriter
	logger     logging.ILogger
	clipboard  *weight.Clipboard
	sessionID  string
}

// NewWeightCopyUsecase はウェイトコピーユースケースを生成する。
func NewWeightCopyUsecase(deps WeightCopyUsecaseDeps) *WeightCopyUsecase {
	sessionID := uuid.NewString()
	logger := deps.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	clipboard := deps.Clipboard
	if clipboard == nil {
		clipboard = weight.NewClipboard()
	}
	uc := &WeightCopyUsecase{
		mesh:       deps.Mesh,
		meshReader: deps.MeshReader,
		meshWriter: deps.MeshWriter,
		logger:     logger.With("session", sessionID),
		clipboard:  clipboard,
		sessionID:  sessionID,
	}
	uc.logger.Debug(messages.LogSessionStart, sessionID)
	return uc
}

// SessionID はセッションIDを返す。
func (uc *WeightCopyUsecase) SessionID() string {
	return uc.sessionID
}

// Clipboard はセッションのクリップボードを返す。
func (uc *WeightCopyUsecase) Clipboard() *weight.Clipboard {
	return uc.clipboard
}

// Mesh は既定の編集対象メッシュを返す。
func (uc *WeightCopyUsecase) Mesh() moutput.IMeshEditor {
	return uc.mesh
}

// SetMesh は既定の編集対象メッシュを差し替える。クリップボードは維持する。
func (uc *WeightCopyUsecase) SetMesh(mesh moutput.IMeshEditor) {
	uc.mesh = mesh
}

// resolveMesh は要求のメッシュ、無ければ既定メッシュを返す。
func (uc *WeightCopyUsecase) resolveMesh(mesh moutput.IMeshEditor) (moutput.IMeshEditor, error) {
	resolved := mesh
	if resolved == nil {
		resolved = uc.mesh
	}
	if resolved == nil {
		return nil, fmt.Errorf("編集対象メッシュが設定されていません")
	}
	return resolved, nil
}

// enterEditContext は編集モード切り替えに対応したメッシュならモードを切り替える。
// 戻り値の関数は常に非nilで、元のモードへ戻す。
func enterEditContext(mesh moutput.IMeshEditor) (func(), error) {
	editContext, ok := mesh.(moutput.IEditContext)
	if !ok {
		return func() {}, nil
	}
	restore, err := editContext.EnterEditContext()
	if err != nil {
		return nil, fmt.Errorf("編集モードへの切り替えに失敗しました: %w", err)
	}
	if restore == nil {
		restore = func() {}
	}
	return restore, nil
}

// resolveTargets は対象頂点を解決する。未指定ならホストの選択頂点。重複は除く。
func resolveTargets(mesh moutput.IMeshEditor, targets []int) []int {
	if len(targets) == 0 {
		targets = mesh.SelectedVertexIndexes()
	}
	seen := make(map[int]struct{}, len(targets))
	resolved := make([]int, 0, len(targets))
	for _, target := range targets {
		if _, exists := seen[target]; exists {
			continue
		}
		seen[target] = struct{}{}
		resolved = append(resolved, target)
	}
	return resolved
}
