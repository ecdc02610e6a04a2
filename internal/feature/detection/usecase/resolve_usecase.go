// Package usecase はdetectionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"mediscan_backend/internal/feature/detection/domain/entity"
	medentity "mediscan_backend/internal/feature/medicines/domain/entity"
)

// MedicineLookup はpillLabelで参照レコードを引くリポジトリインターフェースです。
// レコードが存在しない場合は (nil, nil) を返します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MedicineLookup interface {
	FindByPillLabel(ctx context.Context, pillLabel string) (*medentity.Medicine, error)
}

// DosageAdvisor は一般名と年齢から服用アドバイス文を生成するインターフェースです。
type DosageAdvisor interface {
	Advise(genericName string, age int) string
}

// ResolveUsecase は検出候補リストを参照レコードと服用アドバイスへ解決します。
type ResolveUsecase struct {
	medicines MedicineLookup
	advisor   DosageAdvisor
	labelMap  map[string]string
}

// NewResolveUsecase はResolveUsecaseの新しいインスタンスを生成します。
// labelMapには通常DefaultClassLabelMap()を渡します。
func NewResolveUsecase(medicines MedicineLookup, advisor DosageAdvisor, labelMap map[string]string) *ResolveUsecase {
	return &ResolveUsecase{medicines: medicines, advisor: advisor, labelMap: labelMap}
}

// Resolve は最高信頼度の検出を選択し、ラベルマップと参照ストアを通じて
// 薬剤情報へ解決します。同率の場合は入力順で先の検出が選ばれます。
// 未登録ラベルやレコード欠落はエラーではなくStatusUnknownとして返します。
// エラーを返すのはストア読み取りが失敗した場合のみです。
func (u *ResolveUsecase) Resolve(ctx context.Context, detections []entity.Detection, age *int) (*entity.Resolution, error) {
	if len(detections) == 0 {
		return &entity.Resolution{Status: entity.StatusNoDetection}, nil
	}

	primary := detections[0]
	for _, d := range detections[1:] {
		if d.Confidence > primary.Confidence {
			primary = d
		}
	}
	label := strings.ToLower(primary.Label)

	unknown := &entity.Resolution{
		Status:         entity.StatusUnknown,
		Label:          label,
		Confidence:     primary.Confidence,
		DetectionCount: len(detections),
	}

	pillLabel, ok := u.labelMap[label]
	if !ok {
		return unknown, nil
	}

	m, err := u.medicines.FindByPillLabel(ctx, pillLabel)
	if err != nil {
		return nil, err
	}
	if m == nil {
		// ラベルマップにはあるがレコードが無いデータ不整合も未登録扱い
		return unknown, nil
	}

	res := &entity.Resolution{
		Status:         entity.StatusFound,
		Label:          label,
		Confidence:     primary.Confidence,
		DetectionCount: len(detections),
		Medicine:       m,
		UserAge:        age,
	}
	if age != nil {
		res.PersonalizedDosage = u.advisor.Advise(m.GenericName, *age)
	}
	return res, nil
}
