// Package entity はdetectionフィーチャーのドメインモデルを定義します。
package entity

import medentity "mediscan_backend/internal/feature/medicines/domain/entity"

// BoundingBox は検出された錠剤の画像内の矩形領域を表します。
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detection は外部分類モデルが出力した検出候補1件を表します。
// リクエストごとに供給され、永続化されません。
type Detection struct {
	Label      string       // 分類器のクラスラベル
	Confidence float64      // 信頼度スコア（0.0 ~ 1.0）
	BBox       *BoundingBox // 検出領域（任意）
}

// ResolutionStatus は検出結果の解決ステータスを表します。
type ResolutionStatus int

const (
	// StatusNoDetection は検出候補が1件もなかったことを表します。
	StatusNoDetection ResolutionStatus = iota
	// StatusUnknown はラベルが未登録、または対応するレコードが存在しないことを表します。
	// データ欠落であってエラーではありません。
	StatusUnknown
	// StatusFound は参照レコードへの解決に成功したことを表します。
	StatusFound
)

// Resolution は検出候補リストを参照データへ解決した結果を表します。
type Resolution struct {
	Status             ResolutionStatus
	Label              string // 選択された検出の小文字化済みクラスラベル
	Confidence         float64
	DetectionCount     int
	Medicine           *medentity.Medicine // StatusFoundの場合のみ非nil
	PersonalizedDosage string              // 年齢が指定された場合のみ非空
	UserAge            *int
}
