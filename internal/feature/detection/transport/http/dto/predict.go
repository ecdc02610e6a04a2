// Package dto はdetectionフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// BoundingBox は検出領域の矩形です。
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectionItem はリクエスト中の検出候補1件です。
type DetectionItem struct {
	Medicine   string       `json:"medicine"`
	Confidence float64      `json:"confidence"`
	BBox       *BoundingBox `json:"bbox,omitempty"`
}

// PredictRequest は POST /api/predict のリクエストボディです。
// Detectionsはポインタにして「キー欠落」（400）と「空リスト」（200）を区別します。
type PredictRequest struct {
	Detections *[]DetectionItem `json:"detections"`
	Image      string           `json:"image,omitempty"`
	Age        *int             `json:"age,omitempty"`
	Timestamp  string           `json:"timestamp,omitempty"`
}

// PredictResponse は POST /api/predict のレスポンスボディです。
// 解決ステータスに応じて埋まるフィールドが変わるため、任意フィールドは
// omitemptyで欠落させます。
type PredictResponse struct {
	Medicine             string   `json:"medicine"`
	PillLabel            string   `json:"pillLabel,omitempty"`
	GenericName          string   `json:"genericName,omitempty"`
	BrandName            string   `json:"brandName,omitempty"`
	Manufacturer         string   `json:"manufacturer,omitempty"`
	Usage                string   `json:"usage"`
	Dosage               string   `json:"dosage,omitempty"`
	PersonalizedDosage   string   `json:"personalizedDosage,omitempty"`
	UserAge              *int     `json:"userAge,omitempty"`
	SideEffects          string   `json:"sideEffects"`
	Misconceptions       string   `json:"misconceptions"`
	PrescriptionRequired *bool    `json:"prescriptionRequired,omitempty"`
	LegalStatus          string   `json:"legalStatus,omitempty"`
	Confidence           *float64 `json:"confidence,omitempty"`
	DetectionCount       *int     `json:"detectionCount,omitempty"`
	Timestamp            string   `json:"timestamp,omitempty"`
}
