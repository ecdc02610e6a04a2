// Package handler はdetectionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mediscan_backend/internal/feature/detection/domain/entity"
	"mediscan_backend/internal/feature/detection/transport/http/dto"
)

// 未検出・未登録時の固定ガイダンス文です。
const (
	noDetectionMedicine       = "No Medicine Detected"
	noDetectionUsage          = "No medicine was detected in the image. Please try again with a clearer image."
	noDetectionSideEffects    = "N/A"
	noDetectionMisconceptions = "Ensure the medicine packaging is clearly visible and well-lit for better detection accuracy."

	unknownUsage          = "Information not available for this medicine. Please consult a healthcare professional or pharmacist."
	unknownSideEffects    = "Please refer to the medicine packaging or consult a healthcare professional."
	unknownMisconceptions = "Always read medicine labels carefully and follow prescribed dosages."
)

// ResolveUsecase は検出候補の解決ユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ResolveUsecase interface {
	Resolve(ctx context.Context, detections []entity.Detection, age *int) (*entity.Resolution, error)
}

// PredictHandler は検出結果を受け取り薬剤情報を返すHTTPリクエストを処理します。
type PredictHandler struct {
	uc ResolveUsecase
}

// NewPredictHandler は新しい PredictHandler を作成します。
func NewPredictHandler(uc ResolveUsecase) *PredictHandler {
	return &PredictHandler{uc: uc}
}

// Predict は外部分類モデルの検出結果を薬剤情報と年齢別アドバイスへ解決するAPIです。
// detectionsキーが欠落している場合のみ400を返します。空リストや未登録ラベルは
// データ欠落としてガイダンス付きの200を返します。
//
// エンドポイント: POST /api/predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Detections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Missing detections data."})
		return
	}

	detections := make([]entity.Detection, 0, len(*req.Detections))
	for _, d := range *req.Detections {
		var bbox *entity.BoundingBox
		if d.BBox != nil {
			bbox = &entity.BoundingBox{X: d.BBox.X, Y: d.BBox.Y, Width: d.BBox.Width, Height: d.BBox.Height}
		}
		detections = append(detections, entity.Detection{
			Label:      d.Medicine,
			Confidence: d.Confidence,
			BBox:       bbox,
		})
	}

	res, err := h.uc.Resolve(c.Request.Context(), detections, req.Age)
	if err != nil {
		slog.Error("failed to resolve detections", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An error occurred while processing the request.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toResponse(res))
}

// toResponse は解決結果をステータスに応じたレスポンスDTOへ変換します。
func toResponse(res *entity.Resolution) dto.PredictResponse {
	switch res.Status {
	case entity.StatusFound:
		m := res.Medicine
		prescription := m.PrescriptionRequired
		return dto.PredictResponse{
			Medicine:             m.DisplayName(),
			PillLabel:            m.PillLabel,
			GenericName:          m.GenericName,
			BrandName:            m.BrandName,
			Manufacturer:         m.Manufacturer,
			Usage:                m.MedicalUse,
			Dosage:               m.DosageGuidelines,
			PersonalizedDosage:   res.PersonalizedDosage,
			UserAge:              res.UserAge,
			SideEffects:          m.Warnings,
			Misconceptions:       m.AdditionalInfo,
			PrescriptionRequired: &prescription,
			LegalStatus:          m.LegalStatus,
			Confidence:           &res.Confidence,
			DetectionCount:       &res.DetectionCount,
			Timestamp:            time.Now().Format(time.RFC3339),
		}
	case entity.StatusUnknown:
		return dto.PredictResponse{
			Medicine:       "Detected: " + res.Label,
			Usage:          unknownUsage,
			SideEffects:    unknownSideEffects,
			Misconceptions: unknownMisconceptions,
			Confidence:     &res.Confidence,
			DetectionCount: &res.DetectionCount,
			Timestamp:      time.Now().Format(time.RFC3339),
		}
	default:
		return dto.PredictResponse{
			Medicine:       noDetectionMedicine,
			Usage:          noDetectionUsage,
			SideEffects:    noDetectionSideEffects,
			Misconceptions: noDetectionMisconceptions,
		}
	}
}
