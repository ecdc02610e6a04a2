// Package handler はmedicinesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediscan_backend/internal/feature/medicines/domain/entity"
	"mediscan_backend/internal/feature/medicines/transport/http/dto"
)

// MedicineUsecase は薬剤参照データに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MedicineUsecase interface {
	ListMedicines(ctx context.Context) ([]entity.Medicine, error)
	GetMedicineByID(ctx context.Context, id uint) (*entity.Medicine, error)
}

// MedicineHandler は薬剤参照データに関するHTTPリクエストを処理します。
type MedicineHandler struct {
	uc MedicineUsecase
}

// NewMedicineHandler は新しい MedicineHandler を作成します。
func NewMedicineHandler(uc MedicineUsecase) *MedicineHandler {
	return &MedicineHandler{uc: uc}
}

// List は登録されている全薬剤の一覧を取得するAPIです。
//
// エンドポイント: GET /api/medicines
func (h *MedicineHandler) List(c *gin.Context) {
	medicines, err := h.uc.ListMedicines(c.Request.Context())
	if err != nil {
		slog.Error("failed to list medicines", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An error occurred while processing the request.",
			"details": err.Error(),
		})
		return
	}
	out := make([]dto.MedicineListItem, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, dto.MedicineListItem{
			ID:          m.ID,
			PillLabel:   m.PillLabel,
			BrandName:   m.BrandName,
			GenericName: m.GenericName,
			DisplayName: m.DisplayName(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetByID はidを指定して薬剤1件の詳細を取得するAPIです。
// 不正なidや未登録のidは404を返します（例外ではなく構造化エラー）。
//
// エンドポイント: GET /api/medicine/:id
func (h *MedicineHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
		return
	}

	m, err := h.uc.GetMedicineByID(c.Request.Context(), uint(id))
	if err != nil {
		slog.Error("failed to get medicine", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An error occurred while processing the request.",
			"details": err.Error(),
		})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
		return
	}

	c.JSON(http.StatusOK, dto.MedicineDetail{
		ID:                   m.ID,
		Name:                 m.DisplayName(),
		PillLabel:            m.PillLabel,
		GenericName:          m.GenericName,
		BrandName:            m.BrandName,
		Manufacturer:         m.Manufacturer,
		MedicalUse:           m.MedicalUse,
		DosageGuidelines:     m.DosageGuidelines,
		Warnings:             m.Warnings,
		AdditionalInfo:       m.AdditionalInfo,
		PrescriptionRequired: m.PrescriptionRequired,
		LegalStatus:          m.LegalStatus,
	})
}
