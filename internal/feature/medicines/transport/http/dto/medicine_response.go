// Package dto はmedicinesフィーチャーのHTTPレスポンス型を定義します。
package dto

// MedicineListItem は一覧エンドポイントの1要素です。
type MedicineListItem struct {
	ID          uint   `json:"id"`
	PillLabel   string `json:"pillLabel"`
	BrandName   string `json:"brandName"`
	GenericName string `json:"genericName"`
	DisplayName string `json:"displayName"`
}

// MedicineDetail は単一レコード取得エンドポイントのレスポンスです。
type MedicineDetail struct {
	ID                   uint   `json:"id"`
	Name                 string `json:"name"`
	PillLabel            string `json:"pillLabel"`
	GenericName          string `json:"genericName"`
	BrandName            string `json:"brandName"`
	Manufacturer         string `json:"manufacturer"`
	MedicalUse           string `json:"medicalUse"`
	DosageGuidelines     string `json:"dosageGuidelines"`
	Warnings             string `json:"warnings"`
	AdditionalInfo       string `json:"additionalInfo"`
	PrescriptionRequired bool   `json:"prescriptionRequired"`
	LegalStatus          string `json:"legalStatus"`
}
