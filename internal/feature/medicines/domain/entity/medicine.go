// Package entity はmedicinesフィーチャーのドメインモデルを定義します。
package entity

import "fmt"

// Medicine は参照データベース内の市販薬1件を表します。
// カラム名はリファレンステーブルのフィールド名と厳密に一致させます。
type Medicine struct {
	ID                   uint   `gorm:"column:id;primaryKey" json:"id"`
	PillLabel            string `gorm:"column:pillLabel;size:255;not null;uniqueIndex" json:"pillLabel"`
	GenericName          string `gorm:"column:genericName;size:255;not null" json:"genericName"`
	BrandName            string `gorm:"column:brandName;size:255;not null" json:"brandName"`
	Manufacturer         string `gorm:"column:manufacturer;size:255" json:"manufacturer"`
	MedicalUse           string `gorm:"column:medicalUse;type:text" json:"medicalUse"`
	DosageGuidelines     string `gorm:"column:dosageGuidelines;type:text" json:"dosageGuidelines"`
	Warnings             string `gorm:"column:warnings;type:text" json:"warnings"`
	AdditionalInfo       string `gorm:"column:additionalInfo;type:text" json:"additionalInfo"`
	PrescriptionRequired bool   `gorm:"column:prescriptionRequired;not null;default:false" json:"prescriptionRequired"`
	LegalStatus          string `gorm:"column:legalStatus;size:255" json:"legalStatus"`
}

// TableName は永続化先のテーブル名を指定します。
func (Medicine) TableName() string {
	return "pills"
}

// DisplayName は「ブランド名（一般名）」形式の表示名を返します。
func (m Medicine) DisplayName() string {
	return fmt.Sprintf("%s (%s)", m.BrandName, m.GenericName)
}
