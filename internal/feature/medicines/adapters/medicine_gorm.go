// Package adapters はmedicinesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mediscan_backend/internal/feature/medicines/domain/entity"
	"mediscan_backend/internal/feature/medicines/usecase"
)

// medicineGorm はMedicineRepositoryインターフェースのgorm実装です。
type medicineGorm struct {
	db *gorm.DB
}

var _ usecase.MedicineRepository = (*medicineGorm)(nil)

// NewMedicineRepository は指定されたDB接続でmedicineGormリポジトリの新しいインスタンスを生成します。
func NewMedicineRepository(db *gorm.DB) *medicineGorm {
	return &medicineGorm{db: db}
}

// FindByPillLabel はpillLabel（自然キー）でレコードを1件取得します。
// レコードが存在しない場合はエラーではなく (nil, nil) を返します。
func (r *medicineGorm) FindByPillLabel(ctx context.Context, pillLabel string) (*entity.Medicine, error) {
	var m entity.Medicine
	if err := r.db.WithContext(ctx).
		Where(&entity.Medicine{PillLabel: pillLabel}).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// FindByID はidでレコードを1件取得します。存在しない場合は (nil, nil) を返します。
func (r *medicineGorm) FindByID(ctx context.Context, id uint) (*entity.Medicine, error) {
	var m entity.Medicine
	if err := r.db.WithContext(ctx).
		First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListAll はid順にすべてのレコードを返します。
func (r *medicineGorm) ListAll(ctx context.Context) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// ReplaceAll は参照テーブルの全行を1トランザクションで置き換えます。
// 同じ入力で再実行しても行数と内容は同一になります（追記ではなく置換）。
func (r *medicineGorm) ReplaceAll(ctx context.Context, medicines []entity.Medicine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entity.Medicine{}).Error; err != nil {
			return err
		}
		if len(medicines) == 0 {
			return nil
		}
		return tx.Create(&medicines).Error
	})
}
