// Package usecase implements the business logic for medicine reference data.
package usecase

import (
	"context"

	"mediscan_backend/internal/feature/medicines/domain/entity"
)

// MedicineRepository abstracts the persistence layer for the medicine
// reference table. Lookups return (nil, nil) when no record exists.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MedicineRepository interface {
	FindByPillLabel(ctx context.Context, pillLabel string) (*entity.Medicine, error)
	FindByID(ctx context.Context, id uint) (*entity.Medicine, error)
	ListAll(ctx context.Context) ([]entity.Medicine, error)
	ReplaceAll(ctx context.Context, medicines []entity.Medicine) error
}

// MedicineUsecase provides read operations over the medicine reference data.
type MedicineUsecase struct {
	repo MedicineRepository
}

// NewMedicineUsecase creates a new MedicineUsecase with the given repository.
func NewMedicineUsecase(r MedicineRepository) *MedicineUsecase {
	return &MedicineUsecase{repo: r}
}

// ListMedicines returns every record in the reference table ordered by id.
func (u *MedicineUsecase) ListMedicines(ctx context.Context) ([]entity.Medicine, error) {
	return u.repo.ListAll(ctx)
}

// GetMedicineByID returns a single record, or (nil, nil) when the id is unknown.
func (u *MedicineUsecase) GetMedicineByID(ctx context.Context, id uint) (*entity.Medicine, error) {
	return u.repo.FindByID(ctx, id)
}
