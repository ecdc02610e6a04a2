// Package usecase はimporterフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"mediscan_backend/internal/feature/medicines/domain/entity"
)

// requiredColumns はCSVソースに必須のカラム名です。
var requiredColumns = []string{
	"ID", "Pill_Label", "Generic_Name", "Brand_Name", "Manufacturer",
	"Medical_Use", "Dosage_Guidelines", "Warnings", "Additional_Info",
	"Prescription_Req", "Legal_Status",
}

// MedicineWriter は参照テーブルの全行置換を行うリポジトリインターフェースです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MedicineWriter interface {
	ReplaceAll(ctx context.Context, medicines []entity.Medicine) error
}

// ImportUsecase はCSVソースから参照テーブルを再構築するユースケースを定義します。
type ImportUsecase struct {
	medicines MedicineWriter
}

// NewImportUsecase は新しい ImportUsecase を作成します。
func NewImportUsecase(medicines MedicineWriter) *ImportUsecase {
	return &ImportUsecase{medicines: medicines}
}

// ImportCSV はCSVを読み取り、全行を1トランザクションで置き換えます。
// 取り込んだ行数を返します。ヘッダー先頭のUTF-8 BOMは除去します。
func (iu *ImportUsecase) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return 0, fmt.Errorf("CSV header is missing column %q", name)
		}
	}

	var medicines []entity.Medicine
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read CSV record: %w", err)
		}

		id, err := strconv.ParseUint(record[col["ID"]], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ID %q: %w", record[col["ID"]], err)
		}

		m := entity.Medicine{
			ID:                   uint(id),
			PillLabel:            record[col["Pill_Label"]],
			GenericName:          record[col["Generic_Name"]],
			BrandName:            record[col["Brand_Name"]],
			Manufacturer:         record[col["Manufacturer"]],
			MedicalUse:           record[col["Medical_Use"]],
			DosageGuidelines:     record[col["Dosage_Guidelines"]],
			Warnings:             record[col["Warnings"]],
			AdditionalInfo:       record[col["Additional_Info"]],
			PrescriptionRequired: parseBoolish(record[col["Prescription_Req"]]),
			LegalStatus:          record[col["Legal_Status"]],
		}
		medicines = append(medicines, m)
		slog.Info("parsed medicine", "id", m.ID, "pillLabel", m.PillLabel)
	}

	if err := iu.medicines.ReplaceAll(ctx, medicines); err != nil {
		return 0, fmt.Errorf("failed to replace medicines: %w", err)
	}
	return len(medicines), nil
}

// parseBoolish は"1"/"true"/"TRUE"等を許容するゆるいbool解釈です。
// 解釈できない値はfalseになります。
func parseBoolish(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
