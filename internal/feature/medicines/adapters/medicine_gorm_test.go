package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mediscan_backend/internal/feature/medicines/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// pillsテーブルを作成
	err = db.AutoMigrate(&entity.Medicine{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedMedicine はテスト用のレコードをデータベースに作成します。
func seedMedicine(t *testing.T, db *gorm.DB, id uint, pillLabel, genericName string) *entity.Medicine {
	t.Helper()

	m := &entity.Medicine{
		ID:          id,
		PillLabel:   pillLabel,
		GenericName: genericName,
		BrandName:   "Brand-" + pillLabel,
	}
	err := db.Create(m).Error
	require.NoError(t, err, "failed to seed medicine")

	return m
}

func TestNewMedicineRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewMedicineRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

// TestMedicineGorm_FindByPillLabel は自然キーでの検索を検証します。
// 存在しないラベルはエラーではなく (nil, nil) になります。
func TestMedicineGorm_FindByPillLabel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicineRepository(db)
	seedMedicine(t, db, 2, "Biogesic 500mg", "Paracetamol")

	t.Run("success: existing label", func(t *testing.T) {
		m, err := repo.FindByPillLabel(context.Background(), "Biogesic 500mg")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, uint(2), m.ID)
		assert.Equal(t, "Paracetamol", m.GenericName)
	})

	t.Run("success: missing label returns nil without error", func(t *testing.T) {
		m, err := repo.FindByPillLabel(context.Background(), "Nonexistent 10mg")

		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("success: repeated lookups return identical records", func(t *testing.T) {
		first, err := repo.FindByPillLabel(context.Background(), "Biogesic 500mg")
		require.NoError(t, err)
		second, err := repo.FindByPillLabel(context.Background(), "Biogesic 500mg")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

// TestMedicineGorm_FindByID はidでの検索を検証します。
func TestMedicineGorm_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicineRepository(db)
	seedMedicine(t, db, 5, "Cetirizine HCl 10 mg Film-Coated Tablet", "Cetirizine Hydrochloride")

	t.Run("success: existing id", func(t *testing.T) {
		m, err := repo.FindByID(context.Background(), 5)

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Cetirizine HCl 10 mg Film-Coated Tablet", m.PillLabel)
	})

	t.Run("success: missing id returns nil without error", func(t *testing.T) {
		m, err := repo.FindByID(context.Background(), 999)

		require.NoError(t, err)
		assert.Nil(t, m)
	})
}

// TestMedicineGorm_ListAll は全件取得がid順に並ぶことを検証します。
func TestMedicineGorm_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicineRepository(db)
	seedMedicine(t, db, 3, "Kremil-S chewable tablet", "Aluminum Hydroxide + Magnesium Hydroxide")
	seedMedicine(t, db, 1, "Alaxan FR Capsule", "Ibuprofen + Paracetamol")

	medicines, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, medicines, 2)
	assert.Equal(t, uint(1), medicines[0].ID)
	assert.Equal(t, uint(3), medicines[1].ID)
}

// TestMedicineGorm_ReplaceAll は全行置換のトランザクション挙動と
// 再実行時の冪等性（置換であって追記ではない）を検証します。
func TestMedicineGorm_ReplaceAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicineRepository(db)
	seedMedicine(t, db, 1, "Old Label A", "Old Generic A")
	seedMedicine(t, db, 2, "Old Label B", "Old Generic B")

	batch := []entity.Medicine{
		{ID: 1, PillLabel: "Alaxan FR Capsule", GenericName: "Ibuprofen + Paracetamol", BrandName: "Alaxan FR"},
		{ID: 2, PillLabel: "Biogesic 500mg", GenericName: "Paracetamol", BrandName: "Biogesic"},
		{ID: 3, PillLabel: "Kremil-S chewable tablet", GenericName: "Aluminum Hydroxide + Magnesium Hydroxide", BrandName: "Kremil-S"},
	}

	t.Run("success: replaces existing rows", func(t *testing.T) {
		err := repo.ReplaceAll(context.Background(), batch)
		require.NoError(t, err)

		medicines, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, medicines, 3)
		assert.Equal(t, "Alaxan FR Capsule", medicines[0].PillLabel)

		// 旧データが残っていないこと
		old, err := repo.FindByPillLabel(context.Background(), "Old Label A")
		require.NoError(t, err)
		assert.Nil(t, old)
	})

	t.Run("success: re-run with same batch is idempotent", func(t *testing.T) {
		err := repo.ReplaceAll(context.Background(), batch)
		require.NoError(t, err)

		first, err := repo.ListAll(context.Background())
		require.NoError(t, err)

		err = repo.ReplaceAll(context.Background(), batch)
		require.NoError(t, err)

		second, err := repo.ListAll(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("success: empty batch clears the table", func(t *testing.T) {
		err := repo.ReplaceAll(context.Background(), nil)
		require.NoError(t, err)

		medicines, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, medicines)
	})
}
