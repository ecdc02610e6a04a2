package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediscan_backend/internal/feature/detection/domain/entity"
	medentity "mediscan_backend/internal/feature/medicines/domain/entity"
)

// mockMedicineLookup はMedicineLookupインターフェースのモック実装です。
type mockMedicineLookup struct {
	findByPillLabelFn func(ctx context.Context, pillLabel string) (*medentity.Medicine, error)
	called            int
}

// FindByPillLabel はモックのFindByPillLabel関数を呼び出します。
func (m *mockMedicineLookup) FindByPillLabel(ctx context.Context, pillLabel string) (*medentity.Medicine, error) {
	m.called++
	if m.findByPillLabelFn != nil {
		return m.findByPillLabelFn(ctx, pillLabel)
	}
	return nil, nil
}

// mockAdvisor はDosageAdvisorインターフェースのモック実装です。
type mockAdvisor struct {
	adviseFn func(genericName string, age int) string
}

// Advise はモックのAdvise関数を呼び出します。
func (m *mockAdvisor) Advise(genericName string, age int) string {
	if m.adviseFn != nil {
		return m.adviseFn(genericName, age)
	}
	return ""
}

// testLabelMap はテスト用の分類ラベルマップです。
func testLabelMap() map[string]string {
	return map[string]string{
		"biogesic-para": "Biogesic 500mg",
		"cetirizine":    "Cetirizine HCl 10 mg Film-Coated Tablet",
	}
}

// testMedicine はテスト用の参照レコードです。
func testMedicine() *medentity.Medicine {
	return &medentity.Medicine{
		ID:          2,
		PillLabel:   "Biogesic 500mg",
		GenericName: "Paracetamol",
		BrandName:   "Biogesic",
	}
}

// TestResolveUsecase_Resolve_EmptyDetections は検出候補が空の場合に
// ルックアップを呼ばずStatusNoDetectionを返すことを検証します。
func TestResolveUsecase_Resolve_EmptyDetections(t *testing.T) {
	t.Parallel()

	lookup := &mockMedicineLookup{}
	uc := NewResolveUsecase(lookup, &mockAdvisor{}, testLabelMap())

	res, err := uc.Resolve(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusNoDetection, res.Status)
	assert.Equal(t, 0, res.DetectionCount)
	assert.Zero(t, lookup.called, "lookup should not be called for empty detections")
}

// TestResolveUsecase_Resolve_Selection は最高信頼度の検出が選ばれ、
// 同率の場合は入力順で先の検出が選ばれることを検証します。
func TestResolveUsecase_Resolve_Selection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		detections []entity.Detection
		wantLabel  string
	}{
		{
			name: "highest confidence wins",
			detections: []entity.Detection{
				{Label: "a", Confidence: 0.4},
				{Label: "b", Confidence: 0.9},
			},
			wantLabel: "b",
		},
		{
			name: "tie broken by first occurrence",
			detections: []entity.Detection{
				{Label: "a", Confidence: 0.5},
				{Label: "b", Confidence: 0.5},
			},
			wantLabel: "a",
		},
		{
			name: "label is lower-cased before mapping",
			detections: []entity.Detection{
				{Label: "Biogesic-PARA", Confidence: 0.3},
			},
			wantLabel: "biogesic-para",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewResolveUsecase(&mockMedicineLookup{}, &mockAdvisor{}, testLabelMap())

			res, err := uc.Resolve(context.Background(), tt.detections, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, res.Label)
			assert.Equal(t, len(tt.detections), res.DetectionCount)
		})
	}
}

// TestResolveUsecase_Resolve_UnmappedLabel は未登録ラベルがエラーではなく
// StatusUnknownとして返ることを検証します。
func TestResolveUsecase_Resolve_UnmappedLabel(t *testing.T) {
	t.Parallel()

	lookup := &mockMedicineLookup{}
	uc := NewResolveUsecase(lookup, &mockAdvisor{}, testLabelMap())

	res, err := uc.Resolve(context.Background(), []entity.Detection{
		{Label: "unknown-pill", Confidence: 0.88},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusUnknown, res.Status)
	assert.Equal(t, "unknown-pill", res.Label)
	assert.Equal(t, 0.88, res.Confidence)
	assert.Nil(t, res.Medicine)
	assert.Zero(t, lookup.called, "lookup should not be called for unmapped labels")
}

// TestResolveUsecase_Resolve_MissingRecord はラベルマップにはあるが
// レコードが存在しないデータ不整合でもStatusUnknownとして返ることを検証します。
func TestResolveUsecase_Resolve_MissingRecord(t *testing.T) {
	t.Parallel()

	lookup := &mockMedicineLookup{
		findByPillLabelFn: func(ctx context.Context, pillLabel string) (*medentity.Medicine, error) {
			return nil, nil
		},
	}
	uc := NewResolveUsecase(lookup, &mockAdvisor{}, testLabelMap())

	res, err := uc.Resolve(context.Background(), []entity.Detection{
		{Label: "biogesic-para", Confidence: 0.9},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusUnknown, res.Status)
	assert.Equal(t, 1, lookup.called)
}

// TestResolveUsecase_Resolve_Found は解決成功時にレコードが添付され、
// 年齢が指定された場合のみアドバイスが生成されることを検証します。
func TestResolveUsecase_Resolve_Found(t *testing.T) {
	t.Parallel()

	newLookup := func() *mockMedicineLookup {
		return &mockMedicineLookup{
			findByPillLabelFn: func(ctx context.Context, pillLabel string) (*medentity.Medicine, error) {
				assert.Equal(t, "Biogesic 500mg", pillLabel)
				return testMedicine(), nil
			},
		}
	}

	t.Run("without age: no personalized dosage", func(t *testing.T) {
		t.Parallel()

		uc := NewResolveUsecase(newLookup(), &mockAdvisor{}, testLabelMap())

		res, err := uc.Resolve(context.Background(), []entity.Detection{
			{Label: "biogesic-para", Confidence: 0.95},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFound, res.Status)
		require.NotNil(t, res.Medicine)
		assert.Equal(t, "Biogesic 500mg", res.Medicine.PillLabel)
		assert.Empty(t, res.PersonalizedDosage)
		assert.Nil(t, res.UserAge)
	})

	t.Run("with age: advisor called with generic name", func(t *testing.T) {
		t.Parallel()

		advisor := &mockAdvisor{
			adviseFn: func(genericName string, age int) string {
				assert.Equal(t, "Paracetamol", genericName)
				assert.Equal(t, 25, age)
				return "advice for adults"
			},
		}
		uc := NewResolveUsecase(newLookup(), advisor, testLabelMap())

		age := 25
		res, err := uc.Resolve(context.Background(), []entity.Detection{
			{Label: "biogesic-para", Confidence: 0.95},
		}, &age)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFound, res.Status)
		assert.Equal(t, "advice for adults", res.PersonalizedDosage)
		require.NotNil(t, res.UserAge)
		assert.Equal(t, 25, *res.UserAge)
	})
}

// TestResolveUsecase_Resolve_LookupError はストア読み取りの失敗が
// そのままエラーとして伝播されることを検証します。
func TestResolveUsecase_Resolve_LookupError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("database connection failed")
	lookup := &mockMedicineLookup{
		findByPillLabelFn: func(ctx context.Context, pillLabel string) (*medentity.Medicine, error) {
			return nil, expectedErr
		},
	}
	uc := NewResolveUsecase(lookup, &mockAdvisor{}, testLabelMap())

	res, err := uc.Resolve(context.Background(), []entity.Detection{
		{Label: "biogesic-para", Confidence: 0.9},
	}, nil)

	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, res)
}
