// Package usecase はdosageフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"fmt"
	"math"
	"strings"
)

// noUpperBound は年齢バンドの上限なし（最終バンド）を表します。
const noUpperBound = math.MaxInt

// ageBand は半開区間の年齢バンド1つと対応するアドバイス文を表します。
// 下限は直前のバンドの上限（先頭バンドは0）、上限belowは排他的です。
type ageBand struct {
	below  int
	advice string
}

// dosageRule は薬剤カテゴリ1つの判定述語と年齢バンドのラダーを表します。
// ルールは上から順に評価され、最初にマッチしたものが採用されます。
type dosageRule struct {
	matches func(name string) bool
	bands   []ageBand
}

// exact は小文字化された一般名との完全一致を判定します。
func exact(want string) func(string) bool {
	return func(name string) bool { return name == want }
}

// containsAll は指定した部分文字列をすべて含むかを判定します。
func containsAll(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if !strings.Contains(name, s) {
				return false
			}
		}
		return true
	}
}

// containsAny は指定した部分文字列のいずれかを含むかを判定します。
func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// dosageRules は年齢別用量の決定テーブルです。
// 評価順序に意味があるため、並び順を変更してはいけません
// （例: 配合剤の「ibuprofen+paracetamol」は単剤の「ibuprofen」より先に判定する必要があります）。
var dosageRules = []dosageRule{
	{
		matches: exact("paracetamol"),
		bands: []ageBand{
			{below: 2, advice: "⚠️ CONSULT A DOCTOR: For infants under 2 years, " +
				"paracetamol dosage must be determined by a healthcare professional " +
				"based on weight and specific medical condition. Do not self-medicate."},
			{below: 6, advice: "Children 2-5 years: Typically 120-240 mg (liquid formulation recommended). " +
				"Dosage should be based on body weight (10-15 mg/kg every 4-6 hours). " +
				"Maximum 4 doses in 24 hours. Please consult a pediatrician for exact dosing."},
			{below: 12, advice: "Children 6-11 years: Typically 240-480 mg every 4-6 hours. " +
				"For 500mg tablets: ½ to 1 tablet every 4-6 hours. " +
				"Do not exceed 2,400 mg (approximately 5 tablets of 500mg) in 24 hours. " +
				"Consult a healthcare provider if symptoms persist."},
			{below: 18, advice: "Adolescents 12-17 years: 1 to 2 tablets of 500mg every 4-6 hours as needed. " +
				"Maximum dose: 4,000 mg (8 tablets of 500mg) in 24 hours. " +
				"Maintain at least 4 hours between doses. Take with food if stomach upset occurs."},
			{below: 65, advice: "Adults 18-64 years: 1 to 2 tablets of 500mg every 4-6 hours as needed for pain or fever. " +
				"Maximum dose: 4,000 mg (8 tablets of 500mg) in 24 hours. " +
				"Do not take more than recommended. Can be taken with or without food."},
			{below: noUpperBound, advice: "Seniors 65+ years: 1 to 2 tablets of 500mg every 4-6 hours. " +
				"Maximum dose: 3,000 mg (6 tablets of 500mg) in 24 hours recommended for elderly. " +
				"Start with lower dose if you have liver or kidney issues. " +
				"Consult your doctor, especially if taking other medications."},
		},
	},
	{
		matches: containsAll("ibuprofen", "paracetamol"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ NOT RECOMMENDED for children under 12 years. Consult a physician for appropriate dosage."},
			{below: 18, advice: "Adolescents 12-17 years: 1 capsule every 6-8 hours as needed. Do not exceed 6 capsules in 24 hours."},
			{below: 65, advice: "Adults 18-64 years: 1-2 capsules every 6-8 hours as needed. Maximum: 6 capsules in 24 hours. Take with food to reduce stomach irritation."},
			{below: noUpperBound, advice: "Seniors 65+ years: Start with 1 capsule every 6-8 hours. Maximum: 4 capsules in 24 hours. Use with caution if you have kidney issues."},
		},
	},
	{
		matches: exact("ibuprofen"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ NOT RECOMMENDED in this tablet form for children under 12 years. Use pediatric suspension or consult a doctor."},
			{below: 18, advice: "Adolescents 12-17 years: 1-2 tablets (200 mg each) every 4-6 hours as needed. Maximum: 1,200 mg (6 tablets) in 24 hours."},
			{below: 65, advice: "Adults 18-64 years: 1-2 tablets (200 mg each) every 4-6 hours as needed. Maximum: 1,200 mg (6 tablets) in 24 hours for OTC use."},
			{below: noUpperBound, advice: "Seniors 65+ years: Start with 1 tablet every 4-6 hours. Use lowest effective dose. Consult doctor if you have heart, kidney, or stomach issues."},
		},
	},
	{
		matches: containsAny("cetirizine"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ Children under 12 years: Dosage must be determined by a healthcare professional based on age and weight."},
			{below: 65, advice: "Adults & Children 12+ years: 1 tablet (10 mg) once daily. Take with or without food. May cause mild drowsiness."},
			{below: noUpperBound, advice: "Seniors 65+ years: 1 tablet (10 mg) once daily. Use with caution if you have kidney problems; dose adjustment may be needed. Consult your doctor."},
		},
	},
	{
		matches: containsAny("sodium ascorbate", "ascorbic acid"),
		bands: []ageBand{
			{below: 12, advice: "Children under 12 years: Consult a pediatrician for appropriate Vitamin C dosage based on age and dietary needs."},
			{below: 18, advice: "Adolescents 12-17 years: 1 capsule (500 mg) daily. May be increased to 3-4 capsules during illness as advised by healthcare provider."},
			{below: 65, advice: "Adults 18-64 years: 1 capsule (500 mg) daily for maintenance. May increase to 3-4 capsules during illness or stress. Take with food if stomach upset occurs."},
			{below: noUpperBound, advice: "Seniors 65+ years: 1 capsule (500 mg) daily. Safe for long-term use. Non-acidic formulation is gentle on the stomach."},
		},
	},
	{
		matches: containsAny("aluminum hydroxide", "magnesium hydroxide"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ NOT RECOMMENDED for children. Consult a pediatrician for appropriate antacid treatment."},
			{below: 65, advice: "Adults 12-64 years: Chew 1-2 tablets one hour after each meal and at bedtime. Maximum: 8 tablets per day. Do not use long-term without medical advice."},
			{below: noUpperBound, advice: "Seniors 65+ years: Chew 1 tablet after meals and at bedtime. Use with caution if you have kidney problems. Consult your doctor for long-term use."},
		},
	},
	{
		matches: containsAny("loperamide"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ NOT RECOMMENDED for children under 12 years. Use pediatric formulations or consult a doctor."},
			{below: 65, advice: "Adults & Children 12+ years: Take 2 capsules initially, then 1 capsule after each loose stool. Maximum: 8 capsules (16 mg) per day. Ensure adequate hydration with ORS."},
			{below: noUpperBound, advice: "Seniors 65+ years: Take 2 capsules initially, then 1 after each loose stool. Maximum: 6 capsules per day. Stop if no improvement after 2 days and consult doctor. Maintain hydration."},
		},
	},
	{
		matches: containsAny("multivitamin", "vitamin b-complex"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ This adult formulation is not recommended for children under 12 years. Use pediatric multivitamin formulations."},
			{below: 65, advice: "Adults & Adolescents 12+ years: 1 tablet daily with or without food. Best taken at the same time each day for consistent nutrient levels."},
			{below: noUpperBound, advice: "Seniors 65+ years: 1 tablet daily. Safe for long-term use. Consult your doctor if taking other medications to avoid interactions."},
		},
	},
	{
		matches: containsAny("phenylephrine"),
		bands: []ageBand{
			{below: 12, advice: "⚠️ NOT RECOMMENDED for children under 12 years. Use pediatric Bioflu syrup with appropriate dosing for age/weight."},
			{below: 65, advice: "Adults & Children 12+ years: 1 tablet every 6 hours. Do NOT exceed 4 tablets in 24 hours. Avoid if you have high blood pressure. May cause drowsiness."},
			{below: noUpperBound, advice: "Seniors 65+ years: 1 tablet every 6 hours. Maximum: 3 tablets in 24 hours. Use with caution if you have heart disease or hypertension. Consult your doctor."},
		},
	},
}

// DosageUsecase は年齢別の服用アドバイスを提供します。
type DosageUsecase struct{}

// NewDosageUsecase はDosageUsecaseの新しいインスタンスを生成します。
func NewDosageUsecase() *DosageUsecase {
	return &DosageUsecase{}
}

// Advise は一般名と年齢から服用アドバイス文を返します。
// 副作用なし・決定的で、未登録の薬剤でもフォールバック文を返すため常に非空文字列を返します。
// 負の年齢はバリデーションせず、各カテゴリの最下位バンドに落ちます。
func (u *DosageUsecase) Advise(genericName string, age int) string {
	name := strings.ToLower(genericName)
	for _, rule := range dosageRules {
		if !rule.matches(name) {
			continue
		}
		for _, band := range rule.bands {
			if age < band.below {
				return band.advice
			}
		}
	}
	return fmt.Sprintf(
		"Age-based dosage for %s is not available in our system. "+
			"Please consult the medicine packaging or a healthcare professional.",
		genericName,
	)
}
