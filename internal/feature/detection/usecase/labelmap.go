package usecase

// DefaultClassLabelMap は分類モデルのクラスラベルから参照データベースの
// pillLabel（自然キー）への静的マッピングを返します。デプロイ時に固定され、
// モデルが出力しうる全クラスを網羅すべきですが、欠落エントリは
// 未登録検出として扱われます（エラーにはなりません）。
func DefaultClassLabelMap() map[string]string {
	return map[string]string{
		"alaxan_fr":          "Alaxan FR Capsule",
		"biogesic-para":      "Biogesic 500mg",
		"cetirizine":         "Cetirizine HCl 10 mg Film-Coated Tablet",
		"fern-c":             "Fern-C (500 mg Sodium Ascorbate or ascorbic acid) capsule",
		"ibuprofen-advil":    "Advil – Ibuprofen 200 mg (coated tablet)",
		"kremil-s":           "Kremil-S chewable tablet",
		"loperamide diatabs": "Diatabs (Loperamide) — 2 mg capsule",
		"ritemed-para":       "RiteMed 500mg",
		"unilab-enervon":     "Enervon Z+ Multivitamins Tablet",
		"unliab-bioflu":      "Bioflu 10mg/2mg/500mg",
	}
}
