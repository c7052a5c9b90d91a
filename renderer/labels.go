package renderer

import "github.com/etnz/fra"

// Labels are the localized strings of the presentation.
type Labels struct {
	Title      string
	Empty      string
	Company    string
	Results    string
	Ratio      string
	Value      string
	Level      string
	Current    string
	Debt       string
	Assessment string
	Decision   string
	ShortTerm  string
	LongTerm   string
	Share      string

	CurrentAssets      string
	CurrentLiabilities string
	TotalDebt          string
	Equity             string

	Decisions map[fra.Decision]string
	Verdicts  map[fra.Verdict]string
	Levels    map[fra.Level]string
}

var english = Labels{
	Title:      "Companies",
	Company:    "Company",
	Empty:      "No data. Add a company with the form.",
	Results:    "Ratios",
	Ratio:      "Ratio",
	Value:      "Value",
	Level:      "Level",
	Current:    "Current ratio",
	Debt:       "Debt ratio",
	Assessment: "Assessment",
	Decision:   "Investment decision",
	ShortTerm:  "Short-term investment",
	LongTerm:   "Long-term investment",
	Share:      "Share",

	CurrentAssets:      "Current assets",
	CurrentLiabilities: "Current liabilities",
	TotalDebt:          "Total debt",
	Equity:             "Equity",

	Decisions: map[fra.Decision]string{
		fra.Unsuitable: "Unsuitable — risk",
		fra.Reconsider: "Caution — reconsider",
		fra.Viable:     "Suitable — viable",
	},
	Verdicts: map[fra.Verdict]string{
		fra.Block:   "❌ Block",
		fra.Caution: "⚠️ Caution",
		fra.Go:      "✅ Go",
	},
	Levels: map[fra.Level]string{
		fra.Danger: "Danger",
		fra.Fair:   "Fair",
		fra.Safe:   "Safe",
	},
}

var korean = Labels{
	Title:      "기업 목록",
	Company:    "회사명",
	Empty:      "데이터가 없습니다. 상단 폼에서 추가하세요.",
	Results:    "재무 비율",
	Ratio:      "비율",
	Value:      "값",
	Level:      "수준",
	Current:    "유동비율",
	Debt:       "부채비율",
	Assessment: "투자 판단",
	Decision:   "투자 판단",
	ShortTerm:  "단기 투자",
	LongTerm:   "장기 투자",
	Share:      "비중",

	CurrentAssets:      "유동자산",
	CurrentLiabilities: "유동부채",
	TotalDebt:          "총부채",
	Equity:             "자본",

	Decisions: map[fra.Decision]string{
		fra.Unsuitable: "위험-투자 부적합",
		fra.Reconsider: "주의-투자 신중",
		fra.Viable:     "가능-투자 적합",
	},
	Verdicts: map[fra.Verdict]string{
		fra.Block:   "❌ 불가",
		fra.Caution: "⚠️ 신중",
		fra.Go:      "✅ 가능",
	},
	Levels: map[fra.Level]string{
		fra.Danger: "위험",
		fra.Fair:   "보통",
		fra.Safe:   "안정",
	},
}

var locales = map[string]*Labels{
	"en": &english,
	"ko": &korean,
}

// Locales lists the supported languages.
func Locales() []string { return []string{"en", "ko"} }

// LabelsFor returns the labels of a language, english when unknown.
func LabelsFor(lang string) *Labels {
	if l, ok := locales[lang]; ok {
		return l
	}
	return &english
}

// headers of the records table.
func (l *Labels) headers() []string {
	return []string{
		"ID", l.Company, l.CurrentAssets, l.CurrentLiabilities, l.TotalDebt, l.Equity,
		l.Current, l.Debt, l.Decision, l.ShortTerm, l.LongTerm,
	}
}
