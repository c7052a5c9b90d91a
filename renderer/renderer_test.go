package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fra"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		amount   fra.Amount
		currency string
		want     string
	}{
		{fra.A(0), "", "0"},
		{fra.A(200), "", "200"},
		{fra.A(1234567), "", "1,234,567"},
		{fra.A(1234.5), "", "1,234.5"},
		{fra.A(0.125), "", "0.13"},
		{fra.A(1234.5), "USD", "$1,234.50"},
		{fra.A(1234.5), "unknown", "1,234.5"},
		{fra.ParseAmount("455000000000000000"), "", "455,000,000,000,000,000"},
		{fra.ParseAmount("455000000000000000"), "USD", "$455,000,000,000,000,000.00"},
		{fra.ParseAmount("123456789012345678.125"), "", "123,456,789,012,345,678.13"},
		{fra.ParseAmount("1e20"), "KRW", "₩100,000,000,000,000,000,000"},
		{fra.ParseAmount("1e20"), "kwd", "100,000,000,000,000,000,000.000 .\u062f.\u0643"},
	}
	for _, tc := range testCases {
		if got := FormatAmount(tc.amount, tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%s, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestRecordsEmpty(t *testing.T) {
	for _, lang := range Locales() {
		got := Records(nil, Options{Lang: lang})
		if want := LabelsFor(lang).Empty; !strings.Contains(got, want) {
			t.Errorf("Records(nil) in %s = %q, want it to contain %q", lang, got, want)
		}
	}
}

func TestRecords(t *testing.T) {
	records := []fra.Record{
		fra.NewRecord("a", "ACME <Corp> | Ltd", fra.Figures{
			CurrentAssets: fra.A(200), CurrentLiabilities: fra.A(100), TotalDebt: fra.A(50), Equity: fra.A(200),
		}),
		fra.NewRecord("b", "Shaky", fra.Figures{
			CurrentAssets: fra.A(100), CurrentLiabilities: fra.A(100), TotalDebt: fra.A(150), Equity: fra.A(100),
		}),
	}
	got := Records(records, Options{Lang: "en"})

	for _, want := range []string{
		"id", "company", "current ratio",
		"ACME &lt;Corp&gt; \\| Ltd",
		"200.0%", "25.0%", "100.0%", "150.0%",
		"Suitable — viable", "Unsuitable — risk",
		"✅ Go", "⚠️ Caution", "❌ Block",
	} {
		// headers may be reformatted by the table writer.
		if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			t.Errorf("Records() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "ACME") > strings.Index(got, "Shaky") {
		t.Errorf("Records() must keep the store order")
	}
}

func TestRecordsKorean(t *testing.T) {
	records := []fra.Record{
		fra.NewRecord("b", "Shaky", fra.Figures{
			CurrentAssets: fra.A(100), CurrentLiabilities: fra.A(100), TotalDebt: fra.A(150), Equity: fra.A(100),
		}),
	}
	got := Records(records, Options{Lang: "ko"})
	for _, want := range []string{"회사명", "유동비율", "위험-투자 부적합", "❌ 불가"} {
		if !strings.Contains(got, want) {
			t.Errorf("Records() in ko does not contain %q:\n%s", want, got)
		}
	}
}

func TestProportion(t *testing.T) {
	shares := Proportion("a", fra.A(300), "b", fra.A(100))
	if !shares[0].Percent.Equal(75) || !shares[1].Percent.Equal(25) {
		t.Errorf("Proportion(300, 100) = %v, %v", shares[0].Percent, shares[1].Percent)
	}
	shares = Proportion("a", fra.A(0), "b", fra.A(0))
	if !shares[0].Percent.Equal(0) || !shares[1].Percent.Equal(0) {
		t.Errorf("Proportion(0, 0) = %v, %v", shares[0].Percent, shares[1].Percent)
	}
}

func TestBar(t *testing.T) {
	testCases := map[fra.Percent]int{0: 0, 25: 5, 50: 10, 100: 20, 2.4: 0, 2.5: 1}
	for p, full := range testCases {
		got := bar(p)
		if n := strings.Count(got, "█"); n != full {
			t.Errorf("bar(%v) has %d full cells, want %d", p, n, full)
		}
		if n := strings.Count(got, "█") + strings.Count(got, "░"); n != barWidth {
			t.Errorf("bar(%v) has %d cells, want %d", p, n, barWidth)
		}
	}
}

func TestForm(t *testing.T) {
	p := fra.NewPreview(fra.Figures{
		CurrentAssets: fra.A(150), CurrentLiabilities: fra.A(0), TotalDebt: fra.A(0), Equity: fra.A(0),
	})
	got := Form("ACME", p, Options{})
	for _, want := range []string{"# ACME", "999.9%", "0.0%", "Safe", "Current assets", "Total debt", "100.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Form() does not contain %q:\n%s", want, got)
		}
	}
}

func TestHTML(t *testing.T) {
	records := []fra.Record{fra.NewRecord("a", `<script>alert("x")</script>`, fra.Figures{})}
	html, err := HTML(Records(records, Options{}))
	if err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("HTML() has no table:\n%s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML() does not escape names:\n%s", html)
	}
}
