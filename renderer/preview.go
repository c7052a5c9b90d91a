package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/fra"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Preview renders the results area of a form: both ratios with their level,
// and the decision and verdicts derived from them.
func Preview(name string, p fra.Preview, opts Options) string {
	l := opts.labels()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if name != "" {
		doc.H1(escape(name))
	}
	doc.H2(l.Results)
	doc.Table(md.TableSet{
		Header:    []string{l.Ratio, l.Value, l.Level},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Rows: [][]string{
			{l.Current, p.CurrentRatio.String(), l.Levels[p.Assessment.Liquidity]},
			{l.Debt, p.DebtRatio.String(), l.Levels[p.Assessment.Debt]},
		},
	})

	doc.H2(l.Assessment)
	doc.Table(md.TableSet{
		Header:    []string{l.Assessment, l.Value},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Rows: [][]string{
			{l.Decision, l.Decisions[p.Assessment.Decision]},
			{l.ShortTerm, l.Verdicts[p.Assessment.ShortTerm]},
			{l.LongTerm, l.Verdicts[p.Assessment.LongTerm]},
		},
	})
	return doc.String()
}

// barWidth is the number of cells of a full bar.
const barWidth = 20

// Share is one slice of a proportion chart.
type Share struct {
	Label   string
	Amount  fra.Amount
	Percent fra.Percent
}

// Proportion splits a pair of amounts into their shares of the total. Both
// shares are 0 when the total is 0.
func Proportion(aLabel string, a fra.Amount, bLabel string, b fra.Amount) [2]Share {
	shares := [2]Share{{Label: aLabel, Amount: a}, {Label: bLabel, Amount: b}}
	total := a.Add(b)
	if total.IsZero() {
		return shares
	}
	for i := range shares {
		pct := shares[i].Amount.Decimal().Div(total.Decimal()).Mul(decimal.NewFromInt(100)).Round(1)
		shares[i].Percent = fra.Percent(pct.InexactFloat64())
	}
	return shares
}

// Charts renders the two proportion charts of a preview: current assets
// against current liabilities, and total debt against equity.
func Charts(p fra.Preview, opts Options) string {
	l := opts.labels()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	charts := []struct {
		title  string
		shares [2]Share
	}{
		{l.Current, Proportion(l.CurrentAssets, p.CurrentAssets, l.CurrentLiabilities, p.CurrentLiabilities)},
		{l.Debt, Proportion(l.TotalDebt, p.TotalDebt, l.Equity, p.Equity)},
	}
	for _, c := range charts {
		doc.H2(c.title)
		table := md.TableSet{
			Header:    []string{"", l.Value, l.Share, ""},
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		}
		for _, s := range c.shares {
			table.Rows = append(table.Rows, []string{
				s.Label,
				FormatAmount(s.Amount, opts.Currency),
				s.Percent.String(),
				bar(s.Percent),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}

// bar draws a share as a horizontal bar, rounded to the nearest cell.
func bar(p fra.Percent) string {
	n := int(float64(p)*barWidth/100 + 0.5)
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

// Form renders a full preview: results then charts.
func Form(name string, p fra.Preview, opts Options) string {
	return fmt.Sprintf("%s\n%s", Preview(name, p, opts), Charts(p, opts))
}
