package renderer

import (
	"bytes"

	"github.com/etnz/fra"
	md "github.com/nao1215/markdown"
)

// Records renders the records table, one row per record in store order.
func Records(records []fra.Record, opts Options) string {
	l := opts.labels()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(l.Title)
	if len(records) == 0 {
		doc.PlainText(l.Empty)
		return doc.String()
	}

	table := md.TableSet{
		Header: l.headers(),
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
	}
	for _, r := range records {
		a := r.Assess()
		table.Rows = append(table.Rows, []string{
			r.ID,
			escape(r.Name),
			FormatAmount(r.CurrentAssets, opts.Currency),
			FormatAmount(r.CurrentLiabilities, opts.Currency),
			FormatAmount(r.TotalDebt, opts.Currency),
			FormatAmount(r.Equity, opts.Currency),
			r.CurrentRatio.String(),
			r.DebtRatio.String(),
			l.Decisions[a.Decision],
			l.Verdicts[a.ShortTerm],
			l.Verdicts[a.LongTerm],
		})
	}
	doc.Table(table)
	return doc.String()
}
