package fra

// Figures are the raw balance-sheet figures of a company.
type Figures struct {
	CurrentAssets      Amount
	CurrentLiabilities Amount
	TotalDebt          Amount
	Equity             Amount
}

// Record is a company's figures together with the ratios derived from them.
//
// Ratios are persisted with the figures, and are not recomputed when read.
// Use NewRecord to keep them in sync with the figures.
type Record struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name"`
	CurrentAssets      Amount  `json:"currentAssets"`
	CurrentLiabilities Amount  `json:"currentLiabilities"`
	TotalDebt          Amount  `json:"totalDebt"`
	Equity             Amount  `json:"equity"`
	CurrentRatio       Percent `json:"currentRatio"`
	DebtRatio          Percent `json:"debtRatio"`
}

// NewRecord creates a record and computes its ratios.
func NewRecord(id, name string, f Figures) Record {
	return Record{
		ID:                 id,
		Name:               name,
		CurrentAssets:      f.CurrentAssets,
		CurrentLiabilities: f.CurrentLiabilities,
		TotalDebt:          f.TotalDebt,
		Equity:             f.Equity,
		CurrentRatio:       CurrentRatio(f.CurrentAssets, f.CurrentLiabilities),
		DebtRatio:          DebtRatio(f.TotalDebt, f.Equity),
	}
}

// Figures returns the raw figures of the record.
func (r Record) Figures() Figures {
	return Figures{
		CurrentAssets:      r.CurrentAssets,
		CurrentLiabilities: r.CurrentLiabilities,
		TotalDebt:          r.TotalDebt,
		Equity:             r.Equity,
	}
}

// Assess classifies the record from its stored ratios.
func (r Record) Assess() Assessment {
	return Assess(r.CurrentRatio, r.DebtRatio)
}
