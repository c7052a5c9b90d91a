package fra

// Level grades a single ratio.
type Level int

const (
	Danger Level = iota
	Fair
	Safe
	numLevels
)

func (l Level) String() string {
	switch l {
	case Danger:
		return "danger"
	case Fair:
		return "fair"
	case Safe:
		return "safe"
	}
	return "unknown"
}

// LiquidityLevel grades a current ratio: up to 100% is Danger, up to 200% is
// Fair, above is Safe.
func LiquidityLevel(currentRatio Percent) Level {
	switch {
	case currentRatio <= 100:
		return Danger
	case currentRatio <= 200:
		return Fair
	default:
		return Safe
	}
}

// DebtLevel grades a debt ratio: above 100% is Danger, above 50% is Fair,
// anything else is Safe.
func DebtLevel(debtRatio Percent) Level {
	switch {
	case debtRatio > 100:
		return Danger
	case debtRatio > 50:
		return Fair
	default:
		return Safe
	}
}

// Verdict is the suitability of an investment over a given horizon.
type Verdict int

const (
	Block Verdict = iota
	Caution
	Go
)

func (v Verdict) String() string {
	switch v {
	case Block:
		return "block"
	case Caution:
		return "caution"
	case Go:
		return "go"
	}
	return "unknown"
}

// verdicts are indexed by [liquidity level][debt level].
type verdictTable [numLevels][numLevels]Verdict

var shortTermTable = verdictTable{
	Danger: {Danger: Block, Fair: Block, Safe: Block},
	Fair:   {Danger: Caution, Fair: Caution, Safe: Go},
	Safe:   {Danger: Go, Fair: Go, Safe: Go},
}

var longTermTable = verdictTable{
	Danger: {Danger: Block, Fair: Caution, Safe: Caution},
	Fair:   {Danger: Caution, Fair: Caution, Safe: Caution},
	Safe:   {Danger: Caution, Fair: Go, Safe: Go},
}

func (t *verdictTable) lookup(currentRatio, debtRatio Percent) Verdict {
	return t[LiquidityLevel(currentRatio)][DebtLevel(debtRatio)]
}

// ShortTerm returns the short-term investment verdict for a pair of ratios.
func ShortTerm(currentRatio, debtRatio Percent) Verdict {
	return shortTermTable.lookup(currentRatio, debtRatio)
}

// LongTerm returns the long-term investment verdict for a pair of ratios.
func LongTerm(currentRatio, debtRatio Percent) Verdict {
	return longTermTable.lookup(currentRatio, debtRatio)
}

// Decision is the overall investment decision.
type Decision int

const (
	// NoDecision is only returned when no rule matches, which requires a NaN ratio.
	NoDecision Decision = iota
	Unsuitable
	Reconsider
	Viable
)

func (d Decision) String() string {
	switch d {
	case Unsuitable:
		return "unsuitable — risk"
	case Reconsider:
		return "caution — reconsider"
	case Viable:
		return "suitable — viable"
	}
	return ""
}

type decisionRule struct {
	match    func(currentRatio, debtRatio Percent) bool
	decision Decision
}

// decisionRules are evaluated in order, the first match wins.
var decisionRules = []decisionRule{
	{func(cr, _ Percent) bool { return cr <= 100 }, Unsuitable},
	{func(cr, dr Percent) bool { return cr > 200 && dr > 100 }, Reconsider},
	{func(cr, dr Percent) bool { return cr > 100 && dr > 50 }, Reconsider},
	{func(cr, dr Percent) bool { return cr > 200 && dr <= 100 }, Viable},
	{func(cr, dr Percent) bool { return cr > 100 && dr <= 50 }, Viable},
}

// Decide returns the overall investment decision for a pair of ratios.
func Decide(currentRatio, debtRatio Percent) Decision {
	for _, r := range decisionRules {
		if r.match(currentRatio, debtRatio) {
			return r.decision
		}
	}
	return NoDecision
}

// Assessment gathers every classification derived from a pair of ratios.
type Assessment struct {
	Liquidity Level
	Debt      Level
	Decision  Decision
	ShortTerm Verdict
	LongTerm  Verdict
}

// Assess classifies a pair of ratios.
func Assess(currentRatio, debtRatio Percent) Assessment {
	return Assessment{
		Liquidity: LiquidityLevel(currentRatio),
		Debt:      DebtLevel(debtRatio),
		Decision:  Decide(currentRatio, debtRatio),
		ShortTerm: ShortTerm(currentRatio, debtRatio),
		LongTerm:  LongTerm(currentRatio, debtRatio),
	}
}
