package payroll

import "github.com/shopspring/decimal"

// Bracket applies to values up to and including UpTo: value*Rate - Deduction.
type Bracket struct {
	UpTo      decimal.Decimal
	Rate      decimal.Decimal
	Deduction decimal.Decimal
}

func (b Bracket) apply(v decimal.Decimal) decimal.Decimal {
	return v.Mul(b.Rate).Sub(b.Deduction)
}

// Table is a progressive withholding table. Values above the last bracket use
// Top when it is set; otherwise the withholding is capped at the last bracket's
// ceiling.
type Table struct {
	Brackets []Bracket
	Top      *Bracket
}

// Apply returns the withholding for v and the marginal rate that produced it.
// Negative results are reported as zero.
func (t Table) Apply(v decimal.Decimal) (amount, rate decimal.Decimal) {
	if len(t.Brackets) == 0 {
		return decimal.Zero, decimal.Zero
	}
	for _, b := range t.Brackets {
		if v.LessThanOrEqual(b.UpTo) {
			return nonNegative(b.apply(v)), b.Rate
		}
	}
	if t.Top != nil {
		return nonNegative(t.Top.apply(v)), t.Top.Rate
	}
	last := t.Brackets[len(t.Brackets)-1]
	return nonNegative(last.apply(last.UpTo)), last.Rate
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func bracket(upTo, rate, deduction string) Bracket {
	return Bracket{
		UpTo:      decimal.RequireFromString(upTo),
		Rate:      decimal.RequireFromString(rate),
		Deduction: decimal.RequireFromString(deduction),
	}
}

// INSS2025 is the 2025 social security table, capped at the contribution ceiling.
var INSS2025 = Table{
	Brackets: []Bracket{
		bracket("1518.00", "0.075", "0"),
		bracket("2793.88", "0.09", "22.77"),
		bracket("4190.83", "0.12", "106.59"),
		bracket("8157.41", "0.14", "190.40"),
	},
}

// IRPF2025 is the monthly income tax table applied to gross pay minus INSS.
var IRPF2025 = Table{
	Brackets: []Bracket{
		bracket("2259.20", "0", "0"),
		bracket("2826.65", "0.075", "169.44"),
		bracket("3751.05", "0.15", "381.44"),
		bracket("4664.68", "0.225", "662.77"),
	},
	Top: &Bracket{
		Rate:      decimal.RequireFromString("0.275"),
		Deduction: decimal.RequireFromString("975.80"),
	},
}
