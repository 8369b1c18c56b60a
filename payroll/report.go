package payroll

import "github.com/shopspring/decimal"

var (
	overtime50Multiplier  = decimal.RequireFromString("1.5")
	overtime100Multiplier = decimal.NewFromInt(2)
	hazardRate            = decimal.RequireFromString("0.30")
	fgtsRate              = decimal.RequireFromString("0.08")
)

// DSRPay is the money owed for each weekly rest category.
type DSRPay struct {
	Regular     decimal.Decimal `json:"regular"`
	Night       decimal.Decimal `json:"night"`
	Overtime50  decimal.Decimal `json:"overtime50"`
	Overtime100 decimal.Decimal `json:"overtime100"`
}

func (p DSRPay) Total() decimal.Decimal {
	return p.Regular.Add(p.Night).Add(p.Overtime50).Add(p.Overtime100)
}

// Report is the computed payroll for one cycle. Nothing in it is persisted.
type Report struct {
	Period     Period  `json:"-"`
	Entries    []Entry `json:"-"`
	WorkedDays int     `json:"workedDays"`
	Sundays    int     `json:"sundays"`

	TotalSeconds     int64           `json:"totalSeconds"`
	TotalHours       decimal.Decimal `json:"totalHours"`
	RegularHours     decimal.Decimal `json:"regularHours"`
	NightHours       decimal.Decimal `json:"nightHours"`
	Overtime50Hours  decimal.Decimal `json:"overtime50Hours"`
	Overtime100Hours decimal.Decimal `json:"overtime100Hours"`
	DSRHours         DSRHours        `json:"dsrHours"`

	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	BasePay        decimal.Decimal `json:"basePay"`
	HazardPay      decimal.Decimal `json:"hazardPay"`
	NightPay       decimal.Decimal `json:"nightPay"`
	Overtime50Pay  decimal.Decimal `json:"overtime50Pay"`
	Overtime100Pay decimal.Decimal `json:"overtime100Pay"`
	DSRPay         DSRPay          `json:"dsrPay"`
	GrossPay       decimal.Decimal `json:"grossPay"`

	INSS            decimal.Decimal `json:"inss"`
	INSSRate        decimal.Decimal `json:"inssRate"`
	IRPFBase        decimal.Decimal `json:"irpfBase"`
	IRPF            decimal.Decimal `json:"irpf"`
	IRPFRate        decimal.Decimal `json:"irpfRate"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	FGTS            decimal.Decimal `json:"fgts"`
	NetPay          decimal.Decimal `json:"netPay"`
}

// ComputePayroll prices the aggregated hours. A nil cfg yields a zero-rate
// report instead of an error.
func ComputePayroll(agg Aggregate, nd NightDSR, cfg *ShiftConfig) Report {
	var settings ShiftConfig
	if cfg != nil {
		settings = *cfg
	}
	rate := settings.HourlyRate
	premium := settings.nightPremium()

	r := Report{
		Period:           agg.Period,
		Entries:          agg.Entries,
		WorkedDays:       nd.WorkedDays,
		Sundays:          nd.Sundays,
		TotalSeconds:     agg.TotalSeconds,
		TotalHours:       Hours(agg.TotalSeconds),
		RegularHours:     Hours(agg.RegularSeconds()),
		NightHours:       nd.NightHours,
		Overtime50Hours:  Hours(agg.Overtime50Seconds),
		Overtime100Hours: Hours(agg.Overtime100Seconds),
		DSRHours:         nd.DSR,
		HourlyRate:       rate,
	}

	r.BasePay = r.RegularHours.Mul(rate)
	r.Overtime50Pay = r.Overtime50Hours.Mul(rate).Mul(overtime50Multiplier)
	r.Overtime100Pay = r.Overtime100Hours.Mul(rate).Mul(overtime100Multiplier)
	r.HazardPay = decimal.Zero
	if settings.HazardPay {
		r.HazardPay = r.BasePay.Mul(hazardRate)
	}
	r.NightPay = r.NightHours.Mul(rate).Mul(premium)

	r.DSRPay = DSRPay{
		Regular:     nd.DSR.Regular.Mul(rate),
		Night:       nd.DSR.Night.Mul(rate).Mul(premium),
		Overtime50:  nd.DSR.Overtime50.Mul(rate).Mul(overtime50Multiplier),
		Overtime100: nd.DSR.Overtime100.Mul(rate).Mul(overtime100Multiplier),
	}

	r.GrossPay = r.BasePay.
		Add(r.HazardPay).
		Add(r.NightPay).
		Add(r.Overtime50Pay).
		Add(r.Overtime100Pay).
		Add(r.DSRPay.Total())

	r.INSS, r.INSSRate = INSS2025.Apply(r.GrossPay)
	r.IRPFBase = r.GrossPay.Sub(r.INSS)
	r.IRPF, r.IRPFRate = IRPF2025.Apply(r.IRPFBase)
	r.TotalDeductions = r.INSS.Add(r.IRPF)
	r.FGTS = r.GrossPay.Mul(fgtsRate)
	r.NetPay = r.GrossPay.Sub(r.TotalDeductions)
	return r
}

// BuildReport runs aggregation, night/DSR and pricing for period p.
func BuildReport(entries []Entry, p Period, cfg *ShiftConfig) Report {
	agg := AggregateEntries(entries, p)
	nd := ComputeNightAndDSR(agg.Entries, p)
	return ComputePayroll(agg, nd, cfg)
}
