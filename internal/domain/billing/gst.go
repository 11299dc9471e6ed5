package billing

import "github.com/shopspring/decimal"

// TaxBreakdown is the GST split for one line or a whole document. Amounts keep
// full decimal precision; two-decimal rounding happens at presentation time
// only, so accumulation across many lines does not compound rounding error.
type TaxBreakdown struct {
	Base       decimal.Decimal
	CGSTAmount decimal.Decimal
	SGSTAmount decimal.Decimal
	CESSAmount decimal.Decimal
	Total      decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ComputeLine computes the tax breakdown for a single line. The total is
// tax-inclusive: base plus all three tax components.
func ComputeLine(quantity int64, unitPrice, cgstPct, sgstPct, cessPct decimal.Decimal) TaxBreakdown {
	base := unitPrice.Mul(decimal.NewFromInt(quantity))
	cgst := base.Mul(cgstPct).Div(oneHundred)
	sgst := base.Mul(sgstPct).Div(oneHundred)
	cess := base.Mul(cessPct).Div(oneHundred)
	return TaxBreakdown{
		Base:       base,
		CGSTAmount: cgst,
		SGSTAmount: sgst,
		CESSAmount: cess,
		Total:      base.Add(cgst).Add(sgst).Add(cess),
	}
}

// Aggregate sums line breakdowns element-wise into a document breakdown.
func Aggregate(lines []TaxBreakdown) TaxBreakdown {
	var doc TaxBreakdown
	for _, l := range lines {
		doc.Base = doc.Base.Add(l.Base)
		doc.CGSTAmount = doc.CGSTAmount.Add(l.CGSTAmount)
		doc.SGSTAmount = doc.SGSTAmount.Add(l.SGSTAmount)
		doc.CESSAmount = doc.CESSAmount.Add(l.CESSAmount)
		doc.Total = doc.Total.Add(l.Total)
	}
	return doc
}

// SplitSlab divides a GST slab evenly into its CGST and SGST halves. The split
// is a business policy applied at purchase-entry time; it is never re-derived
// at sale time. CESS is independent of the slab and entered separately.
func SplitSlab(slab decimal.Decimal) (cgst, sgst decimal.Decimal) {
	half := slab.Div(decimal.NewFromInt(2))
	return half, half
}

// RoundDisplay rounds a monetary amount to two decimals for presentation.
func RoundDisplay(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
