package report

import (
	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// LandFactor computes target/current hectares for projecting the recorded
// figures onto a different land size. Either side defaults to 1 when
// unparsable or not positive.
func LandFactor(targetHectares, currentHectares string) decimal.Decimal {
	target, ok := utils.ParseDecimal(targetHectares)
	if !ok || !target.IsPositive() {
		target = one
	}

	current, ok := utils.ParseDecimal(currentHectares)
	if !ok || !current.IsPositive() {
		current = one
	}

	return target.Div(current)
}

// scaleRow applies the land factor to a canonical row's quantity-bearing and
// flat-amount figures. Per-unit prices stay constant: the projection assumes
// proportional input use, not different prices.
func scaleRow(row canonicalRow, factor decimal.Decimal) canonicalRow {
	if factor.Equal(one) {
		return row
	}

	if row.qty != nil {
		qty := row.qty.Mul(factor)
		row.qty = &qty
		if row.unitPrice != nil {
			row.amount = qty.Mul(*row.unitPrice)
			return row
		}
	}

	row.amount = row.amount.Mul(factor)
	return row
}
