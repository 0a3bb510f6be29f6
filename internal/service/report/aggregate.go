package report

import (
	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// groupKey identifies an aggregation group. A struct key rather than a
// concatenated string, so delimiter characters in free-text names can never
// collide two groups.
type groupKey struct {
	Label string
	Name  string
}

type group struct {
	key       groupKey
	nominal   bool
	qty       decimal.Decimal
	amount    decimal.Decimal
	unit      *string
	multiUnit bool
}

// aggregator groups canonical rows by (label, name). Quantity-bearing and
// flat-nominal rows accumulate in separate maps, so a lump-sum charge never
// folds into a measured group that happens to share its key. First-seen order
// is preserved, so repeated builds over the same input yield identical output.
type aggregator struct {
	order   []*group
	quant   map[groupKey]*group
	nominal map[groupKey]*group
}

func newAggregator() *aggregator {
	return &aggregator{
		quant:   make(map[groupKey]*group),
		nominal: make(map[groupKey]*group),
	}
}

func (a *aggregator) add(row canonicalRow) {
	key := groupKey{Label: row.label, Name: row.name}

	groups := a.quant
	if row.nominal() {
		groups = a.nominal
	}

	g, ok := groups[key]
	if !ok {
		g = &group{key: key, nominal: row.nominal()}
		groups[key] = g
		a.order = append(a.order, g)
	}

	if g.nominal {
		// flat-nominal rows sum straight into the group total
		g.amount = g.amount.Add(row.amount)
		return
	}

	if row.qty != nil {
		g.qty = g.qty.Add(*row.qty)
	}
	g.amount = g.amount.Add(row.amount)

	if row.unit != nil {
		switch {
		case g.unit == nil && !g.multiUnit:
			g.unit = row.unit
		case g.unit != nil && *g.unit != *row.unit:
			// ambiguous units: do not guess a representative one
			g.multiUnit = true
			g.unit = nil
		}
	}
}

// rows renders the groups in insertion order. For quantity-bearing groups the
// unit price is the weighted average amount/qty (or the amount itself for a
// flat group with no natural quantity); for nominal groups the unit-price
// field carries the summed total value with quantity and unit left null.
func (a *aggregator) rows() []domain.ReportRow {
	out := make([]domain.ReportRow, 0, len(a.order))

	for _, g := range a.order {
		if g.nominal {
			total := g.amount
			out = append(out, domain.ReportRow{
				Label:     g.key.Label,
				Name:      g.key.Name,
				UnitPrice: &total,
				Amount:    total,
			})
			continue
		}

		var unitPrice decimal.Decimal
		if g.qty.IsPositive() {
			unitPrice = g.amount.Div(g.qty)
		} else {
			unitPrice = g.amount
		}

		qty := g.qty
		out = append(out, domain.ReportRow{
			Label:     g.key.Label,
			Name:      g.key.Name,
			Quantity:  &qty,
			Unit:      g.unit,
			UnitPrice: &unitPrice,
			Amount:    g.amount,
		})
	}

	return out
}

func sumAmounts(rows []domain.ReportRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total
}
