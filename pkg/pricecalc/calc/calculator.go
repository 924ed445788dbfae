package calc

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/parser"
)

// Stats summarizes what Calculate did to a table.
type Stats struct {
	// Refs are the columns bound to each role after calculation.
	Refs models.ColumnRefs
	// Created lists ceiling columns that did not exist and were appended.
	Created []string
	// Rows is the number of data rows.
	Rows int
	// Valid is the number of rows with a numeric purchase price.
	Valid int
	// Skipped is true when no purchase price column was found; the table is untouched.
	Skipped bool
}

// Calculate fills the recycling and no-recycling ceiling columns of t
// from its purchase price column, in place. Missing ceiling columns are
// created. Rows whose price is not numeric get absent ceilings, and the
// price column itself keeps only the coerced numbers.
// Malformed data never causes an error.
func Calculate(t *models.Table, d Discount) Stats {
	refs := parser.ResolveColumns(t.Headers())
	stats := Stats{Refs: refs, Rows: t.RowCount()}

	base := t.Column(refs.BasePrice)
	if refs.BasePrice == "" || base == nil {
		stats.Skipped = true
		return stats
	}

	recycling := ceilingColumn(t, &stats, models.RoleRecyclingCeiling, parser.RecyclingCeilingName)
	noRecycling := ceilingColumn(t, &stats, models.RoleNoRecyclingCeiling, parser.NoRecyclingCeilingName)

	prices := make([]decimal.Decimal, len(base.Cells))
	valid := make([]bool, len(base.Cells))
	for i, v := range base.Cells {
		p, ok := ToNumber(v)
		if !ok {
			base.Cells[i] = nil
			continue
		}
		base.Cells[i] = numberValue(p)
		prices[i] = p
		valid[i] = true
		stats.Valid++
	}

	// Same order as role resolution: when both roles share one column,
	// the no-recycling value is the one that remains.
	fillCeiling(recycling, prices, valid, d.Recycling)
	fillCeiling(noRecycling, prices, valid, d.NoRecycling)

	return stats
}

// ceilingColumn returns the column bound to role, appending one named
// name when the role is unbound.
func ceilingColumn(t *models.Table, stats *Stats, role models.ColumnRole, name string) *models.Column {
	if header := stats.Refs.Get(role); header != "" {
		if col := t.Column(header); col != nil {
			return col
		}
	}

	col := t.AddColumn(name, models.ColumnInteger)
	stats.Refs.Set(role, name)
	stats.Created = append(stats.Created, name)
	return col
}

func fillCeiling(col *models.Column, prices []decimal.Decimal, valid []bool, rate decimal.Decimal) {
	col.Kind = models.ColumnInteger
	for i := range col.Cells {
		col.Cells[i] = nil
		if !valid[i] {
			continue
		}
		if v, ok := Ceiling(prices[i], rate); ok {
			col.Cells[i] = v
		}
	}
}
