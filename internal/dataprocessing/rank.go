package dataprocessing

import (
	"sort"

	"salescli/pkg/contracts/domain"
)

// Select extracts every rank selection from the aggregates. Selection is
// pure: the aggregates are not mutated and repeated calls yield identical
// results. On an empty valid set the returned bundle has HasData=false and
// zero-valued rows; consumers must check HasData before rendering rows.
func Select(agg domain.Aggregates) domain.Selections {
	sel := domain.Selections{}

	if len(agg.Monthly) == 0 {
		return sel
	}
	sel.HasData = true

	sel.PeakMonths = monthExtremes(agg.Monthly, true)
	sel.LowestMonths = monthExtremes(agg.Monthly, false)

	products := rankProducts(agg.Products)
	sel.TopProduct = products[0]
	if len(products) > 5 {
		sel.Top5Products = products[:5]
	} else {
		sel.Top5Products = products
	}

	states := rankStates(agg.States)
	sel.CustomerCountByState = states
	sel.StateMostCustomers = states[0]
	sel.StateFewestCustomers = states[len(states)-1]

	return sel
}

// monthExtremes returns every month tied at the maximum (or minimum)
// summed sales, in chronological order. "Select max" semantics: a tie
// yields all tied entries, never an arbitrary single pick.
func monthExtremes(monthly domain.MonthlyAggregate, max bool) []domain.MonthlySales {
	extreme := monthly[0].Total
	for _, m := range monthly[1:] {
		cmp := m.Total.Cmp(extreme)
		if (max && cmp > 0) || (!max && cmp < 0) {
			extreme = m.Total
		}
	}

	var tied []domain.MonthlySales
	for _, m := range monthly {
		if m.Total.Equal(extreme) {
			tied = append(tied, m)
		}
	}
	return tied
}

// rankProducts orders products by descending sales. Downstream consumers
// expect exactly one top row, so ties break deterministically: ascending
// lexicographic by product name.
func rankProducts(products domain.ProductAggregate) []domain.ProductSales {
	ranked := make([]domain.ProductSales, 0, len(products))
	for product, total := range products {
		ranked = append(ranked, domain.ProductSales{Product: product, Total: total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		cmp := ranked[i].Total.Cmp(ranked[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return ranked[i].Product < ranked[j].Product
	})

	return ranked
}

// rankStates orders states by descending customer count, ties broken by
// ascending state code. Most customers = first row, fewest = last.
func rankStates(states domain.StateCustomerCount) []domain.StateCustomers {
	ranked := make([]domain.StateCustomers, 0, len(states))
	for code, count := range states {
		ranked = append(ranked, domain.StateCustomers{StateCode: code, Customers: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Customers != ranked[j].Customers {
			return ranked[i].Customers > ranked[j].Customers
		}
		return ranked[i].StateCode < ranked[j].StateCode
	})

	return ranked
}
