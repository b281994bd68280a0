package dataprocessing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func monthly(label string, amount string) domain.MonthlySales {
	month, _ := time.Parse(domain.MonthLabelLayout, label)
	return domain.MonthlySales{
		Month: month,
		Label: label,
		Total: decimal.RequireFromString(amount),
	}
}

func TestSelect_PeakAndLowestMonth(t *testing.T) {
	agg := domain.Aggregates{
		Monthly: domain.MonthlyAggregate{
			monthly("Mar 2021", "30"),
			monthly("Apr 2021", "5"),
			monthly("May 2021", "12"),
		},
		Products: domain.ProductAggregate{"Widget": decimal.NewFromInt(47)},
		States:   domain.StateCustomerCount{"AA": 3},
	}

	sel := Select(agg)

	require.True(t, sel.HasData)
	require.Len(t, sel.PeakMonths, 1)
	assert.Equal(t, "Mar 2021", sel.PeakMonths[0].Label)
	require.Len(t, sel.LowestMonths, 1)
	assert.Equal(t, "Apr 2021", sel.LowestMonths[0].Label)
}

func TestSelect_MonthTiesReturnAllTiedEntries(t *testing.T) {
	// Two months tie at the maximum. Select-max semantics means both come
	// back, not an arbitrary single pick.
	agg := domain.Aggregates{
		Monthly: domain.MonthlyAggregate{
			monthly("Mar 2021", "100"),
			monthly("Apr 2021", "40"),
			monthly("May 2021", "100"),
		},
		Products: domain.ProductAggregate{"Widget": decimal.NewFromInt(240)},
		States:   domain.StateCustomerCount{"AA": 3},
	}

	sel := Select(agg)

	require.Len(t, sel.PeakMonths, 2)
	assert.Equal(t, "Mar 2021", sel.PeakMonths[0].Label)
	assert.Equal(t, "May 2021", sel.PeakMonths[1].Label)

	require.Len(t, sel.LowestMonths, 1)
	assert.Equal(t, "Apr 2021", sel.LowestMonths[0].Label)
}

func TestSelect_TopProductTieBreaksLexicographically(t *testing.T) {
	agg := domain.Aggregates{
		Monthly: domain.MonthlyAggregate{monthly("Mar 2021", "60")},
		Products: domain.ProductAggregate{
			"Widget": decimal.NewFromInt(30),
			"Gadget": decimal.NewFromInt(30),
		},
		States: domain.StateCustomerCount{"AA": 2},
	}

	sel := Select(agg)

	// Equal sales: the lexicographically smaller name wins rank 1
	assert.Equal(t, "Gadget", sel.TopProduct.Product)
	require.Len(t, sel.Top5Products, 2)
	assert.Equal(t, "Gadget", sel.Top5Products[0].Product)
	assert.Equal(t, "Widget", sel.Top5Products[1].Product)
}

func TestSelect_Top5TakesAtMostFive(t *testing.T) {
	products := domain.ProductAggregate{}
	for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		products[name] = decimal.NewFromInt(int64(100 - i))
	}
	agg := domain.Aggregates{
		Monthly:  domain.MonthlyAggregate{monthly("Jan 2021", "1")},
		Products: products,
		States:   domain.StateCustomerCount{"AA": 7},
	}

	sel := Select(agg)

	require.Len(t, sel.Top5Products, 5)
	assert.Equal(t, "A", sel.Top5Products[0].Product)
	assert.Equal(t, "E", sel.Top5Products[4].Product)
}

func TestSelect_FewerThanFiveProducts(t *testing.T) {
	agg := domain.Aggregates{
		Monthly: domain.MonthlyAggregate{monthly("Jan 2021", "3")},
		Products: domain.ProductAggregate{
			"A": decimal.NewFromInt(2),
			"B": decimal.NewFromInt(1),
		},
		States: domain.StateCustomerCount{"AA": 2},
	}

	sel := Select(agg)

	assert.Len(t, sel.Top5Products, 2)
}

func TestSelect_StateRanking(t *testing.T) {
	agg := domain.Aggregates{
		Monthly:  domain.MonthlyAggregate{monthly("Jan 2021", "10")},
		Products: domain.ProductAggregate{"A": decimal.NewFromInt(10)},
		States: domain.StateCustomerCount{
			"CC": 5,
			"AA": 2,
			"BB": 5,
			"DD": 1,
		},
	}

	sel := Select(agg)

	// Descending by count, ties ascending by state code
	want := []domain.StateCustomers{
		{StateCode: "BB", Customers: 5},
		{StateCode: "CC", Customers: 5},
		{StateCode: "AA", Customers: 2},
		{StateCode: "DD", Customers: 1},
	}
	assert.Equal(t, want, sel.CustomerCountByState)
	assert.Equal(t, want[0], sel.StateMostCustomers)
	assert.Equal(t, want[3], sel.StateFewestCustomers)
}

func TestSelect_EmptyAggregatesSignalNoData(t *testing.T) {
	sel := Select(domain.Aggregates{
		Monthly:  domain.MonthlyAggregate{},
		Products: domain.ProductAggregate{},
		States:   domain.StateCustomerCount{},
	})

	assert.False(t, sel.HasData)
	assert.Empty(t, sel.PeakMonths)
	assert.Empty(t, sel.LowestMonths)
	assert.Empty(t, sel.Top5Products)
	assert.Empty(t, sel.CustomerCountByState)
	assert.Zero(t, sel.TopProduct)
	assert.Zero(t, sel.StateMostCustomers)
}

func TestSelect_IsPure(t *testing.T) {
	agg := domain.Aggregates{
		Monthly: domain.MonthlyAggregate{
			monthly("Mar 2021", "30"),
			monthly("Apr 2021", "5"),
		},
		Products: domain.ProductAggregate{"Widget": decimal.NewFromInt(35)},
		States:   domain.StateCustomerCount{"AA": 2},
	}

	first := Select(agg)
	second := Select(agg)

	assert.Equal(t, first, second)
	assert.Equal(t, "Mar 2021", agg.Monthly[0].Label, "aggregates must not be mutated")
}

func TestSelect_FullSelectionBundle(t *testing.T) {
	ctx := context.Background()
	agg := Aggregate(ctx, FilterValid(ctx, []domain.SalesRecord{
		validRecord(1, 3, "Widget", "AA", "10"),
		validRecord(15, 3, "Widget", "AA", "20"),
		validRecord(1, 4, "Gadget", "BB", "5"),
	}))

	sel := Select(agg)

	require.True(t, sel.HasData)
	require.Len(t, sel.PeakMonths, 1)
	assert.Equal(t, "Mar 2021", sel.PeakMonths[0].Label)
	assert.True(t, sel.PeakMonths[0].Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Widget", sel.TopProduct.Product)
	assert.True(t, sel.TopProduct.Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, domain.StateCustomers{StateCode: "AA", Customers: 2}, sel.StateMostCustomers)
}
