package dataprocessing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func TestAggregate_MonthProductStateSums(t *testing.T) {
	ctx := context.Background()
	records := FilterValid(ctx, []domain.SalesRecord{
		validRecord(1, 3, "Widget", "AA", "10"),
		validRecord(15, 3, "Widget", "AA", "20"),
		validRecord(1, 4, "Gadget", "BB", "5"),
	})

	agg := Aggregate(ctx, records)

	require.Len(t, agg.Monthly, 2)
	assert.Equal(t, "Mar 2021", agg.Monthly[0].Label)
	assert.True(t, agg.Monthly[0].Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Apr 2021", agg.Monthly[1].Label)
	assert.True(t, agg.Monthly[1].Total.Equal(decimal.NewFromInt(5)))

	require.Len(t, agg.Products, 2)
	assert.True(t, agg.Products["Widget"].Equal(decimal.NewFromInt(30)))
	assert.True(t, agg.Products["Gadget"].Equal(decimal.NewFromInt(5)))

	require.Len(t, agg.States, 2)
	assert.Equal(t, 2, agg.States["AA"])
	assert.Equal(t, 1, agg.States["BB"])
}

func TestAggregate_SumAgreement(t *testing.T) {
	// Three independent groupings of the same records must agree on the
	// grand total, and state counts must account for every valid record.
	ctx := context.Background()
	records := FilterValid(ctx, []domain.SalesRecord{
		validRecord(1, 1, "A", "XX", "10.25"),
		validRecord(2, 1, "B", "YY", "0.75"),
		validRecord(3, 2, "A", "XX", "99.99"),
		validRecord(4, 3, "C", "ZZ", "1.01"),
		validRecord(5, 3, "B", "XX", "250"),
	})

	agg := Aggregate(ctx, records)

	recordTotal := decimal.Zero
	for _, r := range records {
		recordTotal = recordTotal.Add(r.TotalSales)
	}

	assert.True(t, agg.Monthly.Total().Equal(recordTotal),
		"monthly total %s != record total %s", agg.Monthly.Total(), recordTotal)
	assert.True(t, agg.Products.Total().Equal(recordTotal),
		"product total %s != record total %s", agg.Products.Total(), recordTotal)
	assert.Equal(t, len(records), agg.States.Total())
}

func TestAggregate_ExactDecimalSums(t *testing.T) {
	// 0.1 added ten times must be exactly 1, not a float approximation
	ctx := context.Background()
	var records []domain.SalesRecord
	for i := 0; i < 10; i++ {
		records = append(records, validRecord(i+1, 1, "Widget", "AA", "0.1"))
	}

	agg := Aggregate(ctx, FilterValid(ctx, records))

	assert.Equal(t, "1", agg.Products["Widget"].String())
}

func TestAggregate_OneEntryPerDistinctMonth(t *testing.T) {
	ctx := context.Background()
	records := FilterValid(ctx, []domain.SalesRecord{
		validRecord(1, 5, "A", "XX", "1"),
		validRecord(10, 5, "B", "YY", "2"),
		validRecord(28, 5, "C", "ZZ", "3"),
	})

	agg := Aggregate(ctx, records)

	require.Len(t, agg.Monthly, 1)
	assert.Equal(t, "May 2021", agg.Monthly[0].Label)
	assert.True(t, agg.Monthly[0].Total.Equal(decimal.NewFromInt(6)))
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(context.Background(), nil)

	assert.Empty(t, agg.Monthly)
	assert.Empty(t, agg.Products)
	assert.Empty(t, agg.States)
}
