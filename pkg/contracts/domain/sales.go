package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MonthLabelLayout is the display layout for month labels, e.g. "Mar 2021".
const MonthLabelLayout = "Jan 2006"

// RawRecord is one untouched row of the sales dataset. All fields hold the
// original cell text; parsing happens downstream in the normalizer.
type RawRecord struct {
	OrderDate  string `json:"order_date"`
	Product    string `json:"product"`
	TotalSales string `json:"total_sales"`
	StateCode  string `json:"state_code"`
}

// HasOrderDate reports whether the raw date cell is non-empty.
// Presence here is a statement about the input, not about parseability.
func (r RawRecord) HasOrderDate() bool { return strings.TrimSpace(r.OrderDate) != "" }

// HasProduct reports whether the raw product cell is non-empty.
func (r RawRecord) HasProduct() bool { return strings.TrimSpace(r.Product) != "" }

// HasTotalSales reports whether the raw sales cell is non-empty.
func (r RawRecord) HasTotalSales() bool { return strings.TrimSpace(r.TotalSales) != "" }

// HasStateCode reports whether the raw state cell is non-empty.
func (r RawRecord) HasStateCode() bool { return strings.TrimSpace(r.StateCode) != "" }

// SalesRecord is the typed form of a RawRecord. Fields that failed to parse
// are marked absent through HasDate/HasSales rather than carrying zero
// values that could be mistaken for data.
type SalesRecord struct {
	OrderDate  time.Time       `json:"order_date"`
	HasDate    bool            `json:"has_date"`
	TotalSales decimal.Decimal `json:"total_sales"`
	HasSales   bool            `json:"has_sales"`
	Product    string          `json:"product"`
	StateCode  string          `json:"state_code"`

	// Month is OrderDate truncated to the first of its month and MonthLabel
	// its display form. Both are set iff HasDate.
	Month      time.Time `json:"month"`
	MonthLabel string    `json:"month_label"`
}

// Valid reports whether all four required fields are present, i.e. the
// record may feed aggregation.
func (r SalesRecord) Valid() bool {
	return r.HasDate && r.HasSales &&
		strings.TrimSpace(r.Product) != "" &&
		strings.TrimSpace(r.StateCode) != ""
}

// MissingSummary counts raw rows whose required cells were empty. These are
// raw input quality counters: a non-empty cell that later fails to parse is
// NOT counted here.
type MissingSummary struct {
	Dates    int `json:"missing_dates" csv:"MissingDates"`
	Products int `json:"missing_products" csv:"MissingProducts"`
	Sales    int `json:"missing_sales" csv:"MissingSales"`
	States   int `json:"missing_states" csv:"MissingStates"`
}

// MonthlySales is one row of the monthly aggregate.
type MonthlySales struct {
	Month time.Time       `json:"month"`
	Label string          `json:"month_label"`
	Total decimal.Decimal `json:"total_sales"`
}

// MonthlyAggregate maps each distinct month to its summed sales, in
// chronological order.
type MonthlyAggregate []MonthlySales

// Total returns the sum over all months.
func (a MonthlyAggregate) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, m := range a {
		sum = sum.Add(m.Total)
	}
	return sum
}

// ProductSales is one row of the product aggregate.
type ProductSales struct {
	Product string          `json:"product"`
	Total   decimal.Decimal `json:"total_sales"`
}

// ProductAggregate maps each distinct product to its summed sales.
type ProductAggregate map[string]decimal.Decimal

// Total returns the sum over all products.
func (a ProductAggregate) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range a {
		sum = sum.Add(v)
	}
	return sum
}

// StateCustomers is one row of the per-state customer count. A customer is
// one order record attributed to a state, not a deduplicated person.
type StateCustomers struct {
	StateCode string `json:"state_code"`
	Customers int    `json:"customer_count"`
}

// StateCustomerCount maps each distinct state code to its record count.
type StateCustomerCount map[string]int

// Total returns the number of records counted across all states.
func (c StateCustomerCount) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Aggregates bundles the three independent reductions over the valid
// record set. It is built once per run and read-only afterwards.
type Aggregates struct {
	Monthly  MonthlyAggregate   `json:"monthly"`
	Products ProductAggregate   `json:"products"`
	States   StateCustomerCount `json:"states"`
}

// Selections holds every rank selection extracted from the aggregates.
// HasData is false when the valid record set was empty; consumers must
// render that state rather than treat the zero rows as data.
type Selections struct {
	HasData bool `json:"has_data"`

	// PeakMonths and LowestMonths carry every month tied at the extreme,
	// not an arbitrary single pick.
	PeakMonths   []MonthlySales `json:"peak_months"`
	LowestMonths []MonthlySales `json:"lowest_months"`

	TopProduct   ProductSales   `json:"top_product"`
	Top5Products []ProductSales `json:"top_5_products"`

	CustomerCountByState []StateCustomers `json:"customer_count_by_state"`
	StateMostCustomers   StateCustomers   `json:"state_most_customers"`
	StateFewestCustomers StateCustomers   `json:"state_fewest_customers"`
}
