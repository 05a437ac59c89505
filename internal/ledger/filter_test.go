package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []Entry {
	return []Entry{
		{SupplierID: 1, PartID: 1, PartNumber: "BRK-100", PartName: "Brake Pad", DCNumber: "DC-001", SupplierName: "Acme Traders", CompanyName: "Xylo Motors"},
		{SupplierID: 1, PartID: 2, PartNumber: "FLT-200", PartName: "Oil Filter", DCNumber: "DC-002", SupplierName: "Acme Traders", CompanyName: ""},
		{SupplierID: 2, PartID: 1, PartNumber: "BRK-100", PartName: "Brake Pad", DCNumber: "DC-003", SupplierName: "Bolt Industries", CompanyName: "Xylo Motors"},
	}
}

func TestFilterEmptyMatchesEverything(t *testing.T) {
	entries := filterFixture()
	got := FilterOptions{}.Apply(entries)
	assert.Equal(t, entries, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	f := FilterOptions{Supplier: "acme"}
	once := f.Apply(filterFixture())
	twice := f.Apply(once)
	assert.Equal(t, once, twice)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	got := FilterOptions{Supplier: "ACME"}.Apply(filterFixture())
	require.Len(t, got, 2)

	got = FilterOptions{Supplier: "industr"}.Apply(filterFixture())
	require.Len(t, got, 1)
	assert.Equal(t, "Bolt Industries", got[0].SupplierName)
}

func TestFilterCriteriaAreANDed(t *testing.T) {
	got := FilterOptions{Supplier: "acme", Part: "brk"}.Apply(filterFixture())
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].SupplierID)
	assert.Equal(t, "BRK-100", got[0].PartNumber)

	got = FilterOptions{Supplier: "bolt", Part: "filter"}.Apply(filterFixture())
	assert.Empty(t, got)
}

func TestFilterPartMatchesNumberOrName(t *testing.T) {
	byNumber := FilterOptions{Part: "flt-200"}.Apply(filterFixture())
	require.Len(t, byNumber, 1)

	byName := FilterOptions{Part: "oil"}.Apply(filterFixture())
	require.Len(t, byName, 1)
	assert.Equal(t, byNumber, byName)
}

func TestFilterCompanyExcludesEntriesWithoutDispatches(t *testing.T) {
	got := FilterOptions{Company: "xylo"}.Apply(filterFixture())
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "Xylo Motors", e.CompanyName)
	}
}

func TestFilterDCNumber(t *testing.T) {
	got := FilterOptions{DCNumber: "dc-002"}.Apply(filterFixture())
	require.Len(t, got, 1)
	assert.Equal(t, "FLT-200", got[0].PartNumber)
}

func TestFilterSequenceIsRestartable(t *testing.T) {
	seq := FilterOptions{Supplier: "acme"}.FilterEntries(filterFixture())

	var first, second []Entry
	for e := range seq {
		first = append(first, e)
	}
	for e := range seq {
		second = append(second, e)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestFilterSequenceEarlyStop(t *testing.T) {
	seq := FilterOptions{}.FilterEntries(filterFixture())

	count := 0
	for range seq {
		count++
		if count == 1 {
			break
		}
	}
	assert.Equal(t, 1, count)
}

func TestWithinDateRangeInclusive(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	f := FilterOptions{DateFrom: &from, DateTo: &to}

	assert.True(t, f.WithinDateRange(from))
	assert.True(t, f.WithinDateRange(to))
	assert.True(t, f.WithinDateRange(from.AddDate(0, 0, 10)))
	assert.False(t, f.WithinDateRange(from.AddDate(0, 0, -1)))
	assert.False(t, f.WithinDateRange(to.AddDate(0, 0, 1)))
}
