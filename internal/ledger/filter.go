package ledger

import (
	"iter"
	"strings"
	"time"
)

// FilterOptions narrows ledger entries. Every criterion is optional; an
// empty one matches everything, and a row passes only if all supplied
// criteria match. Text matching is case-insensitive substring containment.
type FilterOptions struct {
	Supplier string
	Company  string
	Part     string // matches part number OR part name
	DCNumber string
	DateFrom *time.Time // inclusive
	DateTo   *time.Time // inclusive
}

func (f FilterOptions) MatchEntry(e Entry) bool {
	if !containsFold(e.SupplierName, f.Supplier) {
		return false
	}
	if f.Company != "" && !containsFold(e.CompanyName, f.Company) {
		return false
	}
	if f.Part != "" && !containsFold(e.PartNumber, f.Part) && !containsFold(e.PartName, f.Part) {
		return false
	}
	if !containsFold(e.DCNumber, f.DCNumber) {
		return false
	}
	return true
}

// WithinDateRange reports whether t falls inside the configured bounds,
// both inclusive. Used for transaction lists; ledger entries carry no date.
func (f FilterOptions) WithinDateRange(t time.Time) bool {
	if f.DateFrom != nil && t.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.After(*f.DateTo) {
		return false
	}
	return true
}

// FilterEntries yields the matching subset lazily, preserving input order.
// The sequence is restartable: ranging over it twice re-applies the filter
// to the same underlying slice.
func (f FilterOptions) FilterEntries(entries []Entry) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range entries {
			if !f.MatchEntry(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Apply is the eager form of FilterEntries.
func (f FilterOptions) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for e := range f.FilterEntries(entries) {
		out = append(out, e)
	}
	return out
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
