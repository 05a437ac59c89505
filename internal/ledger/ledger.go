package ledger

import (
	"fmt"
	"sort"

	"inventory-backend/internal/models"
)

// Entry is one aggregated stock-ledger row for a (supplier, part) pair.
type Entry struct {
	SupplierID          uint   `json:"supplier_id"`
	PartID              uint   `json:"part_id"`
	PartNumber          string `json:"part_number"`
	PartName            string `json:"part_name"`
	RunningNumber       string `json:"running_number"`
	DCNumber            string `json:"dc_number"`
	TotalSentToSupplier int    `json:"total_sent_to_supplier"`
	TotalSentToCompany  int    `json:"total_sent_to_company"`
	AvailableQuantity   int    `json:"available_quantity"`
	SupplierName        string `json:"supplier_name"`
	CompanyName         string `json:"company_name,omitempty"`
}

type pairKey struct {
	supplierID uint
	partID     uint
}

// Build folds both transaction streams into one Entry per (supplier, part)
// pair that has at least one warehouse shipment.
//
// Transactions whose part, supplier or company no longer resolves are
// dropped from the view, as are dispatches with no matching receipt row.
// Each drop is reported in the returned warnings so callers can surface
// them instead of losing data silently.
//
// Display fields (DCNumber, CompanyName) take the value of the most
// recently created contributing transaction: both streams are processed in
// ascending creation order, so "last write wins" is by creation time, not
// by whatever order the store happened to return.
func Build(snap *Snapshot) ([]Entry, []string) {
	entries := make(map[pairKey]*Entry)
	var warnings []string

	for _, t := range sortByCreation(snap.Shipments, func(s models.WarehouseShipment) (int64, uint) {
		return s.CreatedAt.UnixNano(), s.ID
	}) {
		part := snap.partByID(t.PartID)
		supplier := snap.supplierByID(t.SupplierID)
		if part == nil || supplier == nil {
			warnings = append(warnings, fmt.Sprintf(
				"warehouse shipment %d skipped: unresolved part %d or supplier %d", t.ID, t.PartID, t.SupplierID))
			continue
		}

		key := pairKey{supplierID: t.SupplierID, partID: t.PartID}
		entry, ok := entries[key]
		if !ok {
			entry = &Entry{
				SupplierID:    t.SupplierID,
				PartID:        t.PartID,
				PartNumber:    part.PartNumber,
				PartName:      part.PartName,
				RunningNumber: part.RunningNumber,
				SupplierName:  supplier.Name,
			}
			entries[key] = entry
		}

		entry.TotalSentToSupplier += t.SendQuantity
		entry.DCNumber = t.DCNumber
	}

	for _, t := range sortByCreation(snap.Dispatches, func(d models.CompanyDispatch) (int64, uint) {
		return d.CreatedAt.UnixNano(), d.ID
	}) {
		company := snap.companyByID(t.CompanyID)
		if company == nil {
			warnings = append(warnings, fmt.Sprintf(
				"company dispatch %d skipped: unresolved company %d", t.ID, t.CompanyID))
			continue
		}

		key := pairKey{supplierID: t.SupplierID, partID: t.PartID}
		entry, ok := entries[key]
		if !ok {
			// A dispatch with no matching receipt contributes nothing.
			warnings = append(warnings, fmt.Sprintf(
				"company dispatch %d skipped: no warehouse shipment for supplier %d part %d", t.ID, t.SupplierID, t.PartID))
			continue
		}

		entry.TotalSentToCompany += t.SendQuantity
		entry.CompanyName = company.CompanyName
	}

	result := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		entry.AvailableQuantity = entry.TotalSentToSupplier - entry.TotalSentToCompany
		result = append(result, *entry)
	}

	// Map iteration order is random; keep the output stable for the UI.
	sort.Slice(result, func(i, j int) bool {
		if result[i].PartNumber != result[j].PartNumber {
			return result[i].PartNumber < result[j].PartNumber
		}
		return result[i].SupplierName < result[j].SupplierName
	})

	return result, warnings
}

// sortByCreation returns a copy ordered by creation time, oldest first,
// with the row id as tie-break for rows created in the same instant.
func sortByCreation[T any](items []T, key func(T) (int64, uint)) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ti, idi := key(out[i])
		tj, idj := key(out[j])
		if ti != tj {
			return ti < tj
		}
		return idi < idj
	})
	return out
}
