package models

import "time"

// CompanyDispatch records stock dispatched from a supplier to a company.
// SupplierID is copied from the company at creation time so the ledger can
// key on (supplier, part) without re-resolving the company. Append-only.
type CompanyDispatch struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"index;not null" json:"date"`
	CompanyID    uint      `gorm:"index;not null" json:"company_id"`
	PartID       uint      `gorm:"index;not null" json:"part_id"`
	SendQuantity int       `gorm:"not null" json:"send_quantity"`
	SupplierID   uint      `gorm:"index;not null" json:"supplier_id"`
	CreatedAt    time.Time `json:"created_at"`
}
