package models

import "time"

// WarehouseShipment records stock sent from the central warehouse to a
// supplier. Append-only: there is no update or delete path for these rows.
type WarehouseShipment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"index;not null" json:"date"`
	SupplierID   uint      `gorm:"index;not null" json:"supplier_id"`
	PartID       uint      `gorm:"index;not null" json:"part_id"`
	DCNumber     string    `gorm:"size:100" json:"dc_number"` // delivery challan, not unique
	SendQuantity int       `gorm:"not null" json:"send_quantity"`
	CreatedAt    time.Time `json:"created_at"`
}
