package models

import "time"

// Company draws stock from exactly one supplier. SupplierID is a soft
// reference: deleting the supplier does not touch the company row.
type Company struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CompanyCode   string    `gorm:"size:100;uniqueIndex;not null" json:"company_code"`
	CompanyName   string    `gorm:"size:255;not null" json:"company_name"`
	GSTNumber     string    `gorm:"size:50" json:"gst_number"`
	ContactNumber string    `gorm:"size:50" json:"contact_number"`
	Address       string    `gorm:"size:500" json:"address"`
	SupplierID    uint      `gorm:"index;not null" json:"supplier_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
