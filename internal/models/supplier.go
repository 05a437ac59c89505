package models

import "time"

type Supplier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SupplierCode  string    `gorm:"size:100;uniqueIndex;not null" json:"supplier_code"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	GSTNumber     string    `gorm:"size:50" json:"gst_number"`
	ContactNumber string    `gorm:"size:50" json:"contact_number"`
	Address       string    `gorm:"size:500" json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
