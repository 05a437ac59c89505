package models

import "time"

type Part struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PartNumber    string    `gorm:"size:100;uniqueIndex;not null" json:"part_number"`
	RunningNumber string    `gorm:"size:100" json:"running_number"`
	PartName      string    `gorm:"size:255;not null" json:"part_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
