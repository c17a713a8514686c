package models

import "time"

type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	ExpiryDate  *string   `gorm:"type:varchar(20)" json:"expiryDate,omitempty"`
	Options     []string  `gorm:"serializer:json;type:text" json:"options,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
