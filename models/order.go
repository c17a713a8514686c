package models

import "time"

type Order struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Items         []CartItem `gorm:"serializer:json;type:text" json:"items"`
	Total         float64    `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod string     `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	Type          string     `gorm:"type:varchar(20);not null" json:"type"`
	TableNumber   *int       `json:"tableNumber,omitempty"`
	Date          string     `gorm:"type:varchar(40);not null" json:"date"`
	Status        string     `gorm:"type:varchar(40);not null" json:"status"`
	OrderBy       string     `gorm:"type:varchar(255)" json:"orderBy"`
	OpenDrawer    bool       `gorm:"column:open_drawer;default:false" json:"openDrawer"`
	Tendered      *float64   `gorm:"type:decimal(10,2)" json:"tendered,omitempty"`
	Change        *float64   `gorm:"type:decimal(10,2)" json:"change,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

const (
	PaymentCash = "Cash"
	PaymentCard = "Card"

	OrderTypeDineIn   = "Dine-In"
	OrderTypeTakeaway = "Takeaway"
	OrderTypeDelivery = "Delivery"
)
