package models

type Customer struct {
	ID            string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Address       string `gorm:"type:varchar(255)" json:"address"`
	TotalOrders   int    `gorm:"default:0" json:"totalOrders"`
	LastOrderDate string `gorm:"type:varchar(20)" json:"lastOrderDate"`
}
