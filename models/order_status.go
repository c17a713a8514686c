package models

// OrderStatus rows are configuration, not a fixed enum: staff can add and
// remove statuses at runtime. Orders reference a status by label.
type OrderStatus struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Label     string `gorm:"type:varchar(50);unique;not null" json:"label"`
	Color     string `gorm:"type:varchar(100)" json:"color"`
	IsKitchen bool   `gorm:"default:false" json:"isKitchen"`
	IsFinal   bool   `gorm:"default:false" json:"isFinal"`
}
