package models

// KitchenScreen is a declarative registration of a display on the shop
// network; nothing in the backend dials the address.
type KitchenScreen struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	IP   string `gorm:"column:ip;type:varchar(45)" json:"ip"`
}
