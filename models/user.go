package models

const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

type User struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Role    string `gorm:"type:varchar(20);not null" json:"role"`
	PinHash string `gorm:"type:varchar(255);not null" json:"-"`
}
