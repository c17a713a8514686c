package models

type CategoryItem struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);unique;not null" json:"name"`
}

func (CategoryItem) TableName() string {
	return "categories"
}
