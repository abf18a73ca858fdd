package models

type CategoryModel struct {
	ID     string    `gorm:"primaryKey;type:uuid"`
	Name   string    `gorm:"not null;uniqueIndex:idx_category_name_user"`
	UserID string    `gorm:"type:uuid;not null;uniqueIndex:idx_category_name_user"`
	User   UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
