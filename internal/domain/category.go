package domain

type CategoryName string

const (
	CategoryFood     CategoryName = "FOOD"
	CategoryPurchase CategoryName = "PURCHASE"
	CategoryFixed    CategoryName = "FIXED"
	CategoryTravel   CategoryName = "TRAVEL"
)

// ValidCategoryName reports whether name is one of the enumerated categories.
func ValidCategoryName(name CategoryName) bool {
	switch name {
	case CategoryFood, CategoryPurchase, CategoryFixed, CategoryTravel:
		return true
	}
	return false
}

type Category struct {
	ID     string
	Name   CategoryName
	UserID string
}
