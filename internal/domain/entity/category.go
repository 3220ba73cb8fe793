package entity

// Category is one of the seven classification codes a workout carries.
type Category string

const (
	CategoryC1 Category = "c1"
	CategoryC2 Category = "c2"
	CategoryC3 Category = "c3"
	CategoryC4 Category = "c4"
	CategoryC5 Category = "c5"
	CategoryC6 Category = "c6"
	CategoryC7 Category = "c7"
)

// AllCategories lists the vocabulary in display order.
var AllCategories = []Category{
	CategoryC1, CategoryC2, CategoryC3, CategoryC4, CategoryC5, CategoryC6, CategoryC7,
}

func IsValidCategory(code string) bool {
	for _, c := range AllCategories {
		if string(c) == code {
			return true
		}
	}
	return false
}
