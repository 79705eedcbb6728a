package models

import "strings"

// Category is a closed set of spending/income classification labels.
// Every classification result must be a member of this set; anything
// unrecognized is coerced to CategoryOther.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryGroceries     Category = "Groceries"
	CategoryTransport     Category = "Transport"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryClothes       Category = "Clothes"
	CategoryEntertainment Category = "Entertainment"
	CategoryBill          Category = "Bill"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryInvestment    Category = "Investment"
	CategoryOther         Category = "Other"
)

// AllCategories lists every valid category, in the display order used by
// the dashboard and the categorization prompt.
var AllCategories = []Category{
	CategoryFood,
	CategoryGroceries,
	CategoryTransport,
	CategoryTravel,
	CategoryShopping,
	CategoryClothes,
	CategoryEntertainment,
	CategoryBill,
	CategoryHealth,
	CategoryEducation,
	CategorySalary,
	CategoryInvestment,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps an untrusted string onto the closed category set.
// Blank or unrecognized values become CategoryOther.
func ParseCategory(s string) Category {
	c := Category(strings.TrimSpace(s))
	if c.Valid() {
		return c
	}
	return CategoryOther
}
