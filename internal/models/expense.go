package models

import "time"

// ExpenseKind discriminates money going out from money coming in.
type ExpenseKind string

const (
	ExpenseKindExpense ExpenseKind = "expense"
	ExpenseKindIncome  ExpenseKind = "income"
)

// ExpenseCategory is one of the fixed set of spending categories.
type ExpenseCategory string

const (
	CategoryFood           ExpenseCategory = "Food"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryShopping       ExpenseCategory = "Shopping"
	CategoryBills          ExpenseCategory = "Bills"
	CategoryHealthcare     ExpenseCategory = "Healthcare"
	CategoryEducation      ExpenseCategory = "Education"
	CategoryTravel         ExpenseCategory = "Travel"
	CategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid category.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// IsValidCategory reports whether c is a member of the fixed category set.
func IsValidCategory(c ExpenseCategory) bool {
	for _, valid := range ExpenseCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// Expense represents a single income or expense record owned by a user.
// Amounts are stored in cents.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_expenses_user_date" json:"user_id"`
	Title       string          `gorm:"size:100;not null" json:"title"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    ExpenseCategory `gorm:"not null" json:"category"`
	Kind        ExpenseKind     `gorm:"not null;default:expense" json:"kind"`
	Date        time.Time       `gorm:"not null;index:idx_expenses_user_date,sort:desc" json:"date"`
	Description string          `gorm:"size:500" json:"description"`
}
