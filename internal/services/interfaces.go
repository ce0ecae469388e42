package services

import (
	"time"

	"github.com/Jenny-light/spendwise/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID string, fields ProfileUpdateFields) (*models.User, error)
}

// ProfileUpdateFields holds the optional fields for a profile update.
// Nil fields are left unchanged.
type ProfileUpdateFields struct {
	Name     *string
	Email    *string
	Password *string
	Avatar   *string
}

// SortOrder determines how a listed result set is ordered.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

// ExpenseFilter holds optional filter parameters for listing expenses.
// All supplied filters are applied conjunctively.
type ExpenseFilter struct {
	Category *models.ExpenseCategory
	Kind     *models.ExpenseKind
	DateFrom *time.Time
	DateTo   *time.Time
	Sort     SortOrder
}

// ExpenseUpdateFields holds the optional fields for a partial expense update.
// Nil fields retain their prior values.
type ExpenseUpdateFields struct {
	Title       *string
	Amount      *int64
	Category    *models.ExpenseCategory
	Kind        *models.ExpenseKind
	Date        *time.Time
	Description *string
}

// ExpenseStats is the aggregate summary of a user's full expense history.
// Amounts are in cents. RecentExpenses spans both kinds, matching the
// dashboard's recent-activity list.
type ExpenseStats struct {
	TotalExpenses  int64                            `json:"totalExpenses"`
	TotalIncome    int64                            `json:"totalIncome"`
	Balance        int64                            `json:"balance"`
	ExpenseCount   int                              `json:"expenseCount"`
	IncomeCount    int                              `json:"incomeCount"`
	ByCategory     map[models.ExpenseCategory]int64 `json:"byCategory"`
	RecentExpenses []models.Expense                 `json:"recentExpenses"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, title string, amount int64, category models.ExpenseCategory, kind models.ExpenseKind, date time.Time, description string) (*models.Expense, error)
	GetUserExpenses(userID string, filter ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	GetExpenseStats(userID string) (*ExpenseStats, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
