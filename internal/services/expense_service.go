package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Jenny-light/spendwise/internal/errors"
	"github.com/Jenny-light/spendwise/internal/models"
)

// recentExpenseLimit is the number of records returned in the stats
// recent-activity list.
const recentExpenseLimit = 5

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// validateExpenseFields checks field-level constraints shared by create and
// update. It returns an ErrInvalidInput naming every offending field, or nil.
func validateExpenseFields(title string, amount int64, category models.ExpenseCategory, kind models.ExpenseKind, description string) error {
	var problems []string

	if title == "" {
		problems = append(problems, "title is required")
	} else if len(title) > 100 {
		problems = append(problems, "title cannot be more than 100 characters")
	}

	if amount <= 0 {
		problems = append(problems, "amount must be greater than zero")
	}

	if category == "" {
		problems = append(problems, "category is required")
	} else if !models.IsValidCategory(category) {
		problems = append(problems, "category must be one of the known categories")
	}

	if kind != models.ExpenseKindExpense && kind != models.ExpenseKindIncome {
		problems = append(problems, "kind must be expense or income")
	}

	if len(description) > 500 {
		problems = append(problems, "description cannot be more than 500 characters")
	}

	if len(problems) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// CreateExpense validates and persists a new expense record for a user.
// Kind defaults to expense and date defaults to now when not provided.
func (s *expenseService) CreateExpense(
	userID, title string,
	amount int64,
	category models.ExpenseCategory,
	kind models.ExpenseKind,
	date time.Time,
	description string,
) (*models.Expense, error) {
	if kind == "" {
		kind = models.ExpenseKindExpense
	}
	if date.IsZero() {
		date = time.Now()
	}

	if err := validateExpenseFields(title, amount, category, kind, description); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Date:        date,
		Description: description,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses retrieves a filtered, sorted list of a user's expenses.
// Filters are conjunctive and the date range is inclusive on both ends.
func (s *expenseService) GetUserExpenses(userID string, filter ExpenseFilter) ([]models.Expense, error) {
	q := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	q = applyExpenseFilters(q, filter)
	q = q.Order(sortClause(filter.Sort))

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

func applyExpenseFilters(q *gorm.DB, f ExpenseFilter) *gorm.DB {
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	if f.DateFrom != nil {
		q = q.Where("date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("date <= ?", *f.DateTo)
	}
	return q
}

func sortClause(sort SortOrder) string {
	switch sort {
	case SortOldest:
		return "date ASC"
	case SortHighest:
		return "amount DESC"
	case SortLowest:
		return "amount ASC"
	default:
		// SortNewest and unset both order newest first.
		return "date DESC"
	}
}

// GetExpenseByID retrieves an expense by ID on behalf of a user. A missing
// record and a record owned by another user are distinct failures: the former
// is EXPENSE_NOT_FOUND, the latter FORBIDDEN.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if expense.UserID != userID {
		return nil, apperrors.ErrNotExpenseOwner
	}

	return &expense, nil
}

// UpdateExpense applies a partial update to an expense after re-running the
// same existence and ownership checks as GetExpenseByID. Unsupplied fields
// retain their prior values; the merged record is re-validated before the
// write. The read and write are two separate calls with no isolation; only
// the owning user can race against themselves.
func (s *expenseService) UpdateExpense(userID, expenseID string, fields ExpenseUpdateFields) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil {
		expense.Title = *fields.Title
	}
	if fields.Amount != nil {
		expense.Amount = *fields.Amount
	}
	if fields.Category != nil {
		expense.Category = *fields.Category
	}
	if fields.Kind != nil {
		expense.Kind = *fields.Kind
	}
	if fields.Date != nil {
		expense.Date = *fields.Date
	}
	if fields.Description != nil {
		expense.Description = *fields.Description
	}

	if err := validateExpenseFields(expense.Title, expense.Amount, expense.Category, expense.Kind, expense.Description); err != nil {
		return nil, err
	}

	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes an expense after the same existence and ownership
// checks as GetExpenseByID. The delete is permanent.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetExpenseStats reduces a user's full expense history into summary totals,
// a per-category breakdown of expense-kind records, and the most recent
// records across both kinds. The full history is scanned on every call,
// which is acceptable at per-user volumes.
func (s *expenseService) GetExpenseStats(userID string) (*ExpenseStats, error) {
	var all []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&all).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := &ExpenseStats{
		ByCategory: make(map[models.ExpenseCategory]int64),
	}

	for _, e := range all {
		switch e.Kind {
		case models.ExpenseKindIncome:
			stats.TotalIncome += e.Amount
			stats.IncomeCount++
		default:
			stats.TotalExpenses += e.Amount
			stats.ExpenseCount++
			stats.ByCategory[e.Category] += e.Amount
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpenses

	// Recent list spans both kinds, not just expense-kind records.
	var recent []models.Expense
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(recentExpenseLimit).
		Find(&recent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if recent == nil {
		recent = []models.Expense{}
	}
	stats.RecentExpenses = recent

	return stats, nil
}
