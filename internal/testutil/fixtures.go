package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jenny-light/spendwise/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense-kind record with the given category and amount (in cents).
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, category models.ExpenseCategory, amount int64) *models.Expense {
	t.Helper()
	return CreateTestExpenseAt(t, db, userID, category, amount, time.Now())
}

// CreateTestExpenseAt creates an expense-kind record occurring at the given date.
func CreateTestExpenseAt(t *testing.T, db *gorm.DB, userID string, category models.ExpenseCategory, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Category: category,
		Kind:     models.ExpenseKindExpense,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income-kind record with the given amount (in cents).
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, amount int64) *models.Expense {
	t.Helper()
	return CreateTestIncomeAt(t, db, userID, amount, time.Now())
}

// CreateTestIncomeAt creates an income-kind record occurring at the given date.
func CreateTestIncomeAt(t *testing.T, db *gorm.DB, userID string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	income := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Income %d", nextID()),
		Amount:   amount,
		Category: models.CategoryOther,
		Kind:     models.ExpenseKindIncome,
		Date:     date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
