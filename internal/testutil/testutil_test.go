package testutil_test

import (
	"testing"

	"github.com/Jenny-light/spendwise/internal/errors"
	"github.com/Jenny-light/spendwise/internal/models"
	"github.com/Jenny-light/spendwise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "expenses", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a non-empty ID")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 2500)
	if expense.Amount != 2500 {
		t.Errorf("expected amount 2500, got %d", expense.Amount)
	}
	if expense.Kind != models.ExpenseKindExpense {
		t.Errorf("expected expense kind, got %s", expense.Kind)
	}

	income := testutil.CreateTestIncome(t, db, user.ID, 10000)
	if income.Kind != models.ExpenseKindIncome {
		t.Errorf("expected income kind, got %s", income.Kind)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
