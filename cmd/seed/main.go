package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Jenny-light/spendwise/internal/database"
	"github.com/Jenny-light/spendwise/internal/logger"
	"github.com/Jenny-light/spendwise/internal/models"
	"github.com/Jenny-light/spendwise/internal/services"
)

// Demo users created by the seeder. Both get the same password.
var demoUsers = []struct {
	Name  string
	Email string
}{
	{"John Doe", "john@example.com"},
	{"Jane Smith", "jane@example.com"},
}

const demoPassword = "password123"

var expenseTitles = map[models.ExpenseCategory][]string{
	models.CategoryFood:           {"Grocery Shopping", "Restaurant Dinner", "Coffee Shop", "Fast Food"},
	models.CategoryTransportation: {"Gas", "Uber Ride", "Bus Pass", "Car Maintenance"},
	models.CategoryEntertainment:  {"Movie Tickets", "Concert", "Streaming Subscription", "Video Games"},
	models.CategoryShopping:       {"Clothes", "Electronics", "Books", "Home Decor"},
	models.CategoryBills:          {"Electricity", "Internet", "Phone Bill", "Rent"},
	models.CategoryHealthcare:     {"Doctor Visit", "Pharmacy", "Gym Membership", "Dental"},
	models.CategoryEducation:      {"Course Fee", "Books", "Online Tutorial", "Certification"},
	models.CategoryTravel:         {"Flight Tickets", "Hotel", "Car Rental", "Travel Insurance"},
	models.CategoryOther:          {"Gift", "Donation", "Pet Supplies", "Miscellaneous"},
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)

	log.Info("Seeding demo data...")

	for _, u := range demoUsers {
		user, err := userService.CreateUser(u.Name, u.Email, demoPassword)
		if err != nil {
			log.Warnf("Skipping user %s: %v", u.Email, err)
			continue
		}

		count := seedExpenses(expenseService, user.ID, 20)
		log.Infof("Created user %s with %d expenses", user.Email, count)
	}

	log.Info("Seeding complete")
	return nil
}

// seedExpenses creates n random expense records within the last 90 days,
// roughly 20% of them income.
func seedExpenses(svc services.ExpenseServicer, userID string, n int) int {
	created := 0
	now := time.Now()

	for i := 0; i < n; i++ {
		category := models.ExpenseCategories[rand.Intn(len(models.ExpenseCategories))]
		titles := expenseTitles[category]
		title := titles[rand.Intn(len(titles))]
		kind := models.ExpenseKindExpense
		if rand.Float64() > 0.8 {
			kind = models.ExpenseKindIncome
			title = "Salary"
			category = models.CategoryOther
		}

		date := now.Add(-time.Duration(rand.Int63n(90*24)) * time.Hour)
		amount := rand.Int63n(49000) + 1000 // 10.00 to 500.00

		_, err := svc.CreateExpense(userID, title, amount, category, kind, date,
			fmt.Sprintf("Sample %s for testing purposes", kind))
		if err != nil {
			logger.Get().Warnf("failed to seed expense: %v", err)
			continue
		}
		created++
	}

	return created
}
