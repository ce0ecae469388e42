package models

// User represents the user model in the database
type User struct {
	Base
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Avatar   string    `json:"avatar"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
