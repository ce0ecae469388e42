package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Jenny-light/spendwise/internal/errors"
	"github.com/Jenny-light/spendwise/internal/models"
	"github.com/Jenny-light/spendwise/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for creating an expense
type CreateExpenseRequest struct {
	Title       string                 `json:"title" binding:"required,max=100"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Category    models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Kind        models.ExpenseKind     `json:"kind" binding:"omitempty,expense_kind"`
	Date        *string                `json:"date"`
	Description string                 `json:"description" binding:"max=500"`
}

// UpdateExpenseRequest represents the request payload for a partial update.
// Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Title       *string                 `json:"title" binding:"omitempty,max=100"`
	Amount      *int64                  `json:"amount" binding:"omitempty,gt=0"`
	Category    *models.ExpenseCategory `json:"category" binding:"omitempty,expense_category"`
	Kind        *models.ExpenseKind     `json:"kind" binding:"omitempty,expense_kind"`
	Date        *string                 `json:"date"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
}

// ExpenseResponse represents an expense in the response
type ExpenseResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	Title       string                 `json:"title"`
	Amount      int64                  `json:"amount"`
	Category    models.ExpenseCategory `json:"category"`
	Kind        models.ExpenseKind     `json:"kind"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description"`
}

// DeleteExpenseResponse acknowledges a deletion.
type DeleteExpenseResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Create a new expense or income record
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var expenseDate time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		expenseDate = parsed
	}

	expense, err := h.expenseService.CreateExpense(
		userID,
		req.Title,
		req.Amount,
		req.Category,
		req.Kind,
		expenseDate,
		req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"kind": expense.Kind, "amount": expense.Amount, "category": expense.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetUserExpenses handles the retrieval of all expenses for the authenticated user
// @Summary     Get user expenses
// @Description Get all expenses for the authenticated user with optional filters and sort
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Filter by category (Food, Transportation, ...)"
// @Param       kind     query string false "Filter by kind (expense, income)"
// @Param       dateFrom query string false "Filter by start date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       dateTo   query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       sort     query string false "Sort order: newest (default), oldest, highest, lowest"
// @Success     200 {array}  ExpenseResponse "Matching expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.GetUserExpenses(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// parseExpenseFilter validates the list query parameters once at the boundary
// and produces a typed filter for the service layer.
func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	if v := c.Query("category"); v != "" {
		category := models.ExpenseCategory(v)
		if !models.IsValidCategory(category) {
			return filter, apperrors.ErrInvalidCategory
		}
		filter.Category = &category
	}

	if v := c.Query("kind"); v != "" {
		kind := models.ExpenseKind(v)
		switch kind {
		case models.ExpenseKindExpense, models.ExpenseKindIncome:
			filter.Kind = &kind
		default:
			return filter, apperrors.ErrInvalidKind
		}
	}

	if v := c.Query("dateFrom"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid dateFrom format, use RFC3339 or YYYY-MM-DD")
		}
		filter.DateFrom = &t
	}

	if v := c.Query("dateTo"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid dateTo format, use RFC3339 or YYYY-MM-DD")
		}
		filter.DateTo = &t
	}

	if v := c.Query("sort"); v != "" {
		sort := services.SortOrder(v)
		switch sort {
		case services.SortNewest, services.SortOldest, services.SortHighest, services.SortLowest:
			filter.Sort = sort
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid sort, must be newest, oldest, highest, or lowest")
		}
	}

	return filter, nil
}

// GetExpenseStats handles the retrieval of aggregate statistics
// @Summary     Get expense statistics
// @Description Get totals, balance, per-category breakdown, and recent records for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ExpenseStats "Aggregate statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/stats [get]
func (h *ExpenseHandler) GetExpenseStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.expenseService.GetExpenseStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetExpenseByID handles the retrieval of a specific expense
// @Summary     Get expense by ID
// @Description Get a specific expense by ID. Another user's expense yields 403, a missing one 404.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an existing expense
// @Summary     Update expense
// @Description Apply a partial update to an expense. Unsupplied fields keep their values.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updateFields := services.ExpenseUpdateFields{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Kind:        req.Kind,
		Description: req.Description,
	}

	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		updateFields.Date = &parsed
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, updateFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete expense
// @Description Permanently delete an expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} DeleteExpenseResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Expense belongs to another user"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense removed", "id": expenseID})
}
