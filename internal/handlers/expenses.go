package handlers

import (
	"errors"
	"io"
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// Request DTO shared by create and update. No binding:"required" tags:
// missing fields are caught downstream and surface as the generic
// server error, and a zero amount must bind cleanly.
type expenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ExpenseRequest is an exported model for Swagger docs of the expense payload.
type ExpenseRequest struct {
	Amount float64 `json:"amount" example:"50"`
	// Free-form description
	Description string `json:"description" example:"Lunch"`
	// Free-form category; seed data uses a fixed vocabulary but the store doesn't enforce it
	Category string `json:"category" example:"Dining Out"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Create expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body   ExpenseRequest  true  "Expense payload"
// @Success      201   {object}  map[string]interface{}  "success, message, data"
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/v1/expenses [post]
// @Security     BearerAuth
func (h *Handler) createExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.serverError(c, "expense_create_bad_body", err)
		return
	}

	expense, err := h.services.Expenses.Create(c.Request.Context(), callerID(c), service.CreateParams{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.serverError(c, "expense_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": msgExpenseCreated,
		"data":    expense,
	})
}

// @Summary      List expenses
// @Description  Returns the caller's expenses, most recent first. Named filters compute a lower bound relative to now; 'custom' uses startDate/endDate (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD').
// @Tags         expenses
// @Produce      json
// @Param        category   query   string  false  "Exact category match"
// @Param        filter     query   string  false  "Date filter"  Enums(week,month,3months,custom)
// @Param        startDate  query   string  false  "Lower bound (filter=custom)"  example(2025-08-01)
// @Param        endDate    query   string  false  "Upper bound (filter=custom)"  example(2025-08-31)
// @Success      200   {object}  map[string]interface{}  "success, count, data, appliedFilters"
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/v1/expenses [get]
// @Security     BearerAuth
func (h *Handler) listExpenses(c *gin.Context) {
	params := service.FilterParams{
		Category:   c.Query("category"),
		DateFilter: c.Query("filter"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}

	expenses, applied, err := h.services.Expenses.List(c.Request.Context(), callerID(c), params)
	if err != nil {
		h.serverError(c, "expense_list_failed", err, "filter", params.DateFilter)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"count":          len(expenses),
		"data":           expenses,
		"appliedFilters": applied,
	})
}

// @Summary      Update expense
// @Description  Partial update of amount/description/category. A zero or empty field retains the stored value.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path   string          true   "Expense id"
// @Param        body  body   ExpenseRequest  false  "Fields to update"
// @Success      200   {object}  map[string]interface{}  "success, message, data"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/v1/expenses/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		// An absent body is a valid no-op update.
		h.serverError(c, "expense_update_bad_body", err)
		return
	}

	expense, err := h.services.Expenses.Update(c.Request.Context(), callerID(c), c.Param("id"), service.UpdateParams{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "expense_update_failed", err, "id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgExpenseUpdated,
		"data":    expense,
	})
}

// @Summary      Delete expense
// @Tags         expenses
// @Produce      json
// @Param        id  path  string  true  "Expense id"
// @Success      200   {object}  map[string]interface{}  "success, message"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/v1/expenses/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExpense(c *gin.Context) {
	if err := h.services.Expenses.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "expense_delete_failed", err, "id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgExpenseDeleted,
	})
}
