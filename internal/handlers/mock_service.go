package handlers

import (
	"context"
	"net/http"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpName     string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastGenEmail       string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(name, email, password string) (int, error) {
	m.lastSignUpName = name
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockExpenses struct {
	createResp  models.Expense
	createErr   error
	listResp    []models.Expense
	listApplied service.AppliedFilters
	listErr     error
	updateResp  models.Expense
	updateErr   error
	deleteErr   error

	lastCreateUser   int
	lastCreateParams service.CreateParams
	lastListUser     int
	lastListFilter   service.FilterParams
	lastUpdateUser   int
	lastUpdateID     string
	lastUpdateParams service.UpdateParams
	lastDeleteUser   int
	lastDeleteID     string
}

func (m *mockExpenses) Create(ctx context.Context, userID int, p service.CreateParams) (models.Expense, error) {
	m.lastCreateUser = userID
	m.lastCreateParams = p
	return m.createResp, m.createErr
}
func (m *mockExpenses) List(ctx context.Context, userID int, f service.FilterParams) ([]models.Expense, service.AppliedFilters, error) {
	m.lastListUser = userID
	m.lastListFilter = f
	return m.listResp, m.listApplied, m.listErr
}
func (m *mockExpenses) Update(ctx context.Context, userID int, id string, p service.UpdateParams) (models.Expense, error) {
	m.lastUpdateUser = userID
	m.lastUpdateID = id
	m.lastUpdateParams = p
	return m.updateResp, m.updateErr
}
func (m *mockExpenses) Delete(ctx context.Context, userID int, id string) error {
	m.lastDeleteUser = userID
	m.lastDeleteID = id
	return m.deleteErr
}

type mockSummary struct {
	resp models.SpendingSummary
	err  error

	lastUser int
}

func (m *mockSummary) Overview(ctx context.Context, userID int) (models.SpendingSummary, error) {
	m.lastUser = userID
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
