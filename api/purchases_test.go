package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/service/purchase"
)

// MockPurchaseUseCase is a mock implementation of purchase.PurchaseUseCase
type MockPurchaseUseCase struct {
	mock.Mock
}

func (m *MockPurchaseUseCase) CreatePurchase(ctx context.Context, input purchase.CreatePurchaseInput) (*domain.OffsetPurchase, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OffsetPurchase), args.Error(1)
}

func (m *MockPurchaseUseCase) ConfirmPurchase(ctx context.Context, token string) (*domain.OffsetPurchase, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OffsetPurchase), args.Error(1)
}

func (m *MockPurchaseUseCase) CancelPurchase(ctx context.Context, token string) (*domain.OffsetPurchase, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OffsetPurchase), args.Error(1)
}

func (m *MockPurchaseUseCase) ExpirePendingPurchases(ctx context.Context) ([]domain.OffsetPurchase, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.OffsetPurchase), args.Error(1)
}

func pendingPurchase() *domain.OffsetPurchase {
	return &domain.OffsetPurchase{
		Token:        "tok-1",
		OfferID:      1,
		EmissionTons: 0.73,
		CostCents:    5840,
		Currency:     domain.CurrencyEUR,
		Email:        "guest@example.com",
		Status:       domain.PurchaseStatusPending,
		ExpiresAt:    time.Now().Add(30 * time.Minute),
	}
}

func TestPurchaseHandler_create(t *testing.T) {
	mockService := &MockPurchaseUseCase{}
	handler := NewPurchaseHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"offer_id": 1, "emission_tons": 0.73, "cost_cents": 5840, "currency": "EUR", "email": "guest@example.com"}`
	c.Request = httptest.NewRequest("POST", "/purchases", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	want := purchase.CreatePurchaseInput{
		OfferID:      1,
		EmissionTons: 0.73,
		CostCents:    5840,
		Currency:     domain.CurrencyEUR,
		Email:        "guest@example.com",
	}

	mockService.On("CreatePurchase", c.Request.Context(), want).Return(pendingPurchase(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	mockService.AssertExpectations(t)
}

func TestPurchaseHandler_create_badPayload(t *testing.T) {
	mockService := &MockPurchaseUseCase{}
	handler := NewPurchaseHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/purchases", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreatePurchase")
}

func TestPurchaseHandler_confirm(t *testing.T) {
	mockService := &MockPurchaseUseCase{}
	handler := NewPurchaseHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "token", Value: "tok-1"}}
	c.Request = httptest.NewRequest("PUT", "/purchases/tok-1", nil)

	confirmed := pendingPurchase()
	confirmed.Status = domain.PurchaseStatusConfirmed

	mockService.On("ConfirmPurchase", c.Request.Context(), "tok-1").Return(confirmed, nil)

	handler.confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestPurchaseHandler_cancel(t *testing.T) {
	mockService := &MockPurchaseUseCase{}
	handler := NewPurchaseHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "token", Value: "tok-1"}}
	c.Request = httptest.NewRequest("DELETE", "/purchases/tok-1", nil)

	cancelled := pendingPurchase()
	cancelled.Status = domain.PurchaseStatusCancelled

	mockService.On("CancelPurchase", c.Request.Context(), "tok-1").Return(cancelled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestPurchaseHandler_confirm_serviceError(t *testing.T) {
	mockService := &MockPurchaseUseCase{}
	handler := NewPurchaseHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "token", Value: "gone"}}
	c.Request = httptest.NewRequest("PUT", "/purchases/gone", nil)

	mockService.On("ConfirmPurchase", c.Request.Context(), "gone").Return(nil, errors.New("purchase not found"))

	handler.confirm(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}
