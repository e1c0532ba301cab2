package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	app "bannerstore/internal/application/order"
	"bannerstore/internal/domain/catalog"
	domain "bannerstore/internal/domain/order"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Product(ctx context.Context, productID string) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPricingService) Quote(ctx context.Context, productID string, sel catalog.Selection) (catalog.PriceBreakdown, error) {
	args := m.Called(ctx, productID, sel)
	return args.Get(0).(catalog.PriceBreakdown), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) order(args mock.Arguments) (*domain.Order, error) {
	if o := args.Get(0); o != nil {
		return o.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, cmd app.PlaceOrderCommand) (*domain.Order, error) {
	return m.order(m.Called(ctx, cmd))
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *MockOrderService) Advance(ctx context.Context, id string) (*domain.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *MockOrderService) Revert(ctx context.Context, id string) (*domain.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *MockOrderService) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *MockOrderService) Assign(ctx context.Context, id string, status domain.StatusID) (*domain.Order, error) {
	return m.order(m.Called(ctx, id, status))
}

func (m *MockOrderService) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.([]domain.HistoryEntry), args.Error(1)
	}
	return nil, args.Error(1)
}
