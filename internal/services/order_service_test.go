package services_test

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"souq/internal/models"
	"souq/internal/repositories"
	"souq/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductListFilter) ([]models.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByKey(orderKey string) (*models.Order, error) {
	args := m.Called(orderKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll(sort string) ([]models.Order, error) {
	args := m.Called(sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

var orderKeyPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{7}$`)

func validInput() services.CreateOrderInput {
	return services.CreateOrderInput{
		CustomerName: "Amina Hassan",
		Phone:        "+971501234567",
		Email:        "amina@example.com",
		Address:      "Villa 12, Jumeirah, Dubai",
		TotalAmount:  4299,
		PaymentMode:  models.PaymentCreditCard,
		Items: []services.OrderItemInput{
			{ProductID: "p1", Quantity: 1, Price: 4299},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", NameEn: "iPhone 15 Pro", Price: 4199}, nil).Once()

	var created models.Order
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		created = *args.Get(0).(*models.Order)
	}).Return(nil).Once()

	order, err := service.CreateOrder(validInput())

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Regexp(t, orderKeyPattern, created.OrderKey)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.NotEmpty(t, created.ID)

	// The submitted total and item price snapshots are stored verbatim; the
	// live catalog price (4199 here) is not consulted.
	assert.Equal(t, 4299.0, created.TotalAmount)
	assert.Len(t, created.Items, 1)
	assert.Equal(t, 4299.0, created.Items[0].Price)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_RetriesOnKeyCollision(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1"}, nil)

	var keys []string
	capture := func(args mock.Arguments) {
		keys = append(keys, args.Get(0).(*models.Order).OrderKey)
	}
	dup := fmt.Errorf("order key taken: %w", gorm.ErrDuplicatedKey)
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(capture).Return(dup).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(capture).Return(nil).Once()

	order, err := service.CreateOrder(validInput())

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1], "a colliding key must be regenerated, not retried")
	assert.Regexp(t, orderKeyPattern, keys[1])
	orderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_GivesUpAfterRepeatedCollisions(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1"}, nil)
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(gorm.ErrDuplicatedKey)

	order, err := service.CreateOrder(validInput())

	assert.Error(t, err)
	assert.Nil(t, order)
	orderRepo.AssertNumberOfCalls(t, "Create", 5)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("product ghost: %w", repositories.ErrProductNotFound)).Once()

	input := validInput()
	input.Items = []services.OrderItemInput{{ProductID: "ghost", Quantity: 1, Price: 100}}

	order, err := service.CreateOrder(input)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_InvalidPaymentMode(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), new(MockProductRepository), nil)

	input := validInput()
	input.PaymentMode = "BITCOIN"

	order, err := service.CreateOrder(input)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, services.ErrInvalidPaymentMode))
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), new(MockProductRepository), nil)

	input := validInput()
	input.Items = nil

	order, err := service.CreateOrder(input)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, services.ErrEmptyOrder))
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), new(MockProductRepository), nil)

	input := validInput()
	input.Items = []services.OrderItemInput{{ProductID: "p1", Quantity: 0, Price: 100}}

	order, err := service.CreateOrder(input)

	assert.Nil(t, order)
	assert.Error(t, err)
}

func TestOrderService_TrackOrder_NormalizesKey(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	stored := &models.Order{
		ID:       "o1",
		OrderKey: "ORD-A1B2C3D",
		Status:   models.OrderStatusShipped,
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 1, Price: 4299},
			{ProductID: "deleted", Quantity: 2, Price: 99},
		},
	}
	orderRepo.On("GetByKey", "ORD-A1B2C3D").Return(stored, nil).Once()
	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", NameEn: "iPhone 15 Pro"}, nil).Once()
	productRepo.On("GetByID", "deleted").Return(nil, fmt.Errorf("product deleted: %w", repositories.ErrProductNotFound)).Once()

	order, err := service.TrackOrder("  ord-a1b2c3d  ")

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Equal(t, "iPhone 15 Pro", order.Items[0].ProductName)

	// A deleted product still tracks; its name just stays empty.
	assert.Empty(t, order.Items[1].ProductName)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_TrackOrder_EmptyKey(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	order, err := service.TrackOrder("   ")

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, repositories.ErrOrderNotFound))
	orderRepo.AssertNotCalled(t, "GetByKey", mock.Anything)
}

func TestOrderService_TrackOrder_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	orderRepo.On("GetByKey", "ORD-ZZZZZZZ").Return(nil, fmt.Errorf("order ORD-ZZZZZZZ: %w", repositories.ErrOrderNotFound)).Once()

	order, err := service.TrackOrder("ORD-ZZZZZZZ")

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, repositories.ErrOrderNotFound))
}

func TestOrderService_CreateAndTrack_InMemory(t *testing.T) {
	// Full round trip over the in-memory repositories, no mocking.
	orderRepo := repositories.NewMockOrderRepository()
	productRepo := repositories.NewMockProductRepository()
	service := services.NewOrderService(orderRepo, productRepo, nil)

	product := &models.Product{ID: "p1", NameEn: "iPhone 15 Pro", Price: 4299, IsAvailable: true}
	assert.NoError(t, productRepo.Create(product))

	order, err := service.CreateOrder(validInput())
	assert.NoError(t, err)
	assert.Regexp(t, orderKeyPattern, order.OrderKey)

	tracked, err := service.TrackOrder("  " + strings.ToLower(order.OrderKey) + "  ")
	assert.NoError(t, err)
	assert.Equal(t, order.ID, tracked.ID)
	assert.Equal(t, "iPhone 15 Pro", tracked.Items[0].ProductName)

	assert.NoError(t, service.UpdateOrderStatus(order.ID, models.OrderStatusConfirmed))
	refreshed, err := service.GetOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, refreshed.Status)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	orderRepo.On("UpdateStatus", "o1", models.OrderStatusDelivered).Return(nil).Once()
	assert.NoError(t, service.UpdateOrderStatus("o1", models.OrderStatusDelivered))

	// A delivered order can still be cancelled; the workflow is unconstrained.
	orderRepo.On("UpdateStatus", "o1", models.OrderStatusCancelled).Return(nil).Once()
	assert.NoError(t, service.UpdateOrderStatus("o1", models.OrderStatusCancelled))

	orderRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_Invalid(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	err := service.UpdateOrderStatus("o1", "TELEPORTED")

	assert.True(t, errors.Is(err, services.ErrInvalidStatus))
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	orderRepo.On("UpdateStatus", "ghost", models.OrderStatusConfirmed).
		Return(fmt.Errorf("order ghost: %w", repositories.ErrOrderNotFound)).Once()

	err := service.UpdateOrderStatus("ghost", models.OrderStatusConfirmed)

	assert.True(t, errors.Is(err, repositories.ErrOrderNotFound))
}
