package commands_test

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetForUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUserLocked(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) AddCategory(ctx context.Context, category *menu.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockMenuRepository) AddItem(ctx context.Context, item *menu.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuRepository) GetItemsByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*menu.Item), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, address *account.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *account.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id, userID kernel.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockAddressRepository) GetForUser(ctx context.Context, id, userID kernel.UUID) (*account.Address, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Address), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockRefreshTokenRepository struct{ mock.Mock }

func (m *MockRefreshTokenRepository) Add(ctx context.Context, token *account.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*account.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockOrderUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAddressUoW struct{ mock.Mock }

func (m *MockAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockAccountUoW) RefreshTokenRepository() ports.RefreshTokenRepository {
	args := m.Called()
	return args.Get(0).(ports.RefreshTokenRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
