package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/postgres/addressrepo"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	ordersHandler     queries.GetOrdersQueryHandler
	orderHandler      queries.GetOrderQueryHandler
	menuItemsHandler  queries.GetMenuItemsQueryHandler
	categoriesHandler queries.GetCategoriesQueryHandler
	addressesHandler  queries.GetAddressesQueryHandler
	userHandler       queries.GetUserQueryHandler

	orderRepo   *orderrepo.GormOrderRepository
	menuRepo    *menurepo.GormMenuRepository
	addressRepo *addressrepo.GormAddressRepository

	pizza  *menu.Item
	drink  *menu.Item
	userID kernel.UUID
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{},
		&menurepo.CategoryDTO{}, &menurepo.ItemDTO{},
		&addressrepo.AddressDTO{}, &userrepo.UserDTO{},
	)
	suite.Require().NoError(err)

	suite.ordersHandler = queries.NewGetOrdersQueryHandler(db)
	suite.orderHandler = queries.NewGetOrderQueryHandler(db)
	suite.menuItemsHandler = queries.NewGetMenuItemsQueryHandler(db)
	suite.categoriesHandler = queries.NewGetCategoriesQueryHandler(db)
	suite.addressesHandler = queries.NewGetAddressesQueryHandler(db)
	suite.userHandler = queries.NewGetUserQueryHandler(db)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.menuRepo = menurepo.NewGormMenuRepository(db)
	suite.addressRepo = addressrepo.NewGormAddressRepository(db)

	category, err := menu.NewCategory(kernel.NewUUID(), "Pizza")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.AddCategory(ctx, category))

	drinks, err := menu.NewCategory(kernel.NewUUID(), "Drinks")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.AddCategory(ctx, drinks))

	suite.pizza, err = menu.NewItem(kernel.NewUUID(), "Margherita", "Tomato and mozzarella",
		decimal.RequireFromString("150.00"), category.ID(), "/images/margherita.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.AddItem(ctx, suite.pizza))

	suite.drink, err = menu.NewItem(kernel.NewUUID(), "Cola", "0.5l bottle",
		decimal.RequireFromString("35.00"), drinks.ID(), "/images/cola.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.AddItem(ctx, suite.drink))
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE orders, order_items, addresses, users").Error
	suite.Require().NoError(err)
	suite.userID = kernel.NewUUID()
}

func (suite *OrderQueriesTestSuite) placeOrder(userID kernel.UUID, addressID *kernel.UUID, placedAt time.Time) *order.Order {
	line, err := order.NewLineItem(kernel.NewUUID(), suite.pizza.ID(), 2, suite.pizza.Price(), "")
	suite.Require().NoError(err)
	drinkLine, err := order.NewLineItem(kernel.NewUUID(), suite.drink.ID(), 1, suite.drink.Price(), "no ice")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), userID, addressID, order.CashOnDelivery,
		"ring twice", []*order.LineItem{line, drinkLine}, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetOrders_ReturnsOwnOrdersNewestFirst() {
	first := suite.placeOrder(suite.userID, nil, time.Now().UTC().Add(-time.Hour))
	second := suite.placeOrder(suite.userID, nil, time.Now().UTC())
	suite.placeOrder(kernel.NewUUID(), nil, time.Now().UTC()) // someone else's

	query, err := queries.NewGetOrdersQuery(suite.userID, nil, false)
	suite.Require().NoError(err)

	orders, err := suite.ordersHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(second.ID(), orders[0].ID)
	suite.Equal(first.ID(), orders[1].ID)

	suite.True(orders[0].Total.Equal(decimal.RequireFromString("335.00")))
	suite.Require().Len(orders[0].Items, 2)

	byName := make(map[string]queries.OrderItemResponse, 2)
	for _, item := range orders[0].Items {
		byName[item.MenuItem.Name] = item
	}
	suite.Require().Contains(byName, "Margherita")
	suite.True(byName["Margherita"].Subtotal.Equal(decimal.RequireFromString("300.00")))
	suite.Require().Contains(byName, "Cola")
	suite.Equal("no ice", byName["Cola"].SpecialInstructions)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_HidesCanceledByDefault() {
	kept := suite.placeOrder(suite.userID, nil, time.Now().UTC().Add(-time.Minute))
	canceled := suite.placeOrder(suite.userID, nil, time.Now().UTC())
	suite.Require().True(canceled.Cancel(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), canceled))

	query, err := queries.NewGetOrdersQuery(suite.userID, nil, false)
	suite.Require().NoError(err)
	orders, err := suite.ordersHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(kept.ID(), orders[0].ID)

	query, err = queries.NewGetOrdersQuery(suite.userID, nil, true)
	suite.Require().NoError(err)
	orders, err = suite.ordersHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_StatusFilterWinsOverHiding() {
	suite.placeOrder(suite.userID, nil, time.Now().UTC().Add(-time.Minute))
	canceled := suite.placeOrder(suite.userID, nil, time.Now().UTC())
	suite.Require().True(canceled.Cancel(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), canceled))

	status := order.Canceled
	query, err := queries.NewGetOrdersQuery(suite.userID, &status, false)
	suite.Require().NoError(err)

	orders, err := suite.ordersHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(canceled.ID(), orders[0].ID)
	suite.Equal(order.Canceled, orders[0].Status)
	suite.False(orders[0].IsActive)
	suite.NotNil(orders[0].CanceledAt)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_IncludesAddress() {
	address, err := account.NewAddress(kernel.NewUUID(), suite.userID, "12 Main St", "4b", "Springfield", "+15550100", true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addressRepo.Add(context.Background(), address))

	addressID := address.ID()
	placed := suite.placeOrder(suite.userID, &addressID, time.Now().UTC())

	query, err := queries.NewGetOrderQuery(placed.ID(), suite.userID)
	suite.Require().NoError(err)

	result, err := suite.orderHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(placed.ID(), result.ID)
	suite.Require().NotNil(result.Address)
	suite.Equal("12 Main St", result.Address.StreetAddress)
	suite.Equal("Springfield", result.Address.City)
	suite.True(result.CanCancel())
}

func (suite *OrderQueriesTestSuite) TestGetOrder_ForeignOrderIsNotFound() {
	placed := suite.placeOrder(kernel.NewUUID(), nil, time.Now().UTC())

	query, err := queries.NewGetOrderQuery(placed.ID(), suite.userID)
	suite.Require().NoError(err)

	_, err = suite.orderHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetMenuItems_FilterIsCaseInsensitive() {
	items, err := suite.menuItemsHandler.Handle(context.Background(), queries.NewGetMenuItemsQuery("pIzZa"))

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Margherita", items[0].Name)
	suite.Equal("Pizza", items[0].CategoryName)
}

func (suite *OrderQueriesTestSuite) TestGetMenuItems_UnfilteredReturnsWholeCatalog() {
	items, err := suite.menuItemsHandler.Handle(context.Background(), queries.NewGetMenuItemsQuery(""))

	suite.Require().NoError(err)
	suite.Len(items, 2)
}

func (suite *OrderQueriesTestSuite) TestGetCategories_SortedByName() {
	categories, err := suite.categoriesHandler.Handle(context.Background(), queries.NewGetCategoriesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(categories, 2)
	suite.Equal("Drinks", categories[0].Name)
	suite.Equal("Pizza", categories[1].Name)
}

func (suite *OrderQueriesTestSuite) TestGetUser_ReturnsProfile() {
	ctx := context.Background()
	user, err := account.NewUser(suite.userID, "jamie@example.com", "not-a-real-hash", "Jamie", "Doe", "+15550100")
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(ctx, user))

	query, err := queries.NewGetUserQuery(suite.userID)
	suite.Require().NoError(err)

	profile, err := suite.userHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(suite.userID, profile.ID)
	suite.Equal("jamie@example.com", profile.Email)
	suite.Equal("Jamie", profile.FirstName)
}

func (suite *OrderQueriesTestSuite) TestGetUser_UnknownUserIsNotFound() {
	query, err := queries.NewGetUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.userHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetAddresses_DefaultFirst() {
	ctx := context.Background()
	other, err := account.NewAddress(kernel.NewUUID(), suite.userID, "1 Ash Ln", "", "Springfield", "+15550101", false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addressRepo.Add(ctx, other))

	preferred, err := account.NewAddress(kernel.NewUUID(), suite.userID, "12 Main St", "", "Springfield", "+15550100", true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addressRepo.Add(ctx, preferred))

	query, err := queries.NewGetAddressesQuery(suite.userID)
	suite.Require().NoError(err)

	addresses, err := suite.addressesHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(addresses, 2)
	suite.Equal(preferred.ID(), addresses[0].ID)
	suite.True(addresses[0].IsDefault)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderQueriesTestSuite))
}
