package repository_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/ordering/repository"
	"github.com/nikolayk812/eshop/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var harryID = uuid.MustParse("9dbc33d1-2398-4b96-adc4-2752846e5b90")

type orderRepositorySuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      port.OrderRepository
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(orderRepositorySuite))
}

func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, err = postgres.Run(ctx, "postgres:17.6-alpine3.22", postgres.BasicWaitStrategies())
	suite.Require().NoError(err)

	connStr, err := suite.container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	suite.db, err = repository.Open(ctx, config.Postgres{URL: connStr, MaxConns: 5, ConnMaxLifetime: time.Minute}, zap.NewNop())
	suite.Require().NoError(err)
	suite.Require().NoError(repository.Migrate(ctx, suite.db))

	suite.repo = repository.NewOrder(suite.db)
}

func (suite *orderRepositorySuite) TearDownSuite() {
	if suite.db != nil {
		if sqlDB, err := suite.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if suite.container != nil {
		_ = testcontainers.TerminateContainer(suite.container)
	}
}

func (suite *orderRepositorySuite) TearDownTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE orders, order_items, customers, products").Error)
}

func (suite *orderRepositorySuite) TestSeedIsIdempotent() {
	ctx := suite.T().Context()

	suite.Require().NoError(repository.Seed(ctx, suite.db))
	suite.Require().NoError(repository.Seed(ctx, suite.db))

	orders, count, err := suite.repo.ListOrders(ctx, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
	suite.Equal("ORD_1", orders[0].OrderName.String())
	suite.Equal("ORD_2", orders[1].OrderName.String())
	suite.True(decimal.NewFromInt(1400).Equal(orders[0].TotalPrice()))

	var customers int64
	suite.Require().NoError(suite.db.Table("customers").Count(&customers).Error)
	suite.Equal(int64(2), customers)

	byHarry, err := suite.repo.FindOrdersByCustomer(ctx, mustCustomerID(harryID))
	suite.Require().NoError(err)
	suite.Require().Len(byHarry, 1)
	suite.Equal("ORD_1", byHarry[0].OrderName.String())
}

func (suite *orderRepositorySuite) TestAddAndGetOrder() {
	ctx := suite.T().Context()

	order := randomOrder(suite.T(), "swn")
	suite.Require().NoError(suite.repo.AddOrder(ctx, order))

	got, err := suite.repo.GetOrder(ctx, order.ID)
	suite.Require().NoError(err)
	suite.assertOrder(order, got)
}

func (suite *orderRepositorySuite) TestGetMissingOrder() {
	_, err := suite.repo.GetOrder(suite.T().Context(), mustOrderID(uuid.New()))
	suite.ErrorIs(err, domain.ErrOrderNotFound)
}

func (suite *orderRepositorySuite) TestUpdateOrder() {
	ctx := suite.T().Context()

	order := randomOrder(suite.T(), "swn")
	suite.Require().NoError(suite.repo.AddOrder(ctx, order))

	name, err := domain.OrderNameOf("swn-updated")
	suite.Require().NoError(err)
	suite.Require().NoError(order.Update(name, order.ShippingAddress, order.BillingAddress, order.Payment, domain.OrderStatusCompleted))
	order.Remove(order.Items()[0].ProductID)

	suite.Require().NoError(suite.repo.UpdateOrder(ctx, order))

	got, err := suite.repo.GetOrder(ctx, order.ID)
	suite.Require().NoError(err)
	suite.assertOrder(order, got)
	suite.Equal(domain.OrderStatusCompleted, got.Status)

	missing := randomOrder(suite.T(), "ghost")
	suite.ErrorIs(suite.repo.UpdateOrder(ctx, missing), domain.ErrOrderNotFound)
}

func (suite *orderRepositorySuite) TestDeleteOrder() {
	ctx := suite.T().Context()

	order := randomOrder(suite.T(), "swn")
	suite.Require().NoError(suite.repo.AddOrder(ctx, order))

	suite.Require().NoError(suite.repo.DeleteOrder(ctx, order.ID))

	_, err := suite.repo.GetOrder(ctx, order.ID)
	suite.ErrorIs(err, domain.ErrOrderNotFound)

	var items int64
	suite.Require().NoError(suite.db.Table("order_items").Where("order_id = ?", order.ID.UUID()).Count(&items).Error)
	suite.Zero(items)

	suite.ErrorIs(suite.repo.DeleteOrder(ctx, order.ID), domain.ErrOrderNotFound)
}

func (suite *orderRepositorySuite) TestFindOrdersByName() {
	ctx := suite.T().Context()

	for _, name := range []string{"alpha-1", "beta_2", "alpha-3"} {
		suite.Require().NoError(suite.repo.AddOrder(ctx, randomOrder(suite.T(), name)))
	}

	got, err := suite.repo.FindOrdersByName(ctx, "alpha")
	suite.Require().NoError(err)
	suite.Equal([]string{"alpha-1", "alpha-3"}, orderNames(got))

	got, err = suite.repo.FindOrdersByName(ctx, "_")
	suite.Require().NoError(err)
	suite.Equal([]string{"beta_2"}, orderNames(got))
}

func (suite *orderRepositorySuite) TestListOrdersPages() {
	ctx := suite.T().Context()

	for i := range 5 {
		suite.Require().NoError(suite.repo.AddOrder(ctx, randomOrder(suite.T(), fmt.Sprintf("order-%d", i))))
	}

	page, count, err := suite.repo.ListOrders(ctx, 2, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(5), count)
	suite.Equal([]string{"order-2", "order-3"}, orderNames(page))

	_, _, err = suite.repo.ListOrders(ctx, 0, 0)
	suite.Error(err)
}

func (suite *orderRepositorySuite) assertOrder(want, got *domain.Order) {
	suite.Equal(want.ID, got.ID)
	suite.Equal(want.CustomerID, got.CustomerID)
	suite.Equal(want.OrderName, got.OrderName)
	suite.Equal(want.ShippingAddress, got.ShippingAddress)
	suite.Equal(want.BillingAddress, got.BillingAddress)
	suite.Equal(want.Payment, got.Payment)
	suite.Equal(want.Status, got.Status)
	suite.True(want.TotalPrice().Equal(got.TotalPrice()), "total: want %s, got %s", want.TotalPrice(), got.TotalPrice())

	wantItems, gotItems := want.Items(), got.Items()
	suite.Require().Len(gotItems, len(wantItems))
	byID := func(a, b domain.OrderItem) int { return strings.Compare(a.ID.String(), b.ID.String()) }
	slices.SortFunc(wantItems, byID)
	slices.SortFunc(gotItems, byID)
	for i := range wantItems {
		suite.Equal(wantItems[i].ProductID, gotItems[i].ProductID)
		suite.Equal(wantItems[i].Quantity, gotItems[i].Quantity)
		suite.True(wantItems[i].Price.Equal(gotItems[i].Price))
	}
}

func randomOrder(t *testing.T, name string) *domain.Order {
	t.Helper()

	orderName, err := domain.OrderNameOf(name)
	if err != nil {
		t.Fatal(err)
	}
	address, err := domain.AddressOf(domain.Address{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		EmailAddress: gofakeit.Username() + "@example.com",
		AddressLine:  gofakeit.Street(),
		Country:      gofakeit.Country(),
		State:        gofakeit.State(),
		ZipCode:      gofakeit.Zip(),
	})
	if err != nil {
		t.Fatal(err)
	}
	payment, err := domain.PaymentOf(domain.Payment{
		CardName:      gofakeit.Name(),
		CardNumber:    "4242424242424242",
		Expiration:    "12/29",
		CVV:           "123",
		PaymentMethod: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	order := domain.CreateOrder(mustOrderID(uuid.New()), mustCustomerID(harryID), orderName, address, address, payment)
	for range 2 {
		productID, _ := domain.ProductIDOf(uuid.New())
		price := decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)
		if err := order.Add(productID, gofakeit.IntRange(1, 3), price); err != nil {
			t.Fatal(err)
		}
	}
	order.ClearDomainEvents()
	return order
}

func mustOrderID(v uuid.UUID) domain.OrderID {
	id, err := domain.OrderIDOf(v)
	if err != nil {
		panic(err)
	}
	return id
}

func mustCustomerID(v uuid.UUID) domain.CustomerID {
	id, err := domain.CustomerIDOf(v)
	if err != nil {
		panic(err)
	}
	return id
}

func orderNames(orders []*domain.Order) []string {
	names := make([]string, 0, len(orders))
	for _, o := range orders {
		names = append(names, o.OrderName.String())
	}
	return names
}
