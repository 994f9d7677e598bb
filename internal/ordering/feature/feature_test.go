package feature_test

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/feature"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var harryID = uuid.MustParse("9dbc33d1-2398-4b96-adc4-2752846e5b90")

func validOrderDto(name string) feature.OrderDto {
	address := feature.AddressDto{
		FirstName:    "harry",
		LastName:     "potter",
		EmailAddress: "harry@gemail.com.br",
		AddressLine:  "Bahcelievler No:4",
		Country:      "Turkey",
		State:        "Istanbul",
		ZipCode:      "38050",
	}
	return feature.OrderDto{
		CustomerID:      harryID,
		OrderName:       name,
		ShippingAddress: address,
		BillingAddress:  address,
		Payment: feature.PaymentDto{
			CardName:      "harry",
			CardNumber:    "5555555555554444",
			Expiration:    "12/28",
			CVV:           "355",
			PaymentMethod: 1,
		},
		OrderItems: []feature.OrderItemDto{
			{ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromInt(500)},
			{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(400)},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	withoutItems := validOrderDto("ORD_1")
	withoutItems.OrderItems = nil

	badCVV := validOrderDto("ORD_1")
	badCVV.Payment.CVV = "12345"

	badQuantity := validOrderDto("ORD_1")
	badQuantity.OrderItems[0].Quantity = 0

	tests := []struct {
		name           string
		order          feature.OrderDto
		wantErrors     []string
		wantBadRequest string
	}{
		{
			name:  "valid order: ok",
			order: validOrderDto("ORD_1"),
		},
		{
			name:  "empty order: every rule reported",
			order: feature.OrderDto{},
			wantErrors: []string{
				"CustomerID is required",
				"OrderName is required",
				"OrderItems should not be empty",
			},
		},
		{
			name:       "no items: validation error",
			order:      withoutItems,
			wantErrors: []string{"OrderItems should not be empty"},
		},
		{
			name:           "long cvv: bad request",
			order:          badCVV,
			wantBadRequest: "CVV can't be longer than 3 characters.",
		},
		{
			name:           "zero quantity: bad request",
			order:          badQuantity,
			wantBadRequest: "Quantity must be greater than zero.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			m, _ := newMediator(repo, true)

			got, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](t.Context(), m,
				feature.CreateOrderCommand{Order: tt.order})
			switch {
			case tt.wantErrors != nil:
				assertValidation(t, err, tt.wantErrors)
				assert.Empty(t, repo.orders)
				return
			case tt.wantBadRequest != "":
				var badRequest *apperr.BadRequestError
				require.ErrorAs(t, err, &badRequest)
				assert.Equal(t, tt.wantBadRequest, badRequest.Message)
				assert.Empty(t, repo.orders)
				return
			}
			require.NoError(t, err)

			stored := repo.orders[got.ID]
			require.NotNil(t, stored)
			assert.Equal(t, domain.OrderStatusPending, stored.Status)
			assert.True(t, decimal.NewFromInt(1400).Equal(stored.TotalPrice()))
			assert.Empty(t, stored.DomainEvents())
		})
	}
}

func TestCreateOrderPublishesWhenFulfillmentIsOn(t *testing.T) {
	for _, fulfillment := range []bool{true, false} {
		t.Run(fmt.Sprintf("fulfillment=%t", fulfillment), func(t *testing.T) {
			m, publisher := newMediator(newFakeRepo(), fulfillment)

			got, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](t.Context(), m,
				feature.CreateOrderCommand{Order: validOrderDto("ORD_1")})
			require.NoError(t, err)

			if !fulfillment {
				assert.Empty(t, publisher.published)
				return
			}

			require.Len(t, publisher.published, 1)
			assert.Equal(t, messaging.OrderCreatedStream, publisher.published[0].stream)
			event, ok := publisher.published[0].event.(messaging.OrderCreatedIntegrationEvent)
			require.True(t, ok)
			assert.Equal(t, got.ID, event.OrderID)
			assert.Equal(t, harryID, event.CustomerID)
			assert.Equal(t, "ORD_1", event.OrderName)
			assert.True(t, decimal.NewFromInt(1400).Equal(event.TotalPrice))
		})
	}
}

func TestCreateOrderSurvivesPublishFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	repo := newFakeRepo()
	publisher := &fakePublisher{err: errors.New("stream unavailable")}
	m := cqrs.NewDefault(noop.NewTracerProvider().Tracer(""), zap.NewNop())
	feature.Register(m, repo, feature.NewEventDispatcher(publisher, true, zap.New(core)))

	got, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](t.Context(), m,
		feature.CreateOrderCommand{Order: validOrderDto("ORD_1")})
	require.NoError(t, err)
	assert.Contains(t, repo.orders, got.ID)
	assert.Equal(t, 1, logs.FilterMessage("Domain Event failed").Len())
}

func TestUpdateOrder(t *testing.T) {
	repo := newFakeRepo()
	m, _ := newMediator(repo, false)

	created, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](t.Context(), m,
		feature.CreateOrderCommand{Order: validOrderDto("ORD_1")})
	require.NoError(t, err)

	update := validOrderDto("ORD_1_RENAMED")
	update.ID = created.ID
	update.Status = domain.OrderStatusCompleted
	update.OrderItems = nil

	got, err := cqrs.Send[feature.UpdateOrderCommand, feature.UpdateOrderResult](t.Context(), m,
		feature.UpdateOrderCommand{Order: update})
	require.NoError(t, err)
	assert.True(t, got.IsSuccess)

	stored := repo.orders[created.ID]
	assert.Equal(t, "ORD_1_RENAMED", stored.OrderName.String())
	assert.Equal(t, domain.OrderStatusCompleted, stored.Status)
	assert.Len(t, stored.Items(), 2)

	missing := validOrderDto("ORD_X")
	missing.ID = uuid.New()
	missing.Status = domain.OrderStatusPending
	_, err = cqrs.Send[feature.UpdateOrderCommand, feature.UpdateOrderResult](t.Context(), m,
		feature.UpdateOrderCommand{Order: missing})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.EqualError(t, err, fmt.Sprintf(`Entity "Order" (%s) was not found.`, missing.ID))

	noStatus := validOrderDto("ORD_1")
	noStatus.ID = created.ID
	_, err = cqrs.Send[feature.UpdateOrderCommand, feature.UpdateOrderResult](t.Context(), m,
		feature.UpdateOrderCommand{Order: noStatus})
	var badRequest *apperr.BadRequestError
	require.ErrorAs(t, err, &badRequest)

	_, err = cqrs.Send[feature.UpdateOrderCommand, feature.UpdateOrderResult](t.Context(), m,
		feature.UpdateOrderCommand{Order: validOrderDto("ORD_1")})
	assertValidation(t, err, []string{"ID is required"})
}

func TestDeleteOrder(t *testing.T) {
	repo := newFakeRepo()
	m, _ := newMediator(repo, false)

	created, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](t.Context(), m,
		feature.CreateOrderCommand{Order: validOrderDto("ORD_1")})
	require.NoError(t, err)

	got, err := cqrs.Send[feature.DeleteOrderCommand, feature.DeleteOrderResult](t.Context(), m,
		feature.DeleteOrderCommand{OrderID: created.ID})
	require.NoError(t, err)
	assert.True(t, got.IsSuccess)
	assert.Empty(t, repo.orders)

	_, err = cqrs.Send[feature.DeleteOrderCommand, feature.DeleteOrderResult](t.Context(), m,
		feature.DeleteOrderCommand{OrderID: created.ID})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = cqrs.Send[feature.DeleteOrderCommand, feature.DeleteOrderResult](t.Context(), m,
		feature.DeleteOrderCommand{})
	assertValidation(t, err, []string{"OrderID is required"})
}

func TestOrderQueries(t *testing.T) {
	repo := newFakeRepo()
	m, _ := newMediator(repo, false)

	johnID := uuid.MustParse("68a41639-2658-4839-a201-aa1968ae8e3e")
	for _, name := range []string{"ORD_3", "ORD_1", "swn", "ORD_2"} {
		dto := validOrderDto(name)
		if name == "swn" {
			dto.CustomerID = johnID
		}
		_, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](t.Context(), m,
			feature.CreateOrderCommand{Order: dto})
		require.NoError(t, err)
	}

	t.Run("paged", func(t *testing.T) {
		got, err := cqrs.Send[feature.GetOrdersQuery, feature.GetOrdersResult](t.Context(), m,
			feature.GetOrdersQuery{PageIndex: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Orders.PageIndex)
		assert.Equal(t, 2, got.Orders.PageSize)
		assert.Equal(t, int64(4), got.Orders.Count)
		assert.Equal(t, []string{"ORD_3", "swn"}, dtoNames(got.Orders.Data))
	})

	t.Run("page past the end", func(t *testing.T) {
		got, err := cqrs.Send[feature.GetOrdersQuery, feature.GetOrdersResult](t.Context(), m,
			feature.GetOrdersQuery{PageIndex: 5, PageSize: 10})
		require.NoError(t, err)
		assert.NotNil(t, got.Orders.Data)
		assert.Empty(t, got.Orders.Data)
	})

	t.Run("by name", func(t *testing.T) {
		got, err := cqrs.Send[feature.GetOrdersByNameQuery, feature.GetOrdersByNameResult](t.Context(), m,
			feature.GetOrdersByNameQuery{Name: "ORD"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ORD_1", "ORD_2", "ORD_3"}, dtoNames(got.Orders))

		_, err = cqrs.Send[feature.GetOrdersByNameQuery, feature.GetOrdersByNameResult](t.Context(), m,
			feature.GetOrdersByNameQuery{Name: " "})
		var badRequest *apperr.BadRequestError
		require.ErrorAs(t, err, &badRequest)
	})

	t.Run("by customer", func(t *testing.T) {
		got, err := cqrs.Send[feature.GetOrdersByCustomerQuery, feature.GetOrdersByCustomerResult](t.Context(), m,
			feature.GetOrdersByCustomerQuery{CustomerID: johnID})
		require.NoError(t, err)
		require.Len(t, got.Orders, 1)
		assert.Equal(t, "swn", got.Orders[0].OrderName)
		assert.Equal(t, domain.OrderStatusPending, got.Orders[0].Status)
		assert.Len(t, got.Orders[0].OrderItems, 2)
		assert.True(t, decimal.NewFromInt(1400).Equal(got.Orders[0].TotalPrice))

		_, err = cqrs.Send[feature.GetOrdersByCustomerQuery, feature.GetOrdersByCustomerResult](t.Context(), m,
			feature.GetOrdersByCustomerQuery{})
		var badRequest *apperr.BadRequestError
		require.ErrorAs(t, err, &badRequest)
	})
}

func newMediator(repo *fakeRepo, fulfillment bool) (*cqrs.Mediator, *fakePublisher) {
	publisher := &fakePublisher{}
	m := cqrs.NewDefault(noop.NewTracerProvider().Tracer(""), zap.NewNop())
	feature.Register(m, repo, feature.NewEventDispatcher(publisher, fulfillment, zap.NewNop()))
	return m, publisher
}

func assertValidation(t *testing.T, err error, want []string) {
	t.Helper()

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)

	got := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		got = append(got, fe.Message)
	}
	assert.Equal(t, want, got)
}

func dtoNames(orders []feature.OrderDto) []string {
	names := make([]string, 0, len(orders))
	for _, o := range orders {
		names = append(names, o.OrderName)
	}
	return names
}

type fakeRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*domain.Order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[uuid.UUID]*domain.Order)}
}

func (r *fakeRepo) GetOrder(_ context.Context, id domain.OrderID) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id.UUID()]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, domain.ErrOrderNotFound)
	}
	return o, nil
}

func (r *fakeRepo) ListOrders(_ context.Context, limit, offset int) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.sorted(func(*domain.Order) bool { return true })
	if offset >= len(all) {
		return []*domain.Order{}, int64(len(all)), nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], int64(len(all)), nil
}

func (r *fakeRepo) FindOrdersByName(_ context.Context, name string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sorted(func(o *domain.Order) bool {
		return strings.Contains(o.OrderName.String(), name)
	}), nil
}

func (r *fakeRepo) FindOrdersByCustomer(_ context.Context, customerID domain.CustomerID) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sorted(func(o *domain.Order) bool {
		return o.CustomerID == customerID
	}), nil
}

func (r *fakeRepo) AddOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID.UUID()] = order
	return nil
}

func (r *fakeRepo) UpdateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID.UUID()]; !ok {
		return domain.ErrOrderNotFound
	}
	r.orders[order.ID.UUID()] = order
	return nil
}

func (r *fakeRepo) DeleteOrder(_ context.Context, id domain.OrderID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id.UUID()]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id.UUID())
	return nil
}

func (r *fakeRepo) sorted(keep func(*domain.Order) bool) []*domain.Order {
	var out []*domain.Order
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Order) int {
		return cmp.Compare(a.OrderName.String(), b.OrderName.String())
	})
	return out
}

type publishedEvent struct {
	stream string
	event  messaging.Event
}

type fakePublisher struct {
	mu        sync.Mutex
	err       error
	published []publishedEvent
}

func (p *fakePublisher) Publish(_ context.Context, stream string, event messaging.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, publishedEvent{stream: stream, event: event})
	return nil
}
