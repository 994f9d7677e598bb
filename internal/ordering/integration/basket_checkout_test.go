package integration_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/feature"
	"github.com/nikolayk812/eshop/internal/ordering/integration"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func checkoutEvent() messaging.BasketCheckoutEvent {
	return messaging.BasketCheckoutEvent{
		IntegrationEvent: messaging.NewIntegrationEvent("BasketCheckoutEvent"),
		UserName:         "swn",
		CustomerID:       uuid.MustParse("9dbc33d1-2398-4b96-adc4-2752846e5b90"),
		TotalPrice:       decimal.NewFromInt(2368),
		FirstName:        "Harry",
		LastName:         "Potter",
		EmailAddress:     "harry@gemail.com.br",
		AddressLine:      "Privet Drive 4",
		Country:          "UK",
		State:            "Surrey",
		ZipCode:          "12345",
		CardName:         "Harry Potter",
		CardNumber:       "4242424242424242",
		Expiration:       "12/29",
		CVV:              "123",
		PaymentMethod:    1,
		Items: []messaging.BasketCheckoutItem{
			{ProductID: uuid.New(), ProductName: "IPhone X", Quantity: 2, Price: decimal.NewFromInt(949), Color: "Black"},
			{ProductID: uuid.New(), ProductName: "Xiaomi Mi 9", Quantity: 1, Price: decimal.NewFromInt(470), Color: "Blue"},
		},
	}
}

func toMessage(t *testing.T, v any) messaging.Message {
	t.Helper()

	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return messaging.Message{ID: "1-0", Stream: messaging.BasketCheckoutStream, Type: "BasketCheckoutEvent", Payload: payload}
}

func TestToCreateOrderCommand(t *testing.T) {
	event := checkoutEvent()

	cmd := integration.ToCreateOrderCommand(event)

	assert.Equal(t, "swn", cmd.Order.OrderName)
	assert.Equal(t, event.CustomerID, cmd.Order.CustomerID)
	assert.Equal(t, cmd.Order.ShippingAddress, cmd.Order.BillingAddress)
	assert.Equal(t, "Privet Drive 4", cmd.Order.ShippingAddress.AddressLine)
	assert.Equal(t, "123", cmd.Order.Payment.CVV)
	require.Len(t, cmd.Order.OrderItems, 2)
	assert.Equal(t, event.Items[0].ProductID, cmd.Order.OrderItems[0].ProductID)
	assert.Equal(t, 2, cmd.Order.OrderItems[0].Quantity)
	assert.True(t, decimal.NewFromInt(949).Equal(cmd.Order.OrderItems[0].Price))
}

func TestBasketCheckoutHandlerCreatesOrder(t *testing.T) {
	repo := &recordingRepo{}
	handle := integration.BasketCheckoutHandler(newMediator(repo), zap.NewNop())

	require.NoError(t, handle(t.Context(), toMessage(t, checkoutEvent())))

	require.Len(t, repo.added, 1)
	order := repo.added[0]
	assert.Equal(t, "swn", order.OrderName.String())
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, decimal.NewFromInt(2368).Equal(order.TotalPrice()))
}

func TestBasketCheckoutHandlerDropsBadMessages(t *testing.T) {
	repo := &recordingRepo{}
	handle := integration.BasketCheckoutHandler(newMediator(repo), zap.NewNop())

	undecodable := messaging.Message{ID: "1-0", Type: "BasketCheckoutEvent", Payload: []byte("{")}
	assert.NoError(t, handle(t.Context(), undecodable))

	noItems := checkoutEvent()
	noItems.Items = nil
	assert.NoError(t, handle(t.Context(), toMessage(t, noItems)))

	noAddress := checkoutEvent()
	noAddress.AddressLine = ""
	assert.NoError(t, handle(t.Context(), toMessage(t, noAddress)))

	assert.Empty(t, repo.added)
}

func TestBasketCheckoutHandlerRetriesStoreFailure(t *testing.T) {
	repo := &recordingRepo{err: errors.New("connection refused")}
	handle := integration.BasketCheckoutHandler(newMediator(repo), zap.NewNop())

	assert.Error(t, handle(t.Context(), toMessage(t, checkoutEvent())))
}

func newMediator(repo port.OrderRepository) *cqrs.Mediator {
	m := cqrs.NewDefault(noop.NewTracerProvider().Tracer(""), zap.NewNop())
	feature.Register(m, repo, feature.NewEventDispatcher(nil, false, zap.NewNop()))
	return m
}

// recordingRepo only supports AddOrder.
type recordingRepo struct {
	port.OrderRepository

	mu    sync.Mutex
	err   error
	added []*domain.Order
}

func (r *recordingRepo) AddOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.added = append(r.added, order)
	return nil
}
