package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/basket/domain"
	"github.com/nikolayk812/eshop/internal/basket/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"go.uber.org/zap/zapcore"
)

const basketCheckoutEventType = "BasketCheckoutEvent"

type CheckoutBasketCommand struct {
	cqrs.CommandMarker

	BasketCheckout domain.BasketCheckout `json:"basketCheckout"`
}

// MarshalLogObject keeps card details out of request logs.
func (c CheckoutBasketCommand) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	b := c.BasketCheckout
	enc.AddString("userName", b.UserName)
	enc.AddString("customerId", b.CustomerID.String())
	enc.AddString("emailAddress", b.EmailAddress)
	enc.AddString("cardName", b.CardName)
	enc.AddString("cardNumber", logger.Mask(b.CardNumber, 4))
	enc.AddString("cvv", logger.Mask(b.CVV, 0))
	enc.AddInt("paymentMethod", b.PaymentMethod)
	return nil
}

type CheckoutBasketResult struct {
	IsSuccess bool `json:"isSuccess"`
}

type CheckoutBasketHandler struct {
	repo      port.BasketRepository
	publisher port.EventPublisher
}

func NewCheckoutBasketHandler(repo port.BasketRepository, publisher port.EventPublisher) *CheckoutBasketHandler {
	return &CheckoutBasketHandler{repo: repo, publisher: publisher}
}

// Handle publishes the checkout with the stored cart lines and total, then
// removes the basket. The basket is kept when publishing fails or when the
// cart cannot become an order.
func (h *CheckoutBasketHandler) Handle(ctx context.Context, cmd CheckoutBasketCommand) (CheckoutBasketResult, error) {
	userName := cmd.BasketCheckout.UserName

	cart, err := h.repo.GetBasket(ctx, userName)
	if errors.Is(err, domain.ErrBasketNotFound) {
		return CheckoutBasketResult{}, basketNotFound(userName)
	}
	if err != nil {
		return CheckoutBasketResult{}, fmt.Errorf("repo.GetBasket: %w", err)
	}

	if err := checkoutable(cart); err != nil {
		return CheckoutBasketResult{}, err
	}

	checkout := cmd.BasketCheckout
	checkout.TotalPrice = cart.TotalPrice()

	if err := h.publisher.Publish(ctx, messaging.BasketCheckoutStream, toCheckoutEvent(checkout, cart)); err != nil {
		return CheckoutBasketResult{}, fmt.Errorf("publisher.Publish: %w", err)
	}

	if _, err := h.repo.DeleteBasket(ctx, userName); err != nil {
		return CheckoutBasketResult{}, fmt.Errorf("repo.DeleteBasket: %w", err)
	}

	return CheckoutBasketResult{IsSuccess: true}, nil
}

func checkoutable(cart domain.ShoppingCart) error {
	if len(cart.Items) == 0 {
		return apperr.BadRequest(fmt.Sprintf("basket of %s is empty", cart.UserName))
	}

	for _, item := range cart.Items {
		switch {
		case item.ProductID == uuid.Nil:
			return apperr.BadRequest(fmt.Sprintf("item %q has no product id", item.ProductName))
		case item.Quantity <= 0:
			return apperr.BadRequest(fmt.Sprintf("quantity of %q must be greater than zero", item.ProductName))
		case !item.Price.IsPositive():
			return apperr.BadRequest(fmt.Sprintf("price of %q must be greater than zero", item.ProductName))
		}
	}

	return nil
}

func toCheckoutEvent(b domain.BasketCheckout, cart domain.ShoppingCart) messaging.BasketCheckoutEvent {
	items := make([]messaging.BasketCheckoutItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, messaging.BasketCheckoutItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Color:       item.Color,
		})
	}

	return messaging.BasketCheckoutEvent{
		IntegrationEvent: messaging.NewIntegrationEvent(basketCheckoutEventType),
		UserName:         b.UserName,
		CustomerID:       b.CustomerID,
		TotalPrice:       b.TotalPrice,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		EmailAddress:     b.EmailAddress,
		AddressLine:      b.AddressLine,
		Country:          b.Country,
		State:            b.State,
		ZipCode:          b.ZipCode,
		CardName:         b.CardName,
		CardNumber:       b.CardNumber,
		Expiration:       b.Expiration,
		CVV:              b.CVV,
		PaymentMethod:    b.PaymentMethod,
		Items:            items,
	}
}
