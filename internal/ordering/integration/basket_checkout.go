// Package integration consumes integration events published by other services.
package integration

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/feature"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"go.uber.org/zap"
)

// BasketCheckoutHandler turns every BasketCheckoutEvent into a new order.
// Messages the order cannot be built from are dropped; any other failure
// leaves the message pending for redelivery.
func BasketCheckoutHandler(m *cqrs.Mediator, log *zap.Logger) messaging.HandlerFunc {
	return func(ctx context.Context, msg messaging.Message) error {
		log.Info("Integration event handled", zap.String("integrationEvent", msg.Type), zap.String("messageId", msg.ID))

		event, err := messaging.Decode[messaging.BasketCheckoutEvent](msg)
		if err != nil {
			log.Error("drop undecodable message", zap.String("messageId", msg.ID), zap.Error(err))
			return nil
		}

		res, err := cqrs.Send[feature.CreateOrderCommand, feature.CreateOrderResult](ctx, m, ToCreateOrderCommand(event))
		if err != nil {
			if apperr.StatusOf(err) < http.StatusInternalServerError {
				log.Warn("drop rejected checkout", zap.String("messageId", msg.ID), zap.String("userName", event.UserName), zap.Error(err))
				return nil
			}
			return fmt.Errorf("send CreateOrderCommand: %w", err)
		}

		log.Info("order created from basket checkout",
			zap.Stringer("orderId", res.ID),
			zap.String("userName", event.UserName))

		return nil
	}
}

// ToCreateOrderCommand names the order after the user and bills to the
// shipping address.
func ToCreateOrderCommand(e messaging.BasketCheckoutEvent) feature.CreateOrderCommand {
	address := feature.AddressDto{
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		EmailAddress: e.EmailAddress,
		AddressLine:  e.AddressLine,
		Country:      e.Country,
		State:        e.State,
		ZipCode:      e.ZipCode,
	}

	items := make([]feature.OrderItemDto, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, feature.OrderItemDto{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return feature.CreateOrderCommand{
		Order: feature.OrderDto{
			CustomerID:      e.CustomerID,
			OrderName:       e.UserName,
			ShippingAddress: address,
			BillingAddress:  address,
			Payment: feature.PaymentDto{
				CardName:      e.CardName,
				CardNumber:    e.CardNumber,
				Expiration:    e.Expiration,
				CVV:           e.CVV,
				PaymentMethod: e.PaymentMethod,
			},
			Status:     domain.OrderStatusPending,
			OrderItems: items,
		},
	}
}
