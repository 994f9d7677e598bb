package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/eshop/internal/basket/db"
	"github.com/nikolayk812/eshop/internal/basket/domain"
	"github.com/nikolayk812/eshop/internal/basket/port"
)

// basketRepository keeps each cart as one jsonb document keyed by user name.
type basketRepository struct {
	q *db.Queries
}

func NewBasket(pool *pgxpool.Pool) port.BasketRepository {
	return &basketRepository{q: db.New(pool)}
}

func (r *basketRepository) GetBasket(ctx context.Context, userName string) (domain.ShoppingCart, error) {
	if userName == "" {
		return domain.ShoppingCart{}, fmt.Errorf("userName is empty")
	}

	row, err := r.q.GetBasket(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ShoppingCart{}, fmt.Errorf("q.GetBasket[%s]: %w", userName, domain.ErrBasketNotFound)
		}
		return domain.ShoppingCart{}, fmt.Errorf("q.GetBasket: %w", err)
	}

	var cart domain.ShoppingCart
	if err := json.Unmarshal(row.Data, &cart); err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return cart, nil
}

func (r *basketRepository) StoreBasket(ctx context.Context, cart domain.ShoppingCart) (domain.ShoppingCart, error) {
	if cart.UserName == "" {
		return domain.ShoppingCart{}, fmt.Errorf("userName is empty")
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.q.UpsertBasket(ctx, db.UpsertBasketParams{
		UserName: cart.UserName,
		Data:     data,
	}); err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("q.UpsertBasket: %w", err)
	}

	return cart, nil
}

func (r *basketRepository) DeleteBasket(ctx context.Context, userName string) (bool, error) {
	if userName == "" {
		return false, fmt.Errorf("userName is empty")
	}

	rowsAffected, err := r.q.DeleteBasket(ctx, userName)
	if err != nil {
		return false, fmt.Errorf("q.DeleteBasket: %w", err)
	}

	return rowsAffected > 0, nil
}
