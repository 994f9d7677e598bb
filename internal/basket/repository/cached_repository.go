package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nikolayk812/eshop/internal/basket/domain"
	"github.com/nikolayk812/eshop/internal/basket/port"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "basket:"

// cachedBasketRepository reads through and writes through a Redis cache in
// front of another repository. Cache failures are logged and never fail the
// call; the wrapped repository stays the source of truth.
type cachedBasketRepository struct {
	next  port.BasketRepository
	cache redis.Cmdable
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedBasket wraps next with a Redis cache. A zero ttl keeps entries
// until the basket is stored again or deleted.
func NewCachedBasket(next port.BasketRepository, cache redis.Cmdable, ttl time.Duration, log *zap.Logger) port.BasketRepository {
	return &cachedBasketRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func (r *cachedBasketRepository) GetBasket(ctx context.Context, userName string) (domain.ShoppingCart, error) {
	cached, err := r.cache.Get(ctx, cacheKey(userName)).Bytes()
	switch {
	case err == nil:
		var cart domain.ShoppingCart
		if err := json.Unmarshal(cached, &cart); err == nil {
			return cart, nil
		}
		r.log.Warn("drop unreadable cached basket", zap.String("userName", userName))
	case !errors.Is(err, redis.Nil):
		r.log.Warn("cache.Get", zap.String("userName", userName), zap.Error(err))
	}

	cart, err := r.next.GetBasket(ctx, userName)
	if err != nil {
		return domain.ShoppingCart{}, err
	}

	r.set(ctx, cart)

	return cart, nil
}

func (r *cachedBasketRepository) StoreBasket(ctx context.Context, cart domain.ShoppingCart) (domain.ShoppingCart, error) {
	stored, err := r.next.StoreBasket(ctx, cart)
	if err != nil {
		return domain.ShoppingCart{}, err
	}

	r.set(ctx, stored)

	return stored, nil
}

func (r *cachedBasketRepository) DeleteBasket(ctx context.Context, userName string) (bool, error) {
	deleted, err := r.next.DeleteBasket(ctx, userName)
	if err != nil {
		return false, err
	}

	if err := r.cache.Del(ctx, cacheKey(userName)).Err(); err != nil {
		r.log.Warn("cache.Del", zap.String("userName", userName), zap.Error(err))
	}

	return deleted, nil
}

func (r *cachedBasketRepository) set(ctx context.Context, cart domain.ShoppingCart) {
	data, err := json.Marshal(cart)
	if err != nil {
		r.log.Warn("json.Marshal", zap.Error(err))
		return
	}

	if err := r.cache.Set(ctx, cacheKey(cart.UserName), data, r.ttl).Err(); err != nil {
		r.log.Warn("cache.Set", zap.String("userName", cart.UserName), zap.Error(err))
	}
}

func cacheKey(userName string) string {
	return cacheKeyPrefix + userName
}
