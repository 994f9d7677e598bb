package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrder(db *gorm.DB) port.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var rec orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&rec, "id = ?", id.UUID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("db.First[%s]: %w", id, domain.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("db.First: %w", err)
	}

	return toDomain(rec)
}

func (r *orderRepository) ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error) {
	if limit <= 0 {
		return nil, 0, fmt.Errorf("limit must be positive")
	}
	if offset < 0 {
		return nil, 0, fmt.Errorf("offset is negative")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("db.Count: %w", err)
	}

	var recs []orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_name, id").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("db.Find: %w", err)
	}

	orders, err := toDomainList(recs)
	if err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *orderRepository) FindOrdersByName(ctx context.Context, name string) ([]*domain.Order, error) {
	var recs []orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("strpos(order_name, ?) > 0", name).
		Order("order_name, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("db.Find: %w", err)
	}

	return toDomainList(recs)
}

func (r *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.Order, error) {
	var recs []orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID.UUID()).
		Order("order_name, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("db.Find: %w", err)
	}

	return toDomainList(recs)
}

func (r *orderRepository) AddOrder(ctx context.Context, order *domain.Order) error {
	rec := toRecord(order)

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("db.Create: %w", err)
	}

	return nil
}

// UpdateOrder rewrites the order header and replaces its items.
func (r *orderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	rec := toRecord(order)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&orderRecord{ID: rec.ID}).
			Select("*").
			Omit("ID", "CreatedAt", clause.Associations).
			Updates(&rec)
		if res.Error != nil {
			return fmt.Errorf("tx.Updates: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("tx.Updates[%s]: %w", order.ID, domain.ErrOrderNotFound)
		}

		if err := tx.Where("order_id = ?", rec.ID).Delete(&orderItemRecord{}).Error; err != nil {
			return fmt.Errorf("tx.Delete items: %w", err)
		}
		if len(rec.Items) > 0 {
			if err := tx.Create(&rec.Items).Error; err != nil {
				return fmt.Errorf("tx.Create items: %w", err)
			}
		}

		return nil
	})
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id domain.OrderID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id.UUID()).Delete(&orderItemRecord{}).Error; err != nil {
			return fmt.Errorf("tx.Delete items: %w", err)
		}

		res := tx.Where("id = ?", id.UUID()).Delete(&orderRecord{})
		if res.Error != nil {
			return fmt.Errorf("tx.Delete: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("tx.Delete[%s]: %w", id, domain.ErrOrderNotFound)
		}

		return nil
	})
}
