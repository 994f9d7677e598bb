// Package sqlite stores coupons in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nikolayk812/eshop/internal/discount/domain"
	"github.com/nikolayk812/eshop/internal/discount/port"
	"github.com/nikolayk812/eshop/internal/discount/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	sqlDB *sql.DB
}

var _ port.CouponStore = (*Store)(nil)

// Open opens the database at path, creating it if needed, and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) GetCoupon(ctx context.Context, productName string) (domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coupon{}, err
	}
	if strings.TrimSpace(productName) == "" {
		return domain.Coupon{}, domain.ErrCouponNotFound
	}

	var c domain.Coupon
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, product_name, description, amount FROM coupons WHERE product_name = ?`,
		productName,
	).Scan(&c.ID, &c.ProductName, &c.Description, &c.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coupon{}, domain.ErrCouponNotFound
	}
	if err != nil {
		return domain.Coupon{}, fmt.Errorf("select coupon: %w", err)
	}

	return c, nil
}

func (s *Store) CreateCoupon(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coupon{}, err
	}
	if strings.TrimSpace(coupon.ProductName) == "" {
		return domain.Coupon{}, fmt.Errorf("%w: product name is required", domain.ErrInvalidCoupon)
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO coupons (product_name, description, amount) VALUES (?, ?, ?)`,
		coupon.ProductName, coupon.Description, coupon.Amount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Coupon{}, domain.ErrCouponExists
		}
		return domain.Coupon{}, fmt.Errorf("insert coupon: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Coupon{}, fmt.Errorf("last insert id: %w", err)
	}
	coupon.ID = int(id)

	return coupon, nil
}

func (s *Store) UpdateCoupon(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coupon{}, err
	}
	if coupon.ID <= 0 {
		return domain.Coupon{}, fmt.Errorf("%w: id is required", domain.ErrInvalidCoupon)
	}
	if strings.TrimSpace(coupon.ProductName) == "" {
		return domain.Coupon{}, fmt.Errorf("%w: product name is required", domain.ErrInvalidCoupon)
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE coupons SET product_name = ?, description = ?, amount = ? WHERE id = ?`,
		coupon.ProductName, coupon.Description, coupon.Amount, coupon.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Coupon{}, domain.ErrCouponExists
		}
		return domain.Coupon{}, fmt.Errorf("update coupon: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Coupon{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.Coupon{}, domain.ErrCouponNotFound
	}

	return coupon, nil
}

func (s *Store) DeleteCoupon(ctx context.Context, productName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM coupons WHERE product_name = ?`, productName)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCouponNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
