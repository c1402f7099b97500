package repository

import (
	"database/sql"
	"fmt"
	"time"

	"configurator-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// OrderRepository reads the connection through a shared holder so that a
// background reconnect becomes visible here without rebuilding the
// repository. While the holder is empty every operation returns an error
// instead of touching a nil handle.
type OrderRepository struct {
	db **sqlx.DB
}

func NewOrderRepository(db **sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) handle() (*sqlx.DB, error) {
	if r.db == nil || *r.db == nil {
		return nil, fmt.Errorf("database unavailable")
	}
	return *r.db, nil
}

func (r *OrderRepository) Create(order *models.Order) error {
	db, err := r.handle()
	if err != nil {
		return err
	}

	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	query := `
		INSERT INTO orders (id, service_type, package_id, customizations, project_description,
			total_zmw, total_usd, exchange_rate, status, created_at, updated_at)
		VALUES (:id, :service_type, :package_id, :customizations, :project_description,
			:total_zmw, :total_usd, :exchange_rate, :status, :created_at, :updated_at)`

	if _, err := db.NamedExec(query, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	db, err := r.handle()
	if err != nil {
		return nil, err
	}

	var order models.Order
	query := `
		SELECT id, service_type, package_id, customizations, project_description,
			total_zmw, total_usd, exchange_rate, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	if err := db.Get(&order, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) GetAll() ([]models.Order, error) {
	db, err := r.handle()
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	query := `
		SELECT id, service_type, package_id, customizations, project_description,
			total_zmw, total_usd, exchange_rate, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC`

	if err := db.Select(&orders, query); err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) UpdateStatus(id uuid.UUID, status models.OrderStatus) error {
	db, err := r.handle()
	if err != nil {
		return err
	}

	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3`

	result, err := db.Exec(query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check order status update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("order not found")
	}

	return nil
}
