package repository

import (
	"context"

	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/persistence"
)

// StockRepository handles persistence for stock items.
type StockRepository interface {
	List(ctx context.Context) ([]domain.StockItem, error)
	// GetByID returns nil without error when no row matches.
	GetByID(ctx context.Context, id int64) (*domain.StockItem, error)
	Create(ctx context.Context, item *domain.StockItem) error
	Update(ctx context.Context, item *domain.StockItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type stockRepository struct {
	db persistence.QueryExecutor
}

// NewStockRepository builds the repository.
func NewStockRepository(db persistence.QueryExecutor) StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) List(ctx context.Context) ([]domain.StockItem, error) {
	const query = `
        SELECT id, name, category, department, quantity
        FROM stock_items ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.StockItem{}
	for rows.Next() {
		var item domain.StockItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Department, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *stockRepository) GetByID(ctx context.Context, id int64) (*domain.StockItem, error) {
	const query = `
        SELECT id, name, category, department, quantity
        FROM stock_items WHERE id=?`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var item domain.StockItem
	if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Department, &item.Quantity); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepository) Create(ctx context.Context, item *domain.StockItem) error {
	const query = `
        INSERT INTO stock_items (name, category, department, quantity)
        VALUES (?, ?, ?, ?)`
	_, err := r.db.Exec(ctx, query,
		item.Name,
		item.Category,
		item.Department,
		item.Quantity,
	)
	return err
}

func (r *stockRepository) Update(ctx context.Context, item *domain.StockItem) (int64, error) {
	const query = `
        UPDATE stock_items SET name=?, category=?, department=?, quantity=?
        WHERE id=?`
	return r.db.Exec(ctx, query,
		item.Name,
		item.Category,
		item.Department,
		item.Quantity,
		item.ID,
	)
}

func (r *stockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM stock_items WHERE id=?`
	return r.db.Exec(ctx, query, id)
}
