package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/events"
	"github.com/ssm-admin/ssm-api/internal/repository"
	apperrors "github.com/ssm-admin/ssm-api/pkg/util"
)

// Stock response messages.
const (
	MsgStockAdded   = "Stock item added successfully"
	MsgStockUpdated = "Stock item updated successfully"
	MsgStockRemoved = "Stock item removed successfully"

	msgStockCreateFailed = "Error adding stock item"
	msgStockUpdateFailed = "Error updating stock item"
	msgStockDeleteFailed = "Error deleting stock item"
)

// StockFields are the four writable stock columns. Category and Department
// are open sets and stored as given. QuantityAsText is set when the client
// sent quantity as a non-empty string.
type StockFields struct {
	Name           string
	Category       string
	Department     string
	Quantity       int
	QuantityAsText bool
}

// validate treats a numeric zero quantity as absent. A zero given as text,
// such as "0" from a form input, is a supplied value.
func (f StockFields) validate() error {
	return requireAll(
		requiredField{"name", f.Name != ""},
		requiredField{"category", f.Category != ""},
		requiredField{"department", f.Department != ""},
		requiredField{"quantity", f.Quantity != 0 || f.QuantityAsText},
	)
}

func (f StockFields) item(id int64) *domain.StockItem {
	return &domain.StockItem{
		ID:         id,
		Name:       f.Name,
		Category:   f.Category,
		Department: f.Department,
		Quantity:   f.Quantity,
	}
}

func (f StockFields) payload() events.StockPayload {
	return events.StockPayload{Name: f.Name, Category: f.Category, Department: f.Department, Quantity: f.Quantity}
}

// StockService implements the stock resource operations.
type StockService struct {
	stock      repository.StockRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewStockService constructs the service. dispatcher may be nil.
func NewStockService(stock repository.StockRepository, dispatcher events.Dispatcher, logger *zap.Logger) *StockService {
	return &StockService{stock: stock, dispatcher: dispatcher, logger: logger}
}

// List returns every stock item.
func (s *StockService) List(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.stock.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(MsgDatabaseError, err)
	}
	return items, nil
}

// Get returns the item with the given id, or nil when none matches.
func (s *StockService) Get(ctx context.Context, id int64) (*domain.StockItem, error) {
	item, err := s.stock.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError(MsgDatabaseError, err)
	}
	return item, nil
}

// Create validates and inserts one item.
func (s *StockService) Create(ctx context.Context, fields StockFields) error {
	if err := fields.validate(); err != nil {
		return err
	}
	if err := s.stock.Create(ctx, fields.item(0)); err != nil {
		return apperrors.NewStorageError(msgStockCreateFailed, err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStockCreated, events.ResourceStock, nil, fields.payload()))
	return nil
}

// Update overwrites all four columns without an existence check.
func (s *StockService) Update(ctx context.Context, id int64, fields StockFields) (int64, error) {
	if err := fields.validate(); err != nil {
		return 0, err
	}
	affected, err := s.stock.Update(ctx, fields.item(id))
	if err != nil {
		return 0, apperrors.NewStorageError(msgStockUpdateFailed, err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStockUpdated, events.ResourceStock, &id,
		events.MutationPayload{RowsAffected: affected, Fields: fields.payload()}))
	return affected, nil
}

// Remove deletes at most one item.
func (s *StockService) Remove(ctx context.Context, id int64) (int64, error) {
	affected, err := s.stock.Delete(ctx, id)
	if err != nil {
		return 0, apperrors.NewStorageError(msgStockDeleteFailed, err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStockRemoved, events.ResourceStock, &id,
		events.MutationPayload{RowsAffected: affected}))
	return affected, nil
}
