package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/api/dto"
	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/service"
	apperrors "github.com/ssm-admin/ssm-api/pkg/util"
)

// StockHandler exposes the /stock endpoints.
type StockHandler struct {
	stock  *service.StockService
	logger *zap.Logger
}

// NewStockHandler constructs a stock handler.
func NewStockHandler(stock *service.StockService, logger *zap.Logger) *StockHandler {
	return &StockHandler{stock: stock, logger: logger}
}

// List handles GET /stock.
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.stock.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.StockResponse, 0, len(items))
	for i := range items {
		resp = append(resp, stockResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /stock/:id. A missing item answers 200 with no body.
func (h *StockHandler) Get(c *fiber.Ctx) error {
	id := pathID(c)
	item, err := h.stock.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if item == nil {
		c.Status(fiber.StatusOK)
		return nil
	}
	return c.JSON(stockResponse(item))
}

// Create handles POST /stock.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var req dto.StockRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(msgInvalidPayload, nil)
	}
	if err := h.stock.Create(c.UserContext(), stockFields(req)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: service.MsgStockAdded})
}

// Update handles PUT /stock/:id.
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id := pathID(c)
	var req dto.StockRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(msgInvalidPayload, nil)
	}
	affected, err := h.stock.Update(c.UserContext(), id, stockFields(req))
	if err != nil {
		return err
	}
	h.logger.Debug("stock item updated", zap.Int64("stock_id", id), zap.Int64("rows_affected", affected))
	return c.JSON(dto.MessageResponse{Message: service.MsgStockUpdated})
}

// Remove handles DELETE /stock/:id.
func (h *StockHandler) Remove(c *fiber.Ctx) error {
	id := pathID(c)
	affected, err := h.stock.Remove(c.UserContext(), id)
	if err != nil {
		return err
	}
	h.logger.Debug("stock item removed", zap.Int64("stock_id", id), zap.Int64("rows_affected", affected))
	return c.JSON(dto.MessageResponse{Message: service.MsgStockRemoved})
}

func stockFields(req dto.StockRequest) service.StockFields {
	return service.StockFields{
		Name:           req.Name,
		Category:       req.Category,
		Department:     req.Department,
		Quantity:       req.Quantity.Value,
		QuantityAsText: req.Quantity.Text,
	}
}

func stockResponse(item *domain.StockItem) dto.StockResponse {
	return dto.StockResponse{
		ID:         item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Department: item.Department,
		Quantity:   item.Quantity,
	}
}
