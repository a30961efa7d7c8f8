package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/api/dto"
	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/service"
	apperrors "github.com/ssm-admin/ssm-api/pkg/util"
)

const msgInvalidPayload = "Invalid payload"

// unmatchedID stands in for a path id that is not an integer. Both tables
// assign ids from 1, so statements using it match no row.
const unmatchedID int64 = 0

// StaffHandler exposes the staff endpoints.
type StaffHandler struct {
	staff  *service.StaffService
	logger *zap.Logger
}

// NewStaffHandler constructs a staff handler.
func NewStaffHandler(staff *service.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{staff: staff, logger: logger}
}

// List handles GET /getUser.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	list, err := h.staff.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, staffResponse(&list[i]))
	}
	return c.JSON(resp)
}

// Remove handles DELETE /removeUser/:id.
func (h *StaffHandler) Remove(c *fiber.Ctx) error {
	id := pathID(c)
	affected, err := h.staff.Remove(c.UserContext(), id)
	if err != nil {
		return err
	}
	h.logger.Debug("staff removed", zap.Int64("staff_id", id), zap.Int64("rows_affected", affected))
	return c.JSON(dto.MessageResponse{Message: service.MsgUserRemoved})
}

// Update handles PUT /updateUser/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id := pathID(c)
	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(msgInvalidPayload, nil)
	}
	affected, err := h.staff.Update(c.UserContext(), id, staffFieldsFromUpdate(req))
	if err != nil {
		return err
	}
	h.logger.Debug("staff updated", zap.Int64("staff_id", id), zap.Int64("rows_affected", affected))
	return c.JSON(dto.MessageResponse{Message: service.MsgUserUpdated})
}

// Create handles POST /createUser.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(msgInvalidPayload, nil)
	}
	if err := h.staff.Create(c.UserContext(), staffFieldsFromCreate(req)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: service.MsgUserAdded})
}

func staffFieldsFromCreate(req dto.StaffCreateRequest) service.StaffFields {
	return service.StaffFields{
		Name:        req.Name,
		Role:        req.Role,
		Departement: req.Department,
		Email:       req.Email,
		Phone:       req.Phone,
	}
}

func staffFieldsFromUpdate(req dto.StaffUpdateRequest) service.StaffFields {
	return service.StaffFields{
		Name:        req.Name,
		Role:        req.Role,
		Departement: req.Departement,
		Email:       req.Email,
		Phone:       req.Phone,
	}
}

func staffResponse(staff *domain.StaffRecord) dto.StaffResponse {
	return dto.StaffResponse{
		StaffID:     staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		Departement: staff.Departement,
		Email:       staff.Email,
		Phone:       staff.Phone,
	}
}

// pathID reads the :id parameter. Anything that is not an integer addresses
// no row, so the request completes like one for a missing record.
func pathID(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return unmatchedID
	}
	return id
}
