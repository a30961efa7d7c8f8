package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/events"
	"github.com/ssm-admin/ssm-api/internal/repository"
	apperrors "github.com/ssm-admin/ssm-api/pkg/util"
)

// Staff response messages.
const (
	MsgUserAdded   = "User added successfully"
	MsgUserUpdated = "User updated successfully"
	MsgUserRemoved = "User removed successfully"

	msgStaffRemoveFailed = "Error inside Server"
	msgStaffUpdateFailed = "Error updating staff"
	msgStaffCreateFailed = "Error adding staff"
)

// StaffFields are the five writable staff columns.
type StaffFields struct {
	Name        string
	Role        string
	Departement string
	Email       string
	Phone       string
}

// StaffKeys names every staff column the way one payload shape spells it.
type StaffKeys struct {
	Name        string
	Role        string
	Departement string
	Email       string
	Phone       string
}

// The create payload uses lower-case keys and "department"; the update
// payload uses the column names.
var (
	StaffCreateKeys = StaffKeys{Name: "name", Role: "role", Departement: "department", Email: "email", Phone: "phone"}
	StaffUpdateKeys = StaffKeys{Name: "Name", Role: "Role", Departement: "Departement", Email: "Email", Phone: "Phone"}
)

func (f StaffFields) validate(keys StaffKeys) error {
	return requireAll(
		requiredField{keys.Name, f.Name != ""},
		requiredField{keys.Role, f.Role != ""},
		requiredField{keys.Departement, f.Departement != ""},
		requiredField{keys.Email, f.Email != ""},
		requiredField{keys.Phone, f.Phone != ""},
	)
}

func (f StaffFields) record(id int64) *domain.StaffRecord {
	return &domain.StaffRecord{
		ID:          id,
		Name:        f.Name,
		Role:        f.Role,
		Departement: f.Departement,
		Email:       f.Email,
		Phone:       f.Phone,
	}
}

func (f StaffFields) payload() events.StaffPayload {
	return events.StaffPayload{Name: f.Name, Role: f.Role, Departement: f.Departement, Email: f.Email, Phone: f.Phone}
}

// StaffService implements the staff resource operations.
type StaffService struct {
	staff      repository.StaffRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewStaffService constructs the service. dispatcher may be nil.
func NewStaffService(staff repository.StaffRepository, dispatcher events.Dispatcher, logger *zap.Logger) *StaffService {
	return &StaffService{staff: staff, dispatcher: dispatcher, logger: logger}
}

// List returns every staff record in storage order.
func (s *StaffService) List(ctx context.Context) ([]domain.StaffRecord, error) {
	list, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(MsgDatabaseError, err)
	}
	return list, nil
}

// Create validates the create payload and inserts one row.
func (s *StaffService) Create(ctx context.Context, fields StaffFields) error {
	if err := fields.validate(StaffCreateKeys); err != nil {
		return err
	}
	if err := s.staff.Create(ctx, fields.record(0)); err != nil {
		return apperrors.NewStorageError(msgStaffCreateFailed, err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStaffCreated, events.ResourceStaff, nil, fields.payload()))
	return nil
}

// Update overwrites all five columns of the row with the given id. It does
// not check that the row exists; the affected row count tells callers.
func (s *StaffService) Update(ctx context.Context, id int64, fields StaffFields) (int64, error) {
	if err := fields.validate(StaffUpdateKeys); err != nil {
		return 0, err
	}
	affected, err := s.staff.Update(ctx, fields.record(id))
	if err != nil {
		return 0, apperrors.NewStorageError(msgStaffUpdateFailed, err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStaffUpdated, events.ResourceStaff, &id,
		events.MutationPayload{RowsAffected: affected, Fields: fields.payload()}))
	return affected, nil
}

// Remove deletes at most one row and reports how many were deleted.
func (s *StaffService) Remove(ctx context.Context, id int64) (int64, error) {
	affected, err := s.staff.Delete(ctx, id)
	if err != nil {
		return 0, apperrors.NewStorageError(msgStaffRemoveFailed, err)
	}
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStaffRemoved, events.ResourceStaff, &id,
		events.MutationPayload{RowsAffected: affected}))
	return affected, nil
}

// publish emits a change event. Failures are logged and never reach the caller.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn("publish change event", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
