package repository

import (
	"context"

	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/persistence"
)

// StaffRepository handles persistence for staff records.
type StaffRepository interface {
	List(ctx context.Context) ([]domain.StaffRecord, error)
	Create(ctx context.Context, staff *domain.StaffRecord) error
	// Update overwrites every column of the row and reports how many rows matched.
	Update(ctx context.Context, staff *domain.StaffRecord) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type staffRepository struct {
	db persistence.QueryExecutor
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(db persistence.QueryExecutor) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffRecord, error) {
	const query = `
        SELECT staffID, Name, Role, Departement, Email, Phone
        FROM staff ORDER BY staffID`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.StaffRecord{}
	for rows.Next() {
		var staff domain.StaffRecord
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Role,
			&staff.Departement,
			&staff.Email,
			&staff.Phone,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffRecord) error {
	const query = `
        INSERT INTO staff (Name, Role, Departement, Email, Phone)
        VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(ctx, query,
		staff.Name,
		staff.Role,
		staff.Departement,
		staff.Email,
		staff.Phone,
	)
	return err
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffRecord) (int64, error) {
	const query = `
        UPDATE staff
        SET Name=?, Role=?, Departement=?, Email=?, Phone=?
        WHERE staffID=?`

	return r.db.Exec(ctx, query,
		staff.Name,
		staff.Role,
		staff.Departement,
		staff.Email,
		staff.Phone,
		staff.ID,
	)
}

func (r *staffRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM staff WHERE staffID=?`
	return r.db.Exec(ctx, query, id)
}
