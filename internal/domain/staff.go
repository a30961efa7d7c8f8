package domain

// StaffRecord models a member of staff as stored in the staff table.
// Departement keeps the column's spelling.
type StaffRecord struct {
	ID          int64
	Name        string
	Role        string
	Departement string
	Email       string
	Phone       string
}
