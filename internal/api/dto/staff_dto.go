package dto

// StaffCreateRequest is the POST /createUser payload.
type StaffCreateRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// StaffUpdateRequest is the PUT /updateUser/:id payload. Its keys are the
// column names, including the "Departement" spelling.
type StaffUpdateRequest struct {
	Name        string `json:"Name"`
	Role        string `json:"Role"`
	Departement string `json:"Departement"`
	Email       string `json:"Email"`
	Phone       string `json:"Phone"`
}

// StaffResponse mirrors a staff row.
type StaffResponse struct {
	StaffID     int64  `json:"staffID"`
	Name        string `json:"Name"`
	Role        string `json:"Role"`
	Departement string `json:"Departement"`
	Email       string `json:"Email"`
	Phone       string `json:"Phone"`
}
