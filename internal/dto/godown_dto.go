package dto

type CreateGodownRequest struct {
	Name          string `json:"name"           validate:"required,min=1"`
	Location      string `json:"location"       validate:"required,min=1"`
	ContactPerson string `json:"contact_person" validate:"required,min=1"`
	ContactNumber string `json:"contact_number" validate:"required,min=1"`
}

// UpdateGodownRequest allows partial updates — nil fields are left untouched.
type UpdateGodownRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=1"`
	Location      *string `json:"location"       validate:"omitempty,min=1"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,min=1"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=1"`
}

type GodownResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	CreatedAt     string `json:"created_at"`
}
