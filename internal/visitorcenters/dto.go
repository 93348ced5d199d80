package visitorcenters

import "github.com/parkslookup/parks-api/pkg/db/models"

// VisitorCenterView is the wire projection of a visitor center.
type VisitorCenterView struct {
	ID              uint   `json:"id"`
	CenterName      string `json:"center_name"`
	Description     string `json:"description,omitempty"`
	PhysicalAddress string `json:"physical_address"`
	MailingAddress  string `json:"mailing_address,omitempty"`
	PhoneNumber     string `json:"phone_number"`
	ParkID          uint   `json:"park_id"`
}

// ListFilter carries the optional list query filters.
type ListFilter struct {
	Name      string
	ParkID    uint
	SortOrder string
}

// CreateVisitorCenterInput is the write-side shape for creating a center.
type CreateVisitorCenterInput struct {
	CenterName      string `json:"center_name" validate:"required"`
	Description     string `json:"description"`
	PhysicalAddress string `json:"physical_address" validate:"required"`
	MailingAddress  string `json:"mailing_address"`
	PhoneNumber     string `json:"phone_number" validate:"required,phone"`
	ParkID          uint   `json:"park_id" validate:"required,gt=0"`
}

// UpdateVisitorCenterInput applies partial updates; nil fields are untouched.
type UpdateVisitorCenterInput struct {
	CenterName      *string `json:"center_name" validate:"omitempty,min=1"`
	Description     *string `json:"description"`
	PhysicalAddress *string `json:"physical_address" validate:"omitempty,min=1"`
	MailingAddress  *string `json:"mailing_address"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,phone"`
	ParkID          *uint   `json:"park_id" validate:"omitempty,gt=0"`
}

// ToView projects a persisted visitor center into its wire shape.
func ToView(center models.VisitorCenter) VisitorCenterView {
	return VisitorCenterView{
		ID:              center.ID,
		CenterName:      center.CenterName,
		Description:     center.Description,
		PhysicalAddress: center.PhysicalAddress,
		MailingAddress:  center.MailingAddress,
		PhoneNumber:     center.PhoneNumber,
		ParkID:          center.ParkID,
	}
}
