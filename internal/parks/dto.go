package parks

import "github.com/parkslookup/parks-api/pkg/db/models"

// Park types exposed through ParkView and the list filter.
const (
	TypeState    = "state"
	TypeNational = "national"
)

// ParkView is the read-only wire projection of a park.
type ParkView struct {
	ParkCode    string `json:"park_code"`
	Type        string `json:"type"`
	StateCode   string `json:"state_code"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
}

// ListFilter carries the optional list query filters.
type ListFilter struct {
	Name      string
	StateCode string
	Type      string
	SortOrder string
}

// CreateParkInput is the write-side shape for creating a park.
type CreateParkInput struct {
	ParkCode    string `json:"park_code" validate:"required,min=2,max=10"`
	ParkName    string `json:"park_name" validate:"required"`
	Description string `json:"description" validate:"required"`
	StateCode   string `json:"state_code" validate:"required,len=2"`
	IsStatePark bool   `json:"is_state_park"`
}

// UpdateParkInput applies partial updates; nil fields are left untouched.
type UpdateParkInput struct {
	ParkName    *string `json:"park_name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	StateCode   *string `json:"state_code" validate:"omitempty,len=2"`
	IsStatePark *bool   `json:"is_state_park"`
}

// ToView projects a persisted park into its wire shape.
func ToView(park models.Park) ParkView {
	parkType := TypeNational
	if park.IsStatePark {
		parkType = TypeState
	}
	return ParkView{
		ParkCode:    park.ParkCode,
		Type:        parkType,
		StateCode:   park.StateCode,
		FullName:    park.ParkName,
		Description: park.Description,
	}
}
