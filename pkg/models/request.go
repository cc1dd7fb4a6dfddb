package models

// UpdateStatusRequest is the PATCH body for a partial candidate update.
// At least one field must be present.
type UpdateStatusRequest struct {
	Status string   `json:"status,omitempty" validate:"omitempty,min=1"`
	Stage  string   `json:"stage,omitempty" validate:"omitempty,min=1"`
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// Empty reports whether the request carries no changes at all
func (r *UpdateStatusRequest) Empty() bool {
	return r.Status == "" && r.Stage == "" && r.Rating == nil
}
