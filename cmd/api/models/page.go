package models

// Page is a paginated result set
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
}

// PageRequest carries pagination and sorting parameters.
// Page is zero-based; Sort holds a whitelisted column; Desc flips order.
type PageRequest struct {
	Page int
	Size int
	Sort string
	Desc bool
}

// Offset returns the row offset for the request
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
