package models

// PaginatedResponse wraps one page of a list endpoint.
type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPage builds a page, turning a nil slice into an empty JSON array.
func NewPage[T any](items []T, total, page, pageSize int) PaginatedResponse {
	if items == nil {
		items = []T{}
	}

	return PaginatedResponse{Data: items, Total: total, Page: page, PageSize: pageSize}
}
