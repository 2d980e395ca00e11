package common

// PaginationResponse represents offset/limit pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the page count for total items split by limit
func NewPagination(page, limit int, total int64) PaginationResponse {
	pages := 0
	if limit > 0 {
		pages = int(total) / limit
		if int(total)%limit != 0 {
			pages++
		}
	}
	return PaginationResponse{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
