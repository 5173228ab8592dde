package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/idubina/it-company-task-manager/internal/constants"
)

// PaginationParams holds the requested page. Page size is fixed for every list.
type PaginationParams struct {
	Page     int
	PageSize int
}

// PageMeta is the pagination metadata attached to list responses.
type PageMeta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// GetPaginationParams extracts the page number from the request.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	if page < constants.MinPage {
		page = constants.MinPage
	}

	return PaginationParams{
		Page:     page,
		PageSize: constants.ListPageSize,
	}
}

// TotalPages returns the number of pages needed for total rows.
func TotalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}

// ClampPage clamps a requested page into [1, totalPages]. Requests past the end
// land on the last page, so the last page is never empty while rows exist.
func ClampPage(page int, total int64, pageSize int) int {
	if page < constants.MinPage {
		page = constants.MinPage
	}
	if totalPages := TotalPages(total, pageSize); totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page
}

// NewPageMeta builds pagination metadata for a list response, applying the
// same clamping the repositories apply to the query offset.
func NewPageMeta(page int, pageSize int, total int64) PageMeta {
	page = ClampPage(page, total, pageSize)
	totalPages := TotalPages(total, pageSize)

	return PageMeta{
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > constants.MinPage,
	}
}
