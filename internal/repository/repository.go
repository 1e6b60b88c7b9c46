package repository

import (
	"strings"

	"gorm.io/gorm"
)

const (
	// MaxPageSize is the maximum allowed page size for paginated queries
	MaxPageSize     = 200
	DefaultPageSize = 20
)

// SortOption represents available sort options for list endpoints
type SortOption string

const (
	SortByCreatedDesc SortOption = "created_desc"
	SortByCreatedAsc  SortOption = "created_asc"
	SortByUpdatedDesc SortOption = "updated_desc"
	SortByTitleAsc    SortOption = "title_asc"
	SortByTitleDesc   SortOption = "title_desc"
	SortByAmountDesc  SortOption = "amount_desc"
	SortByAmountAsc   SortOption = "amount_asc"
	SortByNumberAsc   SortOption = "number_asc"
	SortByNumberDesc  SortOption = "number_desc"
)

// NormalizePagination clamps page to >= 1 and pageSize to 1..MaxPageSize
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func paginate(query *gorm.DB, page, pageSize int) *gorm.DB {
	page, pageSize = NormalizePagination(page, pageSize)
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}

// applySorting orders by the column mapped to sortBy, falling back to newest first.
// Only columns from the caller's whitelist ever reach the ORDER BY clause.
func applySorting(query *gorm.DB, sortBy SortOption, columns map[SortOption]string) *gorm.DB {
	if order, ok := columns[sortBy]; ok {
		return query.Order(order)
	}
	return query.Order("created_at DESC")
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// technicianPattern matches one id inside a JSON encoded string array column
func technicianPattern(id string) string {
	return `%"` + strings.ReplaceAll(id, `"`, ``) + `"%`
}
