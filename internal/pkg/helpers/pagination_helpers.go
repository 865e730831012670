package helpers

import "strconv"

const (
	defaultPage     = 1
	defaultPageSize = 25
	maxPageSize     = 100
)

// ParsePagination reads page/pageSize query values with sane bounds.
func ParsePagination(pageStr, sizeStr string) (page, size int) {
	page = defaultPage
	size = defaultPageSize

	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
		size = s
		if size > maxPageSize {
			size = maxPageSize
		}
	}
	return page, size
}

// Offset converts page/size into a SQL offset.
func Offset(page, size int) uint64 {
	return uint64((page - 1) * size)
}
