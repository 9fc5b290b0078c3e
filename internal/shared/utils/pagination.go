package utils

// NormalizePagination clamps page/limit to sane values. Zero or negative
// inputs fall back to the defaults; limit is capped so a single request
// cannot pull an unbounded result set.
func NormalizePagination(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Offset converts 1-based page/limit into a SQL offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
