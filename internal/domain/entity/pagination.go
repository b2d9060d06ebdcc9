package entity

// PageInfo describes one page of a paginated result set.
type PageInfo struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	Limit       int
	NextPage    *int // nil when there is no further page.
	HasMore     bool
}

// BusinessPage is one page of the business feed.
type BusinessPage struct {
	Items []*Business
	Page  PageInfo
}

// NewPageInfo derives the pagination contract from the page request and the
// observed result: hasMore holds iff (page-1)*limit + returnedCount < totalItems,
// nextPage is page+1 only while hasMore, totalPages is ceil(totalItems/limit).
func NewPageInfo(page, limit int, totalItems int64, returnedCount int) PageInfo {
	info := PageInfo{
		CurrentPage: page,
		TotalItems:  totalItems,
		Limit:       limit,
	}

	if limit > 0 {
		info.TotalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}

	offset := int64(page-1) * int64(limit)
	info.HasMore = offset+int64(returnedCount) < totalItems
	if info.HasMore {
		next := page + 1
		info.NextPage = &next
	}

	return info
}

// ExpectedCount returns how many items a page must contain under the
// pagination contract: min(limit, totalItems-(page-1)*limit), floored at zero.
func ExpectedCount(page, limit int, totalItems int64) int {
	remaining := totalItems - int64(page-1)*int64(limit)
	if remaining <= 0 {
		return 0
	}
	if remaining > int64(limit) {
		return limit
	}

	return int(remaining)
}
