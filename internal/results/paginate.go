package results

import "github.com/nvarma/skyfinder/internal/models"

// DefaultPageSize matches the results listing page length.
const DefaultPageSize = 10

// Paginate slices an ordered list into one page. The current page is clamped
// into [1, max(1, pageCount)] so a shrinking list never leaves the view on an
// empty page; concatenating pages 1..pageCount reconstructs the input exactly.
func Paginate(items []models.FlightRecord, pageSize, currentPage int) models.PageView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	n := len(items)
	pageCount := 0
	if n > 0 {
		pageCount = (n + pageSize - 1) / pageSize
	}

	page := currentPage
	if page < 1 {
		page = 1
	}
	maxPage := pageCount
	if maxPage < 1 {
		maxPage = 1
	}
	if page > maxPage {
		page = maxPage
	}

	if n == 0 {
		return models.PageView{Items: []models.FlightRecord{}, Page: page, PageCount: 0}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > n {
		end = n
	}

	return models.PageView{Items: items[start:end], Page: page, PageCount: pageCount}
}
