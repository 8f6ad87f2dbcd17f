package trivia

import "strconv"

// Paginate returns the 1-based page of items. Pages past the end are empty, not an error.
// The result shares its backing array with items.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = QuestionsPerPage
	}
	if page-1 > len(items)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// ParsePage reads a page query value, falling back to 1 for anything but a positive integer.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
