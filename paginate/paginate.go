// Package paginate slices lists into fixed-size pages for the store and
// inventory browsers.
package paginate

// Slice returns the 1-based page of the list. Out-of-range pages yield an
// empty slice rather than an error.
func Slice[T any](list []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return nil
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// Controls reports which page buttons should be enabled for the given page.
type Controls struct {
	BackEnabled bool
	NextEnabled bool
}

// PageControls computes the button state for a list of the given total
// length.
func PageControls(total, page, perPage int) Controls {
	pages := Pages(total, perPage)
	return Controls{
		BackEnabled: page > 1,
		NextEnabled: page < pages,
	}
}

// Pages is the number of pages the list spans.
func Pages(total, perPage int) int {
	if perPage < 1 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
