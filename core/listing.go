// Pure listing rules: the sortable-field allow-list, page normalization
// and the page-URL builders. No HTTP or DB types here, so all of it is
// trivially unit-testable.
package core

import (
	"net/url"
	"strconv"
)

// PerPage is the fixed page size of the list endpoint. It is a server
// constant, not a client parameter.
const PerPage = 15

// DefaultSortField is used when sort_by is absent or not allow-listed.
const DefaultSortField = "id"

// sortableFields is the allow-list of sort keys. It doubles as the
// guard that keeps user input out of ORDER BY clauses: the repository
// only ever sees a member of this set.
var sortableFields = map[string]bool{
	"id":         true,
	"username":   true,
	"name":       true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

// NormalizeSortField returns f if it is sortable, otherwise the default.
// Unrecognized values silently fall back rather than failing the request.
func NormalizeSortField(f string) string {
	if sortableFields[f] {
		return f
	}
	return DefaultSortField
}

// NormalizePage clamps non-positive page numbers to 1. Pages beyond the
// last are left alone; they yield an empty data array downstream.
func NormalizePage(p int) int {
	if p < 1 {
		return 1
	}
	return p
}

// LastPage is the number of the final page for a collection of total
// records, never less than 1 so an empty collection still has a page 1.
func LastPage(total int64, perPage int) int {
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return last
}

// PageURL builds the relative URL for one page of the listing, carrying
// the active sort state. Default sort and ascending order are omitted so
// the URLs stay canonical; url.Values.Encode keeps key order stable.
func PageURL(basePath, sortBy string, descending bool, page int) string {
	v := url.Values{}
	if sortBy != DefaultSortField {
		v.Set("sort_by", sortBy)
	}
	if descending {
		v.Set("descending", "true")
	}
	v.Set("page", strconv.Itoa(page))
	return basePath + "?" + v.Encode()
}

// PrevPageURL returns the URL of the previous page, or nil on page 1.
func PrevPageURL(basePath, sortBy string, descending bool, page int) *string {
	if page <= 1 {
		return nil
	}
	u := PageURL(basePath, sortBy, descending, page-1)
	return &u
}

// NextPageURL returns the URL of the next page, or nil on or past the
// last page.
func NextPageURL(basePath, sortBy string, descending bool, page, lastPage int) *string {
	if page >= lastPage {
		return nil
	}
	u := PageURL(basePath, sortBy, descending, page+1)
	return &u
}
