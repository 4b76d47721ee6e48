package model

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// FilterAll is the sentinel a caller sends to mean "no filter".
const FilterAll = "all"

// PageRequest is the common page/search input of every list endpoint.
// Page is 1-indexed.
type PageRequest struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize fills defaults: page < 1 becomes 1, pageSize < 1 becomes 10 and
// pageSize is capped at MaxPageSize.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// Range returns the inclusive row window [from, to] for the page.
func (p PageRequest) Range() (from, to int) {
	n := p.Normalize()
	from = (n.Page - 1) * n.PageSize
	return from, from + n.PageSize - 1
}

// Page is one window of a list result. Count is the total number of rows
// matching the filter, ignoring pagination.
type Page[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// NewPage builds a Page, replacing a nil slice so it encodes as [] rather than null.
func NewPage[T any](data []T, count int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{Data: data, Count: count}
}

// IsUnfiltered reports whether a categorical filter value means "no filter".
func IsUnfiltered(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == FilterAll
}
