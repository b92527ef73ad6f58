// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Catalog listings use a fixed, configured page size and a 1-indexed "page"
// query parameter. The resulting metadata is delivered in the API response
// envelope next to the data.
package pagination

import (
	"net/http"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/pkg/convert"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// LastPageToken selects the final page, whatever its number.
	LastPageToken = "last"
)

// Params holds the requested page and the fixed limit of a listing.
type Params struct {
	Page  int
	Last  bool
	Limit int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (m Meta) Offset() int {
	if m.Page <= 1 {
		return 0
	}
	return (m.Page - 1) * m.Limit
}

// NewMeta constructs pagination metadata for a response.
//
// An empty listing still reports one (empty) page.
func NewMeta(page, limit, total int) Meta {
	totalPages := 1
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// FromRequest parses the "page" query parameter for a listing with a fixed
// page size.
//
// # Rules
//
//   - Missing parameter selects [DefaultPage].
//   - [LastPageToken] selects the final page once the total is known.
//   - Anything that is not a positive integer is a 404.
func FromRequest(r *http.Request, limit int) (Params, error) {
	raw := r.URL.Query().Get("page")

	switch raw {
	case "":
		return Params{Page: DefaultPage, Limit: limit}, nil
	case LastPageToken:
		return Params{Last: true, Limit: limit}, nil
	}

	page := convert.ToInt(raw)
	if page < 1 {
		return Params{}, apperr.NotFound("Page")
	}
	return Params{Page: page, Limit: limit}, nil
}

// Meta resolves the requested page against the total row count.
//
// Pages past the last one are rejected with a 404, the way a paginator does.
// Page 1 is always valid, even for an empty listing.
func (p Params) Meta(total int) (Meta, error) {
	page := p.Page
	if p.Last {
		page = NewMeta(DefaultPage, p.Limit, total).TotalPages
	}

	meta := NewMeta(page, p.Limit, total)
	if meta.Page > meta.TotalPages {
		return Meta{}, apperr.NotFound("Page")
	}
	return meta, nil
}
