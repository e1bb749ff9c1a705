package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	DefaultPage  uint64 = 1
	DefaultLimit uint64 = 20
	MaxLimit     uint64 = 100
)

// ListFilter carries the client-controlled part of a list query. Tenant and ownership scoping are never part
// of it; they come from the principal.
type ListFilter struct {
	Search   string
	Enums    map[string][]string
	From     *time.Time
	To       *time.Time
	ParentID uuid.NullUUID
	Page     uint64
	Limit    uint64
}

func (f ListFilter) Normalized() ListFilter {
	if f.Page == 0 {
		f.Page = DefaultPage
	}

	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}

	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}

	return f
}

func (f ListFilter) Offset() uint64 {
	f = f.Normalized()
	return (f.Page - 1) * f.Limit
}

type Page[T any] struct {
	Items []T    `json:"items"`
	Total int    `json:"total"`
	Page  uint64 `json:"page"`
	Limit uint64 `json:"limit"`
}

func NewPage[T any](items []T, total int, f ListFilter) Page[T] {
	f = f.Normalized()

	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}
}
