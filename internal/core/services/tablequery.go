// internal/core/services/tablequery.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
)

// PageFetcher loads one page of T from the backend along with the total
// record count for the current search.
type PageFetcher[T any] func(ctx context.Context, req domain.PageRequest) ([]T, int, error)

// Page is one resolved page of a table view.
type Page[T any] struct {
	Rows []T             `json:"rows"`
	Info domain.PageInfo `json:"info"`
}

// TableQuery serves one paginated, searchable table. Every distinct
// offset+search combination is memoized in the query cache under the
// table's prefix, so revisiting a page renders without a backend call
// until a write invalidates the prefix.
type TableQuery[T any] struct {
	name   string
	fetch  PageFetcher[T]
	cache  ports.QueryCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewTableQuery creates a table query. name doubles as the cache prefix and
// must be unique per table.
func NewTableQuery[T any](name string, fetch PageFetcher[T], cache ports.QueryCache,
	ttl time.Duration, logger *slog.Logger) *TableQuery[T] {
	return &TableQuery[T]{
		name:   name,
		fetch:  fetch,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("table", name)),
	}
}

// key identifies one page of one search within this table's prefix.
func (q *TableQuery[T]) key(req domain.PageRequest) string {
	return q.name + ":" + strconv.Itoa(req.Offset()) + ":" + req.Search
}

// Load resolves one page, from cache when possible.
func (q *TableQuery[T]) Load(ctx context.Context, req domain.PageRequest) (Page[T], error) {
	req = req.Normalize()

	var page Page[T]
	err := q.cache.GetOrSet(ctx, q.key(req), &page, func() (interface{}, error) {
		rows, total, err := q.fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []T{}
		}
		return Page[T]{
			Rows: rows,
			Info: domain.PageInfo{
				Page:       req.Page,
				Size:       req.Size,
				Search:     req.Search,
				TotalCount: total,
			},
		}, nil
	}, q.ttl)
	if err != nil {
		return Page[T]{}, fmt.Errorf("loading %s page %d: %w", q.name, req.Page, err)
	}

	return page, nil
}

// Invalidate drops every cached page of this table. Called after any write
// that could change the table's contents.
func (q *TableQuery[T]) Invalidate(ctx context.Context) {
	if err := q.cache.DeletePattern(ctx, q.name+":*"); err != nil {
		q.logger.WarnContext(ctx, "table cache invalidation failed",
			slog.String("error", err.Error()))
	}
}
