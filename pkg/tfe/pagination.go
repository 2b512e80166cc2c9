package tfe

import (
	"context"
	"fmt"
)

// ListPageFunc fetches one page of a list operation. Resource client List
// methods have this shape once the fixed arguments are bound.
type ListPageFunc[T any] func(ctx context.Context, opts *ListOptions) (*Page[T], error)

// PaginationOptions controls bulk pagination helpers.
type PaginationOptions struct {
	// MaxPages limits how many pages are fetched. 0 means no limit.
	MaxPages int

	// PageSize overrides the per-page item count.
	PageSize int
}

// PaginationIterator walks a paginated list lazily: each page is fetched only
// when the consumer advances past the items already buffered. An iterator is
// bound to the query it was created with and cannot be rewound; create a new
// iterator to start over. Not safe for concurrent use by multiple consumers.
type PaginationIterator[T any] struct {
	ctx      context.Context
	fetch    ListPageFunc[T]
	opts     *ListOptions
	buffer   []T
	index    int
	nextPage *int
	started  bool
}

// NewPaginationIterator creates an iterator over every item of a paginated
// list operation, starting from the page the options name.
func NewPaginationIterator[T any](ctx context.Context, fetch ListPageFunc[T], opts *ListOptions) *PaginationIterator[T] {
	firstPage := 1
	if opts != nil && opts.PageNumber > 0 {
		firstPage = opts.PageNumber
	}

	return &PaginationIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		opts:     opts,
		nextPage: &firstPage,
	}
}

// HasNext reports whether another item is available without fetching.
func (it *PaginationIterator[T]) HasNext() bool {
	if !it.started {
		return true
	}

	if it.index < len(it.buffer) {
		return true
	}

	return it.nextPage != nil
}

// Next returns the next item, fetching the next page when the current buffer
// is exhausted. It returns ErrNoMoreItems past the end of the sequence.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if it.index >= len(it.buffer) {
		if it.started && it.nextPage == nil {
			return zero, ErrNoMoreItems
		}

		if err := it.fetchNext(); err != nil {
			return zero, err
		}

		if len(it.buffer) == 0 {
			return zero, ErrNoMoreItems
		}
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item, fetching pages as needed.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems {
				break
			}

			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *PaginationIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems {
				return nil
			}

			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

func (it *PaginationIterator[T]) fetchNext() error {
	if it.nextPage == nil {
		return ErrNoMoreItems
	}

	page, err := it.fetch(it.ctx, it.opts.WithPage(*it.nextPage))
	if err != nil {
		return fmt.Errorf("fetching page %d: %w", *it.nextPage, err)
	}

	it.started = true
	it.buffer = page.Items
	it.index = 0
	it.nextPage = page.Pagination.NextPage

	return nil
}

// FetchAllPages eagerly collects every item of a list operation, honoring
// MaxPages if set.
func FetchAllPages[T any](ctx context.Context, fetch ListPageFunc[T], opts *ListOptions, popts *PaginationOptions) ([]T, error) {
	if popts != nil && popts.PageSize > 0 {
		opts = opts.WithPage(0)
		opts.PageSize = popts.PageSize
	}

	var (
		items   []T
		fetched int
	)

	it := NewPaginationIterator(ctx, fetch, opts)

	for it.HasNext() {
		if popts != nil && popts.MaxPages > 0 && fetched >= popts.MaxPages {
			break
		}

		if err := it.fetchNext(); err != nil {
			if err == ErrNoMoreItems {
				break
			}

			return items, err
		}

		fetched++

		items = append(items, it.buffer...)
		it.index = len(it.buffer)
	}

	return items, nil
}

// PageResult carries one page or the error that ended the stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and sends each one on the returned
// channel. The channel is closed after the last page or the first error;
// cancel the context to stop early.
func StreamPages[T any](ctx context.Context, fetch ListPageFunc[T], opts *ListOptions, popts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		page := 1
		if opts != nil && opts.PageNumber > 0 {
			page = opts.PageNumber
		}

		fetched := 0

		for {
			if popts != nil && popts.MaxPages > 0 && fetched >= popts.MaxPages {
				return
			}

			current, err := fetch(ctx, opts.WithPage(page))
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			fetched++

			select {
			case results <- PageResult[T]{Items: current.Items}:
			case <-ctx.Done():
				return
			}

			if current.Pagination.NextPage == nil {
				return
			}

			page = *current.Pagination.NextPage
		}
	}()

	return results
}
