package evergreen

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Iterator lazily yields decoded items from a paginated endpoint. Pages are
// fetched on demand, so breaking out early never costs more than the single
// page currently in flight. Iterators are not safe for concurrent use.
type Iterator[T any] struct {
	fetch  func() (*T, error)
	peeked *T
	err    error
	done   bool
}

// NewIterator adapts a raw item source into a typed iterator. next returns
// one raw JSON item per call and ErrNoMoreItems at the end of the sequence;
// bind, when non-nil, runs on each decoded item before it is yielded.
func NewIterator[T any](next func() (json.RawMessage, error), bind func(*T)) *Iterator[T] {
	return &Iterator[T]{fetch: func() (*T, error) {
		raw, err := next()
		if err != nil {
			return nil, err
		}
		item := new(T)
		if err := json.Unmarshal(raw, item); err != nil {
			return nil, fmt.Errorf("decoding item: %w", err)
		}
		if bind != nil {
			bind(item)
		}
		return item, nil
	}}
}

// NewFailedIterator returns an iterator whose first Next call reports err.
// It lets constructors that cannot fail eagerly surface setup problems
// through the normal iteration path.
func NewFailedIterator[T any](err error) *Iterator[T] {
	return &Iterator[T]{fetch: func() (*T, error) { return nil, err }}
}

// HasNext reports whether another item is available, fetching the next page
// if needed. Errors encountered while peeking surface on the following Next
// call.
func (it *Iterator[T]) HasNext() bool {
	if it.peeked != nil {
		return true
	}
	if it.done {
		return false
	}
	item, err := it.fetch()
	if err != nil {
		it.done = true
		if !errors.Is(err, ErrNoMoreItems) {
			it.err = err
		}
		return false
	}
	it.peeked = item
	return true
}

// Next returns the next item, or ErrNoMoreItems once the sequence ends.
func (it *Iterator[T]) Next() (*T, error) {
	if it.peeked != nil {
		item := it.peeked
		it.peeked = nil
		return item, nil
	}
	if it.done {
		if it.err != nil {
			err := it.err
			it.err = nil
			return nil, err
		}
		return nil, ErrNoMoreItems
	}
	item, err := it.fetch()
	if err != nil {
		it.done = true
		return nil, err
	}
	return item, nil
}

// All drains the iterator into a slice.
func (it *Iterator[T]) All() ([]*T, error) {
	var items []*T
	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// ForEach applies fn to every remaining item, stopping on the first error
// fn returns.
func (it *Iterator[T]) ForEach(fn func(*T) error) error {
	for {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}

// TimeWindow restricts the iterator to items whose timestamp falls in
// [after, before). The source is assumed to yield items in descending
// timestamp order, so iteration stops for good the first time an item falls
// before the window; items at or past `before` are skipped, not terminal.
func (it *Iterator[T]) TimeWindow(after, before time.Time, timeOf func(*T) time.Time) *Iterator[T] {
	stopped := false
	return &Iterator[T]{fetch: func() (*T, error) {
		if stopped {
			return nil, ErrNoMoreItems
		}
		for {
			item, err := it.Next()
			if err != nil {
				stopped = true
				return nil, err
			}
			ts := timeOf(item)
			if ts.Before(after) {
				stopped = true
				return nil, ErrNoMoreItems
			}
			if ts.Before(before) {
				return item, nil
			}
		}
	}}
}
