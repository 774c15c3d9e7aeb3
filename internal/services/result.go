package services

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("api key not set")
	ErrNoData        = errors.New("no data")
)

type UpstreamError struct {
	Source string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream status %d", e.Source, e.Status)
}

// Result is what an adapter hands back for one upstream call: either a value
// or the reason there is none.
type Result[T any] struct {
	Value  T
	Err    error
	Source string
	Symbol string
}

func (r Result[T]) Ok() bool { return r.Err == nil }

func success[T any](source, symbol string, v T) Result[T] {
	return Result[T]{Value: v, Source: source, Symbol: symbol}
}

func failure[T any](source, symbol string, err error) Result[T] {
	return Result[T]{Err: err, Source: source, Symbol: symbol}
}
