package views

// Result is the outcome of a page fetch: either data or the error that prevented it.
// Pages render an error state from Err instead of an empty collection.
type Result[T any] struct {
	Data T
	Err  error
}

// Ok wraps successfully fetched data
func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Fail wraps a fetch error
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Failed reports whether the fetch failed
func (r Result[T]) Failed() bool {
	return r.Err != nil
}
