package pullrequest

import "context"

// ListCompletedOptions is a single page request. Offset advances by
// PageSize between successive pages of one scan.
type ListCompletedOptions struct {
	Offset   int
	PageSize int
}

// CompletedLister is the remote listing collaborator. Implementations
// return completed pull requests ordered newest-completed-first. A
// transport or decode failure (an unparseable completion timestamp
// included) fails the whole page; items are never silently dropped.
type CompletedLister interface {
	ListCompleted(ctx context.Context, o *ListCompletedOptions) ([]*Entity, error)
}

// ProgressListener observes the page scan of a range fetch. It carries
// no control flow; a fetch runs the same with or without one.
type ProgressListener interface {
	PageScanned(offset, fetched, matched int)
}
