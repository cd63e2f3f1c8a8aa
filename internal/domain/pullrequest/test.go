package pullrequest

import "context"

// MockCompletedLister serves pages of a fixed newest-first dataset and
// records every request it receives.
type MockCompletedLister struct {
	Dataset []*Entity

	// Err is returned instead of a page. ErrAt limits the failure to
	// the n-th request (1-based); zero fails every request.
	Err   error
	ErrAt int

	Requests []ListCompletedOptions
}

func (m *MockCompletedLister) ListCompleted(_ context.Context, o *ListCompletedOptions) ([]*Entity, error) {
	m.Requests = append(m.Requests, *o)

	if m.Err != nil && (m.ErrAt == 0 || m.ErrAt == len(m.Requests)) {
		return nil, m.Err
	}

	if o.Offset >= len(m.Dataset) {
		return []*Entity{}, nil
	}

	end := o.Offset + o.PageSize
	if end > len(m.Dataset) {
		end = len(m.Dataset)
	}

	return m.Dataset[o.Offset:end], nil
}
