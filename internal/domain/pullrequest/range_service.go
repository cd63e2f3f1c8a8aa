package pullrequest

import (
	"context"
	"errors"
)

var ErrInvalidPageSize = errors.New("page size must be a positive integer")

// RangeService pages through a completed pull request listing and keeps
// the entries whose closing date falls inside a date window.
type RangeService struct {
	lister CompletedLister

	// Progress, when set, is notified after every scanned page.
	Progress ProgressListener
}

func NewRangeService(l CompletedLister) *RangeService {
	return &RangeService{lister: l}
}

// FetchInRange returns the completed pull requests closed within w,
// newest first. The listing is ordered newest-completed-first, so the
// scan ends at the first item older than the window; items newer than
// the window are skipped without ending the scan, since matches can
// still follow on the same or a later page. An exhausted listing (an
// empty page or a page shorter than pageSize) ends the scan without
// another request.
//
// The result is all-or-nothing: a failed page fetch discards the
// partial accumulation and surfaces the error. The context is checked
// before every page request; the number of pages a scan visits is
// bounded by the listing size, not by the window.
func (s *RangeService) FetchInRange(ctx context.Context, w DateWindow, pageSize int) ([]*Entity, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	// Bounds are compared as calendar dates even when the caller built
	// the window from full timestamps.
	w = DateWindow{Start: DateOf(w.Start), End: DateOf(w.End)}
	if w.Start.After(w.End) {
		return nil, ErrInvalidWindow
	}

	results := []*Entity{}
	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.lister.ListCompleted(ctx, &ListCompletedOptions{
			Offset:   offset,
			PageSize: pageSize,
		})
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return results, nil
		}

		for _, pr := range page {
			closed := DateOf(pr.Closed)
			switch {
			case closed.After(w.End):
				// Still newer than the window; keep scanning.
			case closed.Before(w.Start):
				// Older than the window. Newest-first ordering makes
				// every remaining item older still.
				s.notify(offset, len(page), len(results))
				return results, nil
			default:
				results = append(results, pr)
			}
		}

		s.notify(offset, len(page), len(results))

		if len(page) < pageSize {
			return results, nil
		}
		offset += pageSize
	}
}

func (s *RangeService) notify(offset, fetched, matched int) {
	if s.Progress != nil {
		s.Progress.PageScanned(offset, fetched, matched)
	}
}
