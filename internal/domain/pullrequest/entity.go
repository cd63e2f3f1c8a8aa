package pullrequest

import "time"

type EntityID string

// Entity is a summary of one completed pull request. It is built from a
// single item of a provider listing page and never mutated afterwards.
type Entity struct {
	ID          EntityID
	Title       string
	Destination string
	URL         string
	Closed      time.Time
}
