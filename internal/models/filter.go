package models

type FilterKind string

const (
	FilterByID   FilterKind = "id"
	FilterByName FilterKind = "name"
)

// PublisherFilter selects the publisher a report is built for.
// OutOfRange marks numeric input that no publisher id can equal.
type PublisherFilter struct {
	Kind       FilterKind `json:"by"`
	ID         int64      `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	OutOfRange bool       `json:"-"`
}
