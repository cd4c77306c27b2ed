package ids

import "github.com/segmentio/ksuid"

// New returns a sortable unique ID for new rows.
func New() string {
	return ksuid.New().String()
}
