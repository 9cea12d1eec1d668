package logging

import "github.com/oklog/ulid/v2"

// GenerateRunID returns a unique, lexicographically sortable identifier for
// one supervisor run. Log files are named by it.
func GenerateRunID() string {
	return ulid.Make().String()
}
