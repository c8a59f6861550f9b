package logging

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// GenerateRunID generates a new ULID for run identification. ULIDs sort
// lexicographically by creation time, so per-run log files line up
// chronologically in directory listings.
func GenerateRunID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
