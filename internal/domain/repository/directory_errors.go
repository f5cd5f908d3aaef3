// Package repository defines the interfaces for the directory collections.
// The console keeps no records of its own: every implementation talks to the
// remote directory service, which assigns IDs and owns the data.
package repository

import (
	"fmt"
	"net/http"
)

// RemoteError is returned when the directory answers with anything other than 200 OK.
// Payload carries the response body verbatim so it can be shown to the user.
type RemoteError struct {
	StatusCode int
	Payload    string
}

func (e *RemoteError) Error() string {
	if e.Payload == "" {
		return fmt.Sprintf("directory responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("directory responded %d: %s", e.StatusCode, e.Payload)
}
