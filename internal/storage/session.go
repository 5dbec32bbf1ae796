package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// SessionEnvVar overrides the session a process attaches to
const SessionEnvVar = "TAGDO_SESSION"

// ResolveSessionID picks the session for this process: an explicit value
// wins, then $TAGDO_SESSION, then one derived from the parent process so
// every command run from the same shell shares a session.
func ResolveSessionID(explicit string) string {
	if id := strings.TrimSpace(explicit); id != "" {
		return id
	}
	if id := strings.TrimSpace(os.Getenv(SessionEnvVar)); id != "" {
		return id
	}
	return fmt.Sprintf("term-%d", os.Getppid())
}

// NewSessionID returns a fresh random session identifier
func NewSessionID() string {
	return uuid.NewString()
}
