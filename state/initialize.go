package state

import (
	"time"
)

// newLocalEnv creates environment with defaults, existing output is replaced
// unless told otherwise.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Overwrite: true,
		start:     time.Now(),
	}
}
