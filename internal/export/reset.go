// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
)

// CleanupStatus reports what happened to the previous run's output
// directory during reset. Removal is best-effort: a failed removal is
// logged and the run continues, relying on the subsequent create.
type CleanupStatus string

const (
	// CleanupRemoved means the prior directory existed and was removed.
	CleanupRemoved CleanupStatus = "removed"

	// CleanupAbsent means there was no prior directory.
	CleanupAbsent CleanupStatus = "absent"

	// CleanupFailed means removal failed for some other reason; the
	// failure was logged and the run continued.
	CleanupFailed CleanupStatus = "failed"
)

// ResetDir removes dir recursively, then recreates it empty. Removal
// failure is reported to w and swallowed; creation failure is fatal.
func ResetDir(dir string, w io.Writer) (CleanupStatus, error) {
	status := CleanupRemoved
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		status = CleanupAbsent
	} else if err := os.RemoveAll(dir); err != nil {
		fmt.Fprintf(w, "cannot remove %s: %v\n", dir, err)
		status = CleanupFailed
	}

	if err := os.Mkdir(dir, 0o755); err != nil {
		return status, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return status, nil
}
