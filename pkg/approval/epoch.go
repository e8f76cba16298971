package approval

import "github.com/google/uuid"

// bootEpoch identifies this process boot for the dispatch claim protocol.
// The gate stamps it on inline auto-approved actions and the executor pool
// stamps it on claimed parked actions. At the next boot, approved actions
// still carrying a foreign epoch are flagged for reconciliation instead of
// being retried.
var bootEpoch = uuid.New().String()

// BootEpoch returns the process-wide dispatch epoch.
func BootEpoch() string {
	return bootEpoch
}
