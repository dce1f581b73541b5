package tracker

import "time"

// SyncStatus classifies the result of a sync run.
type SyncStatus string

const (
	SyncCompleted       SyncStatus = "completed"
	SyncPartiallyFailed SyncStatus = "partially_failed"
	SyncFailed          SyncStatus = "failed"
)

// SyncOutcome summarizes one sync run over a date window. The counts
// are per-domain upserts; FailedFetches counts domain fetches that
// errored without blocking the rest of the window.
type SyncOutcome struct {
	Activities    int        `json:"activities"`
	Weights       int        `json:"weights"`
	Foods         int        `json:"foods"`
	Sleep         int        `json:"sleep"`
	FailedFetches int        `json:"failed_fetches"`
	SyncedAt      time.Time  `json:"synced_at"`
	Status        SyncStatus `json:"status"`
}

// Finish stamps the outcome. Completed means every domain of every
// date succeeded or was legitimately empty; any failed fetch demotes
// the run to partially failed.
func (o *SyncOutcome) Finish(at time.Time) {
	o.SyncedAt = at
	if o.FailedFetches > 0 {
		o.Status = SyncPartiallyFailed
	} else {
		o.Status = SyncCompleted
	}
}

// Fail marks the run as a total failure. Reserved for runs that could
// not reach the provider at all.
func (o *SyncOutcome) Fail(at time.Time) {
	o.SyncedAt = at
	o.Status = SyncFailed
}
