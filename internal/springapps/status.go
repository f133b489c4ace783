package springapps

// Status is the coarse deployment status reported to callers
type Status string

const (
	StatusPending   Status = "Pending"
	StatusSucceeded Status = "Succeeded"
	StatusFailed    Status = "Failed"
)

// Snapshot is the state of an app's active deployment and its most recently started instance.
// It is computed on every poll and never stored.
type Snapshot struct {
	AppState      ProvisioningState
	InstanceState string
	InstanceName  string
}
