package springapps

import (
	"fmt"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Target identifies an app within a managed service
type Target struct {
	ResourceGroup string
	Service       string
	App           string
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s/%s", t.ResourceGroup, t.Service, t.App)
}

type SKU struct {
	Name     string
	Tier     string
	Capacity int32
}

// Service is a managed service resource
type Service struct {
	ID     string
	Name   string
	Region string
	SKU    SKU
	// ManagedEnvironmentID is set for consumption tier services only
	ManagedEnvironmentID string
}

// Tier returns the tier of the service as recorded by its SKU
func (s Service) Tier() (Tier, error) {
	return TierFromSKU(s.SKU)
}

// ProvisioningState of a platform resource
type ProvisioningState string

const (
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
)

// InstanceStatusRunning is the status of an instance that has started
const InstanceStatusRunning = "Running"

type Instance struct {
	Name      string
	Status    string
	StartTime time.Time
}

type ResourceRequests struct {
	CPU    string
	Memory string
}

// Deployment is the active deployment slot of an app
type Deployment struct {
	Name              string
	SKU               SKU
	Resources         ResourceRequests
	Env               map[string]string
	Source            SourceRef
	Active            bool
	ProvisioningState ProvisioningState
	Instances         []Instance
}

// Resources are the caller supplied deployment settings
type Resources struct {
	CPU           string
	Memory        string
	InstanceCount int32
	Env           map[string]string
}

// DefaultResources are used when a deployment is created without explicit settings
var DefaultResources = Resources{
	CPU:           "1",
	Memory:        "2Gi",
	InstanceCount: 1,
}

// BuildState is the provisioning state of an Enterprise tier build result
type BuildState string

const (
	BuildStateQueuing   BuildState = "Queuing"
	BuildStateBuilding  BuildState = "Building"
	BuildStateSucceeded BuildState = "Succeeded"
	BuildStateFailed    BuildState = "Failed"
	BuildStateDeleting  BuildState = "Deleting"
)

var runningBuildStates = sets.New(BuildStateQueuing, BuildStateBuilding)

// Terminal returns true if the build will not change state anymore
func (s BuildState) Terminal() bool {
	return !runningBuildStates.Has(s)
}

// BuildJob is the build submitted to the Enterprise tier build service
type BuildJob struct {
	BuilderPath   string
	AgentPoolPath string
	RelativePath  string
	Env           map[string]string
}

// TestKeys grant access to the test endpoint of a service
type TestKeys struct {
	PrimaryKey          string
	PrimaryTestEndpoint string
}

// UploadDefinition is where an app accepts artifact uploads
type UploadDefinition struct {
	RelativePath string
	UploadURL    string
}

// LogWorkspace is a log-analytics workspace backing a consumption tier environment
type LogWorkspace struct {
	ID         string
	Name       string
	CustomerID string
	SharedKey  string
}

// ResourceName returns the last segment of an ARM resource id. Plain names are returned as is.
func ResourceName(id string) string {
	id = strings.TrimSuffix(id, "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
