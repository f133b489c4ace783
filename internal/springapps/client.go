package springapps

import (
	"context"
)

// Client is the platform-management client of one subscription. Every method returns errors
// classified with the kinds in errors.go; absence is reported by the Exists methods or
// ErrNotFound, never by a panic or an unclassified error.
type Client interface {
	ResourceGroupExists(ctx context.Context, name string) (bool, error)
	CreateResourceGroup(ctx context.Context, name, region string) error

	ServiceExists(ctx context.Context, resourceGroup, name string) (bool, error)
	GetService(ctx context.Context, resourceGroup, name string) (*Service, error)
	CreateOrUpdateService(ctx context.Context, resourceGroup string, service Service) (*Service, error)
	TestKeys(ctx context.Context, resourceGroup, service string) (*TestKeys, error)

	AppExists(ctx context.Context, target Target) (bool, error)
	CreateApp(ctx context.Context, target Target) error
	ResourceUploadURL(ctx context.Context, target Target) (*UploadDefinition, error)

	DeploymentExists(ctx context.Context, target Target) (bool, error)
	GetDeployment(ctx context.Context, target Target) (*Deployment, error)
	CreateDeployment(ctx context.Context, target Target, deployment Deployment) error
	UpdateDeployment(ctx context.Context, target Target, deployment Deployment) error
	LogFileURL(ctx context.Context, target Target) (string, error)

	CreateBuildService(ctx context.Context, resourceGroup, service string) error
	CreateAgentPool(ctx context.Context, resourceGroup, service, size string) error
	AgentPoolState(ctx context.Context, resourceGroup, service string) (ProvisioningState, error)
	SubmitBuild(ctx context.Context, target Target, build BuildJob) (string, error)
	TriggeredBuildResult(ctx context.Context, target Target) (string, error)
	BuildResultState(ctx context.Context, target Target, buildResultID string) (BuildState, error)
}

// ContainerClient is the container-platform client of one subscription. It provisions the log
// analytics workspace and managed environment consumption tier services run in.
type ContainerClient interface {
	CreateLogWorkspace(ctx context.Context, resourceGroup, name, region string) (*LogWorkspace, error)
	CreateManagedEnvironment(ctx context.Context, resourceGroup, name, region string, workspace LogWorkspace) (string, error)
}

// CloudHandle is a set of authenticated clients bound to one subscription
type CloudHandle interface {
	Management() Client
	Container() ContainerClient
}

// Handle is a CloudHandle built from existing clients
type Handle struct {
	ManagementClient Client
	ContainerClient  ContainerClient
}

var _ CloudHandle = &Handle{}

func (h *Handle) Management() Client {
	return h.ManagementClient
}

func (h *Handle) Container() ContainerClient {
	return h.ContainerClient
}
