package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

const (
	workspaceRetentionDays = 30
	logDestination         = "log-analytics"
)

// ContainerClient implements springapps.ContainerClient with the Azure SDK
type ContainerClient struct {
	workspaces   *armoperationalinsights.WorkspacesClient
	sharedKeys   *armoperationalinsights.SharedKeysClient
	environments *armappcontainers.ManagedEnvironmentsClient
	log          logrus.FieldLogger
	metrics      *metrics.Metrics
}

var _ springapps.ContainerClient = &ContainerClient{}

func (c *ContainerClient) error(ctx context.Context, op string, err error) error {
	return errorf(ctx, c.log, c.metrics, op, err)
}

// CreateLogWorkspace creates a pay-as-you-go workspace and reads the shared key environments
// authenticate with
func (c *ContainerClient) CreateLogWorkspace(ctx context.Context, resourceGroup, name, region string) (*springapps.LogWorkspace, error) {
	poller, err := c.workspaces.BeginCreateOrUpdate(ctx, resourceGroup, name, armoperationalinsights.Workspace{
		Location: to.Ptr(region),
		Properties: &armoperationalinsights.WorkspaceProperties{
			SKU: &armoperationalinsights.WorkspaceSKU{
				Name: to.Ptr(armoperationalinsights.WorkspaceSKUNameEnumPerGB2018),
			},
			RetentionInDays: to.Ptr[int32](workspaceRetentionDays),
		},
	}, nil)
	if err != nil {
		return nil, c.error(ctx, "create log workspace", err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, c.error(ctx, "create log workspace", err)
	}

	keys, err := c.sharedKeys.GetSharedKeys(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, c.error(ctx, "get workspace shared keys", err)
	}

	workspace := &springapps.LogWorkspace{
		ID:        deref(resp.ID),
		Name:      name,
		SharedKey: deref(keys.SecondarySharedKey),
	}
	if resp.Properties != nil {
		workspace.CustomerID = deref(resp.Properties.CustomerID)
	}
	return workspace, nil
}

// CreateManagedEnvironment creates an environment shipping app logs to workspace and returns
// its resource id
func (c *ContainerClient) CreateManagedEnvironment(ctx context.Context, resourceGroup, name, region string, workspace springapps.LogWorkspace) (string, error) {
	poller, err := c.environments.BeginCreateOrUpdate(ctx, resourceGroup, name, armappcontainers.ManagedEnvironment{
		Location: to.Ptr(region),
		Properties: &armappcontainers.ManagedEnvironmentProperties{
			AppLogsConfiguration: &armappcontainers.AppLogsConfiguration{
				Destination: to.Ptr(logDestination),
				LogAnalyticsConfiguration: &armappcontainers.LogAnalyticsConfiguration{
					CustomerID: to.Ptr(workspace.CustomerID),
					SharedKey:  to.Ptr(workspace.SharedKey),
				},
			},
		},
	}, nil)
	if err != nil {
		return "", c.error(ctx, "create managed environment", err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", c.error(ctx, "create managed environment", err)
	}
	return deref(resp.ID), nil
}
