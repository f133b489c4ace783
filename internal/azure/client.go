package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appplatform/armappplatform/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

// name of the build service, builder and agent pool of Enterprise tier services
const defaultName = springapps.DefaultDeploymentName

// Client implements springapps.Client with the Azure SDK
type Client struct {
	resourceGroups *armresources.ResourceGroupsClient
	services       *armappplatform.ServicesClient
	apps           *armappplatform.AppsClient
	deployments    *armappplatform.DeploymentsClient
	buildService   *armappplatform.BuildServiceClient
	agentPools     *armappplatform.BuildServiceAgentPoolClient
	log            logrus.FieldLogger
	metrics        *metrics.Metrics
}

var _ springapps.Client = &Client{}

func (c *Client) error(ctx context.Context, op string, err error) error {
	return errorf(ctx, c.log, c.metrics, op, err)
}

func (c *Client) ResourceGroupExists(ctx context.Context, name string) (bool, error) {
	resp, err := c.resourceGroups.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, c.error(ctx, "check resource group", err)
	}
	return resp.Success, nil
}

func (c *Client) CreateResourceGroup(ctx context.Context, name, region string) error {
	_, err := c.resourceGroups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(region),
	}, nil)
	if err != nil {
		return c.error(ctx, "create resource group", err)
	}
	return nil
}

func (c *Client) ServiceExists(ctx context.Context, resourceGroup, name string) (bool, error) {
	_, err := c.services.Get(ctx, resourceGroup, name, nil)
	ok, err := exists("get service", err)
	if err != nil {
		return false, c.error(ctx, "get service", err)
	}
	return ok, nil
}

func (c *Client) GetService(ctx context.Context, resourceGroup, name string) (*springapps.Service, error) {
	resp, err := c.services.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, c.error(ctx, "get service", err)
	}
	return fromService(resp.ServiceResource), nil
}

func (c *Client) CreateOrUpdateService(ctx context.Context, resourceGroup string, service springapps.Service) (*springapps.Service, error) {
	poller, err := c.services.BeginCreateOrUpdate(ctx, resourceGroup, service.Name, toService(service), nil)
	if err != nil {
		return nil, c.error(ctx, "create service", err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, c.error(ctx, "create service", err)
	}
	return fromService(resp.ServiceResource), nil
}

func (c *Client) TestKeys(ctx context.Context, resourceGroup, service string) (*springapps.TestKeys, error) {
	resp, err := c.services.ListTestKeys(ctx, resourceGroup, service, nil)
	if err != nil {
		return nil, c.error(ctx, "list test keys", err)
	}
	return &springapps.TestKeys{
		PrimaryKey:          deref(resp.PrimaryKey),
		PrimaryTestEndpoint: deref(resp.PrimaryTestEndpoint),
	}, nil
}

func (c *Client) AppExists(ctx context.Context, target springapps.Target) (bool, error) {
	_, err := c.apps.Get(ctx, target.ResourceGroup, target.Service, target.App, nil)
	ok, err := exists("get app", err)
	if err != nil {
		return false, c.error(ctx, "get app", err)
	}
	return ok, nil
}

func (c *Client) CreateApp(ctx context.Context, target springapps.Target) error {
	poller, err := c.apps.BeginCreateOrUpdate(ctx, target.ResourceGroup, target.Service, target.App, armappplatform.AppResource{
		Properties: &armappplatform.AppResourceProperties{
			HTTPSOnly: to.Ptr(true),
			Public:    to.Ptr(true),
		},
	}, nil)
	if err != nil {
		return c.error(ctx, "create app", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return c.error(ctx, "create app", err)
	}
	return nil
}

func (c *Client) ResourceUploadURL(ctx context.Context, target springapps.Target) (*springapps.UploadDefinition, error) {
	resp, err := c.apps.GetResourceUploadURL(ctx, target.ResourceGroup, target.Service, target.App, nil)
	if err != nil {
		return nil, c.error(ctx, "get upload url", err)
	}
	return &springapps.UploadDefinition{
		RelativePath: deref(resp.RelativePath),
		UploadURL:    deref(resp.UploadURL),
	}, nil
}

func (c *Client) DeploymentExists(ctx context.Context, target springapps.Target) (bool, error) {
	_, err := c.deployments.Get(ctx, target.ResourceGroup, target.Service, target.App, defaultName, nil)
	ok, err := exists("get deployment", err)
	if err != nil {
		return false, c.error(ctx, "get deployment", err)
	}
	return ok, nil
}

func (c *Client) GetDeployment(ctx context.Context, target springapps.Target) (*springapps.Deployment, error) {
	resp, err := c.deployments.Get(ctx, target.ResourceGroup, target.Service, target.App, defaultName, nil)
	if err != nil {
		return nil, c.error(ctx, "get deployment", err)
	}
	return fromDeployment(resp.DeploymentResource), nil
}

func (c *Client) CreateDeployment(ctx context.Context, target springapps.Target, deployment springapps.Deployment) error {
	poller, err := c.deployments.BeginCreateOrUpdate(ctx, target.ResourceGroup, target.Service, target.App, defaultName, toDeployment(deployment), nil)
	if err != nil {
		return c.error(ctx, "create deployment", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return c.error(ctx, "create deployment", err)
	}
	return nil
}

func (c *Client) UpdateDeployment(ctx context.Context, target springapps.Target, deployment springapps.Deployment) error {
	poller, err := c.deployments.BeginUpdate(ctx, target.ResourceGroup, target.Service, target.App, defaultName, toDeployment(deployment), nil)
	if err != nil {
		return c.error(ctx, "update deployment", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return c.error(ctx, "update deployment", err)
	}
	return nil
}

func (c *Client) LogFileURL(ctx context.Context, target springapps.Target) (string, error) {
	resp, err := c.deployments.GetLogFileURL(ctx, target.ResourceGroup, target.Service, target.App, defaultName, nil)
	if err != nil {
		return "", c.error(ctx, "get log file url", err)
	}
	return deref(resp.URL), nil
}

func (c *Client) CreateBuildService(ctx context.Context, resourceGroup, service string) error {
	poller, err := c.buildService.BeginCreateOrUpdate(ctx, resourceGroup, service, defaultName, armappplatform.BuildService{
		Properties: &armappplatform.BuildServiceProperties{
			ResourceRequests: &armappplatform.BuildServicePropertiesResourceRequests{},
		},
	}, nil)
	if err != nil {
		return c.error(ctx, "create build service", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return c.error(ctx, "create build service", err)
	}
	return nil
}

func (c *Client) CreateAgentPool(ctx context.Context, resourceGroup, service, size string) error {
	poller, err := c.agentPools.BeginUpdatePut(ctx, resourceGroup, service, defaultName, defaultName, armappplatform.BuildServiceAgentPoolResource{
		Properties: &armappplatform.BuildServiceAgentPoolProperties{
			PoolSize: &armappplatform.BuildServiceAgentPoolSizeProperties{
				Name: to.Ptr(size),
			},
		},
	}, nil)
	if err != nil {
		return c.error(ctx, "create agent pool", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return c.error(ctx, "create agent pool", err)
	}
	return nil
}

func (c *Client) AgentPoolState(ctx context.Context, resourceGroup, service string) (springapps.ProvisioningState, error) {
	resp, err := c.agentPools.Get(ctx, resourceGroup, service, defaultName, defaultName, nil)
	if err != nil {
		return "", c.error(ctx, "get agent pool", err)
	}
	if resp.Properties == nil {
		return "", nil
	}
	return springapps.ProvisioningState(deref(resp.Properties.ProvisioningState)), nil
}

func (c *Client) SubmitBuild(ctx context.Context, target springapps.Target, job springapps.BuildJob) (string, error) {
	resp, err := c.buildService.CreateOrUpdateBuild(ctx, target.ResourceGroup, target.Service, defaultName, target.App, toBuild(job), nil)
	if err != nil {
		return "", c.error(ctx, "submit build", err)
	}
	return triggeredBuildResult(resp.Build)
}

func (c *Client) TriggeredBuildResult(ctx context.Context, target springapps.Target) (string, error) {
	resp, err := c.buildService.GetBuild(ctx, target.ResourceGroup, target.Service, defaultName, target.App, nil)
	if err != nil {
		return "", c.error(ctx, "get build", err)
	}
	return triggeredBuildResult(resp.Build)
}

func (c *Client) BuildResultState(ctx context.Context, target springapps.Target, buildResultID string) (springapps.BuildState, error) {
	resp, err := c.buildService.GetBuildResult(ctx, target.ResourceGroup, target.Service, defaultName, target.App, springapps.ResourceName(buildResultID), nil)
	if err != nil {
		return "", c.error(ctx, "get build result", err)
	}
	if resp.Properties == nil || resp.Properties.ProvisioningState == nil {
		return springapps.BuildStateQueuing, nil
	}
	return springapps.BuildState(*resp.Properties.ProvisioningState), nil
}
