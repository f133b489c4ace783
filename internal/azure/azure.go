package azure

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appplatform/armappplatform/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

// Handle is a springapps.CloudHandle backed by the Azure resource manager
type Handle struct {
	management *Client
	container  *ContainerClient
}

var _ springapps.CloudHandle = &Handle{}

// New creates the clients of one subscription. options may be nil.
func New(subscriptionID string, credential azcore.TokenCredential, log logrus.FieldLogger, m *metrics.Metrics, options *arm.ClientOptions) (*Handle, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("missing subscription id")
	}

	resources, err := armresources.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("creating resources client: %w", err)
	}

	platform, err := armappplatform.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("creating app platform client: %w", err)
	}

	insights, err := armoperationalinsights.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("creating operational insights client: %w", err)
	}

	containers, err := armappcontainers.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("creating app containers client: %w", err)
	}

	return &Handle{
		management: &Client{
			resourceGroups: resources.NewResourceGroupsClient(),
			services:       platform.NewServicesClient(),
			apps:           platform.NewAppsClient(),
			deployments:    platform.NewDeploymentsClient(),
			buildService:   platform.NewBuildServiceClient(),
			agentPools:     platform.NewBuildServiceAgentPoolClient(),
			log:            log.WithField("client", "azure"),
			metrics:        m,
		},
		container: &ContainerClient{
			workspaces:   insights.NewWorkspacesClient(),
			sharedKeys:   insights.NewSharedKeysClient(),
			environments: containers.NewManagedEnvironmentsClient(),
			log:          log.WithField("client", "azure-containers"),
			metrics:      m,
		},
	}, nil
}

func (h *Handle) Management() springapps.Client {
	return h.management
}

func (h *Handle) Container() springapps.ContainerClient {
	return h.container
}

// errorf classifies err unless it already is, counts it and logs it at debug. The caller decides
// whether the error is worth more than that.
func errorf(ctx context.Context, log logrus.FieldLogger, m *metrics.Metrics, op string, err error) error {
	var classified *springapps.Error
	if !errors.As(err, &classified) {
		err = classify(op, err)
	}
	m.Error(ctx, "azure")
	log.WithError(err).Debug("azure request failed")
	return err
}
