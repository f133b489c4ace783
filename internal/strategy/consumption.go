package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nais/springapps-orchestrator/internal/provision"
	"github.com/nais/springapps-orchestrator/internal/springapps"
)

const managedEnvironmentPrefix = "cae-"

// Consumption runs services in a managed container environment that ships its logs to a
// log analytics workspace
type Consumption struct {
	base
	container     springapps.ContainerClient
	workspaceName func(service string) string
}

var _ Strategy = &Consumption{}

// Provision ensures the common resources. The workspace and environment are created right
// before the service, and only when the service does not exist yet.
func (c *Consumption) Provision(ctx context.Context, req ProvisionRequest) error {
	_, err := c.provision(ctx, req, provision.WithBeforeCreate(func(ctx context.Context, service *springapps.Service) error {
		id, err := c.environment(ctx, req.Target.ResourceGroup, service.Name, req.Region)
		if err != nil {
			return err
		}
		service.ManagedEnvironmentID = id
		return nil
	}))
	return err
}

func (c *Consumption) environment(ctx context.Context, resourceGroup, service, region string) (string, error) {
	log := c.log.WithField("service", service)

	workspace, err := c.container.CreateLogWorkspace(ctx, resourceGroup, c.workspaceName(service), region)
	if err != nil {
		return "", fmt.Errorf("creating log workspace: %w", err)
	}
	log.WithField("workspace", workspace.Name).Info("log workspace created")

	id, err := c.container.CreateManagedEnvironment(ctx, resourceGroup, managedEnvironmentPrefix+service, region, *workspace)
	if err != nil {
		return "", fmt.Errorf("creating managed environment: %w", err)
	}
	log.WithField("environment", springapps.ResourceName(id)).Info("managed environment created")

	return id, nil
}

// FetchBuildLogs returns nothing, consumption tier builds do not expose logs
func (c *Consumption) FetchBuildLogs(context.Context, springapps.Target, string) (string, error) {
	return "", nil
}

func randomWorkspaceName(service string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("law-%s-%s", service, suffix)
}
