package strategy

import (
	"context"
	"fmt"

	"github.com/nais/springapps-orchestrator/internal/logstream"
	"github.com/nais/springapps-orchestrator/internal/springapps"
)

// Enterprise deploys build results of the service's build service
type Enterprise struct {
	base
	client        springapps.Client
	fetcher       *logstream.Fetcher
	agentPoolSize string
}

var _ Strategy = &Enterprise{}

// Provision ensures the common resources. A service created by this call also gets its build
// service and agent pool, existing services are expected to have them.
func (e *Enterprise) Provision(ctx context.Context, req ProvisionRequest) error {
	created, err := e.provision(ctx, req)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	t := req.Target
	log := e.log.WithField("service", t.Service)

	log.Info("creating build service")
	if err := e.client.CreateBuildService(ctx, t.ResourceGroup, t.Service); err != nil && !springapps.IsAlreadyExists(err) {
		return fmt.Errorf("creating build service: %w", err)
	}

	log.WithField("size", e.agentPoolSize).Info("creating agent pool")
	if err := e.client.CreateAgentPool(ctx, t.ResourceGroup, t.Service, e.agentPoolSize); err != nil && !springapps.IsAlreadyExists(err) {
		return fmt.Errorf("creating agent pool: %w", err)
	}

	return nil
}

func (e *Enterprise) FetchBuildLogs(ctx context.Context, target springapps.Target, stage string) (string, error) {
	return e.fetcher.FetchBuildLogs(ctx, target, stage)
}
