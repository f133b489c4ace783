package strategy

import (
	"context"

	"github.com/nais/springapps-orchestrator/internal/logstream"
	"github.com/nais/springapps-orchestrator/internal/springapps"
)

// Standard deploys uploaded jars and source tarballs. The platform builds tarballs itself and
// exposes the build output as the log file of the deployment.
type Standard struct {
	base
	fetcher *logstream.Fetcher
}

var _ Strategy = &Standard{}

func (s *Standard) Provision(ctx context.Context, req ProvisionRequest) error {
	_, err := s.provision(ctx, req)
	return err
}

// FetchBuildLogs returns the deployment log file. Standard tier builds have no stages.
func (s *Standard) FetchBuildLogs(ctx context.Context, target springapps.Target, _ string) (string, error) {
	return s.fetcher.FetchDeploymentLog(ctx, target)
}
