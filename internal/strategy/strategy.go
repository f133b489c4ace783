package strategy

import (
	"context"
	"fmt"

	"github.com/nais/springapps-orchestrator/internal/binder"
	"github.com/nais/springapps-orchestrator/internal/logstream"
	"github.com/nais/springapps-orchestrator/internal/provision"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

const defaultAgentPoolSize = "S1"

// ProvisionRequest names the resources a strategy provisions
type ProvisionRequest struct {
	Target    springapps.Target
	Region    string
	Resources springapps.Resources
}

// Strategy is the tier specific part of provisioning, deploying and reading build logs
type Strategy interface {
	Tier() springapps.Tier
	Provision(ctx context.Context, req ProvisionRequest) error
	BindAndDeploy(ctx context.Context, target springapps.Target, ref springapps.SourceRef, resources springapps.Resources) error
	FetchBuildLogs(ctx context.Context, target springapps.Target, stage string) (string, error)
}

// Factory returns the strategy of a tier
type Factory struct {
	client        springapps.Client
	container     springapps.ContainerClient
	engine        *provision.Engine
	binder        *binder.Binder
	fetcher       *logstream.Fetcher
	log           logrus.FieldLogger
	agentPoolSize string
	workspaceName func(service string) string
}

// Option is a function that can be used to set custom options for the factory
type Option func(*Factory)

// WithAgentPoolSize sets the size of the build agent pool created for Enterprise tier services
func WithAgentPoolSize(size string) Option {
	return func(f *Factory) {
		f.agentPoolSize = size
	}
}

// WithWorkspaceName sets how log workspaces of Consumption tier services are named
func WithWorkspaceName(name func(service string) string) Option {
	return func(f *Factory) {
		f.workspaceName = name
	}
}

func NewFactory(handle springapps.CloudHandle, engine *provision.Engine, binder *binder.Binder, fetcher *logstream.Fetcher, log logrus.FieldLogger, opts ...Option) *Factory {
	f := &Factory{
		client:        handle.Management(),
		container:     handle.Container(),
		engine:        engine,
		binder:        binder,
		fetcher:       fetcher,
		log:           log,
		agentPoolSize: defaultAgentPoolSize,
		workspaceName: randomWorkspaceName,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// For returns the strategy of tier. The set of tiers is closed, unknown tiers are rejected.
func (f *Factory) For(tier springapps.Tier) (Strategy, error) {
	b := base{
		tier:   tier,
		engine: f.engine,
		binder: f.binder,
		log:    f.log.WithField("tier", tier),
	}

	switch tier {
	case springapps.TierStandard:
		return &Standard{base: b, fetcher: f.fetcher}, nil
	case springapps.TierEnterprise:
		return &Enterprise{base: b, client: f.client, fetcher: f.fetcher, agentPoolSize: f.agentPoolSize}, nil
	case springapps.TierConsumption:
		return &Consumption{base: b, container: f.container, workspaceName: f.workspaceName}, nil
	default:
		return nil, springapps.Errorf("select strategy", springapps.ErrInvariantViolation, "unknown tier %q", tier)
	}
}

// base holds the steps all tiers share
type base struct {
	tier   springapps.Tier
	engine *provision.Engine
	binder *binder.Binder
	log    logrus.FieldLogger
}

func (b *base) Tier() springapps.Tier {
	return b.tier
}

// provision ensures the resource group, the service, the app and its default deployment, in
// that order
func (b *base) provision(ctx context.Context, req ProvisionRequest, opts ...provision.ServiceOption) (created bool, err error) {
	t := req.Target
	if err := b.engine.EnsureResourceGroup(ctx, t.ResourceGroup, req.Region); err != nil {
		return false, err
	}

	created, err = b.engine.EnsureManagedService(ctx, t.ResourceGroup, t.Service, req.Region, b.tier, opts...)
	if err != nil {
		return false, err
	}

	if err := b.engine.EnsureApp(ctx, t); err != nil {
		return created, err
	}

	if err := b.engine.EnsureDeployment(ctx, t, b.tier, req.Resources); err != nil {
		return created, err
	}

	return created, nil
}

func (b *base) BindAndDeploy(ctx context.Context, target springapps.Target, ref springapps.SourceRef, resources springapps.Resources) error {
	if err := springapps.ValidateSource(b.tier, ref); err != nil {
		return err
	}
	if err := b.binder.Bind(ctx, target, ref, resources); err != nil {
		return fmt.Errorf("deploying %s: %w", target, err)
	}
	return nil
}
