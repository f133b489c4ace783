package build

import (
	"context"
	"fmt"
	"time"

	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/poll"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const (
	defaultAgentPoolInterval = 10 * time.Second
	defaultBuildInterval     = 30 * time.Second
	defaultJavaVersion       = "17"

	envJVMVersion  = "BP_JVM_VERSION"
	envMavenModule = "BP_MAVEN_BUILT_MODULE"
)

// Request describes a build of uploaded source
type Request struct {
	RelativePath string
	Region       string
	JavaVersion  string
	// Module selects the maven module to build. Empty and "null" build the root project.
	Module string
}

// Pipeline runs builds on the build service of Enterprise tier services
type Pipeline struct {
	client            springapps.Client
	log               logrus.FieldLogger
	metrics           *metrics.Metrics
	clock             clock.Clock
	agentPoolInterval time.Duration
	buildInterval     time.Duration
}

// Option is a function that can be used to set custom options for the pipeline
type Option func(*Pipeline)

// WithClock sets the clock used when waiting between polls
func WithClock(c clock.Clock) Option {
	return func(p *Pipeline) {
		p.clock = c
	}
}

// WithAgentPoolInterval sets the interval between agent pool state checks
func WithAgentPoolInterval(d time.Duration) Option {
	return func(p *Pipeline) {
		p.agentPoolInterval = d
	}
}

// WithBuildInterval sets the interval between build result state checks
func WithBuildInterval(d time.Duration) Option {
	return func(p *Pipeline) {
		p.buildInterval = d
	}
}

func New(client springapps.Client, log logrus.FieldLogger, m *metrics.Metrics, opts ...Option) *Pipeline {
	p := &Pipeline{
		client:            client,
		log:               log,
		metrics:           m,
		clock:             clock.RealClock{},
		agentPoolInterval: defaultAgentPoolInterval,
		buildInterval:     defaultBuildInterval,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// EnqueueBuild waits for the agent pool of the service to be ready and submits a build of the
// uploaded source. The returned id of the triggered build result is the handle of the build.
func (p *Pipeline) EnqueueBuild(ctx context.Context, target springapps.Target, req Request) (string, error) {
	log := p.log.WithField("app", target.String())
	defer p.metrics.ObserveStep(ctx, "enqueue_build", time.Now())

	if err := p.awaitAgentPool(ctx, target); err != nil {
		return "", err
	}

	service, err := p.client.GetService(ctx, target.ResourceGroup, target.Service)
	if err != nil {
		return "", p.error(ctx, err, "getting service")
	}
	if req.Region != "" {
		service.Region = req.Region
	}

	service, err = p.client.CreateOrUpdateService(ctx, target.ResourceGroup, *service)
	if err != nil {
		return "", p.error(ctx, err, "refreshing service")
	}

	job := Job(service.ID, req)
	resultID, err := p.client.SubmitBuild(ctx, target, job)
	if err != nil {
		return "", p.error(ctx, err, "submitting build")
	}

	log.WithField("build_result", springapps.ResourceName(resultID)).Info("build enqueued")
	return resultID, nil
}

// Job creates the build job of req on the default builder and agent pool of the service
func Job(serviceID string, req Request) springapps.BuildJob {
	javaVersion := req.JavaVersion
	if javaVersion == "" {
		javaVersion = defaultJavaVersion
	}

	env := map[string]string{envJVMVersion: javaVersion}
	if req.Module != "" && req.Module != "null" {
		env[envMavenModule] = req.Module
	}

	return springapps.BuildJob{
		BuilderPath:   fmt.Sprintf("%s/buildservices/%s/builders/%s", serviceID, springapps.DefaultDeploymentName, springapps.DefaultDeploymentName),
		AgentPoolPath: fmt.Sprintf("%s/buildservices/%s/agentPools/%s", serviceID, springapps.DefaultDeploymentName, springapps.DefaultDeploymentName),
		RelativePath:  req.RelativePath,
		Env:           env,
	}
}

func (p *Pipeline) awaitAgentPool(ctx context.Context, target springapps.Target) error {
	log := p.log.WithField("service", target.Service)

	for {
		state, err := p.client.AgentPoolState(ctx, target.ResourceGroup, target.Service)
		switch {
		case springapps.IsTransient(err):
			log.WithError(err).Warn("reading agent pool state failed, retrying")
		case err != nil:
			return p.error(ctx, err, "getting agent pool state")
		case state == springapps.ProvisioningStateSucceeded:
			return nil
		case state == springapps.ProvisioningStateFailed:
			return p.error(ctx, springapps.Errorf("await agent pool", springapps.ErrTerminalBuildFailure, "agent pool provisioning failed"), "waiting for agent pool")
		default:
			log.WithField("state", state).Infof("agent pool is not ready, waiting %s", p.agentPoolInterval)
		}

		p.metrics.Poll(ctx, "agent_pool")
		if err := poll.Wait(ctx, p.clock, p.agentPoolInterval); err != nil {
			return fmt.Errorf("waiting for agent pool: %w", err)
		}
	}
}

// BuildState returns the current state of a build result
func (p *Pipeline) BuildState(ctx context.Context, target springapps.Target, resultID string) (springapps.BuildState, error) {
	state, err := p.client.BuildResultState(ctx, target, resultID)
	if err != nil {
		return "", p.error(ctx, err, "getting build state")
	}
	return state, nil
}

// AwaitBuild polls the build result until it reaches a terminal state and returns that state.
// A failed build is not an error here, callers decide what Failed means to them.
func (p *Pipeline) AwaitBuild(ctx context.Context, target springapps.Target, resultID string) (springapps.BuildState, error) {
	log := p.log.WithFields(logrus.Fields{
		"app":          target.String(),
		"build_result": springapps.ResourceName(resultID),
	})
	defer p.metrics.ObserveStep(ctx, "await_build", time.Now())

	for {
		state, err := p.client.BuildResultState(ctx, target, resultID)
		switch {
		case springapps.IsTransient(err):
			log.WithError(err).Warn("reading build state failed, retrying")
		case err != nil:
			return "", p.error(ctx, err, "getting build state")
		case state.Terminal():
			log.WithField("state", state).Info("build completed")
			return state, nil
		default:
			log.WithField("state", state).Debug("build is not finished")
		}

		p.metrics.Poll(ctx, "build")
		if err := poll.Wait(ctx, p.clock, p.buildInterval); err != nil {
			return "", fmt.Errorf("waiting for build: %w", err)
		}
	}
}

func (p *Pipeline) error(ctx context.Context, err error, msg string) error {
	p.metrics.Error(ctx, "build")
	p.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
