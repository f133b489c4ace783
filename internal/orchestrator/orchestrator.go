package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nais/springapps-orchestrator/internal/binder"
	"github.com/nais/springapps-orchestrator/internal/build"
	"github.com/nais/springapps-orchestrator/internal/logstream"
	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/provision"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/nais/springapps-orchestrator/internal/status"
	"github.com/nais/springapps-orchestrator/internal/strategy"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

const (
	defaultJavaVersion     = "17"
	defaultFetchRetryDelay = time.Second
	runtimePrefix          = "Java_"
)

// Uploader copies a local archive to a pre-signed upload url
type Uploader interface {
	Upload(ctx context.Context, uploadURL, archive string) error
}

// Orchestrator composes provisioning, builds, binding, status polling and log fetching into the
// operations callers use. Every call blocks until it is done, nothing runs in the background.
type Orchestrator struct {
	client     springapps.Client
	strategies *strategy.Factory
	pipeline   *build.Pipeline
	poller     *status.Poller
	fetcher    *logstream.Fetcher
	uploader   Uploader
	log        logrus.FieldLogger
	metrics    *metrics.Metrics
}

type settings struct {
	log               logrus.FieldLogger
	metrics           *metrics.Metrics
	clock             clock.Clock
	agentPoolSize     string
	agentPoolInterval time.Duration
	buildInterval     time.Duration
	buildLogInterval  time.Duration
	deployInterval    time.Duration
	tailLines         int
	fetchAttempts     int
	fetchRetryDelay   time.Duration
	uploader          Uploader
	strategyOpts      []strategy.Option
}

// Option is a function that can be used to set custom options for the orchestrator
type Option func(*settings)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		s.log = log
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithClock sets the clock every polling loop waits on
func WithClock(c clock.Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

func WithAgentPoolSize(size string) Option {
	return func(s *settings) {
		s.agentPoolSize = size
	}
}

// WithPollIntervals overrides the intervals of the agent pool, build, build log and deployment
// wait loops. Zero values keep the defaults.
func WithPollIntervals(agentPool, build, buildLog, deployment time.Duration) Option {
	return func(s *settings) {
		s.agentPoolInterval = agentPool
		s.buildInterval = build
		s.buildLogInterval = buildLog
		s.deployInterval = deployment
	}
}

func WithTailLines(n int) Option {
	return func(s *settings) {
		s.tailLines = n
	}
}

// WithFetchAttempts sets how many times a log request is tried and the delay before the first retry.
// A zero delay keeps the default of one second.
func WithFetchAttempts(n int, delay time.Duration) Option {
	return func(s *settings) {
		s.fetchAttempts = n
		s.fetchRetryDelay = delay
	}
}

func WithUploader(u Uploader) Option {
	return func(s *settings) {
		s.uploader = u
	}
}

// WithStrategyOptions passes options on to the strategy factory
func WithStrategyOptions(opts ...strategy.Option) Option {
	return func(s *settings) {
		s.strategyOpts = append(s.strategyOpts, opts...)
	}
}

func New(handle springapps.CloudHandle, opts ...Option) *Orchestrator {
	s := &settings{
		log:   logrus.StandardLogger(),
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}

	client := handle.Management()

	buildOpts := []build.Option{build.WithClock(s.clock)}
	if s.agentPoolInterval > 0 {
		buildOpts = append(buildOpts, build.WithAgentPoolInterval(s.agentPoolInterval))
	}
	if s.buildInterval > 0 {
		buildOpts = append(buildOpts, build.WithBuildInterval(s.buildInterval))
	}

	statusOpts := []status.Option{status.WithClock(s.clock)}
	if s.deployInterval > 0 {
		statusOpts = append(statusOpts, status.WithInterval(s.deployInterval))
	}

	fetchOpts := []logstream.Option{logstream.WithClock(s.clock)}
	if s.buildLogInterval > 0 {
		fetchOpts = append(fetchOpts, logstream.WithBuildLogInterval(s.buildLogInterval))
	}
	if s.tailLines > 0 {
		fetchOpts = append(fetchOpts, logstream.WithTailLines(s.tailLines))
	}
	if s.fetchAttempts > 0 {
		delay := s.fetchRetryDelay
		if delay <= 0 {
			delay = defaultFetchRetryDelay
		}
		fetchOpts = append(fetchOpts, logstream.WithFetchAttempts(s.fetchAttempts, delay))
	}

	fetcher := logstream.New(client, s.log.WithField("component", "logstream"), s.metrics, fetchOpts...)

	strategyOpts := s.strategyOpts
	if s.agentPoolSize != "" {
		strategyOpts = append(strategyOpts, strategy.WithAgentPoolSize(s.agentPoolSize))
	}

	return &Orchestrator{
		client: client,
		strategies: strategy.NewFactory(
			handle,
			provision.New(client, s.log.WithField("component", "provision"), s.metrics),
			binder.New(client, s.log.WithField("component", "binder"), s.metrics),
			fetcher,
			s.log.WithField("component", "strategy"),
			strategyOpts...,
		),
		pipeline: build.New(client, s.log.WithField("component", "build"), s.metrics, buildOpts...),
		poller:   status.New(client, s.log.WithField("component", "status"), s.metrics, statusOpts...),
		fetcher:  fetcher,
		uploader: s.uploader,
		log:      s.log.WithField("component", "orchestrator"),
		metrics:  s.metrics,
	}
}

// Provision ensures the resource group, the service, the app and its default deployment exist,
// plus whatever the tier needs on top
func (o *Orchestrator) Provision(ctx context.Context, tier springapps.Tier, region string, target springapps.Target, resources springapps.Resources) error {
	s, err := o.strategies.For(tier)
	if err != nil {
		return err
	}

	defer o.metrics.ObserveStep(ctx, "provision", time.Now())
	o.log.WithFields(logrus.Fields{
		"app":    target.String(),
		"tier":   tier,
		"region": region,
	}).Info("provisioning")

	return s.Provision(ctx, strategy.ProvisionRequest{
		Target:    target,
		Region:    region,
		Resources: resources,
	})
}

// Deploy binds ref to the default deployment of the app. A ref the tier cannot deploy is
// rejected before anything is sent to the platform.
func (o *Orchestrator) Deploy(ctx context.Context, tier springapps.Tier, target springapps.Target, ref springapps.SourceRef, resources springapps.Resources) error {
	if err := springapps.ValidateSource(tier, ref); err != nil {
		return err
	}

	s, err := o.strategies.For(tier)
	if err != nil {
		return err
	}
	return s.BindAndDeploy(ctx, target, ref, resources)
}

// PollStatus returns the current status of the app's deployment
func (o *Orchestrator) PollStatus(ctx context.Context, target springapps.Target) (springapps.Status, springapps.Snapshot, error) {
	return o.poller.Status(ctx, target)
}

// AwaitDeployment waits until the deployment is no longer pending. A failed deployment is
// returned as an error.
func (o *Orchestrator) AwaitDeployment(ctx context.Context, target springapps.Target) (springapps.Snapshot, error) {
	st, snapshot, err := o.poller.Await(ctx, target)
	if err != nil {
		return snapshot, err
	}
	if st == springapps.StatusFailed {
		return snapshot, springapps.Errorf("await deployment", springapps.ErrDeploymentFailed, "%s: deployment is %s, instance %s is %s", target, snapshot.AppState, snapshot.InstanceName, snapshot.InstanceState)
	}
	return snapshot, nil
}

// FetchLogs returns the log tail of the most recently started instance of the app. An app
// without instances has no logs.
func (o *Orchestrator) FetchLogs(ctx context.Context, target springapps.Target) (string, error) {
	st, snapshot, err := o.poller.Status(ctx, target)
	if err != nil {
		return "", err
	}
	if snapshot.InstanceName == "" {
		o.log.WithField("app", target.String()).Info("no instances, no logs")
		return "", nil
	}
	return o.fetcher.FetchAppLogs(ctx, target, snapshot.InstanceName, st)
}

// FetchBuildLogs returns the build log of the app in the way its tier exposes it
func (o *Orchestrator) FetchBuildLogs(ctx context.Context, tier springapps.Tier, target springapps.Target, stage string) (string, error) {
	s, err := o.strategies.For(tier)
	if err != nil {
		return "", err
	}
	return s.FetchBuildLogs(ctx, target, stage)
}

// EnqueueBuild submits a build of uploaded source and returns the id of the triggered result
func (o *Orchestrator) EnqueueBuild(ctx context.Context, target springapps.Target, req build.Request) (string, error) {
	return o.pipeline.EnqueueBuild(ctx, target, req)
}

// AwaitBuild waits for a build result to finish. A failed build is a terminal error.
func (o *Orchestrator) AwaitBuild(ctx context.Context, target springapps.Target, resultID string) (springapps.BuildState, error) {
	state, err := o.pipeline.AwaitBuild(ctx, target, resultID)
	if err != nil {
		return state, err
	}
	if state == springapps.BuildStateFailed {
		return state, springapps.Errorf("await build", springapps.ErrTerminalBuildFailure, "build %s: %s", springapps.ResourceName(resultID), state)
	}
	return state, nil
}

// Upload copies archive to the upload location of the app and returns its relative path
func (o *Orchestrator) Upload(ctx context.Context, target springapps.Target, archive string) (string, error) {
	if o.uploader == nil {
		return "", fmt.Errorf("no uploader configured")
	}

	def, err := o.client.ResourceUploadURL(ctx, target)
	if err != nil {
		return "", fmt.Errorf("getting upload url: %w", err)
	}

	defer o.metrics.ObserveStep(ctx, "upload", time.Now())
	if err := o.uploader.Upload(ctx, def.UploadURL, archive); err != nil {
		return "", err
	}
	return def.RelativePath, nil
}

// Artifact is a local file to deploy
type Artifact struct {
	Path string
	// Jar is true for prebuilt jars, otherwise Path is a source tarball
	Jar         bool
	JavaVersion string
	Module      string
}

// Result is the outcome of DeployArtifact
type Result struct {
	Source   springapps.SourceRef
	Snapshot springapps.Snapshot
}

// DeployArtifact uploads the artifact, builds it when the tier requires a build, binds the
// result and waits for the deployment to finish. Steps run in that order and the first failing
// step stops the run.
func (o *Orchestrator) DeployArtifact(ctx context.Context, tier springapps.Tier, region string, target springapps.Target, artifact Artifact, resources springapps.Resources) (*Result, error) {
	if _, err := o.strategies.For(tier); err != nil {
		return nil, err
	}
	if tier == springapps.TierEnterprise && artifact.Jar {
		return nil, springapps.Errorf("deploy", springapps.ErrInvariantViolation, "jars cannot be deployed to %s tier services", tier)
	}

	log := o.log.WithFields(logrus.Fields{
		"app":  target.String(),
		"tier": tier,
	})

	relativePath, err := o.Upload(ctx, target, artifact.Path)
	if err != nil {
		return nil, err
	}
	log.WithField("relative_path", relativePath).Info("artifact uploaded")

	var ref springapps.SourceRef
	switch {
	case tier == springapps.TierEnterprise:
		resultID, err := o.EnqueueBuild(ctx, target, build.Request{
			RelativePath: relativePath,
			Region:       region,
			JavaVersion:  artifact.JavaVersion,
			Module:       artifact.Module,
		})
		if err != nil {
			return nil, err
		}
		if _, err := o.AwaitBuild(ctx, target, resultID); err != nil {
			return nil, err
		}
		ref = springapps.BuildResult{BuildResultID: resultID}
	case artifact.Jar:
		ref = springapps.JarUploaded{RelativePath: relativePath}
	default:
		ref = springapps.TarballUploaded{
			RelativePath:   relativePath,
			RuntimeVersion: RuntimeVersion(artifact.JavaVersion),
			ModuleSelector: moduleSelector(artifact.Module),
		}
	}

	if err := o.Deploy(ctx, tier, target, ref, resources); err != nil {
		return nil, err
	}

	snapshot, err := o.AwaitDeployment(ctx, target)
	if err != nil {
		return nil, err
	}
	return &Result{Source: ref, Snapshot: snapshot}, nil
}

// RuntimeVersion returns the platform runtime name of a java version, "17" becomes "Java_17"
func RuntimeVersion(javaVersion string) string {
	if javaVersion == "" {
		javaVersion = defaultJavaVersion
	}
	if strings.HasPrefix(javaVersion, runtimePrefix) {
		return javaVersion
	}
	return runtimePrefix + javaVersion
}

func moduleSelector(module string) string {
	if module == "null" {
		return ""
	}
	return module
}
