package status

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

const defaultInterval = 10 * time.Second

type Poller struct {
	client   springapps.Client
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
	clock    clock.Clock
	interval time.Duration
}

// Option is a function that can be used to set custom options for the poller
type Option func(*Poller)

func WithClock(c clock.Clock) Option {
	return func(p *Poller) {
		p.clock = c
	}
}

// WithInterval sets the interval between status checks in Await
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

func New(client springapps.Client, log logrus.FieldLogger, m *metrics.Metrics, opts ...Option) *Poller {
	p := &Poller{
		client:   client,
		log:      log,
		metrics:  m,
		clock:    clock.RealClock{},
		interval: defaultInterval,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Snapshot reads the state of the active deployment of the app and of its most recently started
// instance. The instance fields are empty when the deployment has no instances.
func (p *Poller) Snapshot(ctx context.Context, target springapps.Target) (springapps.Snapshot, error) {
	deployment, err := p.client.GetDeployment(ctx, target)
	if err != nil {
		return springapps.Snapshot{}, p.error(ctx, err, "getting deployment")
	}

	snapshot := springapps.Snapshot{AppState: deployment.ProvisioningState}
	if instance := latest(deployment.Instances); instance != nil {
		snapshot.InstanceName = instance.Name
		snapshot.InstanceState = instance.Status
	}
	return snapshot, nil
}

func latest(instances []springapps.Instance) *springapps.Instance {
	var ret *springapps.Instance
	for i := range instances {
		if ret == nil || instances[i].StartTime.After(ret.StartTime) {
			ret = &instances[i]
		}
	}
	return ret
}

// Classify reduces a snapshot to a status. A verdict is only given once the latest instance is
// running, so a failed deployment with an instance that never started is still Pending.
func Classify(s springapps.Snapshot) springapps.Status {
	if s.InstanceState != springapps.InstanceStatusRunning {
		return springapps.StatusPending
	}

	switch s.AppState {
	case springapps.ProvisioningStateSucceeded:
		return springapps.StatusSucceeded
	case springapps.ProvisioningStateFailed:
		return springapps.StatusFailed
	default:
		return springapps.StatusPending
	}
}

// Status returns the classified status of the app
func (p *Poller) Status(ctx context.Context, target springapps.Target) (springapps.Status, springapps.Snapshot, error) {
	snapshot, err := p.Snapshot(ctx, target)
	if err != nil {
		return "", snapshot, err
	}
	return Classify(snapshot), snapshot, nil
}

// Await polls the status of the app until it is no longer Pending. Transient errors are logged
// and retried on the next tick.
func (p *Poller) Await(ctx context.Context, target springapps.Target) (springapps.Status, springapps.Snapshot, error) {
	log := p.log.WithField("app", target.String())
	defer p.metrics.ObserveStep(ctx, "await_deployment", time.Now())

	for {
		status, snapshot, err := p.Status(ctx, target)
		switch {
		case springapps.IsTransient(err):
			log.WithError(err).Warn("reading deployment status failed, retrying")
		case err != nil:
			return "", snapshot, err
		case status != springapps.StatusPending:
			log.WithField("status", status).Info("deployment finished")
			return status, snapshot, nil
		default:
			log.WithFields(logrus.Fields{
				"app_state":      snapshot.AppState,
				"instance_state": snapshot.InstanceState,
			}).Debug("deployment is pending")
		}

		p.metrics.Poll(ctx, "deployment")
		if err := poll.Wait(ctx, p.clock, p.interval); err != nil {
			return springapps.StatusPending, snapshot, fmt.Errorf("waiting for deployment: %w", err)
		}
	}
}

func (p *Poller) error(ctx context.Context, err error, msg string) error {
	p.metrics.Error(ctx, "status")
	p.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
