package binder

import (
	"context"
	"fmt"
	"time"

	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

// Binder points the default deployment of an app at a new source
type Binder struct {
	client  springapps.Client
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func New(client springapps.Client, log logrus.FieldLogger, m *metrics.Metrics) *Binder {
	return &Binder{
		client:  client,
		log:     log,
		metrics: m,
	}
}

// Bind reads the default deployment, replaces its source and scale settings and writes it back.
// Concurrent binds to the same app are not coordinated, the last write wins.
func (b *Binder) Bind(ctx context.Context, target springapps.Target, ref springapps.SourceRef, resources springapps.Resources) error {
	if ref == nil {
		return springapps.Errorf("bind", springapps.ErrInvariantViolation, "missing source reference")
	}

	log := b.log.WithFields(logrus.Fields{
		"app":    target.String(),
		"source": ref.Kind(),
	})
	defer b.metrics.ObserveStep(ctx, "bind", time.Now())

	deployment, err := b.client.GetDeployment(ctx, target)
	if err != nil {
		return b.error(ctx, err, "getting deployment")
	}

	deployment.Source = ref
	if resources.InstanceCount > 0 {
		deployment.SKU.Capacity = resources.InstanceCount
	}
	if resources.CPU != "" {
		deployment.Resources.CPU = resources.CPU
	}
	if resources.Memory != "" {
		deployment.Resources.Memory = resources.Memory
	}
	if resources.Env != nil {
		deployment.Env = resources.Env
	}

	log.WithField("instances", deployment.SKU.Capacity).Info("updating deployment")
	if err := b.client.UpdateDeployment(ctx, target, *deployment); err != nil {
		return b.error(ctx, err, "updating deployment")
	}
	return nil
}

func (b *Binder) error(ctx context.Context, err error, msg string) error {
	b.metrics.Error(ctx, "binder")
	b.log.WithError(err).Error(msg)
	return &springapps.Error{
		Op:   "bind",
		Kind: springapps.ErrDeploymentFailed,
		Err:  fmt.Errorf("%s: %w", msg, err),
	}
}
