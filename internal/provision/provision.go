package provision

import (
	"context"
	"fmt"

	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

// Engine makes sure resource groups, services, apps and deployments exist. Every Ensure call is
// idempotent: existing resources are left as they are, and a create that loses a race against
// another creator counts as success.
type Engine struct {
	client  springapps.Client
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

// BeforeCreateFunc may amend a service before it is created
type BeforeCreateFunc func(ctx context.Context, service *springapps.Service) error

type serviceOptions struct {
	beforeCreate []BeforeCreateFunc
}

// ServiceOption is a function that can be used to customize the creation of a service
type ServiceOption func(*serviceOptions)

// WithBeforeCreate runs hook before the service is created. Hooks are not run when the service
// already exists.
func WithBeforeCreate(hook BeforeCreateFunc) ServiceOption {
	return func(o *serviceOptions) {
		o.beforeCreate = append(o.beforeCreate, hook)
	}
}

func New(client springapps.Client, log logrus.FieldLogger, m *metrics.Metrics) *Engine {
	return &Engine{
		client:  client,
		log:     log,
		metrics: m,
	}
}

func (e *Engine) EnsureResourceGroup(ctx context.Context, name, region string) error {
	log := e.log.WithField("resource_group", name)

	exists, err := e.client.ResourceGroupExists(ctx, name)
	if err != nil {
		return e.error(ctx, err, "checking resource group")
	}
	if exists {
		log.Debug("resource group exists")
		return nil
	}

	log.WithField("region", region).Info("creating resource group")
	if err := e.client.CreateResourceGroup(ctx, name, region); err != nil {
		if springapps.IsAlreadyExists(err) {
			log.Info("resource group already exists")
			return nil
		}
		return e.error(ctx, err, "creating resource group")
	}
	return nil
}

// EnsureManagedService creates the service in the given tier and region unless a service with
// the same name exists. An existing service is adopted as is, even if its tier or region differ.
// created is true only if this call created the service.
func (e *Engine) EnsureManagedService(ctx context.Context, resourceGroup, name, region string, tier springapps.Tier, opts ...ServiceOption) (created bool, err error) {
	log := e.log.WithFields(logrus.Fields{
		"resource_group": resourceGroup,
		"service":        name,
		"tier":           tier,
	})

	o := &serviceOptions{}
	for _, opt := range opts {
		opt(o)
	}

	exists, err := e.client.ServiceExists(ctx, resourceGroup, name)
	if err != nil {
		return false, e.error(ctx, err, "checking service")
	}
	if exists {
		existing, err := e.client.GetService(ctx, resourceGroup, name)
		if err != nil {
			return false, e.error(ctx, err, "getting service")
		}
		e.warnOnMismatch(log, existing, region, tier)
		log.Debug("service exists")
		return false, nil
	}

	service := springapps.Service{
		Name:   name,
		Region: region,
		SKU:    tier.SKU(),
	}
	for _, hook := range o.beforeCreate {
		if err := hook(ctx, &service); err != nil {
			return false, e.error(ctx, err, "preparing service")
		}
	}

	log.WithField("region", region).Info("creating service")
	if _, err := e.client.CreateOrUpdateService(ctx, resourceGroup, service); err != nil {
		if springapps.IsAlreadyExists(err) {
			log.Info("service already exists")
			return false, nil
		}
		return false, e.error(ctx, err, "creating service")
	}
	return true, nil
}

func (e *Engine) warnOnMismatch(log logrus.FieldLogger, existing *springapps.Service, region string, tier springapps.Tier) {
	if existing.Region != "" && existing.Region != region {
		log.WithFields(logrus.Fields{
			"existing_region":  existing.Region,
			"requested_region": region,
		}).Warn("service exists in another region, keeping it")
	}

	existingTier, err := existing.Tier()
	if err != nil {
		log.WithError(err).Warn("unable to determine tier of existing service")
		return
	}
	if existingTier != tier {
		log.WithField("existing_tier", existingTier).Warn("service exists in another tier, keeping it")
	}
}

// EnsureApp creates the app unless it exists. New apps are public and https only.
func (e *Engine) EnsureApp(ctx context.Context, target springapps.Target) error {
	log := e.log.WithField("app", target.String())

	exists, err := e.client.AppExists(ctx, target)
	if err != nil {
		return e.error(ctx, err, "checking app")
	}
	if exists {
		log.Debug("app exists")
		return nil
	}

	log.Info("creating app")
	if err := e.client.CreateApp(ctx, target); err != nil {
		if springapps.IsAlreadyExists(err) {
			log.Info("app already exists")
			return nil
		}
		return e.error(ctx, err, "creating app")
	}
	return nil
}

// EnsureDeployment creates the default deployment of the app unless it exists. The new
// deployment runs a placeholder source matching the tier until something is bound to it.
func (e *Engine) EnsureDeployment(ctx context.Context, target springapps.Target, tier springapps.Tier, resources springapps.Resources) error {
	log := e.log.WithField("app", target.String())

	exists, err := e.client.DeploymentExists(ctx, target)
	if err != nil {
		return e.error(ctx, err, "checking deployment")
	}
	if exists {
		log.Debug("deployment exists")
		return nil
	}

	service, err := e.client.GetService(ctx, target.ResourceGroup, target.Service)
	if err != nil {
		return e.error(ctx, err, "getting service")
	}

	resources = withDefaults(resources)
	deployment := springapps.Deployment{
		Name: springapps.DefaultDeploymentName,
		SKU: springapps.SKU{
			Name:     service.SKU.Name,
			Tier:     service.SKU.Tier,
			Capacity: resources.InstanceCount,
		},
		Resources: springapps.ResourceRequests{
			CPU:    resources.CPU,
			Memory: resources.Memory,
		},
		Env:    resources.Env,
		Source: springapps.PlaceholderSource(tier),
		Active: true,
	}

	log.Info("creating deployment")
	if err := e.client.CreateDeployment(ctx, target, deployment); err != nil {
		if springapps.IsAlreadyExists(err) {
			log.Info("deployment already exists")
			return nil
		}
		return e.error(ctx, err, "creating deployment")
	}
	return nil
}

func withDefaults(r springapps.Resources) springapps.Resources {
	if r.CPU == "" {
		r.CPU = springapps.DefaultResources.CPU
	}
	if r.Memory == "" {
		r.Memory = springapps.DefaultResources.Memory
	}
	if r.InstanceCount <= 0 {
		r.InstanceCount = springapps.DefaultResources.InstanceCount
	}
	return r
}

func (e *Engine) error(ctx context.Context, err error, msg string) error {
	e.metrics.Error(ctx, "provision")
	e.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
