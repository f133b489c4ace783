package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/nais/springapps-orchestrator/internal/apierror"
	"github.com/nais/springapps-orchestrator/internal/azure"
	"github.com/nais/springapps-orchestrator/internal/config"
	"github.com/nais/springapps-orchestrator/internal/logger"
	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/orchestrator"
	"github.com/nais/springapps-orchestrator/internal/source"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// app holds what the subcommands share. It is populated in the persistent pre-run of the root command.
type app struct {
	cfg          *config.Config
	log          logrus.FieldLogger
	metrics      *metrics.Metrics
	orchestrator *orchestrator.Orchestrator
	allocator    *source.Allocator
	git          *source.GitProvider
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{}
	root := newRootCommand(a)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return
	}

	log := a.log
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := apierror.GetErrorPresenter(log)(err)
	fmt.Fprintln(os.Stderr, p.Message)
	os.Exit(p.ExitCode)
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "springapps-orchestrator",
		Short:         "Provision and deploy Spring apps on Azure Spring Apps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	a.cfg = config.New(root.PersistentFlags())

	root.AddCommand(
		newProvisionCommand(a),
		newDeployCommand(a),
		newStatusCommand(a),
		newLogsCommand(a),
		newBuildLogsCommand(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	log, err := logger.New(a.cfg.Logger)
	if err != nil {
		return apierror.Errorf("invalid logger configuration: %v", err)
	}
	a.log = log

	if err := a.cfg.Validate(); err != nil {
		return apierror.Errorf("invalid configuration: %v", err)
	}

	if a.cfg.SubscriptionID == "" {
		return apierror.Errorf("missing subscription id, set --subscription-id or AZURE_SUBSCRIPTION_ID")
	}

	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("creating prometheus exporter: %w", err)
	}
	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	a.metrics, err = metrics.New(provider.Meter("github.com/nais/springapps-orchestrator"))
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	if a.cfg.MetricsAddress != "" {
		serveMetrics(ctx, a.cfg.MetricsAddress, log)
	}

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return fmt.Errorf("creating azure credential: %w", err)
	}

	handle, err := azure.New(a.cfg.SubscriptionID, credential, log, a.metrics, nil)
	if err != nil {
		return err
	}

	p := a.cfg.Polling
	a.orchestrator = orchestrator.New(handle,
		orchestrator.WithLogger(log),
		orchestrator.WithMetrics(a.metrics),
		orchestrator.WithAgentPoolSize(a.cfg.AgentPoolSize),
		orchestrator.WithPollIntervals(p.AgentPool, p.Build, p.BuildLog, p.Deployment),
		orchestrator.WithTailLines(a.cfg.LogStream.TailLines),
		orchestrator.WithFetchAttempts(a.cfg.LogStream.FetchAttempts, 0),
		orchestrator.WithUploader(source.NewUploader(log.WithField("component", "upload"))),
	)
	a.allocator = source.NewAllocator(a.cfg.WorkspaceRoot)
	a.git = source.NewGitProvider(log.WithField("component", "git"))
	return nil
}

func serveMetrics(ctx context.Context, address string, log logrus.FieldLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: address, Handler: mux}

	go func() {
		log.Infof("serving metrics on http://%s/metrics", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server")
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
}
