package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"
)

type Config struct {
	SubscriptionID string
	Region         string
	MetricsAddress string
	AgentPoolSize  string
	WorkspaceRoot  string
	Logger         Logger
	Polling        Polling
	LogStream      LogStream
	// Target is the app addressed when no target flags are given
	Target Target

	envTargetErr error
}

// Validate reports configuration read from the environment that could not be parsed. An invalid
// SPRINGAPPS_TARGET is only an error when --target did not replace it.
func (c *Config) Validate() error {
	if c.envTargetErr != nil && c.Target.String() == "" {
		return c.envTargetErr
	}
	return nil
}

type Logger struct {
	Format string
	Level  string
}

// Polling holds the intervals of the wait loops
type Polling struct {
	AgentPool  time.Duration
	Build      time.Duration
	BuildLog   time.Duration
	Deployment time.Duration
}

type LogStream struct {
	TailLines     int
	FetchAttempts int
}

// New registers the configuration flags on fs. Defaults are read from the environment.
func New(fs *flag.FlagSet) *Config {
	cfg := &Config{}

	fs.StringVar(&cfg.SubscriptionID, "subscription-id", os.Getenv("AZURE_SUBSCRIPTION_ID"), "Azure subscription to operate in")
	fs.StringVar(&cfg.Region, "region", envOrDefault("SPRINGAPPS_REGION", "westeurope"), "Region new resources are created in")
	fs.StringVar(&cfg.MetricsAddress, "metrics-address", os.Getenv("METRICS_ADDRESS"), "Serve prometheus metrics on this address, disabled when empty")
	fs.StringVar(&cfg.AgentPoolSize, "agent-pool-size", envOrDefault("SPRINGAPPS_AGENT_POOL_SIZE", "S1"), "Size of the build agent pool of Enterprise tier services")
	fs.StringVar(&cfg.WorkspaceRoot, "workspace-root", envOrDefault("SPRINGAPPS_WORKSPACE_ROOT", os.TempDir()), "Directory source workspaces are allocated in")
	fs.StringVar(&cfg.Logger.Format, "log-format", envOrDefault("LOG_FORMAT", "text"), "which log format to use")
	fs.StringVar(&cfg.Logger.Level, "log-level", envOrDefault("LOG_LEVEL", "info"), "which log level to output")
	fs.DurationVar(&cfg.Polling.AgentPool, "agent-pool-poll-interval", durationEnvOrDefault("SPRINGAPPS_AGENT_POOL_POLL_INTERVAL", 10*time.Second), "Interval between agent pool state checks")
	fs.DurationVar(&cfg.Polling.Build, "build-poll-interval", durationEnvOrDefault("SPRINGAPPS_BUILD_POLL_INTERVAL", 30*time.Second), "Interval between build result state checks")
	fs.DurationVar(&cfg.Polling.BuildLog, "build-log-poll-interval", durationEnvOrDefault("SPRINGAPPS_BUILD_LOG_POLL_INTERVAL", 2*time.Second), "Interval between build log fetches while the build is running")
	fs.DurationVar(&cfg.Polling.Deployment, "deployment-poll-interval", durationEnvOrDefault("SPRINGAPPS_DEPLOYMENT_POLL_INTERVAL", 10*time.Second), "Interval between deployment status checks")
	fs.IntVar(&cfg.LogStream.TailLines, "log-tail-lines", intEnvOrDefault("SPRINGAPPS_LOG_TAIL_LINES", 1000), "Number of log lines to fetch")
	fs.IntVar(&cfg.LogStream.FetchAttempts, "log-fetch-attempts", intEnvOrDefault("SPRINGAPPS_LOG_FETCH_ATTEMPTS", 3), "Attempts per log fetch before giving up")
	fs.Var(&cfg.Target, "target", `Default app, on the format "resource-group/service/app"`)

	if value, ok := os.LookupEnv("SPRINGAPPS_TARGET"); ok {
		if err := cfg.Target.Set(value); err != nil {
			cfg.envTargetErr = fmt.Errorf("SPRINGAPPS_TARGET: %w", err)
		}
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func durationEnvOrDefault(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func intEnvOrDefault(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
