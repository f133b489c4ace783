package logstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nais/springapps-orchestrator/internal/metrics"
	"github.com/nais/springapps-orchestrator/internal/poll"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/util/retry"
	"k8s.io/utils/clock"
)

const (
	defaultTailLines     = 1000
	defaultFetchAttempts = 3
	defaultInterval      = 2 * time.Second
	defaultRetryDelay    = time.Second

	// the test endpoint of a service is its log endpoint with this label added
	testEndpointLabel = ".test"
)

// Fetcher reads app and build logs from the log stream endpoint of a service
type Fetcher struct {
	client     springapps.Client
	log        logrus.FieldLogger
	metrics    *metrics.Metrics
	clock      clock.Clock
	transport  http.RoundTripper
	tailLines  int
	attempts   int
	retryDelay time.Duration
	interval   time.Duration
}

// Option is a function that can be used to set custom options for the fetcher
type Option func(*Fetcher)

func WithClock(c clock.Clock) Option {
	return func(f *Fetcher) {
		f.clock = c
	}
}

// WithTransport sets the transport log requests are sent with
func WithTransport(t http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = t
	}
}

func WithTailLines(n int) Option {
	return func(f *Fetcher) {
		f.tailLines = n
	}
}

// WithFetchAttempts sets how many times a log request is tried before giving up and the fixed
// delay between attempts
func WithFetchAttempts(n int, delay time.Duration) Option {
	return func(f *Fetcher) {
		f.attempts = n
		f.retryDelay = delay
	}
}

// WithBuildLogInterval sets the interval between build log fetches while the build log is empty
func WithBuildLogInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		f.interval = d
	}
}

func New(client springapps.Client, log logrus.FieldLogger, m *metrics.Metrics, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:     client,
		log:        log,
		metrics:    m,
		clock:      clock.RealClock{},
		transport:  http.DefaultTransport,
		tailLines:  defaultTailLines,
		attempts:   defaultFetchAttempts,
		retryDelay: defaultRetryDelay,
		interval:   defaultInterval,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.attempts < 1 {
		f.attempts = 1
	}

	return f
}

// FetchAppLogs returns the log tail of an instance of the app. Logs of a deployment that has not
// succeeded yet are requested with follow, so partial output is returned while it starts.
func (f *Fetcher) FetchAppLogs(ctx context.Context, target springapps.Target, instance string, status springapps.Status) (string, error) {
	keys, err := f.client.TestKeys(ctx, target.ResourceGroup, target.Service)
	if err != nil {
		return "", f.error(ctx, err, "getting test keys")
	}

	path := fmt.Sprintf("/api/logstream/apps/%s/instances/%s", target.App, instance)
	u := f.endpoint(keys.PrimaryTestEndpoint, path, status != springapps.StatusSucceeded)

	body, err := f.fetch(ctx, Transport{Key: keys.PrimaryKey, Base: f.transport}.Client(), u)
	if err != nil {
		return "", f.error(ctx, err, "fetching app logs")
	}
	return body, nil
}

// FetchBuildLogs returns the log of a stage of the latest build of the app. While the build is
// running and nothing has been logged yet, the log is fetched again every interval.
func (f *Fetcher) FetchBuildLogs(ctx context.Context, target springapps.Target, stage string) (string, error) {
	log := f.log.WithFields(logrus.Fields{
		"app":   target.String(),
		"stage": stage,
	})

	keys, err := f.client.TestKeys(ctx, target.ResourceGroup, target.Service)
	if err != nil {
		return "", f.error(ctx, err, "getting test keys")
	}

	resultID, err := f.client.TriggeredBuildResult(ctx, target)
	if err != nil {
		return "", f.error(ctx, err, "getting build result")
	}

	httpClient := Transport{Key: keys.PrimaryKey, Base: f.transport}.Client()
	path := fmt.Sprintf("/api/logstream/buildpods/%s.%s-build-%s-build-pod/stages/%s",
		springapps.DefaultDeploymentName, target.App, springapps.ResourceName(resultID), stage)

	for {
		state, err := f.client.BuildResultState(ctx, target, resultID)
		switch {
		case springapps.IsTransient(err):
			log.WithError(err).Warn("reading build state failed, retrying")
		case err != nil:
			return "", f.error(ctx, err, "getting build state")
		default:
			body, err := f.fetch(ctx, httpClient, f.endpoint(keys.PrimaryTestEndpoint, path, !state.Terminal()))
			switch {
			case springapps.IsTransient(err):
				log.WithError(err).Warn("fetching build log failed, retrying")
			case err != nil && !springapps.IsNotFound(err):
				return "", f.error(ctx, err, "fetching build logs")
			case state.Terminal() || body != "":
				return body, nil
			default:
				log.WithField("state", state).Debug("build pod has no log yet")
			}
		}

		f.metrics.Poll(ctx, "build_log")
		if err := poll.Wait(ctx, f.clock, f.interval); err != nil {
			return "", fmt.Errorf("waiting for build log: %w", err)
		}
	}
}

// FetchDeploymentLog returns the build log of a standard tier deployment. The log file url is
// pre-signed and fetched without credentials. An empty string is returned when the deployment
// has no log file.
func (f *Fetcher) FetchDeploymentLog(ctx context.Context, target springapps.Target) (string, error) {
	u, err := f.client.LogFileURL(ctx, target)
	if err != nil {
		return "", f.error(ctx, err, "getting log file url")
	}
	if u == "" {
		return "", nil
	}

	body, err := f.fetch(ctx, &http.Client{Transport: f.transport}, u)
	if err != nil {
		return "", f.error(ctx, err, "fetching deployment log")
	}
	return body, nil
}

func (f *Fetcher) endpoint(testEndpoint, path string, follow bool) string {
	base := strings.TrimSuffix(strings.ReplaceAll(testEndpoint, testEndpointLabel, ""), "/")

	q := url.Values{}
	q.Set("tailLines", strconv.Itoa(f.tailLines))
	if follow {
		q.Set("follow", "true")
	}
	return base + path + "?" + q.Encode()
}

// fetch gets u, retrying transient failures. Attempts are spaced by a fixed delay waited on the
// fetcher's clock, so the backoff itself never sleeps.
func (f *Fetcher) fetch(ctx context.Context, httpClient *http.Client, u string) (string, error) {
	var (
		body    string
		attempt int
	)
	err := retry.OnError(wait.Backoff{Steps: f.attempts}, retriable, func() error {
		if attempt > 0 {
			if err := poll.Wait(ctx, f.clock, f.retryDelay); err != nil {
				return err
			}
		}
		attempt++

		var err error
		body, err = get(ctx, httpClient, u)
		if retriable(err) {
			f.log.WithError(err).WithField("attempt", attempt).Debug("log request failed")
		}
		return err
	})
	return body, err
}

func retriable(err error) bool {
	return springapps.IsTransient(err)
}

func get(ctx context.Context, httpClient *http.Client, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", springapps.Wrap("log request", springapps.ErrTransient, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", springapps.Wrap("read log", springapps.ErrTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return string(b), nil
	case resp.StatusCode == http.StatusNotFound:
		return "", springapps.Errorf("log request", springapps.ErrNotFound, "status %d", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", springapps.Errorf("log request", springapps.ErrTransient, "status %d", resp.StatusCode)
	default:
		return "", fmt.Errorf("log request: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

func (f *Fetcher) error(ctx context.Context, err error, msg string) error {
	f.metrics.Error(ctx, "logstream")
	f.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
