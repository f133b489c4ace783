package orchestrator_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nais/springapps-orchestrator/internal/orchestrator"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/nais/springapps-orchestrator/internal/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	uploadURL    = "https://files.example.net/share/resources/abc?sig=x"
	relativePath = "resources/abc"
	resultID     = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.AppPlatform/Spring/svc/buildServices/default/builds/app/results/4"
)

var target = springapps.Target{ResourceGroup: "rg", Service: "svc", App: "app"}

type fakeUploader struct {
	urls     []string
	archives []string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, uploadURL, archive string) error {
	f.urls = append(f.urls, uploadURL)
	f.archives = append(f.archives, archive)
	return f.err
}

func newOrchestrator(t *testing.T, client *springapps.MockClient, opts ...orchestrator.Option) *orchestrator.Orchestrator {
	log, _ := logrustest.NewNullLogger()
	handle := &springapps.Handle{ManagementClient: client, ContainerClient: springapps.NewMockContainerClient(t)}
	return orchestrator.New(handle, append([]orchestrator.Option{orchestrator.WithLogger(log)}, opts...)...)
}

func running(state springapps.ProvisioningState) *springapps.Deployment {
	return &springapps.Deployment{
		Name:              springapps.DefaultDeploymentName,
		ProvisioningState: state,
		Instances: []springapps.Instance{
			{Name: "app-default-old", Status: "Terminating", StartTime: time.Unix(100, 0)},
			{Name: "app-default-new", Status: springapps.InstanceStatusRunning, StartTime: time.Unix(200, 0)},
		},
	}
}

func TestOrchestrator_Deploy(t *testing.T) {
	ctx := context.Background()

	t.Run("build result to a standard tier app is rejected before any call", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		err := newOrchestrator(t, client).Deploy(ctx, springapps.TierStandard, target, springapps.BuildResult{BuildResultID: resultID}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
	})

	t.Run("jar to an enterprise tier app is rejected", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		err := newOrchestrator(t, client).Deploy(ctx, springapps.TierEnterprise, target, springapps.JarUploaded{RelativePath: relativePath}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
	})

	t.Run("unknown tier", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		err := newOrchestrator(t, client).Deploy(ctx, "Basic", target, springapps.JarUploaded{RelativePath: relativePath}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
	})

	t.Run("binds a jar to a consumption tier app", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(&springapps.Deployment{Name: "default", SKU: springapps.SKU{Name: "S0", Capacity: 1}}, nil).Once()
		client.EXPECT().UpdateDeployment(mock.Anything, target, mock.MatchedBy(func(d springapps.Deployment) bool {
			return d.Source == springapps.JarUploaded{RelativePath: relativePath} && d.SKU.Capacity == 2
		})).Return(nil).Once()

		err := newOrchestrator(t, client).Deploy(ctx, springapps.TierConsumption, target, springapps.JarUploaded{RelativePath: relativePath}, springapps.Resources{InstanceCount: 2})
		assert.NoError(t, err)
	})

	t.Run("bind failures are deployment failures", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(nil, springapps.Errorf("get deployment", springapps.ErrNotFound, "default")).Once()

		err := newOrchestrator(t, client).Deploy(ctx, springapps.TierEnterprise, target, springapps.BuildResult{BuildResultID: resultID}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrDeploymentFailed)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
	})
}

func TestOrchestrator_PollStatus(t *testing.T) {
	client := springapps.NewMockClient(t)
	client.EXPECT().GetDeployment(mock.Anything, target).Return(running(springapps.ProvisioningStateSucceeded), nil).Once()

	st, snapshot, err := newOrchestrator(t, client).PollStatus(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, springapps.StatusSucceeded, st)
	assert.Equal(t, "app-default-new", snapshot.InstanceName)
}

func TestOrchestrator_AwaitDeployment(t *testing.T) {
	ctx := context.Background()
	interval := 10 * time.Second

	t.Run("waits while pending", func(t *testing.T) {
		fc := test.NewSteppingClock(t, interval)
		start := fc.Now()
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(&springapps.Deployment{ProvisioningState: springapps.ProvisioningStateUpdating}, nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(running(springapps.ProvisioningStateSucceeded), nil).Once()

		snapshot, err := newOrchestrator(t, client, orchestrator.WithClock(fc)).AwaitDeployment(ctx, target)
		assert.NoError(t, err)
		assert.Equal(t, springapps.InstanceStatusRunning, snapshot.InstanceState)
		assert.Equal(t, 1, test.Polls(fc, start, interval))
	})

	t.Run("failed deployment is an error", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(running(springapps.ProvisioningStateFailed), nil).Once()

		_, err := newOrchestrator(t, client).AwaitDeployment(ctx, target)
		assert.ErrorIs(t, err, springapps.ErrDeploymentFailed)
		assert.ErrorContains(t, err, "deployment is Failed, instance app-default-new is Running")
	})
}

func TestOrchestrator_FetchLogs(t *testing.T) {
	t.Run("no instances, no logs", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(&springapps.Deployment{ProvisioningState: springapps.ProvisioningStateSucceeded}, nil).Once()

		logs, err := newOrchestrator(t, client).FetchLogs(context.Background(), target)
		assert.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("status errors are returned", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(nil, springapps.Errorf("get deployment", springapps.ErrNotFound, "default")).Once()

		_, err := newOrchestrator(t, client).FetchLogs(context.Background(), target)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
	})
}

func TestOrchestrator_FetchBuildLogs(t *testing.T) {
	client := springapps.NewMockClient(t)
	logs, err := newOrchestrator(t, client).FetchBuildLogs(context.Background(), springapps.TierConsumption, target, "build")
	assert.NoError(t, err)
	assert.Empty(t, logs)

	_, err = newOrchestrator(t, client).FetchBuildLogs(context.Background(), "Basic", target, "build")
	assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
}

func TestOrchestrator_AwaitBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeded", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(springapps.BuildStateSucceeded, nil).Once()

		state, err := newOrchestrator(t, client).AwaitBuild(ctx, target, resultID)
		assert.NoError(t, err)
		assert.Equal(t, springapps.BuildStateSucceeded, state)
	})

	t.Run("failed build is terminal", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(springapps.BuildStateFailed, nil).Once()

		state, err := newOrchestrator(t, client).AwaitBuild(ctx, target, resultID)
		assert.ErrorIs(t, err, springapps.ErrTerminalBuildFailure)
		assert.Equal(t, springapps.BuildStateFailed, state)
	})
}

func TestOrchestrator_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads to the app's upload url", func(t *testing.T) {
		uploader := &fakeUploader{}
		client := springapps.NewMockClient(t)
		client.EXPECT().ResourceUploadURL(mock.Anything, target).Return(&springapps.UploadDefinition{RelativePath: relativePath, UploadURL: uploadURL}, nil).Once()

		path, err := newOrchestrator(t, client, orchestrator.WithUploader(uploader)).Upload(ctx, target, "/tmp/app.jar")
		assert.NoError(t, err)
		assert.Equal(t, relativePath, path)
		assert.Equal(t, []string{uploadURL}, uploader.urls)
		assert.Equal(t, []string{"/tmp/app.jar"}, uploader.archives)
	})

	t.Run("upload errors are returned", func(t *testing.T) {
		uploader := &fakeUploader{err: fmt.Errorf("connection reset")}
		client := springapps.NewMockClient(t)
		client.EXPECT().ResourceUploadURL(mock.Anything, target).Return(&springapps.UploadDefinition{RelativePath: relativePath, UploadURL: uploadURL}, nil).Once()

		_, err := newOrchestrator(t, client, orchestrator.WithUploader(uploader)).Upload(ctx, target, "/tmp/app.jar")
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("no uploader", func(t *testing.T) {
		_, err := newOrchestrator(t, springapps.NewMockClient(t)).Upload(ctx, target, "/tmp/app.jar")
		assert.Error(t, err)
	})
}

func TestOrchestrator_DeployArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("standard tier tarball", func(t *testing.T) {
		uploader := &fakeUploader{}
		client := springapps.NewMockClient(t)
		client.EXPECT().ResourceUploadURL(mock.Anything, target).Return(&springapps.UploadDefinition{RelativePath: relativePath, UploadURL: uploadURL}, nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(&springapps.Deployment{Name: "default"}, nil).Once()
		client.EXPECT().UpdateDeployment(mock.Anything, target, mock.MatchedBy(func(d springapps.Deployment) bool {
			return d.Source == springapps.TarballUploaded{RelativePath: relativePath, RuntimeVersion: "Java_21"}
		})).Return(nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(running(springapps.ProvisioningStateSucceeded), nil).Once()

		res, err := newOrchestrator(t, client, orchestrator.WithUploader(uploader)).DeployArtifact(ctx, springapps.TierStandard, "westeurope", target,
			orchestrator.Artifact{Path: "/tmp/src.tar.gz", JavaVersion: "21", Module: "null"}, springapps.Resources{})
		require.NoError(t, err)
		assert.Equal(t, springapps.SourceKindSource, res.Source.Kind())
		assert.Equal(t, "app-default-new", res.Snapshot.InstanceName)
	})

	t.Run("enterprise tier builds before binding", func(t *testing.T) {
		uploader := &fakeUploader{}
		client := springapps.NewMockClient(t)
		client.EXPECT().ResourceUploadURL(mock.Anything, target).Return(&springapps.UploadDefinition{RelativePath: relativePath, UploadURL: uploadURL}, nil).Once()
		client.EXPECT().AgentPoolState(mock.Anything, "rg", "svc").Return(springapps.ProvisioningStateSucceeded, nil).Once()
		client.EXPECT().GetService(mock.Anything, "rg", "svc").Return(&springapps.Service{ID: "/svc", Name: "svc", Region: "westeurope", SKU: springapps.TierEnterprise.SKU()}, nil).Once()
		client.EXPECT().CreateOrUpdateService(mock.Anything, "rg", mock.Anything).Return(&springapps.Service{ID: "/svc"}, nil).Once()
		client.EXPECT().SubmitBuild(mock.Anything, target, mock.Anything).Return(resultID, nil).Once()
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(springapps.BuildStateSucceeded, nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(&springapps.Deployment{Name: "default"}, nil).Once()
		client.EXPECT().UpdateDeployment(mock.Anything, target, mock.MatchedBy(func(d springapps.Deployment) bool {
			return d.Source == springapps.BuildResult{BuildResultID: resultID}
		})).Return(nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(running(springapps.ProvisioningStateSucceeded), nil).Once()

		res, err := newOrchestrator(t, client, orchestrator.WithUploader(uploader)).DeployArtifact(ctx, springapps.TierEnterprise, "westeurope", target,
			orchestrator.Artifact{Path: "/tmp/src.tar.gz"}, springapps.Resources{})
		require.NoError(t, err)
		assert.Equal(t, springapps.BuildResult{BuildResultID: resultID}, res.Source)
	})

	t.Run("failed build stops the run", func(t *testing.T) {
		uploader := &fakeUploader{}
		client := springapps.NewMockClient(t)
		client.EXPECT().ResourceUploadURL(mock.Anything, target).Return(&springapps.UploadDefinition{RelativePath: relativePath, UploadURL: uploadURL}, nil).Once()
		client.EXPECT().AgentPoolState(mock.Anything, "rg", "svc").Return(springapps.ProvisioningStateSucceeded, nil).Once()
		client.EXPECT().GetService(mock.Anything, "rg", "svc").Return(&springapps.Service{ID: "/svc", Name: "svc"}, nil).Once()
		client.EXPECT().CreateOrUpdateService(mock.Anything, "rg", mock.Anything).Return(&springapps.Service{ID: "/svc"}, nil).Once()
		client.EXPECT().SubmitBuild(mock.Anything, target, mock.Anything).Return(resultID, nil).Once()
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(springapps.BuildStateFailed, nil).Once()

		_, err := newOrchestrator(t, client, orchestrator.WithUploader(uploader)).DeployArtifact(ctx, springapps.TierEnterprise, "westeurope", target,
			orchestrator.Artifact{Path: "/tmp/src.tar.gz"}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrTerminalBuildFailure)
	})

	t.Run("jars are not built", func(t *testing.T) {
		_, err := newOrchestrator(t, springapps.NewMockClient(t)).DeployArtifact(ctx, springapps.TierEnterprise, "westeurope", target,
			orchestrator.Artifact{Path: "/tmp/app.jar", Jar: true}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
	})
}

func TestRuntimeVersion(t *testing.T) {
	assert.Equal(t, "Java_17", orchestrator.RuntimeVersion(""))
	assert.Equal(t, "Java_21", orchestrator.RuntimeVersion("21"))
	assert.Equal(t, "Java_11", orchestrator.RuntimeVersion("Java_11"))
}
