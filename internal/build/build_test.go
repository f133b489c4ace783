package build_test

import (
	"context"
	"testing"
	"time"

	"github.com/nais/springapps-orchestrator/internal/build"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/nais/springapps-orchestrator/internal/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	serviceID = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.AppPlatform/Spring/svc"
	resultID  = serviceID + "/buildServices/default/builds/app/results/1"
	interval  = 30 * time.Second
)

var target = springapps.Target{ResourceGroup: "rg", Service: "svc", App: "app"}

func TestJob(t *testing.T) {
	t.Run("paths and java version", func(t *testing.T) {
		job := build.Job(serviceID, build.Request{RelativePath: "resources/x.tar.gz", JavaVersion: "21"})
		assert.Equal(t, serviceID+"/buildservices/default/builders/default", job.BuilderPath)
		assert.Equal(t, serviceID+"/buildservices/default/agentPools/default", job.AgentPoolPath)
		assert.Equal(t, "resources/x.tar.gz", job.RelativePath)
		assert.Equal(t, map[string]string{"BP_JVM_VERSION": "21"}, job.Env)
	})

	t.Run("module is set when given", func(t *testing.T) {
		job := build.Job(serviceID, build.Request{JavaVersion: "17", Module: "web"})
		assert.Equal(t, "web", job.Env["BP_MAVEN_BUILT_MODULE"])
	})

	t.Run("null module builds the root project", func(t *testing.T) {
		job := build.Job(serviceID, build.Request{JavaVersion: "17", Module: "null"})
		assert.NotContains(t, job.Env, "BP_MAVEN_BUILT_MODULE")
	})

	t.Run("java version defaults", func(t *testing.T) {
		job := build.Job(serviceID, build.Request{})
		assert.Equal(t, "17", job.Env["BP_JVM_VERSION"])
	})
}

func TestPipeline_EnqueueBuild(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("waits for the agent pool before submitting", func(t *testing.T) {
		fc := test.NewSteppingClock(t, 10*time.Second)
		start := fc.Now()
		client := springapps.NewMockClient(t)
		client.EXPECT().AgentPoolState(mock.Anything, "rg", "svc").Return(springapps.ProvisioningStateCreating, nil).Twice()
		client.EXPECT().AgentPoolState(mock.Anything, "rg", "svc").Return(springapps.ProvisioningStateSucceeded, nil).Once()
		client.EXPECT().GetService(mock.Anything, "rg", "svc").Return(&springapps.Service{ID: serviceID, Name: "svc", Region: "westeurope", SKU: springapps.TierEnterprise.SKU()}, nil).Once()
		client.EXPECT().CreateOrUpdateService(mock.Anything, "rg", springapps.Service{ID: serviceID, Name: "svc", Region: "northeurope", SKU: springapps.TierEnterprise.SKU()}).
			Return(&springapps.Service{ID: serviceID, Name: "svc", Region: "northeurope"}, nil).Once()
		client.EXPECT().SubmitBuild(mock.Anything, target, mock.MatchedBy(func(job springapps.BuildJob) bool {
			return job.BuilderPath == serviceID+"/buildservices/default/builders/default" && job.RelativePath == "resources/src.tar.gz"
		})).Return(resultID, nil).Once()

		id, err := build.New(client, log, nil, build.WithClock(fc), build.WithAgentPoolInterval(10*time.Second)).
			EnqueueBuild(ctx, target, build.Request{RelativePath: "resources/src.tar.gz", Region: "northeurope", JavaVersion: "17"})
		assert.NoError(t, err)
		assert.Equal(t, resultID, id)
		assert.Equal(t, 2, test.Polls(fc, start, 10*time.Second))
	})

	t.Run("failed agent pool is fatal", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().AgentPoolState(mock.Anything, "rg", "svc").Return(springapps.ProvisioningStateFailed, nil).Once()

		_, err := build.New(client, log, nil).EnqueueBuild(ctx, target, build.Request{})
		assert.ErrorIs(t, err, springapps.ErrTerminalBuildFailure)
	})

	t.Run("canceled while waiting for the agent pool", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		client := springapps.NewMockClient(t)
		client.EXPECT().AgentPoolState(mock.Anything, "rg", "svc").RunAndReturn(func(context.Context, string, string) (springapps.ProvisioningState, error) {
			cancel()
			return springapps.ProvisioningStateUpdating, nil
		}).Once()

		_, err := build.New(client, log, nil).EnqueueBuild(ctx, target, build.Request{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPipeline_AwaitBuild(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	states := func(client *springapps.MockClient, states ...springapps.BuildState) {
		for _, s := range states {
			client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(s, nil).Once()
		}
	}

	t.Run("polls once per non-terminal state", func(t *testing.T) {
		fc := test.NewSteppingClock(t, interval)
		start := fc.Now()
		client := springapps.NewMockClient(t)
		states(client, springapps.BuildStateQueuing, springapps.BuildStateQueuing, springapps.BuildStateBuilding, springapps.BuildStateSucceeded)

		state, err := build.New(client, log, nil, build.WithClock(fc), build.WithBuildInterval(interval)).AwaitBuild(ctx, target, resultID)
		assert.NoError(t, err)
		assert.Equal(t, springapps.BuildStateSucceeded, state)
		assert.Equal(t, 3, test.Polls(fc, start, interval))
	})

	t.Run("failed build is returned as a state", func(t *testing.T) {
		fc := test.NewSteppingClock(t, interval)
		client := springapps.NewMockClient(t)
		states(client, springapps.BuildStateBuilding, springapps.BuildStateFailed)

		state, err := build.New(client, log, nil, build.WithClock(fc), build.WithBuildInterval(interval)).AwaitBuild(ctx, target, resultID)
		assert.NoError(t, err)
		assert.Equal(t, springapps.BuildStateFailed, state)
	})

	t.Run("transient errors are retried on the next tick", func(t *testing.T) {
		fc := test.NewSteppingClock(t, interval)
		start := fc.Now()
		client := springapps.NewMockClient(t)
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).
			Return("", springapps.Errorf("get build result", springapps.ErrTransient, "503")).Once()
		states(client, springapps.BuildStateSucceeded)

		state, err := build.New(client, log, nil, build.WithClock(fc), build.WithBuildInterval(interval)).AwaitBuild(ctx, target, resultID)
		assert.NoError(t, err)
		assert.Equal(t, springapps.BuildStateSucceeded, state)
		assert.Equal(t, 1, test.Polls(fc, start, interval))
	})

	t.Run("other errors end the wait", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).
			Return("", springapps.Errorf("get build result", springapps.ErrNotFound, "no such build")).Once()

		_, err := build.New(client, log, nil).AwaitBuild(ctx, target, resultID)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
	})

	t.Run("deadline ends the wait", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		client := springapps.NewMockClient(t)
		client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(springapps.BuildStateBuilding, nil).Maybe()

		_, err := build.New(client, log, nil).AwaitBuild(ctx, target, resultID)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestPipeline_BuildState(t *testing.T) {
	log, _ := logrustest.NewNullLogger()
	client := springapps.NewMockClient(t)
	client.EXPECT().BuildResultState(mock.Anything, target, resultID).Return(springapps.BuildStateQueuing, nil).Once()

	state, err := build.New(client, log, nil).BuildState(context.Background(), target, resultID)
	assert.NoError(t, err)
	assert.Equal(t, springapps.BuildStateQueuing, state)
}
