package status_test

import (
	"context"
	"testing"
	"time"

	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/nais/springapps-orchestrator/internal/status"
	"github.com/nais/springapps-orchestrator/internal/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var target = springapps.Target{ResourceGroup: "rg", Service: "svc", App: "app"}

func TestClassify(t *testing.T) {
	states := []string{"Succeeded", "Failed", "Updating", "Running", "Stopped"}

	for _, appState := range states {
		for _, instanceState := range states {
			got := status.Classify(springapps.Snapshot{
				AppState:      springapps.ProvisioningState(appState),
				InstanceState: instanceState,
			})

			var want springapps.Status
			switch {
			case appState == "Succeeded" && instanceState == "Running":
				want = springapps.StatusSucceeded
			case appState == "Failed" && instanceState == "Running":
				want = springapps.StatusFailed
			default:
				want = springapps.StatusPending
			}
			assert.Equal(t, want, got, "app state %s, instance state %s", appState, instanceState)

			if got == springapps.StatusFailed {
				assert.Equal(t, "Running", instanceState)
			}
		}
	}

	t.Run("no instances is pending", func(t *testing.T) {
		assert.Equal(t, springapps.StatusPending, status.Classify(springapps.Snapshot{AppState: springapps.ProvisioningStateSucceeded}))
	})
}

func TestPoller_Snapshot(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()
	now := time.Now()

	t.Run("latest instance wins", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(&springapps.Deployment{
			ProvisioningState: springapps.ProvisioningStateSucceeded,
			Instances: []springapps.Instance{
				{Name: "old", Status: "Stopped", StartTime: now.Add(-time.Hour)},
				{Name: "new", Status: "Running", StartTime: now},
				{Name: "older", Status: "Failed", StartTime: now.Add(-2 * time.Hour)},
			},
		}, nil).Once()

		snapshot, err := status.New(client, log, nil).Snapshot(ctx, target)
		assert.NoError(t, err)
		assert.Equal(t, springapps.Snapshot{AppState: springapps.ProvisioningStateSucceeded, InstanceName: "new", InstanceState: "Running"}, snapshot)
	})

	t.Run("no instances", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(&springapps.Deployment{ProvisioningState: springapps.ProvisioningStateUpdating}, nil).Once()

		snapshot, err := status.New(client, log, nil).Snapshot(ctx, target)
		assert.NoError(t, err)
		assert.Empty(t, snapshot.InstanceName)
		assert.Empty(t, snapshot.InstanceState)
	})

	t.Run("missing deployment", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(nil, springapps.Errorf("get deployment", springapps.ErrNotFound, "default")).Once()

		_, err := status.New(client, log, nil).Snapshot(ctx, target)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
	})
}

func TestPoller_Await(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()
	interval := 10 * time.Second

	deployment := func(state springapps.ProvisioningState, instanceState string) *springapps.Deployment {
		d := &springapps.Deployment{ProvisioningState: state}
		if instanceState != "" {
			d.Instances = []springapps.Instance{{Name: "app-default-1", Status: instanceState, StartTime: time.Now()}}
		}
		return d
	}

	t.Run("waits until the instance runs", func(t *testing.T) {
		fc := test.NewSteppingClock(t, interval)
		start := fc.Now()
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(deployment(springapps.ProvisioningStateUpdating, ""), nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(nil, springapps.Errorf("get deployment", springapps.ErrTransient, "429")).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(deployment(springapps.ProvisioningStateFailed, "Stopped"), nil).Once()
		client.EXPECT().GetDeployment(mock.Anything, target).Return(deployment(springapps.ProvisioningStateSucceeded, "Running"), nil).Once()

		got, snapshot, err := status.New(client, log, nil, status.WithClock(fc), status.WithInterval(interval)).Await(ctx, target)
		assert.NoError(t, err)
		assert.Equal(t, springapps.StatusSucceeded, got)
		assert.Equal(t, "app-default-1", snapshot.InstanceName)
		assert.Equal(t, 3, test.Polls(fc, start, interval))
	})

	t.Run("failed deployment", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).Return(deployment(springapps.ProvisioningStateFailed, "Running"), nil).Once()

		got, _, err := status.New(client, log, nil).Await(ctx, target)
		assert.NoError(t, err)
		assert.Equal(t, springapps.StatusFailed, got)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(mock.Anything, target).RunAndReturn(func(context.Context, springapps.Target) (*springapps.Deployment, error) {
			cancel()
			return deployment(springapps.ProvisioningStateUpdating, ""), nil
		}).Once()

		got, _, err := status.New(client, log, nil).Await(ctx, target)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, springapps.StatusPending, got)
	})
}
