package binder_test

import (
	"context"
	"testing"

	"github.com/nais/springapps-orchestrator/internal/binder"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

var target = springapps.Target{ResourceGroup: "rg", Service: "svc", App: "app"}

func existing() *springapps.Deployment {
	return &springapps.Deployment{
		Name:      springapps.DefaultDeploymentName,
		SKU:       springapps.SKU{Name: "S0", Tier: "Standard", Capacity: 1},
		Resources: springapps.ResourceRequests{CPU: "1", Memory: "2Gi"},
		Env:       map[string]string{"OLD": "1"},
		Source:    springapps.JarUploaded{RelativePath: "<default>"},
		Active:    true,
	}
}

func TestBinder_Bind(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("replaces source and capacity", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(existing(), nil).Once()

		want := existing()
		want.Source = springapps.JarUploaded{RelativePath: "resources/app.jar"}
		want.SKU.Capacity = 3
		client.EXPECT().UpdateDeployment(ctx, target, *want).Return(nil).Once()

		err := binder.New(client, log, nil).Bind(ctx, target, springapps.JarUploaded{RelativePath: "resources/app.jar"}, springapps.Resources{InstanceCount: 3})
		assert.NoError(t, err)
	})

	t.Run("cpu memory and env are replaced when given", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(existing(), nil).Once()

		ref := springapps.TarballUploaded{RelativePath: "resources/src.tar.gz", RuntimeVersion: "Java_17", ModuleSelector: "web"}
		want := existing()
		want.Source = ref
		want.Resources = springapps.ResourceRequests{CPU: "2", Memory: "4Gi"}
		want.Env = map[string]string{"NEW": "2"}
		client.EXPECT().UpdateDeployment(ctx, target, *want).Return(nil).Once()

		err := binder.New(client, log, nil).Bind(ctx, target, ref, springapps.Resources{CPU: "2", Memory: "4Gi", Env: map[string]string{"NEW": "2"}})
		assert.NoError(t, err)
	})

	t.Run("missing deployment", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(nil, springapps.Errorf("get deployment", springapps.ErrNotFound, "default")).Once()

		err := binder.New(client, log, nil).Bind(ctx, target, springapps.BuildResult{BuildResultID: "id"}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrDeploymentFailed)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
	})

	t.Run("update failure keeps its kind", func(t *testing.T) {
		client := springapps.NewMockClient(t)
		client.EXPECT().GetDeployment(ctx, target).Return(existing(), nil).Once()
		client.EXPECT().UpdateDeployment(ctx, target, *existing()).Return(springapps.Errorf("update deployment", springapps.ErrTransient, "503")).Once()

		err := binder.New(client, log, nil).Bind(ctx, target, springapps.JarUploaded{RelativePath: "<default>"}, springapps.Resources{})
		assert.ErrorIs(t, err, springapps.ErrDeploymentFailed)
		assert.ErrorIs(t, err, springapps.ErrTransient)
	})
}
