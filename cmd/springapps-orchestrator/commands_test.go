package main

import (
	"bytes"
	"testing"

	"github.com/nais/springapps-orchestrator/internal/apierror"
	"github.com/nais/springapps-orchestrator/internal/config"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tier, err := parseTier("enterprise")
	assert.NoError(t, err)
	assert.Equal(t, springapps.TierEnterprise, tier)

	_, err = parseTier("basic")
	var userErr apierror.Error
	assert.ErrorAs(t, err, &userErr)
	assert.ErrorContains(t, err, "must be one of")

	_, err = parseTier("enterprize")
	assert.ErrorContains(t, err, "did you mean Enterprise?")
}

func TestTarget(t *testing.T) {
	a := &app{cfg: &config.Config{}}
	_, err := a.target()
	assert.Error(t, err)

	require.NoError(t, a.cfg.Target.Set("rg/svc/app"))
	target, err := a.target()
	assert.NoError(t, err)
	assert.Equal(t, springapps.Target{ResourceGroup: "rg", Service: "svc", App: "app"}, target)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	target := springapps.Target{ResourceGroup: "rg", Service: "svc", App: "app"}
	err := printYAML(&buf, newStatusOutput(target, springapps.StatusPending, springapps.Snapshot{AppState: springapps.ProvisioningStateUpdating}))
	assert.NoError(t, err)
	assert.Equal(t, "app: rg/svc/app\nstatus: Pending\nappState: Updating\n", buf.String())
}

func TestRootCommand(t *testing.T) {
	root := newRootCommand(&app{})
	for _, name := range []string{"provision", "deploy", "status", "logs", "build-logs"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("subscription-id"))
}
