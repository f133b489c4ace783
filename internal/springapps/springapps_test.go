package springapps_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	for in, want := range map[string]springapps.Tier{
		"Standard":    springapps.TierStandard,
		"enterprise":  springapps.TierEnterprise,
		"CONSUMPTION": springapps.TierConsumption,
	} {
		tier, err := springapps.ParseTier(in)
		assert.NoError(t, err)
		assert.Equal(t, want, tier)
	}

	_, err := springapps.ParseTier("Basic")
	assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
}

func TestTier_SKU(t *testing.T) {
	assert.Equal(t, "S0", springapps.TierStandard.SKU().Name)
	assert.Equal(t, "E0", springapps.TierEnterprise.SKU().Name)
	assert.Equal(t, "S0", springapps.TierConsumption.SKU().Name)
	assert.Equal(t, "StandardGen2", springapps.TierConsumption.SKU().Tier)
	assert.Equal(t, "S0", springapps.Tier("Basic").SKU().Name)

	for _, tier := range []springapps.Tier{springapps.TierStandard, springapps.TierEnterprise, springapps.TierConsumption} {
		back, err := springapps.TierFromSKU(tier.SKU())
		assert.NoError(t, err)
		assert.Equal(t, tier, back)
	}

	_, err := springapps.TierFromSKU(springapps.SKU{})
	assert.Error(t, err)
}

func TestValidateSource(t *testing.T) {
	jar := springapps.JarUploaded{RelativePath: "a.jar"}
	tarball := springapps.TarballUploaded{RelativePath: "src.tar.gz"}
	result := springapps.BuildResult{BuildResultID: "results/1"}

	tests := []struct {
		tier  springapps.Tier
		ref   springapps.SourceRef
		valid bool
	}{
		{springapps.TierStandard, jar, true},
		{springapps.TierStandard, tarball, true},
		{springapps.TierStandard, result, false},
		{springapps.TierConsumption, jar, true},
		{springapps.TierConsumption, tarball, true},
		{springapps.TierConsumption, result, false},
		{springapps.TierEnterprise, result, true},
		{springapps.TierEnterprise, jar, false},
		{springapps.TierEnterprise, tarball, false},
		{springapps.TierStandard, nil, false},
		{"Basic", jar, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%T", tt.tier, tt.ref), func(t *testing.T) {
			err := springapps.ValidateSource(tt.tier, tt.ref)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, springapps.ErrInvariantViolation)
		})
	}
}

func TestPlaceholderSource(t *testing.T) {
	assert.Equal(t, springapps.SourceKindBuildResult, springapps.PlaceholderSource(springapps.TierEnterprise).Kind())
	assert.Equal(t, springapps.SourceKindJar, springapps.PlaceholderSource(springapps.TierStandard).Kind())
	assert.Equal(t, springapps.SourceKindJar, springapps.PlaceholderSource(springapps.TierConsumption).Kind())
}

func TestBuildState_Terminal(t *testing.T) {
	assert.False(t, springapps.BuildStateQueuing.Terminal())
	assert.False(t, springapps.BuildStateBuilding.Terminal())
	assert.True(t, springapps.BuildStateSucceeded.Terminal())
	assert.True(t, springapps.BuildStateFailed.Terminal())
	assert.True(t, springapps.BuildStateDeleting.Terminal())
}

func TestResourceName(t *testing.T) {
	assert.Equal(t, "7", springapps.ResourceName("/subscriptions/sub/builds/app/results/7"))
	assert.Equal(t, "7", springapps.ResourceName("/subscriptions/sub/builds/app/results/7/"))
	assert.Equal(t, "app", springapps.ResourceName("app"))
}

func TestErrors(t *testing.T) {
	t.Run("wrap keeps an existing kind", func(t *testing.T) {
		notFound := springapps.Errorf("get app", springapps.ErrNotFound, "app")
		err := springapps.Wrap("deploy", springapps.ErrTransient, notFound)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
		assert.Equal(t, springapps.ErrNotFound, springapps.KindOf(err))
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, springapps.Wrap("deploy", springapps.ErrTransient, nil))
	})

	t.Run("unclassified", func(t *testing.T) {
		err := &springapps.Error{Op: "get app", Err: errors.New("boom")}
		assert.Nil(t, springapps.KindOf(err))
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("two kinds", func(t *testing.T) {
		err := &springapps.Error{Op: "bind", Kind: springapps.ErrDeploymentFailed, Err: springapps.Errorf("get deployment", springapps.ErrNotFound, "default")}
		assert.ErrorIs(t, err, springapps.ErrDeploymentFailed)
		assert.ErrorIs(t, err, springapps.ErrNotFound)
		assert.True(t, springapps.IsNotFound(err))
		assert.False(t, springapps.IsTransient(err))
	})
}
