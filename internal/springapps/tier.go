package springapps

import (
	"fmt"
	"strings"
)

// Tier is the service tier a managed service is provisioned in. It is chosen once, when the
// service is created, and decides which strategy handles the service afterwards.
type Tier string

const (
	TierStandard    Tier = "Standard"
	TierEnterprise  Tier = "Enterprise"
	TierConsumption Tier = "Consumption"
)

const (
	skuStandard   = "S0"
	skuEnterprise = "E0"

	// platform tier name of the consumption plan
	consumptionPlatformTier = "StandardGen2"
)

// DefaultDeploymentName is the single active deployment slot of an app
const DefaultDeploymentName = "default"

// ParseTier parses a tier name, case-insensitive
func ParseTier(s string) (Tier, error) {
	for _, t := range []Tier{TierStandard, TierEnterprise, TierConsumption} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", Errorf("parse tier", ErrInvariantViolation, "unknown tier %q", s)
}

func (t Tier) String() string {
	return string(t)
}

// SKU returns the platform SKU of the tier. Unknown tiers fall back to the standard SKU.
func (t Tier) SKU() SKU {
	switch t {
	case TierEnterprise:
		return SKU{Name: skuEnterprise, Tier: string(TierEnterprise)}
	case TierConsumption:
		return SKU{Name: skuStandard, Tier: consumptionPlatformTier}
	case TierStandard:
		return SKU{Name: skuStandard, Tier: string(TierStandard)}
	default:
		return SKU{Name: skuStandard, Tier: string(t)}
	}
}

// TierFromSKU maps a platform SKU tier back to a Tier
func TierFromSKU(sku SKU) (Tier, error) {
	switch sku.Tier {
	case consumptionPlatformTier:
		return TierConsumption, nil
	case "":
		return "", fmt.Errorf("empty sku tier")
	default:
		return ParseTier(sku.Tier)
	}
}
