package config

import (
	"fmt"
	"strings"
)

// Target is a "resource-group/service/app" triple given on the command line or in the environment
type Target struct {
	ResourceGroup string
	Service       string
	App           string
}

func (t *Target) String() string {
	if t.ResourceGroup == "" && t.Service == "" && t.App == "" {
		return ""
	}
	return t.ResourceGroup + "/" + t.Service + "/" + t.App
}

func (t *Target) Type() string {
	return "target"
}

func (t *Target) Set(value string) error {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return fmt.Errorf(`invalid target: %q. Must be on format "resource-group/service/app"`, value)
	}

	rg := strings.TrimSpace(parts[0])
	if rg == "" {
		return fmt.Errorf("invalid target: %q. Resource group must not be empty", value)
	}

	service := strings.TrimSpace(parts[1])
	if service == "" {
		return fmt.Errorf("invalid target: %q. Service must not be empty", value)
	}

	app := strings.TrimSpace(parts[2])
	if app == "" {
		return fmt.Errorf("invalid target: %q. App must not be empty", value)
	}

	*t = Target{
		ResourceGroup: rg,
		Service:       service,
		App:           app,
	}
	return nil
}
