package azure

import (
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appplatform/armappplatform/v2"
	"github.com/nais/springapps-orchestrator/internal/springapps"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func fromService(in armappplatform.ServiceResource) *springapps.Service {
	out := &springapps.Service{
		ID:     deref(in.ID),
		Name:   deref(in.Name),
		Region: deref(in.Location),
	}
	if in.SKU != nil {
		out.SKU = springapps.SKU{
			Name:     deref(in.SKU.Name),
			Tier:     deref(in.SKU.Tier),
			Capacity: deref(in.SKU.Capacity),
		}
	}
	if in.Properties != nil {
		out.ManagedEnvironmentID = deref(in.Properties.ManagedEnvironmentID)
	}
	return out
}

func toService(in springapps.Service) armappplatform.ServiceResource {
	out := armappplatform.ServiceResource{
		Location: to.Ptr(in.Region),
		SKU: &armappplatform.SKU{
			Name: to.Ptr(in.SKU.Name),
			Tier: to.Ptr(in.SKU.Tier),
		},
	}
	if in.SKU.Capacity > 0 {
		out.SKU.Capacity = to.Ptr(in.SKU.Capacity)
	}
	if in.ManagedEnvironmentID != "" {
		out.Properties = &armappplatform.ClusterResourceProperties{
			ManagedEnvironmentID: to.Ptr(in.ManagedEnvironmentID),
		}
	}
	return out
}

func fromDeployment(in armappplatform.DeploymentResource) *springapps.Deployment {
	out := &springapps.Deployment{
		Name: deref(in.Name),
	}
	if in.SKU != nil {
		out.SKU = springapps.SKU{
			Name:     deref(in.SKU.Name),
			Tier:     deref(in.SKU.Tier),
			Capacity: deref(in.SKU.Capacity),
		}
	}

	p := in.Properties
	if p == nil {
		return out
	}
	out.Active = deref(p.Active)
	out.ProvisioningState = springapps.ProvisioningState(deref(p.ProvisioningState))
	out.Source = fromSource(p.Source)

	if s := p.DeploymentSettings; s != nil {
		if s.ResourceRequests != nil {
			out.Resources = springapps.ResourceRequests{
				CPU:    deref(s.ResourceRequests.CPU),
				Memory: deref(s.ResourceRequests.Memory),
			}
		}
		if s.EnvironmentVariables != nil {
			out.Env = make(map[string]string, len(s.EnvironmentVariables))
			for k, v := range s.EnvironmentVariables {
				out.Env[k] = deref(v)
			}
		}
	}

	for _, i := range p.Instances {
		if i == nil {
			continue
		}
		instance := springapps.Instance{
			Name:   deref(i.Name),
			Status: deref(i.Status),
		}
		// instances that have not started report no start time and sort first
		if t, err := time.Parse(time.RFC3339, deref(i.StartTime)); err == nil {
			instance.StartTime = t
		}
		out.Instances = append(out.Instances, instance)
	}
	return out
}

func toDeployment(in springapps.Deployment) armappplatform.DeploymentResource {
	settings := &armappplatform.DeploymentSettings{
		ResourceRequests: &armappplatform.ResourceRequests{
			CPU:    nilIfEmpty(in.Resources.CPU),
			Memory: nilIfEmpty(in.Resources.Memory),
		},
	}
	if in.Env != nil {
		settings.EnvironmentVariables = make(map[string]*string, len(in.Env))
		for k, v := range in.Env {
			settings.EnvironmentVariables[k] = to.Ptr(v)
		}
	}

	out := armappplatform.DeploymentResource{
		Properties: &armappplatform.DeploymentResourceProperties{
			Active:             to.Ptr(true),
			DeploymentSettings: settings,
			Source:             toSource(in.Source),
		},
	}
	if in.SKU.Name != "" {
		out.SKU = &armappplatform.SKU{
			Name:     to.Ptr(in.SKU.Name),
			Tier:     nilIfEmpty(in.SKU.Tier),
			Capacity: to.Ptr(in.SKU.Capacity),
		}
	}
	return out
}

func fromSource(in armappplatform.UserSourceInfoClassification) springapps.SourceRef {
	switch s := in.(type) {
	case *armappplatform.JarUploadedUserSourceInfo:
		return springapps.JarUploaded{RelativePath: deref(s.RelativePath)}
	case *armappplatform.SourceUploadedUserSourceInfo:
		return springapps.TarballUploaded{
			RelativePath:   deref(s.RelativePath),
			RuntimeVersion: deref(s.RuntimeVersion),
			ModuleSelector: deref(s.ArtifactSelector),
		}
	case *armappplatform.BuildResultUserSourceInfo:
		return springapps.BuildResult{BuildResultID: deref(s.BuildResultID)}
	default:
		return nil
	}
}

func toSource(in springapps.SourceRef) armappplatform.UserSourceInfoClassification {
	switch s := in.(type) {
	case springapps.JarUploaded:
		return &armappplatform.JarUploadedUserSourceInfo{
			Type:         to.Ptr(string(springapps.SourceKindJar)),
			RelativePath: to.Ptr(s.RelativePath),
		}
	case springapps.TarballUploaded:
		return &armappplatform.SourceUploadedUserSourceInfo{
			Type:             to.Ptr(string(springapps.SourceKindSource)),
			RelativePath:     to.Ptr(s.RelativePath),
			RuntimeVersion:   nilIfEmpty(s.RuntimeVersion),
			ArtifactSelector: nilIfEmpty(s.ModuleSelector),
		}
	case springapps.BuildResult:
		return &armappplatform.BuildResultUserSourceInfo{
			Type:          to.Ptr(string(springapps.SourceKindBuildResult)),
			BuildResultID: to.Ptr(s.BuildResultID),
		}
	default:
		return nil
	}
}

func toBuild(in springapps.BuildJob) armappplatform.Build {
	env := make(map[string]*string, len(in.Env))
	for k, v := range in.Env {
		env[k] = to.Ptr(v)
	}
	return armappplatform.Build{
		Properties: &armappplatform.BuildProperties{
			AgentPool:    to.Ptr(in.AgentPoolPath),
			Builder:      to.Ptr(in.BuilderPath),
			RelativePath: to.Ptr(in.RelativePath),
			Env:          env,
		},
	}
}

func triggeredBuildResult(in armappplatform.Build) (string, error) {
	if in.Properties == nil || in.Properties.TriggeredBuildResult == nil || in.Properties.TriggeredBuildResult.ID == nil {
		return "", springapps.Errorf("get build", springapps.ErrNotFound, "build %q has no triggered result", deref(in.Name))
	}
	return *in.Properties.TriggeredBuildResult.ID, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return to.Ptr(s)
}
