package springapps

// SourceKind names the variant of a SourceRef
type SourceKind string

const (
	SourceKindJar         SourceKind = "Jar"
	SourceKindSource      SourceKind = "Source"
	SourceKindBuildResult SourceKind = "BuildResult"
)

// placeholder used for the source of a freshly created deployment
const placeholderSource = "<default>"

// SourceRef describes how a deployment obtains its runnable artifact. The set of variants is
// closed: JarUploaded, TarballUploaded and BuildResult.
type SourceRef interface {
	Kind() SourceKind
	sourceRef()
}

// JarUploaded is a prebuilt jar uploaded to the app's upload location
type JarUploaded struct {
	RelativePath string
}

// TarballUploaded is a source tarball uploaded to the app's upload location, built by the
// platform.
type TarballUploaded struct {
	RelativePath   string
	RuntimeVersion string
	// ModuleSelector selects the maven module to run in multi-module projects
	ModuleSelector string
}

// BuildResult references the artifact of an Enterprise tier build
type BuildResult struct {
	BuildResultID string
}

func (JarUploaded) Kind() SourceKind     { return SourceKindJar }
func (TarballUploaded) Kind() SourceKind { return SourceKindSource }
func (BuildResult) Kind() SourceKind     { return SourceKindBuildResult }

func (JarUploaded) sourceRef()     {}
func (TarballUploaded) sourceRef() {}
func (BuildResult) sourceRef()     {}

// ValidateSource checks that ref is a variant the tier can deploy. Enterprise deploys build
// results only, the other tiers deploy uploaded jars or tarballs.
func ValidateSource(tier Tier, ref SourceRef) error {
	if ref == nil {
		return Errorf("validate source", ErrInvariantViolation, "missing source reference")
	}

	switch tier {
	case TierEnterprise:
		if ref.Kind() == SourceKindBuildResult {
			return nil
		}
	case TierStandard, TierConsumption:
		if ref.Kind() == SourceKindJar || ref.Kind() == SourceKindSource {
			return nil
		}
	default:
		return Errorf("validate source", ErrInvariantViolation, "unknown tier %q", tier)
	}

	return Errorf("validate source", ErrInvariantViolation, "%s source cannot be deployed to a %s tier service", ref.Kind(), tier)
}

// PlaceholderSource is the source a new default deployment is created with before anything
// has been deployed to it
func PlaceholderSource(tier Tier) SourceRef {
	if tier == TierEnterprise {
		return BuildResult{BuildResultID: placeholderSource}
	}
	return JarUploaded{RelativePath: placeholderSource}
}
