package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nais/springapps-orchestrator/internal/apierror"
	"github.com/nais/springapps-orchestrator/internal/orchestrator"
	"github.com/nais/springapps-orchestrator/internal/source"
	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

const defaultBuildStage = "build"

type resourceFlags struct {
	cpu       string
	memory    string
	instances int32
	env       map[string]string
}

func (r *resourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&r.cpu, "cpu", "", "CPU of each instance, e.g. 1 or 500m")
	fs.StringVar(&r.memory, "memory", "", "Memory of each instance, e.g. 2Gi")
	fs.Int32Var(&r.instances, "instances", 0, "Number of instances")
	fs.StringToStringVar(&r.env, "env", nil, "Environment variables of the app, KEY=VALUE")
}

func (r *resourceFlags) resources() springapps.Resources {
	return springapps.Resources{
		CPU:           r.cpu,
		Memory:        r.memory,
		InstanceCount: r.instances,
		Env:           r.env,
	}
}

func (a *app) target() (springapps.Target, error) {
	t := springapps.Target(a.cfg.Target)
	if t.ResourceGroup == "" {
		return t, apierror.Errorf(`missing target, set --target "resource-group/service/app" or SPRINGAPPS_TARGET`)
	}
	return t, nil
}

// tiers offered as suggestions are at most this many edits away
const maxSuggestionDistance = 3

func parseTier(s string) (springapps.Tier, error) {
	tier, err := springapps.ParseTier(s)
	if err == nil {
		return tier, nil
	}
	if suggestion := suggestTier(s); suggestion != "" {
		return "", apierror.Errorf("unknown tier %q, did you mean %s?", s, suggestion)
	}
	return "", apierror.Errorf("unknown tier %q, must be one of Standard, Enterprise or Consumption", s)
}

func suggestTier(s string) springapps.Tier {
	var (
		best     springapps.Tier
		bestDist = maxSuggestionDistance + 1
	)
	for _, t := range []springapps.Tier{springapps.TierStandard, springapps.TierEnterprise, springapps.TierConsumption} {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(s), strings.ToLower(string(t))); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

func printYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = w.Write(out)
	return err
}

type statusOutput struct {
	App           string `yaml:"app"`
	Status        string `yaml:"status"`
	AppState      string `yaml:"appState"`
	InstanceName  string `yaml:"instanceName,omitempty"`
	InstanceState string `yaml:"instanceState,omitempty"`
}

func newStatusOutput(target springapps.Target, status springapps.Status, s springapps.Snapshot) statusOutput {
	return statusOutput{
		App:           target.String(),
		Status:        string(status),
		AppState:      string(s.AppState),
		InstanceName:  s.InstanceName,
		InstanceState: s.InstanceState,
	}
}

func newProvisionCommand(a *app) *cobra.Command {
	var (
		tier      string
		resources resourceFlags
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Ensure the resource group, service, app and default deployment exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseTier(tier)
			if err != nil {
				return err
			}
			target, err := a.target()
			if err != nil {
				return err
			}

			if err := a.orchestrator.Provision(cmd.Context(), t, a.cfg.Region, target, resources.resources()); err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), map[string]string{
				"app":    target.String(),
				"tier":   t.String(),
				"region": a.cfg.Region,
			})
		},
	}

	cmd.Flags().StringVar(&tier, "tier", string(springapps.TierStandard), "Tier of the service")
	resources.register(cmd.Flags())
	return cmd
}

func newDeployCommand(a *app) *cobra.Command {
	var (
		tier        string
		jar         string
		archive     string
		repository  string
		branch      string
		buildResult string
		javaVersion string
		module      string
		user        string
		resources   resourceFlags
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a jar, a source archive, a git repository or an existing build result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			t, err := parseTier(tier)
			if err != nil {
				return err
			}
			target, err := a.target()
			if err != nil {
				return err
			}

			if buildResult != "" {
				if err := a.orchestrator.Deploy(ctx, t, target, springapps.BuildResult{BuildResultID: buildResult}, resources.resources()); err != nil {
					return err
				}
				snapshot, err := a.orchestrator.AwaitDeployment(ctx, target)
				if err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), newStatusOutput(target, springapps.StatusSucceeded, snapshot))
			}

			artifact := orchestrator.Artifact{
				JavaVersion: javaVersion,
				Module:      module,
			}
			switch {
			case jar != "":
				artifact.Path = jar
				artifact.Jar = true
			case archive != "":
				artifact.Path = archive
			case repository != "":
				path, release, err := a.checkout(cmd, t, repository, branch, user)
				if err != nil {
					return err
				}
				defer release()
				artifact.Path = path
			default:
				return apierror.Errorf("nothing to deploy, set one of --jar, --archive, --repository or --build-result")
			}

			res, err := a.orchestrator.DeployArtifact(ctx, t, a.cfg.Region, target, artifact, resources.resources())
			if err != nil {
				return err
			}

			out := newStatusOutput(target, springapps.StatusSucceeded, res.Snapshot)
			return printYAML(cmd.OutOrStdout(), struct {
				statusOutput `yaml:",inline"`
				Source       string `yaml:"source"`
			}{out, string(res.Source.Kind())})
		},
	}

	cmd.Flags().StringVar(&tier, "tier", string(springapps.TierStandard), "Tier of the service")
	cmd.Flags().StringVar(&jar, "jar", "", "Prebuilt jar to deploy")
	cmd.Flags().StringVar(&archive, "archive", "", "Source tarball to build and deploy")
	cmd.Flags().StringVar(&repository, "repository", "", "Git repository to clone, build and deploy")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch of the repository, the default branch when empty")
	cmd.Flags().StringVar(&buildResult, "build-result", "", "Id of an existing build result to deploy (Enterprise)")
	cmd.Flags().StringVar(&javaVersion, "java-version", "17", "Java version the source is built and run with")
	cmd.Flags().StringVar(&module, "module", "", "Maven module to build in multi-module projects")
	cmd.Flags().StringVar(&user, "user", os.Getenv("USER"), "User the checkout workspace is named after")
	cmd.MarkFlagsMutuallyExclusive("jar", "archive", "repository", "build-result")
	resources.register(cmd.Flags())
	return cmd
}

// checkout clones the repository into a workspace of its own and packages it. release removes
// the workspace and the archive.
func (a *app) checkout(cmd *cobra.Command, tier springapps.Tier, repository, branch, user string) (string, func(), error) {
	id := uuid.NewString()
	ws, err := a.allocator.Allocate(id, tier, repository, user)
	if err != nil {
		return "", nil, err
	}
	release := func() {
		if err := a.allocator.Release(id); err != nil {
			a.log.WithError(err).Warn("releasing workspace")
		}
	}

	path, err := a.git.FetchSource(cmd.Context(), ws, repository, branch)
	if err != nil {
		release()
		return "", nil, err
	}

	archive, err := source.PackageTarGz(path)
	if err != nil {
		release()
		return "", nil, err
	}

	return archive, func() {
		if err := os.Remove(archive); err != nil && !os.IsNotExist(err) {
			a.log.WithError(err).Warn("removing archive")
		}
		if err := a.git.Cleanup(path); err != nil {
			a.log.WithError(err).Warn("removing checkout")
		}
		release()
	}, nil
}

func newStatusCommand(a *app) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of the app's deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := a.target()
			if err != nil {
				return err
			}

			if wait {
				snapshot, err := a.orchestrator.AwaitDeployment(cmd.Context(), target)
				if err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), newStatusOutput(target, springapps.StatusSucceeded, snapshot))
			}

			status, snapshot, err := a.orchestrator.PollStatus(cmd.Context(), target)
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), newStatusOutput(target, status, snapshot))
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the deployment is no longer pending")
	return cmd
}

func newLogsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Print the log tail of the most recently started instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := a.target()
			if err != nil {
				return err
			}

			logs, err := a.orchestrator.FetchLogs(cmd.Context(), target)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), logs)
			return err
		},
	}
}

func newBuildLogsCommand(a *app) *cobra.Command {
	var tier, stage string

	cmd := &cobra.Command{
		Use:   "build-logs",
		Short: "Print the build log of the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseTier(tier)
			if err != nil {
				return err
			}
			target, err := a.target()
			if err != nil {
				return err
			}

			logs, err := a.orchestrator.FetchBuildLogs(cmd.Context(), t, target, stage)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), logs)
			return err
		},
	}

	cmd.Flags().StringVar(&tier, "tier", string(springapps.TierStandard), "Tier of the service")
	cmd.Flags().StringVar(&stage, "stage", defaultBuildStage, "Build stage to read the log of (Enterprise)")
	return cmd
}
