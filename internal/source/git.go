package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// GitProvider checks out repositories with the git binary
type GitProvider struct {
	binary string
	log    logrus.FieldLogger
}

func NewGitProvider(log logrus.FieldLogger) *GitProvider {
	return &GitProvider{binary: "git", log: log}
}

// FetchSource makes a shallow clone of branch into the workspace and returns the path of the
// checkout. An empty branch, or "null", clones the default branch.
func (g *GitProvider) FetchSource(ctx context.Context, ws *Workspace, repoURL, branch string) (string, error) {
	dest := filepath.Join(ws.Path, repositoryName(repoURL))

	args := []string{"clone", "--depth", "1"}
	if branch != "" && branch != "null" {
		args = append(args, "--branch", branch)
	}
	args = append(args, "--", repoURL, dest)

	g.log.WithFields(logrus.Fields{
		"repository": repoURL,
		"branch":     branch,
		"workspace":  ws.ID,
	}).Info("cloning repository")

	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git clone %s: %w: %s", repoURL, err, strings.TrimSpace(stderr.String()))
	}
	return dest, nil
}

// Cleanup removes a checkout
func (g *GitProvider) Cleanup(path string) error {
	return os.RemoveAll(path)
}
