package source

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nais/springapps-orchestrator/internal/springapps"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Workspace is a directory owned by a single deploy request
type Workspace struct {
	ID   string
	Path string
}

// Allocator hands out one workspace directory per request. Directory names include the tier,
// a timestamp, the repository, the user and a random suffix, so concurrent requests for the
// same repository never share a checkout.
type Allocator struct {
	root       string
	now        func() time.Time
	lock       sync.Mutex
	workspaces map[string]*Workspace
}

func NewAllocator(root string) *Allocator {
	return &Allocator{
		root:       root,
		now:        time.Now,
		workspaces: map[string]*Workspace{},
	}
}

// Allocate creates the workspace of request id. An empty id is replaced by a random one.
func (a *Allocator) Allocate(id string, tier springapps.Tier, repository, user string) (*Workspace, error) {
	if id == "" {
		id = uuid.NewString()
	}

	a.lock.Lock()
	defer a.lock.Unlock()

	if _, exists := a.workspaces[id]; exists {
		return nil, springapps.Errorf("allocate workspace", springapps.ErrAlreadyExists, "workspace for request %q", id)
	}

	name := strings.Join([]string{
		sanitize(strings.ToLower(tier.String())),
		fmt.Sprintf("%d", a.now().UnixNano()),
		sanitize(repositoryName(repository)),
		sanitize(user),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
	}, "-")

	path := filepath.Join(a.root, name)
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	ws := &Workspace{ID: id, Path: path}
	a.workspaces[id] = ws
	return ws, nil
}

// Get returns the workspace of request id
func (a *Allocator) Get(id string) (*Workspace, bool) {
	a.lock.Lock()
	defer a.lock.Unlock()
	ws, ok := a.workspaces[id]
	return ws, ok
}

// Release removes the workspace of request id and everything in it
func (a *Allocator) Release(id string) error {
	a.lock.Lock()
	ws, ok := a.workspaces[id]
	delete(a.workspaces, id)
	a.lock.Unlock()

	if !ok {
		return springapps.Errorf("release workspace", springapps.ErrNotFound, "workspace for request %q", id)
	}
	if err := os.RemoveAll(ws.Path); err != nil {
		return fmt.Errorf("removing workspace: %w", err)
	}
	return nil
}

func repositoryName(url string) string {
	url = strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		return url[i+1:]
	}
	return url
}

func sanitize(s string) string {
	s = unsafeChars.ReplaceAllString(s, "_")
	if s == "" {
		return "_"
	}
	return s
}
