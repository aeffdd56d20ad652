package kubectl

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// ErrUnavailable wraps every provider failure: binary missing, cluster
// unreachable, bad context. Callers treat it as an empty inventory.
var ErrUnavailable = errors.New("kubectl unavailable")

// DefaultBin is used when no binary path is configured.
const DefaultBin = "kubectl"

// preferredKinds is pinned to the top of the API resources pane, most used
// first. The wildcard entry queries every fetchable kind at once.
var preferredKinds = []string{
	"all",
	"pods",
	"services",
	"deployments",
	"statefulsets",
	"daemonsets",
	"replicasets",
	"jobs",
	"cronjobs",
	"configmaps",
	"secrets",
	"ingresses",
	"persistentvolumeclaims",
}

// Client queries cluster inventory through the kubectl binary.
type Client struct {
	bin string
}

// New builds a client for the given binary path. Empty means DefaultBin.
func New(bin string) *Client {
	if strings.TrimSpace(bin) == "" {
		bin = DefaultBin
	}
	return &Client{bin: bin}
}

func (c *Client) run(args ...string) ([]string, error) {
	out, err := exec.Command(c.bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, c.bin, strings.Join(args, " "), err)
	}
	return splitLines(string(out)), nil
}

// Namespaces lists namespace names with the context's current namespace
// promoted to the front, so the cursor lands where the user already works.
func (c *Client) Namespaces() ([]string, error) {
	lines, err := c.run("get", "ns", "--no-headers", "-o", "custom-columns=NAME:.metadata.name")
	if err != nil {
		return nil, err
	}
	current, err := c.CurrentNamespace()
	if err != nil {
		return lines, nil
	}
	return promote(lines, current), nil
}

// APIResources lists fetchable resource kinds: the preferred set first, then
// the cluster's remaining kinds sorted and deduplicated.
func (c *Client) APIResources() ([]string, error) {
	lines, err := c.run("api-resources", "--no-headers", "--verbs", "get")
	if err != nil {
		return nil, err
	}
	return MergePreferred(preferredKinds, firstColumns(lines)), nil
}

// Resources lists the names of the given kind in the given namespace. The
// wildcard kind returns kind-prefixed names ("pod/web-1").
func (c *Client) Resources(namespace, kind string) ([]string, error) {
	lines, err := c.run("-n", namespace, "get", kind, "--no-headers", "--ignore-not-found")
	if err != nil {
		return nil, err
	}
	return firstColumns(lines), nil
}

// Contexts lists the kubeconfig context names.
func (c *Client) Contexts() ([]string, error) {
	return c.run("config", "get-contexts", "-o", "name")
}

// UseContext switches the active kubeconfig context.
func (c *Client) UseContext(name string) error {
	if err := exec.Command(c.bin, "config", "use-context", name).Run(); err != nil {
		return fmt.Errorf("%w: use-context %s: %v", ErrUnavailable, name, err)
	}
	return nil
}

// CurrentNamespace returns the namespace of the active context, empty when
// the context does not pin one.
func (c *Client) CurrentNamespace() (string, error) {
	lines, err := c.run("config", "view", "--minify", "-o", "jsonpath={..namespace}")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return strings.TrimSpace(lines[0]), nil
}

func splitLines(out string) []string {
	raw := strings.Split(out, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func firstColumns(lines []string) []string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names
}

// promote moves name to the front of list when present, keeping the rest in
// order.
func promote(list []string, name string) []string {
	if name == "" {
		return list
	}
	for i, entry := range list {
		if entry != name {
			continue
		}
		out := make([]string, 0, len(list))
		out = append(out, name)
		out = append(out, list[:i]...)
		out = append(out, list[i+1:]...)
		return out
	}
	return list
}

// MergePreferred places the preferred kinds first, in their pinned order,
// then the remaining discovered kinds sorted. Duplicates collapse; preferred
// entries survive even when discovery does not report them (the wildcard is
// never reported).
func MergePreferred(preferred, discovered []string) []string {
	seen := make(map[string]bool, len(preferred)+len(discovered))
	out := make([]string, 0, len(preferred)+len(discovered))
	for _, kind := range preferred {
		if !seen[kind] {
			seen[kind] = true
			out = append(out, kind)
		}
	}
	rest := make([]string, 0, len(discovered))
	for _, kind := range discovered {
		if !seen[kind] {
			seen[kind] = true
			rest = append(rest, kind)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
