// Package resource describes Kubernetes style resources and talks to the
// kcp API server about them.
package resource

import (
	"fmt"
	"net/url"
	"strings"
)

// Model identifies a resource type on the API server.
type Model struct {
	APIGroup   string `json:"apiGroup"`
	APIVersion string `json:"apiVersion"`
	Kind       string `json:"kind"`
	Plural     string `json:"plural"`
}

// WorkspaceModel is the kcp Workspace resource.
var WorkspaceModel = Model{
	APIGroup:   "tenancy.kcp.dev",
	APIVersion: "v1beta1",
	Kind:       "Workspace",
	Plural:     "workspaces",
}

// QueryOptions selects a resource (or a sub path below it).
type QueryOptions struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"ns,omitempty"`
	Path      string `json:"path,omitempty"`
}

// DeleteOptions is the argument of a delete call.
type DeleteOptions struct {
	Model        Model        `json:"model"`
	QueryOptions QueryOptions `json:"queryOptions"`
}

// Validate checks that every part of opts selects exactly one path
// segment below the resource collection. Dot segments and slashes in names
// would otherwise address a parent of the intended resource.
func (o QueryOptions) Validate() error {
	for _, v := range []string{o.Name, o.Namespace} {
		if v == "" {
			continue
		}
		if err := validateSegment(v); err != nil {
			return err
		}
	}

	if p := strings.Trim(o.Path, "/"); p != "" {
		for _, s := range strings.Split(p, "/") {
			if err := validateSegment(s); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateSegment(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty path segment", ErrInvalidName)
	case s == "." || s == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, s)
	case strings.Contains(s, "/"):
		return fmt.Errorf("%w: %q contains '/'", ErrInvalidName, s)
	}
	return nil
}

// URLPath returns the API path of the resources matching opts, which must
// pass Validate. Core group resources live under /api, all others under
// /apis/{group}.
func (m Model) URLPath(opts QueryOptions) string {
	segments := []string{}
	if m.APIGroup == "" {
		segments = append(segments, "api", m.APIVersion)
	} else {
		segments = append(segments, "apis", m.APIGroup, m.APIVersion)
	}

	if opts.Namespace != "" {
		segments = append(segments, "namespaces", url.PathEscape(opts.Namespace))
	}

	segments = append(segments, m.Plural)

	if opts.Name != "" {
		segments = append(segments, url.PathEscape(opts.Name))
	}

	if p := strings.Trim(opts.Path, "/"); p != "" {
		for _, s := range strings.Split(p, "/") {
			segments = append(segments, url.PathEscape(s))
		}
	}

	// Joined as is: cleaning would fold dot segments into a parent path
	return "/" + strings.Join(segments, "/")
}

// GroupVersion returns the "group/version" string, or "version" for the core group.
func (m Model) GroupVersion() string {
	if m.APIGroup == "" {
		return m.APIVersion
	}
	return m.APIGroup + "/" + m.APIVersion
}
