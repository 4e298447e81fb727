package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the given nodes and edges.
// Returns a combined error describing all problems found, or nil if valid.
func validate(nodes []TopicNode, edges []Edge) error {
	var errs []string

	ids := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		if strings.TrimSpace(n.ID) == "" {
			errs = append(errs, fmt.Sprintf("node at index %d has an empty id", i))
			continue
		}
		if ids[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		ids[n.ID] = true
		if !n.Category.Valid() {
			errs = append(errs, fmt.Sprintf("node %q has unknown category %q", n.ID, n.Category))
		}
	}

	for _, n := range nodes {
		for _, rel := range n.Related {
			if !ids[rel] {
				errs = append(errs, fmt.Sprintf("node %q references nonexistent related node %q", n.ID, rel))
			}
		}
		for qi, q := range n.Quiz {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("node %q quiz %d: answer index %d out of range", n.ID, qi, q.Answer))
			}
		}
	}

	for _, e := range edges {
		if !ids[e.From] {
			errs = append(errs, fmt.Sprintf("edge %s->%s: unknown source %q", e.From, e.To, e.From))
		}
		if !ids[e.To] {
			errs = append(errs, fmt.Sprintf("edge %s->%s: unknown target %q", e.From, e.To, e.To))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
