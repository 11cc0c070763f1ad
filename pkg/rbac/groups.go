//
//  Copyright © Manetu Inc. All rights reserved.
//

package rbac

import (
	"fmt"
	"slices"

	"github.com/manetu/rolegen/pkg/common"
)

// Group is a labeled shortcut for a fixed subset of one axis.
type Group struct {
	Label  string
	Name   string
	Axis   Axis
	Values []string
}

var resourceGroups = []Group{
	{
		Label: "readonly",
		Name:  "Read Only Resources",
		Axis:  Resource,
		Values: []string{
			"configmaps",
			"endpoints",
			"persistentvolumeclaims",
			"pods",
			"secrets",
			"replicasets",
			"replicationcontrollers",
			"serviceaccounts",
			"services",
		},
	},
	{
		Label: "full-access",
		Name:  "Full Access Resources",
		Axis:  Resource,
		Values: []string{
			"componentstatuses",
			"configmaps",
			"daemonsets",
			"deployments",
			"events",
			"endpoints",
			"horizontalpodautoscalers",
			"ingresses",
			"jobs",
			"limitranges",
			"pods",
			"resourcequotas",
			"replicasets",
			"replicationcontrollers",
		},
	},
}

var verbGroups = []Group{
	{
		Label:  "readonly",
		Name:   "Read Only Verbs",
		Axis:   Verb,
		Values: []string{"get", "list", "watch"},
	},
	{
		Label:  "readwrite",
		Name:   "Read/Write Verbs",
		Axis:   Verb,
		Values: []string{"get", "list", "watch", "create", "update", "patch", "delete"},
	},
}

var apiGroupGroups = []Group{
	{
		Label:  "core",
		Name:   "Core API Groups",
		Axis:   APIGroup,
		Values: []string{"", "apps", "batch"},
	},
	{
		Label:  "rbac",
		Name:   "RBAC & Security",
		Axis:   APIGroup,
		Values: []string{"rbac.authorization.k8s.io", "policy"},
	},
	{
		Label:  "infrastructure",
		Name:   "Infrastructure & Storage",
		Axis:   APIGroup,
		Values: []string{"networking.k8s.io", "storage.k8s.io", "extensions"},
	},
}

func init() {
	if err := verifyGroups(); err != nil {
		panic(err)
	}
}

func groups(axis Axis) []Group {
	switch axis {
	case APIGroup:
		return apiGroupGroups
	case Resource:
		return resourceGroups
	case Verb:
		return verbGroups
	default:
		return nil
	}
}

// verifyGroups checks that every group is non-empty, lives under its own
// axis family and references only members of that axis.
func verifyGroups() error {
	for _, axis := range Axes {
		seen := map[string]bool{}
		for _, g := range groups(axis) {
			if g.Axis != axis {
				return fmt.Errorf("%s group '%s' declares axis %s", axis, g.Label, g.Axis)
			}
			if seen[g.Label] {
				return fmt.Errorf("duplicate %s group '%s'", axis, g.Label)
			}
			seen[g.Label] = true
			if len(g.Values) == 0 {
				return fmt.Errorf("%s group '%s' is empty", axis, g.Label)
			}
			for _, v := range g.Values {
				if err := Check(axis, v); err != nil {
					return fmt.Errorf("%s group '%s': %w", axis, g.Label, err)
				}
			}
		}
	}
	return nil
}

func cloneGroup(g Group) Group {
	g.Values = slices.Clone(g.Values)
	return g
}

// GroupsOf returns the groups defined for axis, in declaration order.
func GroupsOf(axis Axis) []Group {
	src := groups(axis)
	out := make([]Group, 0, len(src))
	for _, g := range src {
		out = append(out, cloneGroup(g))
	}
	return out
}

// LookupGroup finds the group with label in the axis family.
func LookupGroup(axis Axis, label string) (Group, bool) {
	for _, g := range groups(axis) {
		if g.Label == label {
			return cloneGroup(g), true
		}
	}
	return Group{}, false
}

// Expand returns the members of the group with label in the axis family,
// in declared order. Members are neither deduplicated nor sorted.
func Expand(axis Axis, label string) ([]string, error) {
	g, ok := LookupGroup(axis, label)
	if !ok {
		return nil, common.NewUnknownGroup(axis.String(), label)
	}
	return g.Values, nil
}
