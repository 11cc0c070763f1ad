//
//  Copyright © Manetu Inc. All rights reserved.
//

// Package rbac defines the closed vocabulary of Kubernetes RBAC primitives
// that rolegen accepts, and the named shortcut groups built on top of it.
//
// Each [Axis] has a fixed, ordered member list. Order is the curated
// presentation order (wildcard and core group first), not sorted. The
// wildcard "*" and the empty core API group "" are ordinary members here;
// what they mean is up to whoever assembles a policy from them.
package rbac

import (
	"fmt"
	"slices"
	"strings"

	"github.com/manetu/rolegen/pkg/common"
)

// Axis is one dimension of a policy rule.
type Axis int

// Permission axes.
const (
	APIGroup Axis = iota
	Resource
	Verb
)

// Axes lists every axis in presentation order.
var Axes = []Axis{APIGroup, Resource, Verb}

func (a Axis) String() string {
	switch a {
	case APIGroup:
		return "apiGroup"
	case Resource:
		return "resource"
	case Verb:
		return "verb"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis accepts an axis name, singular or plural, case-insensitively.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "apigroup", "apigroups", "api-group", "api-groups":
		return APIGroup, nil
	case "resource", "resources":
		return Resource, nil
	case "verb", "verbs":
		return Verb, nil
	default:
		return 0, fmt.Errorf("unknown axis '%s' (expected apiGroup, resource or verb)", s)
	}
}

// Metadata is a fixed (apiVersion, kind) pair.
type Metadata struct {
	APIVersion string
	Kind       string
}

// Object metadata constants.
var (
	RoleMetadata           = Metadata{APIVersion: "rbac.authorization.k8s.io/v1", Kind: "Role"}
	RoleBindingMetadata    = Metadata{APIVersion: "rbac.authorization.k8s.io/v1", Kind: "RoleBinding"}
	ServiceAccountMetadata = Metadata{APIVersion: "v1", Kind: "ServiceAccount"}
)

var apiGroups = []string{
	"*",
	"", // core
	"apps",
	"batch",
	"extensions",
	"networking.k8s.io",
	"rbac.authorization.k8s.io",
	"storage.k8s.io",
	"apiextensions.k8s.io",
	"policy",
}

var resources = []string{
	"*",
	"pods",
	"deployments",
	"services",
	"configmaps",
	"secrets",
	"namespaces",
	"persistentvolumes",
	"persistentvolumeclaims",
	"nodes",
	"ingresses",
	"jobs",
	"cronjobs",
	"statefulsets",
	"daemonsets",
	"replicasets",
	"componentstatuses",
	"endpoints",
	"horizontalpodautoscalers",
	"limitranges",
	"resourcequotas",
	"replicationcontrollers",
	"serviceaccounts",
	"events",
}

var verbs = []string{
	"get",
	"list",
	"watch",
	"create",
	"update",
	"patch",
	"delete",
	"*",
}

func members(axis Axis) []string {
	switch axis {
	case APIGroup:
		return apiGroups
	case Resource:
		return resources
	case Verb:
		return verbs
	default:
		return nil
	}
}

// MembersOf returns the legal values of axis in presentation order. The
// returned slice is a copy.
func MembersOf(axis Axis) []string {
	return slices.Clone(members(axis))
}

// Validate reports whether value is a member of axis.
func Validate(axis Axis, value string) bool {
	return slices.Contains(members(axis), value)
}

// Check is Validate in error form, returning a [common.InvalidValueError].
func Check(axis Axis, value string) error {
	if Validate(axis, value) {
		return nil
	}
	return common.NewInvalidValue(axis.String(), value)
}
