//
//  Copyright © Manetu Inc. All rights reserved.
//

// Package manifest assembles Kubernetes Role and RoleBinding objects from a
// declarative [Request], expanding group shortcuts and validating every
// value against the rbac vocabulary.
package manifest

import (
	"bytes"
	"fmt"

	"github.com/manetu/rolegen/internal/logging"
	"github.com/manetu/rolegen/pkg/rbac"
	"github.com/manetu/rolegen/pkg/resolver"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/yaml"
)

var logger = logging.GetLogger("rolegen.manifest")

// Bundle is the set of generated objects.
type Bundle struct {
	ServiceAccount *corev1.ServiceAccount
	Role           *rbacv1.Role
	RoleBinding    *rbacv1.RoleBinding
}

// Builder turns requests into bundles. apiVersion and kind of each object
// come from the resolver.
type Builder struct {
	res *resolver.Resolver
}

// NewBuilder creates a Builder. A nil resolver means [resolver.Default].
func NewBuilder(res *resolver.Resolver) *Builder {
	if res == nil {
		res = resolver.Default()
	}
	return &Builder{res: res}
}

type typeMetas struct {
	role, binding, serviceAccount metav1.TypeMeta
}

func (b *Builder) typeMeta(apiVersionKey, kindKey resolver.Key) (metav1.TypeMeta, error) {
	apiVersion, err := b.res.ResolveRequired(string(apiVersionKey))
	if err != nil {
		return metav1.TypeMeta{}, err
	}
	kind, err := b.res.ResolveRequired(string(kindKey))
	if err != nil {
		return metav1.TypeMeta{}, err
	}
	return metav1.TypeMeta{APIVersion: apiVersion, Kind: kind}, nil
}

func (b *Builder) typeMetas(withServiceAccount bool) (*typeMetas, error) {
	var (
		tm  typeMetas
		err error
	)
	if tm.role, err = b.typeMeta(resolver.RoleAPIVersion, resolver.RoleKind); err != nil {
		return nil, err
	}
	if tm.binding, err = b.typeMeta(resolver.RoleBindingAPIVersion, resolver.RoleBindingKind); err != nil {
		return nil, err
	}
	if withServiceAccount {
		if tm.serviceAccount, err = b.typeMeta(resolver.ServiceAccountAPIVersion, resolver.ServiceAccountKind); err != nil {
			return nil, err
		}
	}
	return &tm, nil
}

// expandAxis appends the expansion of each group label to values.
func expandAxis(axis rbac.Axis, values, labels []string, rule int, field string, errs *Errors) []string {
	out := append([]string{}, values...)
	for _, label := range labels {
		expanded, err := rbac.Expand(axis, label)
		if err != nil {
			errs.AddCause(rule, field, err)
			continue
		}
		out = append(out, expanded...)
	}
	return out
}

func checkAxis(axis rbac.Axis, values []string, rule int, field string, errs *Errors) {
	if len(values) == 0 {
		errs.Add(rule, field, fmt.Sprintf("at least one %s is required", axis))
		return
	}
	for _, v := range values {
		if err := rbac.Check(axis, v); err != nil {
			errs.AddCause(rule, field, err)
		}
	}
}

func buildRules(req *Request, errs *Errors) []rbacv1.PolicyRule {
	rules := make([]rbacv1.PolicyRule, 0, len(req.Rules))
	for i, r := range req.Rules {
		pr := rbacv1.PolicyRule{
			APIGroups: expandAxis(rbac.APIGroup, r.APIGroups, r.APIGroupGroups, i, "apiGroupGroups", errs),
			Resources: expandAxis(rbac.Resource, r.Resources, r.ResourceGroups, i, "resourceGroups", errs),
			Verbs:     expandAxis(rbac.Verb, r.Verbs, r.VerbGroups, i, "verbGroups", errs),
		}
		checkAxis(rbac.APIGroup, pr.APIGroups, i, "apiGroups", errs)
		checkAxis(rbac.Resource, pr.Resources, i, "resources", errs)
		checkAxis(rbac.Verb, pr.Verbs, i, "verbs", errs)
		rules = append(rules, pr)
	}
	return rules
}

func buildSubjects(req *Request, errs *Errors) []rbacv1.Subject {
	subjects := make([]rbacv1.Subject, 0, len(req.Subjects)+1)
	if req.ServiceAccount != "" {
		subjects = append(subjects, rbacv1.Subject{
			Kind:      rbacv1.ServiceAccountKind,
			Name:      req.ServiceAccount,
			Namespace: req.Namespace,
		})
	}
	for _, s := range req.Subjects {
		if s.Name == "" {
			errs.Add(-1, "subjects", "subject name is required")
			continue
		}
		switch s.Kind {
		case rbacv1.ServiceAccountKind:
			ns := s.Namespace
			if ns == "" {
				ns = req.Namespace
			}
			subjects = append(subjects, rbacv1.Subject{Kind: s.Kind, Name: s.Name, Namespace: ns})
		case rbacv1.UserKind, rbacv1.GroupKind:
			subjects = append(subjects, rbacv1.Subject{Kind: s.Kind, APIGroup: rbacv1.GroupName, Name: s.Name})
		default:
			errs.Add(-1, "subjects", fmt.Sprintf("unsupported subject kind '%s'", s.Kind))
		}
	}
	if len(subjects) == 0 {
		errs.Add(-1, "subjects", "at least one subject or a serviceAccount is required")
	}
	return subjects
}

// Build validates req and produces the objects it describes. All request
// problems are returned together as *Errors. A missing required setting is
// returned as a wrapped common.MissingRequiredConfigError. req is not
// modified.
func (b *Builder) Build(req *Request) (*Bundle, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	req = deepcopy.Copy(req).(*Request)

	errs := NewErrors()
	if req.Name == "" {
		errs.Add(-1, "name", "name is required")
	}
	if req.Namespace == "" {
		errs.Add(-1, "namespace", "namespace is required")
	}
	if len(req.Rules) == 0 {
		errs.Add(-1, "rules", "at least one rule is required")
	}
	rules := buildRules(req, errs)
	subjects := buildSubjects(req, errs)
	if errs.HasErrors() {
		return nil, errs
	}

	tm, err := b.typeMetas(req.ServiceAccount != "")
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", req.Name)
	}

	gv, err := schema.ParseGroupVersion(tm.role.APIVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid role apiVersion %s", tm.role.APIVersion)
	}

	meta := func(name string) metav1.ObjectMeta {
		return metav1.ObjectMeta{Name: name, Namespace: req.Namespace, Labels: req.Labels}
	}

	bundle := &Bundle{
		Role: &rbacv1.Role{
			TypeMeta:   tm.role,
			ObjectMeta: meta(req.Name),
			Rules:      rules,
		},
		RoleBinding: &rbacv1.RoleBinding{
			TypeMeta:   tm.binding,
			ObjectMeta: meta(req.Name),
			Subjects:   subjects,
			RoleRef: rbacv1.RoleRef{
				APIGroup: gv.Group,
				Kind:     tm.role.Kind,
				Name:     req.Name,
			},
		},
	}
	if req.ServiceAccount != "" {
		bundle.ServiceAccount = &corev1.ServiceAccount{
			TypeMeta:   tm.serviceAccount,
			ObjectMeta: meta(req.ServiceAccount),
		}
	}

	logger.SysDebugf("built %s/%s with %d rules and %d subjects", req.Namespace, req.Name, len(rules), len(subjects))
	return bundle, nil
}

// YAML renders the bundle as a multi-document manifest: ServiceAccount (if
// any), Role, then RoleBinding.
func (bd *Bundle) YAML() ([]byte, error) {
	var objs []interface{}
	if bd.ServiceAccount != nil {
		objs = append(objs, bd.ServiceAccount)
	}
	objs = append(objs, bd.Role, bd.RoleBinding)

	var buf bytes.Buffer
	for i, o := range objs {
		data, err := yaml.Marshal(o)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal manifest")
		}
		if i > 0 {
			buf.WriteString("---\n")
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}
