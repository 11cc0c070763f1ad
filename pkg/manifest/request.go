//
//  Copyright © Manetu Inc. All rights reserved.
//

package manifest

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Request declares the Role, RoleBinding and optional ServiceAccount to
// generate.
//
//	name: pod-reader
//	namespace: team-a
//	serviceAccount: reader
//	rules:
//	  - apiGroups: [""]
//	    resourceGroups: [readonly]
//	    verbGroups: [readonly]
type Request struct {
	Name           string            `yaml:"name"`
	Namespace      string            `yaml:"namespace"`
	ServiceAccount string            `yaml:"serviceAccount,omitempty"`
	Labels         map[string]string `yaml:"labels,omitempty"`
	Subjects       []Subject         `yaml:"subjects,omitempty"`
	Rules          []Rule            `yaml:"rules"`
}

// Subject is an identity the RoleBinding grants the Role to.
type Subject struct {
	Kind      string `yaml:"kind"`
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace,omitempty"`
}

// Rule lists values per axis, either directly or by group label. Group
// expansions are appended after the direct values.
type Rule struct {
	APIGroups      []string `yaml:"apiGroups,omitempty"`
	APIGroupGroups []string `yaml:"apiGroupGroups,omitempty"`
	Resources      []string `yaml:"resources,omitempty"`
	ResourceGroups []string `yaml:"resourceGroups,omitempty"`
	Verbs          []string `yaml:"verbs,omitempty"`
	VerbGroups     []string `yaml:"verbGroups,omitempty"`
}

// ParseRequest decodes a YAML request. Unknown fields are rejected.
func ParseRequest(data []byte) (*Request, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var req Request
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Wrap(err, "failed to parse request")
	}
	return &req, nil
}
