//
//  Copyright © Manetu Inc. All rights reserved.
//

package rbac

import (
	"errors"
	"testing"

	"github.com/manetu/rolegen/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandReadonlyResources(t *testing.T) {
	got, err := Expand(Resource, "readonly")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"configmaps",
		"endpoints",
		"persistentvolumeclaims",
		"pods",
		"secrets",
		"replicasets",
		"replicationcontrollers",
		"serviceaccounts",
		"services",
	}, got)
}

func TestExpandIsPerFamily(t *testing.T) {
	verbsRO, err := Expand(Verb, "readonly")
	require.NoError(t, err)
	assert.Equal(t, []string{"get", "list", "watch"}, verbsRO)

	core, err := Expand(APIGroup, "core")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "apps", "batch"}, core)

	// "readwrite" is a verb group only
	_, err = Expand(Resource, "readwrite")
	var unknown *common.UnknownGroupError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "resource", unknown.Family)
	assert.Equal(t, "readwrite", unknown.Label)
}

func TestExpandUnknown(t *testing.T) {
	_, err := Expand(Verb, "superuser")
	assert.True(t, common.IsUnknownGroup(err))

	_, err = Expand(Axis(7), "readonly")
	assert.True(t, common.IsUnknownGroup(err))
}

func TestExpandReturnsCopy(t *testing.T) {
	got, err := Expand(Verb, "readonly")
	require.NoError(t, err)
	got[0] = "delete"

	again, err := Expand(Verb, "readonly")
	require.NoError(t, err)
	assert.Equal(t, "get", again[0])
}

func TestGroupReferentialIntegrity(t *testing.T) {
	require.NoError(t, verifyGroups())

	for _, axis := range Axes {
		for _, g := range GroupsOf(axis) {
			assert.NotEmpty(t, g.Values, g.Label)
			assert.Equal(t, axis, g.Axis)
			expanded, err := Expand(axis, g.Label)
			require.NoError(t, err)
			for _, v := range expanded {
				assert.True(t, Validate(axis, v), "%s group %s references %q", axis, g.Label, v)
			}
		}
	}
}

func TestVerifyGroupsDetectsBadReference(t *testing.T) {
	saved := resourceGroups
	t.Cleanup(func() { resourceGroups = saved })

	resourceGroups = []Group{{Label: "broken", Name: "Broken", Axis: Resource, Values: []string{"ingress"}}}
	err := verifyGroups()
	require.Error(t, err)
	assert.True(t, common.IsInvalidValue(err))

	resourceGroups = []Group{{Label: "empty", Name: "Empty", Axis: Resource}}
	assert.Error(t, verifyGroups())

	resourceGroups = []Group{{Label: "misfiled", Name: "Misfiled", Axis: Verb, Values: []string{"get"}}}
	assert.Error(t, verifyGroups())

	resourceGroups = []Group{
		{Label: "dup", Name: "A", Axis: Resource, Values: []string{"pods"}},
		{Label: "dup", Name: "B", Axis: Resource, Values: []string{"pods"}},
	}
	assert.Error(t, verifyGroups())
}

func TestGroupsOfOrderAndNames(t *testing.T) {
	labels := func(gs []Group) []string {
		out := make([]string, 0, len(gs))
		for _, g := range gs {
			out = append(out, g.Label)
		}
		return out
	}

	assert.Equal(t, []string{"readonly", "full-access"}, labels(GroupsOf(Resource)))
	assert.Equal(t, []string{"readonly", "readwrite"}, labels(GroupsOf(Verb)))
	assert.Equal(t, []string{"core", "rbac", "infrastructure"}, labels(GroupsOf(APIGroup)))

	g, ok := LookupGroup(APIGroup, "rbac")
	require.True(t, ok)
	assert.Equal(t, "RBAC & Security", g.Name)

	_, ok = LookupGroup(APIGroup, "storage")
	assert.False(t, ok)
}
