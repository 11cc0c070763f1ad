//
//  Copyright © Manetu Inc. All rights reserved.
//

package resolver

// Key names a setting held in the built-in table.
type Key string

// Built-in keys. The values they map to are platform constants owned by
// rolegen and are never overridden by the environment.
const (
	RoleAPIVersion           Key = "ROLE_APIVERSION"
	RoleKind                 Key = "ROLE_KIND"
	RoleBindingAPIVersion    Key = "ROLE_BINDING_API_VERSION"
	RoleBindingKind          Key = "ROLE_BINDING_KIND"
	ServiceAccountAPIVersion Key = "SERVICE_ACCOUNT_APIVERSION"
	ServiceAccountKind       Key = "SERVICE_ACCOUNT_KIND"
)

var builtinKeys = []Key{
	RoleAPIVersion,
	RoleKind,
	RoleBindingAPIVersion,
	RoleBindingKind,
	ServiceAccountAPIVersion,
	ServiceAccountKind,
}

var builtins = map[Key]string{
	RoleAPIVersion:           "rbac.authorization.k8s.io/v1",
	RoleKind:                 "Role",
	RoleBindingAPIVersion:    "rbac.authorization.k8s.io/v1",
	RoleBindingKind:          "RoleBinding",
	ServiceAccountAPIVersion: "v1",
	ServiceAccountKind:       "ServiceAccount",
}

// Keys returns the built-in keys in declaration order.
func Keys() []Key {
	out := make([]Key, len(builtinKeys))
	copy(out, builtinKeys)
	return out
}

// Tier identifies the source that satisfied a lookup.
type Tier int

// Resolution tiers, in the order they are consulted.
const (
	TierNone Tier = iota
	TierBuiltin
	TierBuiltinUnprefixed
	TierEnv
	TierEnvPrefixed
)

func (t Tier) String() string {
	switch t {
	case TierBuiltin:
		return "builtin"
	case TierBuiltinUnprefixed:
		return "builtin-unprefixed"
	case TierEnv:
		return "env"
	case TierEnvPrefixed:
		return "env-prefixed"
	default:
		return "none"
	}
}
