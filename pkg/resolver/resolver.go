//
//  Copyright © Manetu Inc. All rights reserved.
//

// Package resolver looks up named configuration values across a fixed
// sequence of sources.
//
// For a key K and prefix P (default "VITE") the sources are, in order:
//
//  1. the built-in table, under K
//  2. the built-in table, under K with a leading "P_" removed
//  3. the environment, under K
//  4. the environment, under "P_K"
//
// The first source holding the key wins, even when its value is the empty
// string. The built-in table holds platform constants (API versions, kinds)
// and always beats the environment. Nothing is cached: the environment is
// read on every call.
package resolver

import (
	"strings"
	"sync"

	"github.com/manetu/rolegen/internal/logging"
	"github.com/manetu/rolegen/pkg/common"
	"github.com/manetu/rolegen/pkg/config"
)

var logger = logging.GetLogger("rolegen.resolver")

// Resolver resolves configuration keys. It is immutable after New and safe
// for concurrent use.
type Resolver struct {
	table  map[Key]string
	env    Environment
	prefix string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEnvironment sets the source for the environment tiers.
func WithEnvironment(env Environment) Option {
	return func(r *Resolver) {
		r.env = env
	}
}

// WithPrefix sets the prefix used for the unprefixed built-in lookup and the
// prefixed environment lookup. The "_" separator is implied.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.prefix = prefix
	}
}

// WithTable replaces the built-in table. The map is copied.
func WithTable(table map[Key]string) Option {
	return func(r *Resolver) {
		r.table = make(map[Key]string, len(table))
		for k, v := range table {
			r.table[k] = v
		}
	}
}

// New creates a Resolver over the built-in table and the process environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		table:  builtins,
		env:    OSEnvironment{},
		prefix: config.DefaultResolverPrefix,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Prefix returns the prefix this resolver honors.
func (r *Resolver) Prefix() string {
	return r.prefix
}

func (r *Resolver) prefixed(key string) string {
	return r.prefix + "_" + key
}

func (r *Resolver) unprefixed(key string) (string, bool) {
	if r.prefix == "" {
		return "", false
	}
	return strings.CutPrefix(key, r.prefix+"_")
}

// Lookup resolves key and reports which tier produced the value. The tier is
// TierNone when the key is absent.
func (r *Resolver) Lookup(key string) (string, Tier) {
	if key == "" {
		return "", TierNone
	}

	if v, ok := r.table[Key(key)]; ok {
		return v, TierBuiltin
	}

	if stripped, ok := r.unprefixed(key); ok {
		if v, ok := r.table[Key(stripped)]; ok {
			return v, TierBuiltinUnprefixed
		}
	}

	if v, ok := r.env.LookupEnv(key); ok {
		return v, TierEnv
	}

	if r.prefix != "" {
		if v, ok := r.env.LookupEnv(r.prefixed(key)); ok {
			return v, TierEnvPrefixed
		}
	}

	return "", TierNone
}

// Resolve returns the value for key from the first source that holds it.
func (r *Resolver) Resolve(key string) (string, bool) {
	v, tier := r.Lookup(key)
	if logger.IsDebugEnabled() {
		logger.SysDebugf("resolved %s from %s", key, tier)
	}
	return v, tier != TierNone
}

// ResolveWithDefault returns the value for key, or def when key is absent.
func (r *Resolver) ResolveWithDefault(key, def string) string {
	if v, ok := r.Resolve(key); ok {
		return v
	}
	return def
}

// ResolveRequired returns the value for key, or a
// [common.MissingRequiredConfigError] when key is absent.
func (r *Resolver) ResolveRequired(key string) (string, error) {
	if v, ok := r.Resolve(key); ok {
		return v, nil
	}
	return "", common.NewMissingRequiredConfig(key)
}

// Env consults only the environment tiers: key verbatim, then key with the
// prefix prepended.
func (r *Resolver) Env(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if v, ok := r.env.LookupEnv(key); ok {
		return v, true
	}
	if r.prefix != "" {
		return r.env.LookupEnv(r.prefixed(key))
	}
	return "", false
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide resolver, reading the OS environment with
// the prefix from rolegen's settings.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = New(WithPrefix(config.GetResolverPrefix()))
	})
	return defaultResolver
}

// Resolve resolves key with the [Default] resolver.
func Resolve(key string) (string, bool) {
	return Default().Resolve(key)
}

// ResolveWithDefault resolves key with the [Default] resolver, falling back to def.
func ResolveWithDefault(key, def string) string {
	return Default().ResolveWithDefault(key, def)
}

// ResolveRequired resolves key with the [Default] resolver or fails.
func ResolveRequired(key string) (string, error) {
	return Default().ResolveRequired(key)
}
