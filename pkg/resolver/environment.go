//
//  Copyright © Manetu Inc. All rights reserved.
//

package resolver

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment is a name → value source consulted by the environment tiers.
// A variable set to the empty string is present.
type Environment interface {
	LookupEnv(name string) (string, bool)
}

// OSEnvironment reads the process environment on every call.
type OSEnvironment struct{}

// LookupEnv implements Environment.
func (OSEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnvironment is a fixed snapshot of variables.
type MapEnvironment map[string]string

// LookupEnv implements Environment.
func (m MapEnvironment) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// NewDotenvEnvironment reads .env files into a snapshot without touching the
// process environment. Earlier files win on duplicate names.
func NewDotenvEnvironment(files ...string) (MapEnvironment, error) {
	env := MapEnvironment{}
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if err != nil {
			return nil, errors.Wrapf(err, "reading env file %s", f)
		}
		for k, v := range vars {
			if _, exists := env[k]; !exists {
				env[k] = v
			}
		}
	}
	return env, nil
}

// LoadEnvFiles loads .env files into the process environment. Variables
// already set are left untouched, so the real environment always wins.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "loading env files")
	}
	logger.SysDebugf("loaded env files %v", files)
	return nil
}
