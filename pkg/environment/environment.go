package environment

import (
	"errors"
	"fmt"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// ErrUnknownEnvironment is returned for values that do not name a known environment.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Parse resolves an environment name, accepting the short aliases
// "dev", "stage" and "prod". Matching is case-insensitive.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Development), "dev":
		return Development, nil
	case string(Staging), "stage":
		return Staging, nil
	case string(Production), "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for config decoding.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

// String implements fmt.Stringer.
func (e Environment) String() string { return string(e) }

// IsDevelopment reports whether diagnostics may be exposed to clients.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool { return e == Staging }

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }
