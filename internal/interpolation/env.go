// Package interpolation expands ${VAR} and ${VAR:default} references in config values.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVar is returned when a reference has no default and the variable is unset.
var ErrUndefinedVar = errors.New("environment variable not defined")

// Pattern for ${VAR_NAME} and ${VAR_NAME:default}; the colon is captured so ${VAR:} means "empty default".
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ExpandEnvVars expands references in input using the process environment.
func ExpandEnvVars(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}

// Expand replaces every ${VAR} or ${VAR:default} reference in input. Unset variables without a
// default are left in place and reported together in the returned error.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVar, name))
		return match
	})

	return result, errors.Join(missing...)
}

// ExpandMap expands every value of m in place. Keys are not expanded.
func ExpandMap(m map[string]string, lookup LookupFunc) error {
	var errs []error
	for k, v := range m {
		expanded, err := Expand(v, lookup)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
			continue
		}
		m[k] = expanded
	}
	return errors.Join(errs...)
}
