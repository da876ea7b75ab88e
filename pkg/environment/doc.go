// Package environment names the runtime mode of the process (development,
// staging, production).
//
// The mode is decided once at startup from configuration and passed to the
// components whose behaviour depends on it: the logger picks its format and
// level, and the HTTP error handler decides whether diagnostic stacks are
// included in responses.
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//		// refuse to start
//	}
//	if env.IsDevelopment() {
//		// verbose diagnostics
//	}
//
// Environment implements encoding.TextUnmarshaler, so it can be used directly
// as a field of an env-tagged configuration struct.
package environment
