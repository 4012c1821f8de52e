// Package session finds the adventofcode.com session cookie.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mawkler/advent-of-code/internal/domain"
)

const EnvFile = ".env"

// Lookup returns the value of name from the process environment, falling
// back to <root>/.env. An exported variable always wins; .env is read
// without touching the environment.
func Lookup(root, name string) (string, error) {
	if v := clean(os.Getenv(name)); v != "" {
		return v, nil
	}

	path := filepath.Join(root, EnvFile)
	vars, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", &domain.OpError{
			Op:   "session.lookup",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if v := clean(vars[name]); v != "" {
		return v, nil
	}

	return "", &domain.OpError{
		Op:   "session.lookup",
		Kind: domain.KindMissingVar,
		Err:  fmt.Errorf("%s is not set in the environment or %s: %w", name, path, domain.ErrMissingVar),
	}
}

// clean accepts either the bare cookie value or a pasted "session=..." pair.
func clean(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "session=")
	return strings.TrimSuffix(v, ";")
}
