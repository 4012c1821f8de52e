package usecase

import (
	"errors"
	"testing"

	"github.com/mawkler/advent-of-code/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec = spec
	r.force = force
	return r.err
}

func TestInitWorkspace_PassesThrough(t *testing.T) {
	ini := &recordingInitializer{}
	if err := NewInitWorkspace(ini).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ini.spec.Root != "/tmp/ws" || !ini.force {
		t.Fatalf("unexpected call: %+v force=%v", ini.spec, ini.force)
	}
}

func TestInitWorkspace_EmptyRoot(t *testing.T) {
	ini := &recordingInitializer{}
	err := NewInitWorkspace(ini).Execute(" ", false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if ini.spec.Root != "" {
		t.Fatalf("initializer should not be called")
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := NewInitWorkspace(&recordingInitializer{err: boom}).Execute("/tmp/ws", false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
