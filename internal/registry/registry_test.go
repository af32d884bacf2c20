package registry

import (
	"testing"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

type stubDemo struct {
	id   string
	opts Options
}

func (s *stubDemo) ID() string                { return s.id }
func (s *stubDemo) Title() string             { return "Stub" }
func (s *stubDemo) Init(host core.Host) error { return nil }
func (s *stubDemo) Update(f core.Frame)       {}
func (s *stubDemo) Draw(c core.Canvas)        {}
func (s *stubDemo) Shutdown()                 {}

func registerStub(t *testing.T, id, title string) {
	t.Helper()
	Register(id, title, func(opts Options) Demo {
		return &stubDemo{id: id, opts: opts}
	})
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "zz-stub", "Stub Demo")

	if !Exists("zz-stub") {
		t.Fatal("registered demo should exist")
	}

	d, err := Create("zz-stub", Options{Seed: 7})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.ID() != "zz-stub" {
		t.Errorf("ID = %q", d.ID())
	}
	if got := d.(*stubDemo).opts.Seed; got != 7 {
		t.Errorf("factory got seed %d, want 7", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", Options{}); err == nil {
		t.Error("unknown demo should fail")
	}
	if Exists("does-not-exist") {
		t.Error("unknown demo should not exist")
	}
}

func TestListSorted(t *testing.T) {
	registerStub(t, "zz-b", "B")
	registerStub(t, "zz-a", "A")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("list not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}

	titles := map[string]string{}
	for _, info := range list {
		titles[info.ID] = info.Title
	}
	if titles["zz-a"] != "A" || titles["zz-b"] != "B" {
		t.Errorf("titles = %v", titles)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "zz-dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", "Dup again", func(Options) Demo { return nil })
}
