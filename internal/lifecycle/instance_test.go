package lifecycle

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

type fakeHost struct{}

func (fakeHost) Assets() core.Assets { return nil }
func (fakeHost) Logger() *log.Logger { return log.New(io.Discard) }

type recordingDemo struct {
	initErr  error
	inits    int
	updates  int
	draws    int
	shutdown int
}

func (d *recordingDemo) ID() string    { return "rec" }
func (d *recordingDemo) Title() string { return "Recorder" }
func (d *recordingDemo) Init(core.Host) error {
	d.inits++
	return d.initErr
}
func (d *recordingDemo) Update(core.Frame) { d.updates++ }
func (d *recordingDemo) Draw(core.Canvas)  { d.draws++ }
func (d *recordingDemo) Shutdown()         { d.shutdown++ }

func frame(actions ...core.Action) core.Frame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return core.Frame{Elapsed: 1.0 / 60.0, Input: in}
}

func TestUpdateBeforeInit(t *testing.T) {
	d := &recordingDemo{}
	inst := New(d, fakeHost{})

	if err := inst.Update(frame()); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Update err = %v, want ErrNotRunning", err)
	}
	if err := inst.Draw(nil); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Draw err = %v, want ErrNotRunning", err)
	}
	if d.updates != 0 || d.draws != 0 {
		t.Error("demo must not be called before Init")
	}
}

func TestNormalLifecycle(t *testing.T) {
	d := &recordingDemo{}
	inst := New(d, fakeHost{})

	if inst.State() != StateUninitialized {
		t.Fatalf("state = %v", inst.State())
	}
	if err := inst.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if inst.State() != StateRunning {
		t.Fatalf("state = %v, want running", inst.State())
	}

	for i := 0; i < 3; i++ {
		if err := inst.Update(frame()); err != nil {
			t.Fatal(err)
		}
		if err := inst.Draw(nil); err != nil {
			t.Fatal(err)
		}
	}
	if d.updates != 3 || d.draws != 3 || inst.Frames() != 3 {
		t.Errorf("updates=%d draws=%d frames=%d, want 3", d.updates, d.draws, inst.Frames())
	}

	if err := inst.Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init err = %v, want ErrAlreadyInitialized", err)
	}

	inst.Shutdown()
	inst.Shutdown()
	if d.shutdown != 1 {
		t.Errorf("demo Shutdown ran %d times, want 1", d.shutdown)
	}
	if inst.State() != StateTerminated {
		t.Errorf("state = %v, want terminated", inst.State())
	}
	if err := inst.Update(frame()); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Update after Shutdown err = %v, want ErrNotRunning", err)
	}
	if err := inst.Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("Init after Shutdown err = %v, want ErrAlreadyInitialized", err)
	}
}

func TestFailedInitRunsShutdown(t *testing.T) {
	boom := errors.New("texture missing")
	d := &recordingDemo{initErr: boom}
	inst := New(d, fakeHost{})

	err := inst.Init()
	if !errors.Is(err, boom) {
		t.Fatalf("Init err = %v, want wrapped %v", err, boom)
	}
	if d.shutdown != 1 {
		t.Errorf("Shutdown ran %d times after failed Init, want 1", d.shutdown)
	}
	if inst.State() != StateTerminated {
		t.Errorf("state = %v, want terminated", inst.State())
	}

	inst.Shutdown()
	if d.shutdown != 1 {
		t.Errorf("Shutdown ran again: %d", d.shutdown)
	}
}

func TestShutdownBeforeInit(t *testing.T) {
	d := &recordingDemo{}
	inst := New(d, fakeHost{})
	inst.Shutdown()

	if d.shutdown != 0 {
		t.Error("demo Shutdown must not run for a demo that never initialized")
	}
	if inst.State() != StateTerminated {
		t.Errorf("state = %v, want terminated", inst.State())
	}
}

func TestPauseSuspendsUpdates(t *testing.T) {
	d := &recordingDemo{}
	inst := New(d, fakeHost{})
	if err := inst.Init(); err != nil {
		t.Fatal(err)
	}

	_ = inst.Update(frame(core.ActionPause))
	if !inst.Paused() || d.updates != 0 {
		t.Fatalf("paused=%v updates=%d after pause", inst.Paused(), d.updates)
	}
	_ = inst.Update(frame())
	if d.updates != 0 {
		t.Error("paused instance forwarded an update")
	}
	if err := inst.Draw(nil); err != nil || d.draws != 1 {
		t.Error("paused instance should still draw")
	}

	_ = inst.Update(frame(core.ActionPause))
	if inst.Paused() || d.updates != 1 {
		t.Errorf("paused=%v updates=%d after unpause", inst.Paused(), d.updates)
	}
}

func TestTickAndQuit(t *testing.T) {
	d := &recordingDemo{}
	inst := New(d, fakeHost{})

	if inst.Tick(frame()) {
		t.Error("Tick before Init should report not running")
	}
	if err := inst.HandleEvent(EventInit); err != nil {
		t.Fatal(err)
	}
	if !inst.Tick(frame()) {
		t.Error("Tick should report running")
	}
	if inst.Tick(frame(core.ActionQuit)) {
		t.Error("Tick with Quit should report stopped")
	}
	if d.shutdown != 1 || inst.State() != StateTerminated {
		t.Errorf("shutdown=%d state=%v after quit", d.shutdown, inst.State())
	}
}

func TestHandleEvent(t *testing.T) {
	d := &recordingDemo{}
	inst := New(d, fakeHost{})

	if err := inst.HandleEvent(EventInit); err != nil {
		t.Fatal(err)
	}
	if err := inst.HandleEvent(EventTerminate); err != nil {
		t.Fatal(err)
	}
	if err := inst.HandleEvent(EventTerminate); err != nil {
		t.Fatal(err)
	}
	if d.inits != 1 || d.shutdown != 1 {
		t.Errorf("inits=%d shutdown=%d, want 1 and 1", d.inits, d.shutdown)
	}
	if err := inst.HandleEvent(Event(9)); err == nil {
		t.Error("unknown event should fail")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateUninitialized, "uninitialized"},
		{StateRunning, "running"},
		{StateTerminated, "terminated"},
		{State(7), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tc.state, got, tc.expected)
		}
	}
	if EventInit.String() != "init" || EventTerminate.String() != "terminate" {
		t.Error("event names")
	}
}
