package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/bounce-kit/internal/platform/handheld"
)

func TestHandheldMainReturnsErrors(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bounce.log")

	oldFile, oldLevel := flagLogFile, flagLogLevel
	t.Cleanup(func() { flagLogFile, flagLogLevel = oldFile, oldLevel })
	flagLogFile = logPath
	flagLogLevel = "loud"

	if err := handheldMain(nil); err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file should have been opened: %v", err)
	}
}

func TestHandheldMainBadLogFile(t *testing.T) {
	oldFile := flagLogFile
	t.Cleanup(func() { flagLogFile = oldFile })
	flagLogFile = filepath.Join(t.TempDir(), "missing", "bounce.log")

	if err := handheldMain(nil); err == nil {
		t.Error("expected an error for an unwritable log file")
	}
}

func TestMenuLoop(t *testing.T) {
	errPlay := errors.New("boom")

	tests := []struct {
		name     string
		picks    []handheld.MenuResult
		playErr  error
		expected []string
		wantErr  error
	}{
		{
			name:  "quit straight away",
			picks: []handheld.MenuResult{{Quit: true}},
		},
		{
			name: "two demos then quit",
			picks: []handheld.MenuResult{
				{DemoID: "ket", Width: 100, Height: 30},
				{DemoID: "hello", Width: 120, Height: 40},
				{Quit: true},
			},
			expected: []string{"ket 100x30", "hello 120x40"},
		},
		{
			name:     "demo failure stops the loop",
			picks:    []handheld.MenuResult{{DemoID: "ket", Width: 80, Height: 24}, {Quit: true}},
			playErr:  errPlay,
			expected: []string{"ket 80x24"},
			wantErr:  errPlay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var played []string
			picks := tt.picks
			pick := func(w, h int) (handheld.MenuResult, error) {
				r := picks[0]
				picks = picks[1:]
				return r, nil
			}
			play := func(id string, w, h int) error {
				played = append(played, fmt.Sprintf("%s %dx%d", id, w, h))
				return tt.playErr
			}

			err := menuLoop(80, 24, play, pick)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, expected %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(played, tt.expected) {
				t.Errorf("played = %v, expected %v", played, tt.expected)
			}
		})
	}
}

func TestMenuLoopPickError(t *testing.T) {
	errPick := errors.New("no tty")
	err := menuLoop(80, 24,
		func(string, int, int) error { t.Error("nothing should play"); return nil },
		func(int, int) (handheld.MenuResult, error) { return handheld.MenuResult{}, errPick })
	if !errors.Is(err, errPick) {
		t.Errorf("err = %v, expected %v", err, errPick)
	}
}
