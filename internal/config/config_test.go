package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, id := range DefaultIDs() {
		t.Run(id, func(t *testing.T) {
			want, ok := Default(id)
			if !ok {
				t.Fatalf("Default(%q) missing", id)
			}
			got := want
			if err := yaml.Unmarshal(GetDefaultYAML(id), &got); err != nil {
				t.Fatalf("embedded yaml: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("embedded yaml differs from hardcoded default:\n got %+v\nwant %+v", got, want)
			}
			if err := Validate(got); err != nil {
				t.Errorf("default config invalid: %v", err)
			}
		})
	}
}

func TestFullEmbeddedYAMLStandsAlone(t *testing.T) {
	for _, id := range []string{"ket", "ket-partikel"} {
		var got Demo
		if err := yaml.Unmarshal(GetDefaultYAML(id), &got); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		want, _ := Default(id)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: yaml decoded onto zero value differs from default", id)
		}
	}
}

func TestDefaultUnknown(t *testing.T) {
	if _, ok := Default("nope"); ok {
		t.Error("Default for unknown demo should report false")
	}
	if GetDefaultYAML("nope") != nil {
		t.Error("GetDefaultYAML for unknown demo should be nil")
	}
}

// isolate points the user and local config lookups at empty temp dirs.
func isolate(t *testing.T) (home, local string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	local = t.TempDir()
	prev := localConfigDir
	localConfigDir = local
	t.Cleanup(func() { localConfigDir = prev })
	return home, local
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, local := isolate(t)
	userPath := filepath.Join(home, ".bounce", "configs", "ket.yaml")
	localPath := filepath.Join(local, "ket.yaml")
	customPath := filepath.Join(t.TempDir(), "custom.yaml")

	cfg, src, err := LoadWithSource("ket", "")
	if err != nil {
		t.Fatalf("embedded load: %v", err)
	}
	if src != SourceEmbedded || cfg.Title != "Bouncing Ket" {
		t.Errorf("got source %s title %q, want embedded default", src, cfg.Title)
	}

	writeFile(t, localPath, "title: local\n")
	cfg, src, _ = LoadWithSource("ket", "")
	if src != SourceLocal || cfg.Title != "local" {
		t.Errorf("got source %s title %q, want local", src, cfg.Title)
	}

	writeFile(t, userPath, "title: user\n")
	cfg, src, _ = LoadWithSource("ket", "")
	if src != SourceUser || cfg.Title != "user" {
		t.Errorf("got source %s title %q, want user", src, cfg.Title)
	}

	writeFile(t, customPath, "title: custom\n")
	cfg, src, _ = LoadWithSource("ket", customPath)
	if src != SourceCustom || cfg.Title != "custom" {
		t.Errorf("got source %s title %q, want custom", src, cfg.Title)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	_, local := isolate(t)
	writeFile(t, filepath.Join(local, "ket-partikel.yaml"), "particles:\n  capacity: 7\n")

	cfg, err := Load("ket-partikel", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particles.Capacity != 7 {
		t.Errorf("capacity = %d, want 7", cfg.Particles.Capacity)
	}
	if cfg.Particles.Burst.Min != 10 || cfg.Particles.Burst.Max != 20 {
		t.Errorf("burst = %+v, want default 10..20", cfg.Particles.Burst)
	}
	if cfg.Screen.Width != 800 {
		t.Errorf("screen width = %d, want default 800", cfg.Screen.Width)
	}
}

func TestLoadSkipsBrokenLocalFile(t *testing.T) {
	_, local := isolate(t)
	writeFile(t, filepath.Join(local, "hello.yaml"), "screen: [not, a, map\n")

	cfg, src, err := LoadWithSource("hello", "")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded || cfg.Screen.Width != 400 {
		t.Errorf("got source %s width %d, want embedded 400", src, cfg.Screen.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := Load("ket", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "title: [unterminated\n")
	_, err := Load("ket", bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("err = %v, want parse failure", err)
	}
}

func TestLoadUnknownDemo(t *testing.T) {
	isolate(t)
	if _, err := Load("nope", ""); err == nil {
		t.Error("unknown demo without any config file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultHelloConfig()
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "tick_rate: 50") {
		t.Errorf("marshalled yaml missing tick_rate:\n%s", data)
	}

	var back Demo
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("round trip changed the config")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
		wantErr  bool
	}{
		{"white", color.RGBA{255, 255, 255, 255}, false},
		{"Black", color.RGBA{0, 0, 0, 255}, false},
		{" cornflowerblue ", color.RGBA{100, 149, 237, 255}, false},
		{"transparent", color.RGBA{}, false},
		{"#ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"#FFFFFF00", color.RGBA{255, 255, 255, 0}, false},
		{"", color.RGBA{}, true},
		{"#fff", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"blurple", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}

	fallback := color.RGBA{1, 2, 3, 4}
	if got := ColorOr("nonsense", fallback); got != fallback {
		t.Errorf("ColorOr fallback = %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Demo)
		field  string
	}{
		{"zero width", func(d *Demo) { d.Screen.Width = 0 }, "screen"},
		{"zero tick rate", func(d *Demo) { d.Screen.TickRate = 0 }, "screen.tick_rate"},
		{"bad background", func(d *Demo) { d.Screen.Background = "nope" }, "screen.background"},
		{"unknown kind", func(d *Demo) { d.Sprite.Kind = "mesh" }, "sprite.kind"},
		{"missing texture", func(d *Demo) { d.Sprite.Texture = "" }, "sprite.texture"},
		{"unknown easing", func(d *Demo) { d.Pulse.Easing = "wobbly" }, "pulse.easing"},
		{"zero decay", func(d *Demo) { d.Pulse.DecayRate = 0 }, "pulse.decay_rate"},
		{"inverted burst", func(d *Demo) { d.Particles.Burst.Min, d.Particles.Burst.Max = 5, 1 }, "particles.burst"},
		{"zero lifetime", func(d *Demo) { d.Particles.Lifetime.Min = 0 }, "particles.lifetime"},
		{"damping above one", func(d *Demo) { d.Particles.Damping = 1.5 }, "particles.damping"},
		{"bad end colour", func(d *Demo) { d.Particles.EndColor = "#12" }, "particles.end_color"},
		{"loud", func(d *Demo) { d.Audio.Volume = 2 }, "audio.volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKetConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q does not mention %s", err, tc.field)
			}
		})
	}

	cfg := DefaultHelloConfig()
	cfg.Sprite.Font = ""
	cfg.Crank.StepSize = 0
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "sprite.font") || !strings.Contains(err.Error(), "crank.step_size") {
		t.Errorf("err = %v, want font and crank errors together", err)
	}
}

func TestParticlesEmitter(t *testing.T) {
	ec, err := DefaultKetPartikelConfig().Particles.Emitter()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Capacity != 100 || ec.Burst.Min != 10 || ec.Burst.Max != 20 {
		t.Errorf("capacity/burst = %d/%+v", ec.Capacity, ec.Burst)
	}
	if math.Abs(ec.Angle.Max-2*math.Pi) > 1e-12 {
		t.Errorf("angle max = %v, want 2π", ec.Angle.Max)
	}
	if ec.Gravity.Y != 50 {
		t.Errorf("gravity = %+v, want (0, 50)", ec.Gravity)
	}
	if ec.EndColor != (color.RGBA{255, 255, 255, 0}) {
		t.Errorf("end colour = %v, want transparent white", ec.EndColor)
	}

	p := DefaultKetConfig().Particles
	p.StartColor = "nope"
	if _, err := p.Emitter(); err == nil {
		t.Error("bad start colour should fail")
	}
}

func TestRuntime(t *testing.T) {
	rc := DefaultHelloConfig().Runtime(42)
	if rc.ScreenW != 400 || rc.ScreenH != 240 || rc.TickRate != 50 || rc.Seed != 42 || !rc.ShowFPS {
		t.Errorf("Runtime = %+v", rc)
	}
}
