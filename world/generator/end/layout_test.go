package end

import (
	"strings"
	"testing"
)

func TestVanillaLayoutValid(t *testing.T) {
	if err := VanillaLayout().Validate(); err != nil {
		t.Fatalf("vanilla layout invalid: %v", err)
	}
	if float64(float32(-0.9)) != VanillaLayout().IslandThreshold {
		t.Fatalf("expected the island threshold to be -0.9 rounded to float32")
	}
}

func TestLayoutValidateReportsEveryProblem(t *testing.T) {
	l := VanillaLayout()
	l.Version = "1.0"
	l.Octaves = 0
	l.HeightMin, l.HeightMax = 10, -10
	err := l.Validate()
	if err == nil {
		t.Fatalf("expected invalid layout to fail validation")
	}
	for _, want := range []string{"semantic version", "octave count", "height bounds"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %q, got %v", want, err)
		}
	}
}

func TestLayoutBandsOrdered(t *testing.T) {
	l := VanillaLayout()
	l.SmallIslandsBelow = 50
	if err := l.Validate(); err == nil || !strings.Contains(err.Error(), "out of order") {
		t.Fatalf("expected out of order bands to be rejected, got %v", err)
	}
}

func TestLayoutCompatible(t *testing.T) {
	l := VanillaLayout()
	cases := map[string]bool{
		"v1.0.0":  true,
		"v1.0.7":  true,
		"v1.1.0":  false,
		"v2.0.0":  false,
		"garbage": false,
	}
	for version, want := range cases {
		if got := l.Compatible(version); got != want {
			t.Fatalf("Compatible(%q) = %v, want %v", version, got, want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	conf := Config{}.withDefaults()
	if conf.Log == nil || conf.CacheShards <= 0 || conf.CacheShardSize != 4096 {
		t.Fatalf("defaults not applied: %+v", conf)
	}
	if conf.Layout != VanillaLayout() {
		t.Fatalf("expected vanilla layout by default")
	}
}

func TestLayoutFingerprint(t *testing.T) {
	a, b := VanillaLayout(), VanillaLayout()
	b.Version = "v1.0.9"
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("expected the version not to affect the fingerprint")
	}
	for name, edit := range map[string]func(*Layout){
		"octaves":     func(l *Layout) { l.Octaves = 5 },
		"core radius": func(l *Layout) { l.CoreRadius = 32 },
		"threshold":   func(l *Layout) { l.IslandThreshold = -0.8 },
		"bands":       func(l *Layout) { l.HighlandsAbove = 41 },
	} {
		c := VanillaLayout()
		edit(&c)
		if c.Fingerprint() == a.Fingerprint() {
			t.Fatalf("expected changing the %v to change the fingerprint", name)
		}
	}
}
