package username

import (
	"context"
	"errors"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"simple names", "Ana", "Gomez", "ana.gomez"},
		{"accented names folded", "José", "Gómez", "jose.gomez"},
		{"enye folded", "Juan", "Muñoz", "juan.munoz"},
		{"only first tokens used", "Ana María", "Gómez Pérez", "ana.gomez"},
		{"uppercase lowered", "ANA", "GOMEZ", "ana.gomez"},
		{"digits and dashes kept", "Ana2", "Gomez-Diaz", "ana2.gomez-diaz"},
		{"disallowed characters removed", "A!na", "G@mez", "ana.gmez"},
		{"both names empty", "", "", "user"},
		{"whitespace only", "   ", "   ", "user"},
		{"non latin characters only", "山田", "太郎", "user"},
		{"empty first name keeps dot", "", "Gomez", ".gomez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.firstName, tt.lastName); got != tt.want {
				t.Errorf("Derive(%q, %q) = %q, want %q", tt.firstName, tt.lastName, got, tt.want)
			}
		})
	}
}

func TestDeriveDeterministic(t *testing.T) {
	first := Derive("María José", "Fernández")
	for i := 0; i < 5; i++ {
		if got := Derive("María José", "Fernández"); got != first {
			t.Fatalf("Derive not deterministic: got %q and %q", first, got)
		}
	}
}

func takenSet(existing ...string) func(context.Context, string) (bool, error) {
	set := make(map[string]bool, len(existing))
	for _, name := range existing {
		set[name] = true
	}
	return func(_ context.Context, candidate string) (bool, error) {
		return set[candidate], nil
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		base     string
		existing []string
		want     string
	}{
		{"base free", "ana.gomez", nil, "ana.gomez"},
		{"base taken", "ana.gomez", []string{"ana.gomez"}, "ana.gomez1"},
		{"base and first suffix taken", "ana.gomez", []string{"ana.gomez", "ana.gomez1"}, "ana.gomez2"},
		{"gap in suffixes used", "ana.gomez", []string{"ana.gomez", "ana.gomez1", "ana.gomez3"}, "ana.gomez2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(ctx, tt.base, takenSet(tt.existing...))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The probe must test each candidate, not the bare base, or a taken base
// would loop forever.
func TestResolveProbesCandidates(t *testing.T) {
	var probed []string
	taken := func(_ context.Context, candidate string) (bool, error) {
		probed = append(probed, candidate)
		return candidate == "ana.gomez", nil
	}

	got, err := Resolve(context.Background(), "ana.gomez", taken)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "ana.gomez1" {
		t.Fatalf("Resolve() = %q, want %q", got, "ana.gomez1")
	}

	want := []string{"ana.gomez", "ana.gomez1"}
	if len(probed) != len(want) {
		t.Fatalf("probed %v, want %v", probed, want)
	}
	for i := range want {
		if probed[i] != want[i] {
			t.Errorf("probe %d = %q, want %q", i, probed[i], want[i])
		}
	}
}

func TestResolveTerminatesWhenStoreAlwaysTaken(t *testing.T) {
	taken := func(context.Context, string) (bool, error) { return true, nil }

	_, err := Resolve(context.Background(), "ana.gomez", taken)
	if err == nil {
		t.Fatal("Resolve() expected error when every candidate is taken")
	}
}

func TestResolvePropagatesProbeError(t *testing.T) {
	probeErr := errors.New("connection lost")
	taken := func(context.Context, string) (bool, error) { return false, probeErr }

	_, err := Resolve(context.Background(), "ana.gomez", taken)
	if !errors.Is(err, probeErr) {
		t.Fatalf("Resolve() error = %v, want wrapped %v", err, probeErr)
	}
}
