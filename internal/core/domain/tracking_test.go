package domain

import "testing"

func TestNormalizeTrackingNumber(t *testing.T) {
	cases := map[string]string{
		"  1z999aa10123456784 \n": "1Z999AA10123456784",
		"LX123456789CN":           "LX123456789CN",
		"   ":                     "",
		"":                        "",
	}
	for in, want := range cases {
		if got := NormalizeTrackingNumber(in); got != want {
			t.Errorf("NormalizeTrackingNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPhase_String(t *testing.T) {
	if PhasePolling.String() != "polling" {
		t.Errorf("expected polling, got %s", PhasePolling)
	}
	if Phase(42).String() != "unknown" {
		t.Errorf("expected unknown for out-of-range phase, got %s", Phase(42))
	}
}

func TestPhase_Terminal(t *testing.T) {
	for _, p := range []Phase{PhaseIdle, PhaseRegistering, PhaseAwaiting, PhasePolling} {
		if p.Terminal() {
			t.Errorf("%s must not be terminal", p)
		}
	}
	if !PhaseDone.Terminal() || !PhaseFailed.Terminal() {
		t.Error("done and failed must be terminal")
	}
}
