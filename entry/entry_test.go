package entry

import "testing"

func TestPrivalRoundTrip(t *testing.T) {
	for fac := Facility(0); fac <= 23; fac++ {
		for sev := Severity(0); sev <= 7; sev++ {
			p := Prival(fac, sev)
			gotFac, gotSev := SplitPrival(p)
			if gotFac != fac || gotSev != sev {
				t.Errorf("SplitPrival(Prival(%d,%d)) = (%d,%d)", fac, sev, gotFac, gotSev)
			}
		}
	}
}

func TestPrivalDefaults(t *testing.T) {
	if got := Prival(FacilityUser, SeverityInfo); got != 14 {
		t.Errorf("user.info prival = %d, want 14", got)
	}
	if got := Prival(FacilityLocal0, SeverityInfo); got != 134 {
		t.Errorf("local0.info prival = %d, want 134", got)
	}
}

func TestValidFacilitySeverity(t *testing.T) {
	if !ValidFacility(0) || !ValidFacility(23) || ValidFacility(24) || ValidFacility(-1) {
		t.Error("ValidFacility boundary check failed")
	}
	if !ValidSeverity(0) || !ValidSeverity(7) || ValidSeverity(8) || ValidSeverity(-1) {
		t.Error("ValidSeverity boundary check failed")
	}
}

func TestWithMessageFormatting(t *testing.T) {
	e := New().WithMessage("hello %d", 42)
	if e.Message != "hello 42" {
		t.Errorf("Message = %q, want %q", e.Message, "hello 42")
	}
}
