package models

import "testing"

func TestPhase_ZeroValueIsChecking(t *testing.T) {
	var p Phase
	if p != Checking() {
		t.Fatalf("zero value = %v, want Checking", p)
	}
	if p.NeedsPurchase() || p.IsFlagged() || p.IsCollected() {
		t.Fatal("zero value must not report any active flag")
	}
}

func TestPhase_ToggleFlag(t *testing.T) {
	t.Run("checking becomes flagged", func(t *testing.T) {
		p, err := Checking().ToggleFlag()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsFlagged() {
			t.Fatalf("got %v, want flagged", p)
		}
	})

	t.Run("flagged becomes checking", func(t *testing.T) {
		p, err := Flagged().ToggleFlag()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != Checking() {
			t.Fatalf("got %v, want checking", p)
		}
	})

	t.Run("double toggle returns to the original phase", func(t *testing.T) {
		once, _ := Checking().ToggleFlag()
		twice, _ := once.ToggleFlag()
		if twice != Checking() {
			t.Fatalf("got %v after two toggles, want checking", twice)
		}
	})

	t.Run("rejected while on the shopping list", func(t *testing.T) {
		if _, err := Listed().ToggleFlag(); err == nil {
			t.Fatal("expected error toggling flag on a listed item")
		}
		if _, err := Collected().ToggleFlag(); err == nil {
			t.Fatal("expected error toggling flag on a collected item")
		}
	})
}

func TestPhase_ToggleCollected(t *testing.T) {
	t.Run("listed becomes collected", func(t *testing.T) {
		p, err := Listed().ToggleCollected()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsCollected() {
			t.Fatalf("got %v, want collected", p)
		}
	})

	t.Run("collected becomes listed", func(t *testing.T) {
		p, err := Collected().ToggleCollected()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != Listed() {
			t.Fatalf("got %v, want listed", p)
		}
	})

	t.Run("rejected while in stock", func(t *testing.T) {
		if _, err := Checking().ToggleCollected(); err == nil {
			t.Fatal("expected error toggling cart mark on an in-stock item")
		}
		if _, err := Flagged().ToggleCollected(); err == nil {
			t.Fatal("expected error toggling cart mark on a flagged item")
		}
	})
}

func TestPhase_ConfirmToList(t *testing.T) {
	tests := []struct {
		name string
		in   Phase
		want Phase
	}{
		{"flagged moves to listed", Flagged(), Listed()},
		{"checking untouched", Checking(), Checking()},
		{"listed untouched", Listed(), Listed()},
		{"collected untouched", Collected(), Collected()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ConfirmToList(); got != tt.want {
				t.Fatalf("ConfirmToList(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPhase_ResetForCheck(t *testing.T) {
	for _, p := range []Phase{Checking(), Flagged(), Listed(), Collected()} {
		if got := p.ResetForCheck(); got != Flagged() {
			t.Fatalf("ResetForCheck(%v) = %v, want flagged", p, got)
		}
	}
}

func TestPhase_Flags(t *testing.T) {
	tests := []struct {
		name                      string
		in                        Phase
		toBuy, isPacked, checking bool
	}{
		{"checking", Checking(), false, false, false},
		{"flagged", Flagged(), false, false, true},
		{"listed", Listed(), true, false, false},
		{"collected", Collected(), true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toBuy, isPacked, isChecking := tt.in.Flags()
			if toBuy != tt.toBuy || isPacked != tt.isPacked || isChecking != tt.checking {
				t.Fatalf("Flags() = (%v, %v, %v), want (%v, %v, %v)",
					toBuy, isPacked, isChecking, tt.toBuy, tt.isPacked, tt.checking)
			}
		})
	}
}

func TestPhaseFromFlags(t *testing.T) {
	t.Run("round-trips every phase", func(t *testing.T) {
		for _, p := range []Phase{Checking(), Flagged(), Listed(), Collected()} {
			if got := PhaseFromFlags(p.Flags()); got != p {
				t.Fatalf("round trip of %v yielded %v", p, got)
			}
		}
	})

	t.Run("normalizes to_buy with a stale check flag", func(t *testing.T) {
		if got := PhaseFromFlags(true, false, true); got != Listed() {
			t.Fatalf("got %v, want listed with the check flag cleared", got)
		}
		if got := PhaseFromFlags(true, true, true); got != Collected() {
			t.Fatalf("got %v, want collected with the check flag cleared", got)
		}
	})
}

func TestPhase_Editable(t *testing.T) {
	if !Listed().Editable() {
		t.Fatal("listed items must be editable")
	}
	for _, p := range []Phase{Checking(), Flagged(), Collected()} {
		if p.Editable() {
			t.Fatalf("%v must not be editable", p)
		}
	}
}
