package models

import "fmt"

// phaseKind enumerates the four lifecycle states an item can occupy.
type phaseKind uint8

const (
	phaseChecking  phaseKind = iota // in stock, awaiting a stock-check decision
	phaseFlagged                    // marked during a stock-check pass as needing replenishment
	phaseListed                     // on the active shopping list
	phaseCollected                  // on the list and physically placed in the cart
)

// Phase is the lifecycle state of an Item. The legacy store encodes this as
// three booleans (to_buy, is_packed, is_checking); Phase makes the illegal
// combinations unrepresentable and projects to the boolean triad only at the
// persistence boundary via Flags.
//
// The zero value is Checking.
type Phase struct {
	kind phaseKind
}

// Checking returns the "in stock, not flagged" phase.
func Checking() Phase { return Phase{kind: phaseChecking} }

// Flagged returns the "in stock, marked for replenishment" phase.
func Flagged() Phase { return Phase{kind: phaseFlagged} }

// Listed returns the "on the shopping list, not yet in the cart" phase.
func Listed() Phase { return Phase{kind: phaseListed} }

// Collected returns the "on the shopping list and in the cart" phase.
func Collected() Phase { return Phase{kind: phaseCollected} }

// NeedsPurchase reports whether the item is on the active shopping list.
func (p Phase) NeedsPurchase() bool {
	return p.kind == phaseListed || p.kind == phaseCollected
}

// IsFlagged reports whether the item was marked during the current stock-check pass.
func (p Phase) IsFlagged() bool { return p.kind == phaseFlagged }

// IsCollected reports whether the item has been placed in the cart.
func (p Phase) IsCollected() bool { return p.kind == phaseCollected }

// String returns the phase name for logs and API responses.
func (p Phase) String() string {
	switch p.kind {
	case phaseFlagged:
		return "flagged"
	case phaseListed:
		return "listed"
	case phaseCollected:
		return "collected"
	default:
		return "checking"
	}
}

// ToggleFlag flips the stock-check flag. Only valid while the item is not on
// the shopping list.
func (p Phase) ToggleFlag() (Phase, error) {
	switch p.kind {
	case phaseChecking:
		return Flagged(), nil
	case phaseFlagged:
		return Checking(), nil
	default:
		return p, fmt.Errorf("cannot toggle stock-check flag in phase %q", p)
	}
}

// ToggleCollected flips the in-cart mark. Only valid while the item is on the
// shopping list.
func (p Phase) ToggleCollected() (Phase, error) {
	switch p.kind {
	case phaseListed:
		return Collected(), nil
	case phaseCollected:
		return Listed(), nil
	default:
		return p, fmt.Errorf("cannot toggle cart mark in phase %q", p)
	}
}

// ConfirmToList moves a flagged item onto the shopping list. Items in any
// other phase are returned unchanged; the confirm batch only targets flagged
// items.
func (p Phase) ConfirmToList() Phase {
	if p.kind == phaseFlagged {
		return Listed()
	}
	return p
}

// ResetForCheck is the finish-shopping-trip transition: regardless of prior
// phase the item goes back to Flagged so the next stock check starts with
// everything marked for review.
func (p Phase) ResetForCheck() Phase {
	return Flagged()
}

// Editable reports whether the shopping fields (quantity, price) may be
// overwritten: only while Listed and not yet collected.
func (p Phase) Editable() bool { return p.kind == phaseListed }

// Flags projects the phase onto the legacy boolean triad used by the store.
func (p Phase) Flags() (toBuy, isPacked, isChecking bool) {
	switch p.kind {
	case phaseFlagged:
		return false, false, true
	case phaseListed:
		return true, false, false
	case phaseCollected:
		return true, true, false
	default:
		return false, false, false
	}
}

// PhaseFromFlags rebuilds a Phase from the stored boolean triad. Rows written
// by older clients may carry to_buy and is_checking together; the flag is
// cleared in that case, matching how every transition resolves the conflict.
func PhaseFromFlags(toBuy, isPacked, isChecking bool) Phase {
	if toBuy {
		if isPacked {
			return Collected()
		}
		return Listed()
	}
	if isChecking {
		return Flagged()
	}
	return Checking()
}
