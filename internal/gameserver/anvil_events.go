package gameserver

import "github.com/udisondev/anvil/internal/model"

// AnvilOutputSlot is the raw slot index of the anvil result.
const AnvilOutputSlot = model.AnvilResultSlot

// PrepareAnvilEvent fires when both anvil inputs are present and the host is
// about to compute a result. Listeners set Result; nil leaves the anvil empty.
type PrepareAnvilEvent struct {
	Inventory *model.AnvilInventory
	Result    *model.Item
}

// ClickResult is a listener's verdict on an inventory click.
type ClickResult int

const (
	// ClickDefault lets the host apply its own rules.
	ClickDefault ClickResult = iota
	// ClickAllow forces the click through (even when "too expensive").
	ClickAllow
	// ClickDeny blocks the click.
	ClickDeny
)

// String returns human-readable click result name.
func (r ClickResult) String() string {
	switch r {
	case ClickDefault:
		return "Default"
	case ClickAllow:
		return "Allow"
	case ClickDeny:
		return "Deny"
	default:
		return "Unknown"
	}
}

// InventoryClickEvent fires when someone clicks a slot of an open anvil.
type InventoryClickEvent struct {
	// Viewer is nil when the clicker is not a player.
	Viewer    *model.Viewer
	Inventory *model.AnvilInventory
	RawSlot   int
	Result    ClickResult
	// Cancelled events are skipped by the anvil listener.
	Cancelled bool
}
