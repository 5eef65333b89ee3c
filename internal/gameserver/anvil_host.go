package gameserver

import (
	"context"
	"log/slog"

	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/model"
)

// renameCost is what the host adds to its own repair cost for a rename.
const renameCost = 1

// Ticker drains deferred tasks once per host tick.
type Ticker interface {
	TaskRunner
	RunPending() int
}

// AnvilHost plays the game side of an anvil: it fires events to the listener,
// then finalizes the combination with its own rules, overwriting the repair
// cost, the same way the game does after plugins have run.
type AnvilHost struct {
	listener *AnvilListener
	ticker   Ticker
}

// NewAnvilHost creates a host driving listener. ticker must be the task runner
// the listener schedules on.
func NewAnvilHost(listener *AnvilListener, ticker Ticker) *AnvilHost {
	return &AnvilHost{listener: listener, ticker: ticker}
}

// Prepare recomputes the result slot after an input changed.
// Returns the result placed in the output slot (nil if none).
func (h *AnvilHost) Prepare(ctx context.Context, inv *model.AnvilInventory) *model.Item {
	event := &PrepareAnvilEvent{Inventory: inv}
	h.listener.OnPrepareAnvil(ctx, event)

	inv.SetItem(model.AnvilResultSlot, event.Result)
	if event.Result == nil {
		inv.SetRepairCost(0)
		inv.SetProperty(model.PropertyRepairCost, 0)
		return nil
	}

	// Host finalization: its own cost formula wins until the deferred write.
	cost := hostRepairCost(inv)
	inv.SetRepairCost(cost)
	inv.SetProperty(model.PropertyRepairCost, cost)
	return event.Result
}

// Tick runs the work deferred during the current processing cycle.
func (h *AnvilHost) Tick() int {
	return h.ticker.RunPending()
}

// AwaitTick blocks until every task deferred so far has run on the ticker's
// own loop (see scheduler.TaskManager.Start).
func (h *AnvilHost) AwaitTick(ctx context.Context) error {
	done := make(chan struct{})
	h.ticker.RunTask(func() { close(done) })

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Click handles a click on rawSlot. When the click takes the result, both
// inputs are consumed and the result is handed to the viewer.
func (h *AnvilHost) Click(ctx context.Context, viewer *model.Viewer, inv *model.AnvilInventory, rawSlot int) (*model.Item, bool) {
	event := &InventoryClickEvent{Viewer: viewer, Inventory: inv, RawSlot: rawSlot}
	h.listener.OnInventoryClick(ctx, event)

	if rawSlot != AnvilOutputSlot {
		return nil, false
	}

	switch event.Result {
	case ClickDeny:
		return nil, false
	case ClickDefault:
		if inv.Item(AnvilOutputSlot) == nil || inv.TooExpensive() {
			return nil, false
		}
	}

	item := inv.TakeResult()
	if item == nil {
		return nil, false
	}
	if viewer != nil {
		viewer.Give(item)
	}
	slog.DebugContext(ctx, "anvil: result taken", "item", item.String(), "decision", event.Result)
	return item, true
}

// hostRepairCost is the game's own formula: prior costs, plus one per
// enchantment level carried by the second item, plus one for a rename.
func hostRepairCost(inv *model.AnvilInventory) int {
	first := inv.Item(model.AnvilFirstSlot)
	second := inv.Item(model.AnvilSecondSlot)
	if first == nil || second == nil {
		return 0
	}

	cost := first.RepairCost() + second.RepairCost()
	for _, lvl := range anvil.Extract(second, nil) {
		cost += lvl
	}
	if inv.RenameText() != "" && inv.RenameText() != first.DisplayName() {
		cost += renameCost
	}
	return cost
}
