package gameserver

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/anvil/internal/config"
	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/metrics"
	"github.com/udisondev/anvil/internal/model"
	"github.com/udisondev/anvil/internal/permission"
)

// resultObjectIDBase keeps listener-made result IDs clear of host item IDs.
const resultObjectIDBase uint32 = 0x40000000

// TaskRunner defers work to the next host tick.
type TaskRunner interface {
	RunTask(fn func())
}

// CombinationRecorder stores audit records of taken results.
type CombinationRecorder interface {
	RecordCombination(ctx context.Context, rec model.CombinationRecord) error
}

// AnvilListener takes over anvil combination: it builds the merged result when
// items are presented and decides whether the result may be taken.
//
// The host recomputes the repair cost after PrepareAnvilEvent handlers return,
// so the listener writes the cost twice: the result is set immediately and the
// cost is re-applied from a task on the next tick, which is the value the
// viewer ends up seeing.
type AnvilListener struct {
	cfg     config.Anvil
	catalog anvil.Catalog
	tasks   TaskRunner
	perms   permission.Checker
	audit   CombinationRecorder // optional

	nextID atomic.Uint32
}

// NewAnvilListener creates an anvil listener. perms and audit may be nil:
// nobody holds the override permission and nothing is recorded.
func NewAnvilListener(cfg config.Anvil, catalog anvil.Catalog, tasks TaskRunner, perms permission.Checker, audit CombinationRecorder) *AnvilListener {
	l := &AnvilListener{
		cfg:     cfg,
		catalog: catalog,
		tasks:   tasks,
		perms:   perms,
		audit:   audit,
	}
	l.nextID.Store(resultObjectIDBase)
	return l
}

// OnPrepareAnvil builds the merged result for the two input slots.
func (l *AnvilListener) OnPrepareAnvil(ctx context.Context, event *PrepareAnvilEvent) {
	inv := event.Inventory
	if inv == nil {
		return
	}
	first := inv.Item(model.AnvilFirstSlot)
	second := inv.Item(model.AnvilSecondSlot)
	if first == nil || second == nil {
		metrics.CombinationsPrepared.WithLabelValues(metrics.OutcomeIncomplete).Inc()
		return
	}

	res, ok := anvil.Merge(first, second, anvil.MergeRequest{
		RenameText:       inv.RenameText(),
		LimitRepairCost:  l.cfg.LimitRepairCost,
		LimitRepairValue: l.cfg.LimitRepairValue,
	}, l.catalog)
	if !ok {
		metrics.CombinationsPrepared.WithLabelValues(metrics.OutcomeUnmergeable).Inc()
		slog.DebugContext(ctx, "anvil: items not mergeable",
			"first", first.BaseType(),
			"second", second.BaseType())
		return
	}

	result := first.Clone(l.nextID.Add(1))
	result.SetDisplayName(res.DisplayName)
	result.SetEnchantmentsUnsafe(res.Enchantments)
	if res.Repaired {
		if err := result.SetDamage(res.Damage); err != nil {
			slog.WarnContext(ctx, "anvil: repair damage rejected", "damage", res.Damage, "error", err)
		}
	}
	event.Result = result

	metrics.CombinationsPrepared.WithLabelValues(metrics.OutcomeMerged).Inc()
	metrics.RepairCost.Observe(float64(res.RepairCost))

	slog.DebugContext(ctx, "anvil: combination prepared",
		"first", first.String(),
		"second", second.String(),
		"enchantments", res.Enchantments.String(),
		"repairCost", res.RepairCost)

	// Хост пересчитывает стоимость после обработчиков - пишем ещё раз на следующем тике.
	cost := res.RepairCost
	l.tasks.RunTask(func() {
		l.applyRepairCost(inv, cost)
	})
}

// applyRepairCost is the authoritative second write of the repair cost.
func (l *AnvilListener) applyRepairCost(inv *model.AnvilInventory, cost int) {
	if l.cfg.RemoveRepairLimit {
		inv.SetMaximumRepairCost(math.MaxInt32)
	}
	inv.SetRepairCost(cost)
	inv.SetProperty(model.PropertyRepairCost, cost)
	metrics.DeferredWrites.Inc()
}

// OnInventoryClick gates taking a result that carries conflicting enchantments
// and forces the take through for everything else.
func (l *AnvilListener) OnInventoryClick(ctx context.Context, event *InventoryClickEvent) {
	if event.Cancelled || event.Viewer == nil || event.Inventory == nil {
		return
	}
	inv := event.Inventory
	output := inv.Item(AnvilOutputSlot)
	if output == nil {
		return
	}
	if event.RawSlot != AnvilOutputSlot {
		metrics.Extractions.WithLabelValues(metrics.DecisionIgnored).Inc()
		return
	}

	enchants := anvil.Extract(output, l.catalog)
	override := l.hasOverride(event.Viewer)
	if !anvil.MayExtract(l.catalog, enchants, override) {
		event.Result = ClickDeny
		metrics.Extractions.WithLabelValues(metrics.DecisionDeniedConflict).Inc()
		slog.InfoContext(ctx, "anvil: conflicting result denied",
			"player", event.Viewer.Name(),
			"enchantments", enchants.String())
		return
	}

	event.Result = ClickAllow
	metrics.Extractions.WithLabelValues(metrics.DecisionAllowed).Inc()
	l.record(ctx, event.Viewer, inv, output, enchants)
}

func (l *AnvilListener) hasOverride(v *model.Viewer) bool {
	if l.perms == nil {
		return false
	}
	return l.perms.HasPermission(v.Name(), l.cfg.UnsafePermission)
}

// record writes the audit entry; failures are logged and dropped.
func (l *AnvilListener) record(ctx context.Context, v *model.Viewer, inv *model.AnvilInventory, output *model.Item, enchants anvil.Set) {
	if l.audit == nil {
		return
	}

	rec := model.CombinationRecord{
		ID:           uuid.New(),
		Player:       v.Name(),
		ResultType:   output.BaseType(),
		DisplayName:  output.DisplayName(),
		Enchantments: enchants,
		RepairCost:   max(inv.RepairCost(), 0),
		Conflicting:  anvil.HasConflicts(l.catalog, enchants),
		CreatedAt:    time.Now(),
	}
	if first := inv.Item(model.AnvilFirstSlot); first != nil {
		rec.FirstType = first.BaseType()
	}
	if second := inv.Item(model.AnvilSecondSlot); second != nil {
		rec.SecondType = second.BaseType()
	}

	if err := l.audit.RecordCombination(ctx, rec); err != nil {
		metrics.AuditErrors.Inc()
		slog.ErrorContext(ctx, "anvil: recording combination",
			"combinationID", rec.ID,
			"player", rec.Player,
			"error", err)
		return
	}
	slog.DebugContext(ctx, "anvil: combination recorded", "combinationID", rec.ID, "player", rec.Player)
}
