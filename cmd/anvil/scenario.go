package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/anvil/internal/data"
	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/gameserver"
	"github.com/udisondev/anvil/internal/model"
)

// Scenario describes one anvil interaction replayed by the CLI.
type Scenario struct {
	Viewer    string       `yaml:"viewer"`
	Rename    string       `yaml:"rename"`
	ClickSlot *int         `yaml:"click_slot"`
	First     ScenarioItem `yaml:"first"`
	Second    ScenarioItem `yaml:"second"`
}

// ScenarioItem describes one input item.
type ScenarioItem struct {
	Type         string         `yaml:"type"`
	Name         string         `yaml:"name"`
	RepairCost   int            `yaml:"repair_cost"`
	Damage       int            `yaml:"damage"`
	Enchantments map[string]int `yaml:"enchantments"`
}

// Slot returns the clicked slot (output slot when unset).
func (s Scenario) Slot() int {
	if s.ClickSlot == nil {
		return gameserver.AnvilOutputSlot
	}
	return *s.ClickSlot
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if sc.First.Type == "" || sc.Second.Type == "" {
		return Scenario{}, errors.New("scenario needs both first.type and second.type")
	}
	return sc, nil
}

// Inventory builds an anvil inventory holding the scenario's inputs.
// Catalog data must be loaded.
func (s Scenario) Inventory() (*model.AnvilInventory, error) {
	first, err := s.First.build(1)
	if err != nil {
		return nil, fmt.Errorf("building first item: %w", err)
	}
	second, err := s.Second.build(2)
	if err != nil {
		return nil, fmt.Errorf("building second item: %w", err)
	}

	inv := model.NewAnvilInventory()
	inv.SetItem(model.AnvilFirstSlot, first)
	inv.SetItem(model.AnvilSecondSlot, second)
	inv.SetRenameText(s.Rename)
	return inv, nil
}

func (si ScenarioItem) build(objectID uint32) (*model.Item, error) {
	tmpl := data.GetItemTemplate(si.Type)
	if tmpl == nil {
		return nil, fmt.Errorf("unknown item type %q", si.Type)
	}

	item, err := model.NewItem(objectID, tmpl)
	if err != nil {
		return nil, err
	}

	// Scenario items may hold anything, conflicting sets included.
	set := make(anvil.Set, len(si.Enchantments))
	for kind, level := range si.Enchantments {
		if data.GetEnchantmentDef(kind) == nil {
			return nil, fmt.Errorf("unknown enchantment %q", kind)
		}
		set[anvil.Kind(kind)] = level
	}
	item.SetEnchantmentsUnsafe(set)

	if err := item.SetRepairCost(si.RepairCost); err != nil {
		return nil, err
	}
	if err := item.SetDamage(si.Damage); err != nil {
		return nil, err
	}
	item.SetDisplayName(si.Name)
	return item, nil
}
