package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/anvil/internal/game/anvil"
)

// CombinationRecord - запись аудита: результат наковальни, забранный игроком.
type CombinationRecord struct {
	ID           uuid.UUID
	Player       string
	FirstType    string
	SecondType   string
	ResultType   string
	DisplayName  string
	Enchantments anvil.Set
	RepairCost   int
	// Conflicting is true when the result carried conflicting enchantments
	// and was taken under the override permission.
	Conflicting bool
	CreatedAt   time.Time
}
