package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/model"
)

// CombinationRepository manages the anvil_combinations audit table.
type CombinationRepository struct {
	db *pgxpool.Pool
}

// NewCombinationRepository creates a new CombinationRepository.
func NewCombinationRepository(db *pgxpool.Pool) *CombinationRepository {
	return &CombinationRepository{db: db}
}

// RecordCombination inserts an audit record. A zero ID is replaced with a new
// UUID and a zero CreatedAt with the current time.
func (r *CombinationRepository) RecordCombination(ctx context.Context, rec model.CombinationRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	enchants := rec.Enchantments
	if enchants == nil {
		enchants = anvil.Set{}
	}

	query := `
		INSERT INTO anvil_combinations
			(id, player, first_type, second_type, result_type, display_name,
			 enchantments, repair_cost, conflicting, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.Player, rec.FirstType, rec.SecondType, rec.ResultType, rec.DisplayName,
		enchants, rec.RepairCost, rec.Conflicting, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting combination %s for %q: %w", rec.ID, rec.Player, err)
	}
	return nil
}

// ListByPlayer returns the most recent combinations of a player, newest first.
func (r *CombinationRepository) ListByPlayer(ctx context.Context, player string, limit int) ([]model.CombinationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, player, first_type, second_type, result_type, display_name,
		       enchantments, repair_cost, conflicting, created_at
		FROM anvil_combinations
		WHERE lower(player) = lower($1)
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, player, limit)
	if err != nil {
		return nil, fmt.Errorf("querying combinations for %q: %w", player, err)
	}
	defer rows.Close()

	records := make([]model.CombinationRecord, 0, limit)
	for rows.Next() {
		var rec model.CombinationRecord
		if err := rows.Scan(
			&rec.ID, &rec.Player, &rec.FirstType, &rec.SecondType, &rec.ResultType, &rec.DisplayName,
			&rec.Enchantments, &rec.RepairCost, &rec.Conflicting, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning combination row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating combination rows: %w", err)
	}

	return records, nil
}
