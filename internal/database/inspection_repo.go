package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/autovista/inspect-api/internal/models"
)

var (
	ErrInspectionNotFound = errors.New("inspection not found")
)

// CreateInspection inserts a new draft inspection with the given initial state
func (db *DB) CreateInspection(ctx context.Context, userID int, state models.InspectionState) (*models.Inspection, error) {
	vehicleInfo, items, err := marshalState(state)
	if err != nil {
		return nil, err
	}

	row := db.Pool.QueryRow(ctx, `
		INSERT INTO inspections (user_id, status, vehicle_info, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, user_id, status, vehicle_info, items, metrics, created_at, updated_at, completed_at
	`, userID, models.StatusDraft, vehicleInfo, items)

	return scanInspection(row)
}

// GetInspectionByID retrieves a single inspection by its ID
func (db *DB) GetInspectionByID(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, status, vehicle_info, items, metrics, created_at, updated_at, completed_at
		FROM inspections
		WHERE id = $1
	`, id)

	rec, err := scanInspection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ListInspections returns a paginated list of inspection summaries with
// optional filtering by owner and status
func (db *DB) ListInspections(ctx context.Context, params *models.InspectionListParams) ([]*models.InspectionSummary, int, error) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if params.UserID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, *params.UserID)
		argIndex++
	}

	if params.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *params.Status)
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	// Get total count
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inspections %s", whereClause)
	err := db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, status, vehicle_info, created_at, updated_at
		FROM inspections
		%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summaries []*models.InspectionSummary
	for rows.Next() {
		s := &models.InspectionSummary{}
		var vehicleInfo []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.Status, &vehicleInfo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(vehicleInfo, &s.VehicleInfo); err != nil {
			return nil, 0, fmt.Errorf("failed to decode vehicle info for inspection %s: %w", s.ID, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

// UpdateInspectionState replaces the stored state of a draft inspection. The
// whole state is written in one statement so a failed save never leaves a
// partially applied record.
func (db *DB) UpdateInspectionState(ctx context.Context, id uuid.UUID, state models.InspectionState) (*models.Inspection, error) {
	vehicleInfo, items, err := marshalState(state)
	if err != nil {
		return nil, err
	}

	row := db.Pool.QueryRow(ctx, `
		UPDATE inspections
		SET vehicle_info = $2, items = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, status, vehicle_info, items, metrics, created_at, updated_at, completed_at
	`, id, vehicleInfo, items)

	rec, err := scanInspection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}
	return rec, nil
}

// CompleteInspection marks an inspection as completed and stores the metrics
// snapshot taken at completion time. The snapshot is for display only; the
// stored state remains the source of truth.
func (db *DB) CompleteInspection(ctx context.Context, id uuid.UUID, metrics *models.Metrics) (*models.Inspection, error) {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metrics snapshot: %w", err)
	}

	row := db.Pool.QueryRow(ctx, `
		UPDATE inspections
		SET status = $2, metrics = $3, completed_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, status, vehicle_info, items, metrics, created_at, updated_at, completed_at
	`, id, models.StatusCompleted, metricsJSON)

	rec, err := scanInspection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}
	return rec, nil
}

// DeleteInspection removes an inspection
func (db *DB) DeleteInspection(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, "DELETE FROM inspections WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInspectionNotFound
	}
	return nil
}

func marshalState(state models.InspectionState) ([]byte, []byte, error) {
	vehicleInfo, err := json.Marshal(state.VehicleInfo)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode vehicle info: %w", err)
	}
	items, err := json.Marshal(state.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode items: %w", err)
	}
	return vehicleInfo, items, nil
}

func scanInspection(row pgx.Row) (*models.Inspection, error) {
	rec := &models.Inspection{}
	var vehicleInfo, items, metrics []byte

	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Status,
		&vehicleInfo,
		&items,
		&metrics,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(vehicleInfo, &rec.State.VehicleInfo); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle info for inspection %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(items, &rec.State.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items for inspection %s: %w", rec.ID, err)
	}
	if metrics != nil {
		rec.Metrics = &models.Metrics{}
		if err := json.Unmarshal(metrics, rec.Metrics); err != nil {
			return nil, fmt.Errorf("failed to decode metrics for inspection %s: %w", rec.ID, err)
		}
	}

	return rec, nil
}
