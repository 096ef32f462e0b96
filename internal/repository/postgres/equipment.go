package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/repository"

	"github.com/lib/pq"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, name, category, price, period, status, COALESCE(image, ''), specs`

func (r *equipmentRepository) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE 1=1`

	var args []interface{}
	argIdx := 1

	if filter.HasCategory() {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, string(filter.Category))
		argIdx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	query += " ORDER BY id"

	logger.DatabaseCall("equipment.List", query, "category", filter.Category, "search", filter.Search)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("equipment.List", 0, err)
		return nil, err
	}
	defer rows.Close()

	items := []domain.Equipment{}
	for rows.Next() {
		var e domain.Equipment
		var specs []string
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Price, &e.Period, &e.Status, &e.Image, pq.Array(&specs)); err != nil {
			return nil, err
		}
		if specs == nil {
			specs = []string{}
		}
		e.Specs = specs
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.DatabaseResult("equipment.List", int64(len(items)), nil)
	return items, nil
}
