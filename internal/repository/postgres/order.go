package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/repository"
	"prokat-rental/internal/utils"

	"github.com/lib/pq"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT id, equipment_name, start_date, end_date, status, total, COALESCE(contract_number, '')
	          FROM orders ORDER BY created_at DESC, id DESC`

	logger.DatabaseCall("orders.List", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("orders.List", 0, err)
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var start, end time.Time
		if err := rows.Scan(&o.ID, &o.Equipment, &start, &end, &o.Status, &o.Total, &o.ContractNumber); err != nil {
			return nil, err
		}
		o.StartDate = utils.FormatDate(start)
		o.EndDate = utils.FormatDate(end)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.DatabaseResult("orders.List", int64(len(orders)), nil)
	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order, equipmentIDs []int64) ([]domain.OrderItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock rows in id order so concurrent orders cannot deadlock each other.
	unique := uniqueIDs(equipmentIDs)
	locked := make(map[int64]domain.Equipment, len(unique))
	for _, id := range unique {
		var e domain.Equipment
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, price, period, status FROM equipment WHERE id = $1 FOR UPDATE`, id).
			Scan(&e.ID, &e.Name, &e.Price, &e.Period, &e.Status)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("equipment %d: %w", id, domain.ErrEquipmentUnavailable)
		}
		if err != nil {
			return nil, err
		}
		if !e.IsAvailable() {
			return nil, fmt.Errorf("equipment %d is %s: %w", id, e.Status, domain.ErrEquipmentUnavailable)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE equipment SET status = $1 WHERE id = $2`, domain.EquipmentStatusRented, id); err != nil {
			return nil, err
		}
		locked[id] = e
	}

	// Duplicated ids are billed once per occurrence.
	items := make([]domain.OrderItem, 0, len(equipmentIDs))
	names := make([]string, 0, len(equipmentIDs))
	var total int64
	for _, id := range equipmentIDs {
		e := locked[id]
		items = append(items, domain.OrderItem{EquipmentID: id, Name: e.Name, Price: e.Price, Period: e.Period})
		names = append(names, e.Name)
		total += e.Price
	}

	now := time.Now()
	order.Equipment = strings.Join(names, ", ")
	order.Status = domain.OrderStatusPending
	order.Total = total

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (equipment_name, start_date, end_date, status, total, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		order.Equipment, order.StartDate, order.EndDate, order.Status, order.Total, now).Scan(&order.ID)
	if err != nil {
		return nil, err
	}

	order.ContractNumber = domain.ContractNumber(now.Year(), order.ID)
	if _, err := tx.ExecContext(ctx, `UPDATE orders SET contract_number = $1 WHERE id = $2`, order.ContractNumber, order.ID); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, equipment_id, name, price, period) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			order.ID, items[i].EquipmentID, items[i].Name, items[i].Price, items[i].Period).Scan(&items[i].ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("orders.Create", int64(len(items)), nil, "order_id", order.ID)
	return items, nil
}

func (r *orderRepository) ActivateStarted(ctx context.Context, day time.Time) ([]int64, error) {
	query := `UPDATE orders SET status = $1 WHERE status = $2 AND start_date <= $3 RETURNING id`
	logger.DatabaseCall("orders.ActivateStarted", query, "day", utils.FormatDate(day))

	ids, err := collectIDs(r.db.QueryContext(ctx, query, domain.OrderStatusActive, domain.OrderStatusPending, utils.FormatDate(day)))
	logger.DatabaseResult("orders.ActivateStarted", int64(len(ids)), err)
	return ids, err
}

func (r *orderRepository) CompleteFinished(ctx context.Context, day time.Time) ([]int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `UPDATE orders SET status = $1 WHERE status = $2 AND end_date < $3 RETURNING id`
	logger.DatabaseCall("orders.CompleteFinished", query, "day", utils.FormatDate(day))
	ids, err := collectIDs(tx.QueryContext(ctx, query, domain.OrderStatusCompleted, domain.OrderStatusActive, utils.FormatDate(day)))
	if err != nil {
		logger.DatabaseResult("orders.CompleteFinished", 0, err)
		return nil, err
	}
	if len(ids) == 0 {
		return ids, tx.Commit()
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1
		 WHERE status = $2 AND id IN (SELECT equipment_id FROM order_items WHERE order_id = ANY($3))`,
		domain.EquipmentStatusAvailable, domain.EquipmentStatusRented, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("orders.CompleteFinished", int64(len(ids)), nil)
	return ids, nil
}

func collectIDs(rows *sql.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
