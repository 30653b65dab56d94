package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodloop/internal/domain"
	"foodloop/internal/repository"
)

const createInventoryTable = `
CREATE TABLE IF NOT EXISTS inventory (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	area TEXT NOT NULL,
	expiration TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	owner TEXT NOT NULL
);
`

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createInventoryTable); err != nil {
		return fmt.Errorf("create inventory table: %w", err)
	}
	return nil
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.FoodItem) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO inventory (name, area, expiration, quantity, owner)
VALUES (?, ?, ?, ?, ?)`,
		item.Name,
		item.Area,
		item.Expiration,
		item.Quantity,
		item.Owner,
	)
	if err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("item last insert id: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.FoodItem, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, area, expiration, quantity, owner
FROM inventory
WHERE id = ?`,
		id,
	)

	var item domain.FoodItem
	if err := row.Scan(&item.ID, &item.Name, &item.Area, &item.Expiration, &item.Quantity, &item.Owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get item %d: %w", id, repository.ErrItemNotFound)
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, area, expiration, quantity, owner
FROM inventory
ORDER BY expiration ASC`)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *InventoryRepository) Search(ctx context.Context, field domain.SearchField, value string) ([]domain.FoodItem, error) {
	var (
		where string
		arg   any
	)
	switch field {
	case domain.SearchByArea:
		where, arg = `area LIKE ?`, "%"+value+"%"
	case domain.SearchByDonor:
		where, arg = `owner LIKE ?`, "%"+value+"%"
	case domain.SearchByExpiration:
		where, arg = `expiration = ?`, value
	default:
		return nil, fmt.Errorf("unknown search field %q", field)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, area, expiration, quantity, owner
FROM inventory
WHERE `+where, arg)
	if err != nil {
		return nil, fmt.Errorf("search inventory: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *InventoryRepository) DecrementQuantity(ctx context.Context, id int64, by int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE inventory
SET quantity = quantity - ?
WHERE id = ? AND quantity >= ?`,
		by, id, by,
	)
	if err != nil {
		return false, fmt.Errorf("decrement item %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("decrement rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *InventoryRepository) DeleteIfQuantity(ctx context.Context, id int64, quantity int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM inventory
WHERE id = ? AND quantity = ?`,
		id, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("delete item %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *InventoryRepository) TotalsByArea(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT area, SUM(quantity)
FROM inventory
GROUP BY area`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	totals := map[string]int{}
	for rows.Next() {
		var (
			area  string
			total int
		)
		if err := rows.Scan(&area, &total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals[area] = total
	}

	return totals, rows.Err()
}

func scanItems(rows *sql.Rows) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	for rows.Next() {
		var item domain.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Area, &item.Expiration, &item.Quantity, &item.Owner); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
