package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresRepository persists the catalog across restarts.
// Wired only when DATABASE_URL is set; the in-memory repository
// remains the default.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, item MenuItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, course)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.Name, item.Description, item.Price.String(), item.Course)
	return err
}

func (r *PostgresRepository) Replace(ctx context.Context, item MenuItem) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, course = $5
		WHERE id = $1
	`, item.ID, item.Name, item.Description, item.Price.String(), item.Course)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*MenuItem, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, price::text, course
		FROM menu_items
		WHERE id = $1
	`, id)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price::text, course
		FROM menu_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*MenuItem, error) {
	var item MenuItem
	var price string

	if err := row.Scan(&item.ID, &item.Name, &item.Description, &price, &item.Course); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	item.Price = parsed

	return &item, nil
}
