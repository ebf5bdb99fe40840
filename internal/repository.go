package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/ZEBDA1/McHess/internal/model"
)

const (
	packFields  = "id, name, description, points_range, price"
	orderFields = "id, pack_id, pack_name, customer_email, amount, status, COALESCE(delivery_info, ''), created_at"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type IRepository interface {
	GetPacks(context.Context) ([]model.Pack, error)
	GetPackByID(context.Context, string) (model.Pack, error)
	UpdatePack(context.Context, string, model.PackInput) (model.Pack, error)
	CreateOrder(context.Context, model.Order) error
	GetOrderByID(context.Context, string) (model.Order, error)
	GetOrders(context.Context) ([]model.Order, error)
	GetOrdersByEmail(context.Context, string) ([]model.Order, error)
	SetOrderStatus(context.Context, string, string) error
	DeliverOrder(context.Context, string, string) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(embedMigrations)
	err = goose.Up(conn, "migrations")
	if err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) GetPacks(ctx context.Context) ([]model.Pack, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+packFields+" FROM packs ORDER BY price ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packs []model.Pack
	for rows.Next() {
		var p model.Pack
		err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.PointsRange, &p.Price)
		if err != nil {
			return nil, err
		}

		packs = append(packs, p)
	}

	return packs, rows.Err()
}

func (r Repository) GetPackByID(ctx context.Context, id string) (model.Pack, error) {
	var p model.Pack
	row := r.Conn.QueryRowContext(ctx, "SELECT "+packFields+" FROM packs WHERE id = $1", id)

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PointsRange, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Pack{}, ErrPackNotFound
	}
	if err != nil {
		return model.Pack{}, err
	}

	return p, nil
}

func (r Repository) UpdatePack(ctx context.Context, id string, i model.PackInput) (model.Pack, error) {
	res, err := r.Conn.ExecContext(ctx, "UPDATE packs SET name = $1, description = $2, points_range = $3, price = $4 WHERE id = $5",
		i.Name, i.Description, i.PointsRange, i.Price, id)
	if err != nil {
		return model.Pack{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Pack{}, err
	}
	if affected == 0 {
		return model.Pack{}, ErrPackNotFound
	}

	return model.Pack{
		ID:          id,
		Name:        i.Name,
		Description: i.Description,
		PointsRange: i.PointsRange,
		Price:       i.Price,
	}, nil
}

func (r Repository) CreateOrder(ctx context.Context, o model.Order) error {
	_, err := r.Conn.ExecContext(ctx, "INSERT INTO orders (id, pack_id, pack_name, customer_email, amount, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		o.ID, o.PackID, o.PackName, o.CustomerEmail, o.Amount, o.Status, o.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r Repository) GetOrderByID(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1", id)

	err := row.Scan(&o.ID, &o.PackID, &o.PackName, &o.CustomerEmail, &o.Amount, &o.Status, &o.DeliveryInfo, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}

	return o, nil
}

func (r Repository) GetOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r Repository) GetOrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders WHERE customer_email = $1 ORDER BY created_at DESC", email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// SetOrderStatus is a compare-and-set: the write only succeeds while the
// stored status is still pending, so two admins racing on the same order
// cannot both win.
func (r Repository) SetOrderStatus(ctx context.Context, id, status string) error {
	res, err := r.Conn.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2 AND status = $3",
		status, id, model.OrderStatusPending)
	if err != nil {
		return err
	}

	return r.checkTransition(ctx, res, id)
}

func (r Repository) DeliverOrder(ctx context.Context, id, deliveryInfo string) error {
	res, err := r.Conn.ExecContext(ctx, "UPDATE orders SET status = $1, delivery_info = $2 WHERE id = $3 AND status = $4",
		model.OrderStatusDelivered, deliveryInfo, id, model.OrderStatusPending)
	if err != nil {
		return err
	}

	return r.checkTransition(ctx, res, id)
}

func (r Repository) checkTransition(ctx context.Context, res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	exist := false
	row := r.Conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", id)
	err = row.Scan(&exist)
	if err != nil {
		return err
	}

	if !exist {
		return ErrOrderNotFound
	}
	return ErrOrderFinalized
}

func scanOrders(rows *sql.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.PackID, &o.PackName, &o.CustomerEmail, &o.Amount, &o.Status, &o.DeliveryInfo, &o.CreatedAt)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}
