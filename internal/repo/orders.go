package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "order_secret", "user_id", "payment_status", "shipping_status",
			"contact_name", "contact_email", "contact_phone", "contact_address",
			"contact_country", "contact_state", "contact_city", "contact_zip",
			"shipping_id", "rate_id", "shipping_name", "shipping_price", "subtotal", "total",
			"stripe_id", "stripe_url", "stripe_request",
		).
		Values(
			o.OrderID, o.OrderSecret, nullString(o.UserID), o.PaymentStatus, o.ShippingStatus,
			o.Contact.Name, o.Contact.Email, nullString(o.Contact.Phone), o.Contact.Address,
			o.Contact.Country, nullString(o.Contact.State), o.Contact.City, o.Contact.Zip,
			o.ShippingID, o.RateID, nullString(o.ShippingName), o.ShippingPrice, o.Subtotal, o.Total,
			nullString(o.StripeID), nullString(o.StripeURL), nullJSON(o.StripeRequest),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "quantity", "price", "total", "variant", "product_name")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Quantity, it.Price, it.Total, nullString(it.Variant), it.ProductName)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.findOrder(ctx, sq.Eq{"order_id": orderID})
}

func (r *postgresRepo) GetOrderWithSecret(ctx context.Context, orderID, secret string) (entities.Order, error) {
	return r.findOrder(ctx, sq.Eq{"order_id": orderID, "order_secret": secret})
}

func (r *postgresRepo) GetUserOrder(ctx context.Context, orderID, userID string) (entities.Order, error) {
	return r.findOrder(ctx, sq.Eq{"order_id": orderID, "user_id": userID})
}

func (r *postgresRepo) findOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, order.OrderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.OrderID]), nil
}

func userOrdersFilter(f entities.OrderFilter) sq.Eq {
	where := sq.Eq{"user_id": f.UserID}
	if f.Status != "" {
		where["payment_status"] = f.Status
	}
	return where
}

func (r *postgresRepo) ListUserOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(userOrdersFilter(f)).
		OrderBy("created_at DESC", "order_id DESC").
		Limit(uint64(f.PageSize)).
		Offset(uint64(f.Offset())).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	items, err := r.orderItems(ctx, ids...)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.OrderID]))
	}
	return result, nil
}

func (r *postgresRepo) CountUserOrders(ctx context.Context, f entities.OrderFilter) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(userOrdersFilter(f)).
		MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderIDs ...string) (map[string][]Item, error) {
	query, args := r.qb.Select(
		"i.order_id", "i.product_id", "p.thumbnail_url", "i.quantity",
		"i.price", "i.total", "i.variant", "i.product_name",
	).
		From("order_items i").
		LeftJoin("products p ON p.id = i.product_id").
		Where(sq.Eq{"i.order_id": orderIDs}).
		OrderBy("i.order_id", "i.position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	res := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		res[it.OrderID] = append(res[it.OrderID], it)
	}
	return res, nil
}

// LabelClaimTTL - время, после которого незавершённую заявку на этикетку
// может забрать другой обработчик.
const LabelClaimTTL = 10 * time.Minute

// ClaimLabel атомарно резервирует право на покупку этикетки.
// Возвращает false, если этикетка уже куплена или её покупает другой обработчик.
// Заявка старше LabelClaimTTL считается брошенной.
func (r *postgresRepo) ClaimLabel(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("label_claimed_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID, "tracking_code": nil}).
		Where(sq.Or{
			sq.Eq{"label_claimed_at": nil},
			sq.Expr("label_claimed_at < now() - make_interval(secs => ?)", LabelClaimTTL.Seconds()),
		}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to claim label: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim label: %w", err)
	}
	return n == 1, nil
}

func (r *postgresRepo) ReleaseLabelClaim(ctx context.Context, orderID string) error {
	query, args := r.qb.Update("orders").
		Set("label_claimed_at", nil).
		Where(sq.Eq{"order_id": orderID, "tracking_code": nil}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release label claim: %w", err)
	}
	return nil
}

// ApplyPaymentUpdate записывает статус оплаты и, если есть, данные этикетки.
// Поля этикетки пишутся только если tracking_code ещё пустой, а после покупки
// этикетки статус не может уйти из SUCCEEDED.
func (r *postgresRepo) ApplyPaymentUpdate(ctx context.Context, u entities.LabelUpdate) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("payment_status", sq.Expr(
			"CASE WHEN tracking_code IS NOT NULL AND ?::text <> 'SUCCEEDED' THEN payment_status ELSE ?::text END",
			u.PaymentStatus, u.PaymentStatus,
		)).
		Set("stripe_response_webhook", nullJSON(u.Event)).
		Set("updated_at", sq.Expr("now()"))

	if u.Label != nil {
		q = q.
			Set("tracking_code", sq.Expr("COALESCE(tracking_code, ?)", u.Label.TrackingCode)).
			Set("tracking_url", sq.Expr("CASE WHEN tracking_code IS NULL THEN ? ELSE tracking_url END", nullString(u.Label.TrackingURL))).
			Set("label_image", sq.Expr("CASE WHEN tracking_code IS NULL THEN ? ELSE label_image END", nullString(u.Label.LabelURL))).
			Set("shipping_label", sq.Expr("CASE WHEN tracking_code IS NULL THEN ?::jsonb ELSE shipping_label END", nullJSON(u.Label.Raw)))
	}

	query, args := q.
		Where(sq.Eq{"order_id": u.OrderID}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update payment status: %w", err)
	}
	return OrderToEntity(order, nil), nil
}
