// Package postgres persists the orders bounded context in PostgreSQL using GORM.
package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
	"github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their line-item snapshots in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderItemRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate header to a relational table.
type orderRecord struct {
	ID                 int64     `gorm:"primaryKey;column:id"`
	OrderNumber        string    `gorm:"column:order_number;type:varchar(32);uniqueIndex:idx_orders_order_number"`
	OrderType          string    `gorm:"column:order_type;type:varchar(16)"`
	TableNumber        string    `gorm:"column:table_number;type:varchar(16)"`
	Subtotal           float64   `gorm:"column:subtotal"`
	DiscountPercentage float64   `gorm:"column:discount_percentage"`
	DiscountAmount     float64   `gorm:"column:discount_amount"`
	TotalAmount        float64   `gorm:"column:total_amount"`
	PaymentMethod      string    `gorm:"column:payment_method;type:varchar(32);index"`
	CustomerName       string    `gorm:"column:customer_name;type:varchar(128)"`
	CustomerPhone      string    `gorm:"column:customer_phone;type:varchar(32)"`
	Status             string    `gorm:"column:status;type:varchar(32)"`
	CreatedAt          time.Time `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// orderItemRecord is one priced cart line frozen at checkout time.
type orderItemRecord struct {
	ID         int64   `gorm:"primaryKey;column:id"`
	OrderID    int64   `gorm:"column:order_id;index"`
	MenuItemID int64   `gorm:"column:menu_item_id"`
	Name       string  `gorm:"column:item_name;type:varchar(128)"`
	Quantity   int     `gorm:"column:quantity"`
	UnitPrice  float64 `gorm:"column:unit_price"`
	Subtotal   float64 `gorm:"column:subtotal"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Create persists the header and all line items in one transaction, so a
// partially written order can never be observed.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		items := toItemRecords(record.ID, order.Items)
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateNumber
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its line items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var items []orderItemRecord
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	order := record.toDomain()
	order.Items = toDomainItems(items)
	return order, nil
}

// Find returns matching order headers newest first without loading line items.
func (r *Repository) Find(ctx context.Context, filter ports.Filter) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = ports.DefaultPageSize
	}
	query := r.db.WithContext(ctx).Model(&orderRecord{})
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.CustomerName != "" {
		query = query.Where("customer_name ILIKE ?", "%"+filter.CustomerName+"%")
	}
	var records []orderRecord
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Delete removes the order and its line items atomically.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&orderItemRecord{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

// MaxSequence scans stored order numbers and reports the highest numeric
// suffix. Parsing happens here rather than in SQL so malformed rows are simply
// skipped instead of failing the query.
func (r *Repository) MaxSequence(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Pluck("order_number", &numbers).Error; err != nil {
		return 0, err
	}
	var maxSeq int64
	for _, number := range numbers {
		if seq, ok := domain.ParseNumber(number); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

// DeleteCreatedBefore purges orders older than the cutoff together with their
// line items and reports how many orders were removed.
func (r *Repository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("order_id IN (?)", tx.Model(&orderRecord{}).Select("id").Where("created_at < ?", cutoff)).
			Delete(&orderItemRecord{}).Error; err != nil {
			return err
		}
		result := tx.Where("created_at < ?", cutoff).Delete(&orderRecord{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:                 order.ID,
		OrderNumber:        order.Number,
		OrderType:          string(order.Type),
		TableNumber:        order.TableNumber,
		Subtotal:           order.Subtotal,
		DiscountPercentage: order.DiscountPercentage,
		DiscountAmount:     order.DiscountAmount,
		TotalAmount:        order.TotalAmount,
		PaymentMethod:      order.PaymentMethod,
		CustomerName:       order.CustomerName,
		CustomerPhone:      order.CustomerPhone,
		Status:             order.Status,
	}
}

func toItemRecords(orderID int64, items []domain.LineItem) []orderItemRecord {
	records := make([]orderItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, orderItemRecord{
			OrderID:    orderID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}
	return records
}

func toDomainItems(records []orderItemRecord) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.LineItem{
			ID:         record.ID,
			MenuItemID: record.MenuItemID,
			Name:       record.Name,
			Quantity:   record.Quantity,
			UnitPrice:  record.UnitPrice,
			Subtotal:   record.Subtotal,
		})
	}
	return items
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:                 r.ID,
		Number:             r.OrderNumber,
		Type:               domain.Type(r.OrderType),
		TableNumber:        r.TableNumber,
		Subtotal:           r.Subtotal,
		DiscountPercentage: r.DiscountPercentage,
		DiscountAmount:     r.DiscountAmount,
		TotalAmount:        r.TotalAmount,
		PaymentMethod:      r.PaymentMethod,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
	}
}
