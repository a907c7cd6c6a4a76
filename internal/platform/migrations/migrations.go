// Package migrations owns the relational schema for every bounded context.
package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&menuItemRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&idempotencyRecord{},
	)
}

// Menu schema mirrors the menu Postgres adapter.
type menuItemRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;type:varchar(128)"`
	Category    string    `gorm:"column:category;type:varchar(64);index"`
	Price       float64   `gorm:"column:price"`
	Description string    `gorm:"column:description;type:text"`
	Available   bool      `gorm:"column:available;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (menuItemRecord) TableName() string { return "menu_items" }

// Order schema mirrors the orders Postgres adapter. The unique index on
// order_number is what turns a lost number race into a retryable conflict.
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

// Checkout idempotency schema mirrors the orders Postgres adapter.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	OrderID     int64     `gorm:"column:order_id"`
	OrderNumber string    `gorm:"column:order_number;size:32"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "checkout_idempotency_keys" }
