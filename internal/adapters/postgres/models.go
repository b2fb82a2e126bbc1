package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type cartEntryModel struct {
	EntryID    uuid.UUID `gorm:"column:entry_id;type:uuid;primaryKey"`
	Email      string    `gorm:"column:email;index"`
	MenuItemID uuid.UUID `gorm:"column:menu_item_id;type:uuid"`
	Name       string    `gorm:"column:name"`
	Image      string    `gorm:"column:image"`
	Price      float64   `gorm:"column:price"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (cartEntryModel) TableName() string { return "cart_entries" }

type paymentModel struct {
	PaymentID      uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey"`
	Email          string    `gorm:"column:email;index"`
	Amount         float64   `gorm:"column:amount"`
	TransactionRef string    `gorm:"column:transaction_ref"`
	CartEntryIDs   string    `gorm:"column:cart_entry_ids;type:jsonb"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

type menuItemModel struct {
	ItemID    uuid.UUID `gorm:"column:item_id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name"`
	Category  string    `gorm:"column:category;index"`
	Recipe    string    `gorm:"column:recipe"`
	Image     string    `gorm:"column:image"`
	Price     float64   `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (menuItemModel) TableName() string { return "menu_items" }

type reviewModel struct {
	ReviewID  uuid.UUID `gorm:"column:review_id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name"`
	Details   string    `gorm:"column:details"`
	Rating    float64   `gorm:"column:rating"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }
