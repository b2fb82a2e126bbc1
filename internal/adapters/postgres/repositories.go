package postgres

import "gorm.io/gorm"

// Repositories bundles all persistence adapters behind one constructor so
// bootstrap wires a single handle.
type Repositories struct {
	Users    *UserRepository
	Carts    *CartRepository
	Payments *PaymentRepository
	Menu     *MenuRepository
	Reviews  *ReviewRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    &UserRepository{db: db},
		Carts:    &CartRepository{db: db},
		Payments: &PaymentRepository{db: db},
		Menu:     &MenuRepository{db: db},
		Reviews:  &ReviewRepository{db: db},
	}
}
