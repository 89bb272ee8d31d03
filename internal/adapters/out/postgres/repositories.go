package postgres

import (
	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"

	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency outside a unit
// of work, where no post-commit processing happens.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// NewOrderRepository returns an order repository on the main connection, for
// single-row operations where the statement itself is the atomicity boundary.
func NewOrderRepository(db *gorm.DB) ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(db, noopTracker{})
}

// NewCatalogReader returns a catalog reader on the main connection.
func NewCatalogReader(db *gorm.DB) ports.CatalogReader {
	return catalogrepo.NewGormCatalogReader(db)
}
