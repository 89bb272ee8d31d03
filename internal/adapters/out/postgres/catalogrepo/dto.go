// Package catalogrepo reads the menu catalog: restaurants, dishes, and the
// option/choice customization axes. The order service never writes these
// tables; menu management belongs to a different system and this adapter only
// resolves references and authoritative prices.
package catalogrepo

import (
	"github.com/google/uuid"
)

// RestaurantDTO is the database row for a restaurant.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
}

// TableName overrides GORM's default naming convention.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO is the database row for a menu entry. Price is in minor units.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        int64
}

// TableName overrides GORM's default naming convention.
func (DishDTO) TableName() string {
	return "dishes"
}

// DishOptionDTO is one customization axis of a dish.
type DishOptionDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID uuid.UUID `gorm:"type:uuid;index"`
	Name   string
}

// TableName overrides GORM's default naming convention.
func (DishOptionDTO) TableName() string {
	return "dish_options"
}

// DishOptionChoiceDTO is one selectable choice on an option axis, with the
// surcharge it adds in minor units.
type DishOptionChoiceDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OptionID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Extra    int64
}

// TableName overrides GORM's default naming convention.
func (DishOptionChoiceDTO) TableName() string {
	return "dish_option_choices"
}
