package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogReader implements ports.CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// FindRestaurant resolves a restaurant by id.
func (r *GormCatalogReader) FindRestaurant(ctx context.Context, id kernel.UUID) (*ports.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantId", id.String())
		}
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Restaurant{
		ID:      id,
		OwnerID: ownerID,
		Name:    dto.Name,
	}, nil
}

// FindDish resolves a dish by id.
func (r *GormCatalogReader) FindDish(ctx context.Context, id kernel.UUID) (*ports.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishId", id.String())
		}
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Dish{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        kernel.Money(dto.Price),
	}, nil
}

// FindOptionChoice resolves an (option, choice) pair scoped to a dish. The
// join enforces that the option belongs to the dish and the choice to the
// option; any broken link is a not-found.
func (r *GormCatalogReader) FindOptionChoice(
	ctx context.Context,
	dishID, optionID, choiceID kernel.UUID,
) (*ports.OptionChoice, error) {
	if err := errors.Join(
		dishID.Validate(),
		optionID.Validate(),
		choiceID.Validate(),
	); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT ch.extra
		FROM dish_option_choices ch
		JOIN dish_options op ON op.id = ch.option_id
		WHERE ch.id = ? AND op.id = ? AND op.dish_id = ?
	`, choiceID.Bytes(), optionID.Bytes(), dishID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError(
			"choiceId",
			fmt.Sprintf("%s on option %s of dish %s", choiceID, optionID, dishID),
		)
	}

	var extra int64
	if err = rows.Scan(&extra); err != nil {
		return nil, err
	}

	return &ports.OptionChoice{
		OptionID: optionID,
		ChoiceID: choiceID,
		Extra:    kernel.Money(extra),
	}, rows.Err()
}

// SeedRestaurant inserts a restaurant row. Intended for migrations and tests;
// the running service never writes the catalog.
func (r *GormCatalogReader) SeedRestaurant(ctx context.Context, restaurant ports.Restaurant) error {
	dto := RestaurantDTO{
		ID:      restaurant.ID.Bytes(),
		OwnerID: restaurant.OwnerID.Bytes(),
		Name:    restaurant.Name,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SeedDish inserts a dish row. Intended for migrations and tests.
func (r *GormCatalogReader) SeedDish(ctx context.Context, dish ports.Dish) error {
	dto := DishDTO{
		ID:           dish.ID.Bytes(),
		RestaurantID: dish.RestaurantID.Bytes(),
		Name:         dish.Name,
		Price:        int64(dish.Price),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SeedOptionChoice inserts an option axis row (unless present) and a choice
// row on it. Intended for migrations and tests.
func (r *GormCatalogReader) SeedOptionChoice(
	ctx context.Context,
	dishID kernel.UUID,
	optionID kernel.UUID,
	optionName string,
	choice ports.OptionChoice,
	choiceName string,
) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&DishOptionDTO{}).Where("id = ?", optionID.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		option := DishOptionDTO{
			ID:     optionID.Bytes(),
			DishID: dishID.Bytes(),
			Name:   optionName,
		}
		if err := db.Create(&option).Error; err != nil {
			return err
		}
	}

	dto := DishOptionChoiceDTO{
		ID:       choice.ChoiceID.Bytes(),
		OptionID: optionID.Bytes(),
		Name:     choiceName,
		Extra:    int64(choice.Extra),
	}
	return db.Create(&dto).Error
}
