package services_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestOrderPricer_Total(t *testing.T) {
	pricer := services.NewOrderPricer()

	tests := []struct {
		name  string
		items []services.PricedItem
		want  kernel.Money
	}{
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
		{
			name: "single item without extras",
			items: []services.PricedItem{
				{DishPrice: 10, Count: 1},
			},
			want: 10,
		},
		{
			name: "extras are added before scaling by count",
			// dish 10, extras 2 and 3, count 2 -> (10+2+3)*2 = 30
			items: []services.PricedItem{
				{DishPrice: 10, Extras: []kernel.Money{2, 3}, Count: 2},
			},
			want: 30,
		},
		{
			name: "totals sum across items",
			items: []services.PricedItem{
				{DishPrice: 10, Extras: []kernel.Money{2, 3}, Count: 2},
				{DishPrice: 7, Count: 1},
				{DishPrice: 5, Extras: []kernel.Money{1}, Count: 3},
			},
			want: 30 + 7 + 18,
		},
		{
			name: "count scales only its own line",
			items: []services.PricedItem{
				{DishPrice: 100, Count: 5},
				{DishPrice: 1, Count: 1},
			},
			want: 501,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricer.Total(tt.items))
		})
	}
}
