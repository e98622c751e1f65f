package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryItem_CanReserve(t *testing.T) {
	item := &InventoryItem{ProductID: "book-1", ProductType: ProductTypeBook, QuantityAvailable: 10}

	tests := []struct {
		name     string
		quantity int
		want     bool
	}{
		{"exact stock", 10, true},
		{"less than stock", 2, true},
		{"more than stock", 11, false},
		{"zero", 0, false},
		{"negative", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, item.CanReserve(tt.quantity))
		})
	}
}

func TestInventoryItem_Reserve(t *testing.T) {
	item := &InventoryItem{ProductID: "book-1", ProductType: ProductTypeBook, QuantityAvailable: 10}

	item.Reserve(4)
	assert.Equal(t, 6, item.QuantityAvailable)
}
