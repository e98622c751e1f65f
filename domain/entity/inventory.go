package entity

type ProductType string

const (
	ProductTypeBook  ProductType = "BOOK"
	ProductTypeEbook ProductType = "EBOOK"
)

// InventoryItem tracks the available stock for one product. It is mutated
// only through Reserve.
type InventoryItem struct {
	ProductID         string      `json:"product_id"`
	ProductType       ProductType `json:"product_type"`
	QuantityAvailable int         `json:"quantity_available"`
}

// CanReserve reports whether quantity units can be taken from stock.
func (i *InventoryItem) CanReserve(quantity int) bool {
	return quantity > 0 && i.QuantityAvailable >= quantity
}

// Reserve permanently takes quantity units from stock. There is no hold or
// release counterpart. Callers check CanReserve first.
func (i *InventoryItem) Reserve(quantity int) {
	i.QuantityAvailable -= quantity
}
