package entity

// Address is the customer's shipping destination. State is optional for
// countries without subdivisions.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer is an immutable snapshot referenced by orders. A changed
// address means a replacement Customer, never an in-place mutation.
type Customer struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ShippingAddress Address `json:"shipping_address"`
}
