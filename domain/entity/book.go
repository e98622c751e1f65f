package entity

import "github.com/shopspring/decimal"

// ISBN identifies a book edition. Kept as a value, not validated against
// the checksum rules of ISBN-10/13.
type ISBN string

func (i ISBN) String() string {
	return string(i)
}

// Book is an immutable catalog entry referenced by order items.
type Book struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
	ISBN   ISBN            `json:"isbn"`
}
