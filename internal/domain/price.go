package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Price is an optional item price in coins. The zero value is NoPrice, which
// means the item has no recent trade data. Arithmetic uses OrZero; display
// code should check IsSome.
type Price struct {
	value int
	ok    bool
}

// SomePrice returns a known price.
func SomePrice(v int) Price { return Price{value: v, ok: true} }

// NoPrice returns a missing price.
func NoPrice() Price { return Price{} }

// Get returns the price and whether it is known.
func (p Price) Get() (int, bool) { return p.value, p.ok }

// IsSome reports whether the price is known.
func (p Price) IsSome() bool { return p.ok }

// OrZero returns the price, or 0 when it is missing.
func (p Price) OrZero() int {
	if !p.ok {
		return 0
	}
	return p.value
}

// String renders a missing price as an em dash.
func (p Price) String() string {
	if !p.ok {
		return "\u2014"
	}
	return strconv.Itoa(p.value)
}

// MarshalJSON encodes a missing price as null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(p.value)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = NoPrice()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = SomePrice(v)
	return nil
}

// PriceSheet holds the prices resolved for one calculation, keyed by item ID.
// A sheet is filled once per invocation and then only read.
type PriceSheet map[int]Price

// Lookup returns the price for id. Items absent from the sheet are NoPrice.
func (s PriceSheet) Lookup(id int) Price {
	return s[id]
}
