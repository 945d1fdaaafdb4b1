package domain

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// FlexString is a string field that also accepts a JSON number on input.
// Price and discount values arrive from forms and old exports as either
// type; they are kept as opaque strings, no numeric coercion.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = FlexString(cast.ToString(v))
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// Product represents a storefront catalog item
type Product struct {
	ID          string     `json:"id" csv:"id"`
	Title       string     `json:"title" csv:"title"`
	Price       FlexString `json:"price" csv:"price"`
	Category    string     `json:"category" csv:"category"`
	Description string     `json:"description" csv:"description"`
	Images      []string   `json:"images" csv:"-"` // image blob ids, may dangle
}

// Offer represents a discount promotion, optionally backed by one image
type Offer struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Discount    FlexString `json:"discount"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
}

type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
