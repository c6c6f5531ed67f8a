package model

import "strings"

// House represents a local meeting house of the fellowship.
type House struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

// HousePage is one page of a house listing as served by the houses API.
type HousePage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []House `json:"results"`
}

// Less reports whether a sorts before b in the default listing order.
func Less(a, b House) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
