package models

// Product is one catalogue entry. The catalogue file is populated outside
// the service (seeded or hand-edited) and read-only at runtime, so there is
// no lifecycle beyond loading it wholesale.
//
// Prices are whole numbers in the smallest currency unit.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"img"`
}
