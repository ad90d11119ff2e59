package store

import (
	"encoding/json"
	"fmt"

	"github.com/localshop/localshop/app/models"
)

// SampleCatalog is the demo product set written by `localshop seed`.
// Prices are in paisa-free whole PKR.
var SampleCatalog = []models.Product{
	{ID: 1, Name: "Red Mug", Description: "Glazed ceramic mug, 350 ml", Price: 450, Category: "Kitchen", Image: "https://picsum.photos/seed/redmug/800/600"},
	{ID: 2, Name: "Steel Saucepan", Description: "Stainless saucepan with lid", Price: 2200, Category: "Kitchen", Image: "https://picsum.photos/seed/saucepan/800/600"},
	{ID: 3, Name: "Blue Pen", Description: "Ballpoint pen, 0.7 mm", Price: 60, Category: "Stationery", Image: "https://picsum.photos/seed/bluepen/800/600"},
	{ID: 4, Name: "Spiral Notebook", Description: "200-page ruled notebook", Price: 350, Category: "Stationery", Image: "https://picsum.photos/seed/notebook/800/600"},
	{ID: 5, Name: "Desk Lamp", Description: "LED desk lamp with dimmer", Price: 3800, Category: "Electronics", Image: "https://picsum.photos/seed/desklamp/800/600"},
	{ID: 6, Name: "USB-C Cable", Description: "Braided 1.5 m charging cable", Price: 900, Category: "Electronics", Image: "https://picsum.photos/seed/usbcable/800/600"},
	{ID: 7, Name: "Canvas Tote", Description: "Heavy cotton shopping tote", Price: 1200, Category: "Misc", Image: "https://picsum.photos/seed/tote/800/600"},
	{ID: 8, Name: "Demo Product", Description: "Demo item", Price: 300, Category: "Misc", Image: "https://picsum.photos/seed/demo/800/600"},
}

// SeedProducts writes SampleCatalog to the products file. It refuses to
// overwrite an existing catalogue unless force is set.
func (s *Store) SeedProducts(force bool) error {
	p := s.path(productsFile)
	if s.disk.Exists(p) && !force {
		return fmt.Errorf("store: %s already exists (use --force to overwrite)", p)
	}

	data, err := json.MarshalIndent(SampleCatalog, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode catalogue: %w", err)
	}
	if err := s.disk.Put(p, data); err != nil {
		return fmt.Errorf("store: write catalogue: %w", err)
	}
	return nil
}
