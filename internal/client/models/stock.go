package models

// StockUnit is one serialized unit of a catalog entry.
type StockUnit struct {
	ID             int64  `json:"id,omitempty"`
	CatalogEntryID int64  `json:"product_type_id"`
	SerialNumber   string `json:"serial_number"`
	Sold           bool   `json:"is_sold"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// UnitDraft is the JSON body for creating a unit.
type UnitDraft struct {
	CatalogEntryID int64  `json:"product_type_id"`
	SerialNumber   string `json:"serial_number"`
	Sold           bool   `json:"is_sold"`
}

// UnitPatch is the JSON body for a partial unit update.
type UnitPatch struct {
	SerialNumber *string `json:"serial_number,omitempty"`
	Sold         *bool   `json:"is_sold,omitempty"`
}

// BatchRequest submits many serial numbers for one entry.
type BatchRequest struct {
	CatalogEntryID int64    `json:"product_type_id"`
	SerialNumbers  []string `json:"serial_numbers"`
}

// BatchResult reports how many units the server actually created.
type BatchResult struct {
	Created int         `json:"created"`
	Items   []StockUnit `json:"items"`
}
