package models

// CatalogEntry is a product record with a server-owned stock counter.
// ID is zero until the entry has been persisted.
type CatalogEntry struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CurrentStock int    `json:"current_stocks"`
	ImagePath    string `json:"image_path,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Image is a binary payload attached to an entry create or update.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// EntryDraft is the input for creating an entry.
type EntryDraft struct {
	Name        string
	Description string
	Image       *Image
}

// EntryPatch is the input for updating an entry. Nil fields are not sent.
type EntryPatch struct {
	Name        *string
	Description *string
	Image       *Image
}

// PatchFromEntry builds a full-update patch from e.
func PatchFromEntry(e CatalogEntry, img *Image) EntryPatch {
	name, desc := e.Name, e.Description
	return EntryPatch{Name: &name, Description: &desc, Image: img}
}
