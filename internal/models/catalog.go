package models

// CatalogItem is a purchasable offering in the Nia Store. The catalog is
// static for the lifetime of the process; there is no create/update/delete.
type CatalogItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
	Price    int    `json:"price"`
	Period   string `json:"period"` // billing suffix, e.g. "/mo"; empty for one-time
}
