package common

import "diet-profile-go/internal/domain/catalog"

type CatalogItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	LogoPath *string `json:"logo_path"`
}

// CatalogItems renders items with absolute logo URLs.
func CatalogItems(base string, items []catalog.Item) []CatalogItem {
	response := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		response = append(response, CatalogItem{
			ID:       item.ID,
			Name:     item.Name,
			LogoPath: LogoURL(base, item.LogoPath),
		})
	}
	return response
}
