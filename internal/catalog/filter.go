package catalog

import (
	"strings"

	"vitrina/internal/domain/models"
)

// Фильтры поверх нормализованного снапшота. Чистые функции,
// порядок товаров не меняют.

// Available оставляет товары, доступные к покупке:
// положительный остаток и ненулевая цена.
func Available(items []models.Product) []models.Product {
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.Stock > 0 && p.PriceRub > 0 {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory оставляет товары, у которых среди тегов есть category
// (без учёта регистра). "all" и пустая строка — без фильтрации.
func ByCategory(items []models.Product, category string) []models.Product {
	category = strings.TrimSpace(strings.ToLower(category))
	if category == "" || category == "all" {
		return items
	}
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		for _, tag := range p.Tags {
			if strings.ToLower(tag) == category {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Search ищет подстроку в имени, тегах, кратком описании и SKU.
// Пустой запрос — пустой результат.
func Search(items []models.Product, query string) []models.Product {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return []models.Product{}
	}
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		hay := strings.ToLower(
			p.Name + " " + strings.Join(p.Tags, " ") + " " + p.DescriptionShort + " " + p.SKU,
		)
		if strings.Contains(hay, query) {
			out = append(out, p)
		}
	}
	return out
}
