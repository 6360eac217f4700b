package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"vitrina/internal/domain/models"
)

// NormalizeItem приводит сырую запись фида к валидному Product.
// Любое битое поле деградирует до безопасного дефолта; запись
// отбрасывается только при пустом SKU (второе значение false).
func NormalizeItem(raw map[string]any, placeholderURL string) (models.Product, bool) {
	sku := strings.TrimSpace(coerceString(raw["sku"]))
	if sku == "" {
		return models.Product{}, false
	}

	photo := strings.TrimSpace(coerceString(raw["photoUrl"]))
	if !IsValidImageURL(photo) {
		photo = placeholderURL
	}

	price := NormalizeNumber(raw["priceRub"])
	if price < 0 {
		price = 0
	}

	stock := int(NormalizeNumber(raw["stock"]))
	if stock < 0 {
		stock = 0
	}

	return models.Product{
		SKU:              sku,
		Name:             strings.TrimSpace(coerceString(raw["name"])),
		DescriptionShort: strings.TrimSpace(coerceString(raw["descriptionShort"])),
		DescriptionFull:  strings.TrimSpace(coerceString(raw["descriptionFull"])),
		PriceRub:         price,
		Stock:            stock,
		PhotoURL:         photo,
		Tags:             SplitTags(coerceString(raw["tags"])),
	}, true
}

// NormalizeNumber приводит произвольное значение к числу: строка с
// десятичной запятой, пробелами и неразрывными пробелами допустима.
// Не распарсилось — 0.
func NormalizeNumber(v any) float64 {
	s := coerceString(v)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "\u00A0", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	// ParseFloat принимает "NaN" и "Inf" без ошибки, в каталоге таким
	// значениям места нет: NaN ломает json.Marshal снапшота
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// IsValidImageURL — допустимы абсолютные http/https/data URL,
// root-relative пути и строки без разделителя схемы.
// Пустая строка невалидна.
func IsValidImageURL(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/") {
		return true
	}
	if !strings.Contains(s, ":") {
		// поведение исходника: строка без ":" считается относительным путём
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "data":
		return true
	}
	return false
}

// SplitTags разбивает comma-joined строку тегов.
// Порядок сохраняется, дубликаты не схлопываются, пустые куски выкидываются.
func SplitTags(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}
