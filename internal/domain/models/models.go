package models

// Product — одна позиция каталога после нормализации.
// Все поля гарантированно валидны: презентационному слою
// не нужны defensive-проверки типов и диапазонов.
type Product struct {
	SKU              string   `json:"sku"`
	Name             string   `json:"name"`
	DescriptionShort string   `json:"description_short,omitempty"`
	DescriptionFull  string   `json:"description_full,omitempty"`
	PriceRub         float64  `json:"price_rub"`
	Stock            int      `json:"stock"`
	PhotoURL         string   `json:"photo_url"`
	Tags             []string `json:"tags"`
}

const (
	CTAOrder      = "Заказать в Telegram"
	CTAOutOfStock = "Нет в наличии"
)

// InStock — товар доступен к заказу.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CTALabel возвращает подпись кнопки действия для карточки товара.
func (p Product) CTALabel() string {
	if p.InStock() {
		return CTAOrder
	}
	return CTAOutOfStock
}

// Snapshot — результат одной выборки каталога.
// Непустой Error означает мягкий сбой: структура при этом
// полностью валидна и пригодна для рендера.
type Snapshot struct {
	GeneratedAt string    `json:"generated_at"`
	Items       []Product `json:"items"`
	Error       string    `json:"error,omitempty"`
}
