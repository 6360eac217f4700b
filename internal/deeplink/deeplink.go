package deeplink

import (
	"net/url"
	"strings"
)

// Builder строит t.me deep link, открывающий бота с предзаполненной
// ссылкой на товар. Чистая конструкция строки, без сети.
type Builder struct {
	Bot string // username бота без "@"
}

func New(bot string) Builder {
	return Builder{Bot: strings.TrimPrefix(strings.TrimSpace(bot), "@")}
}

// Enabled — билдер отключён, пока username бота не задан в конфиге.
func (b Builder) Enabled() bool {
	return b.Bot != ""
}

// Build возвращает deep link вида https://t.me/<bot>?start=sku_<sku>.
// SKU кодируется, так что произвольные символы безопасны.
func (b Builder) Build(sku string) string {
	if !b.Enabled() {
		return ""
	}
	return "https://t.me/" + b.Bot + "?start=" + url.QueryEscape("sku_"+sku)
}
