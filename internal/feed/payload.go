package feed

// Payload — сырой ответ фида. Поля достаются аксессорами с
// безопасными дефолтами: отсутствующее или кривое поле не ошибка.
type Payload struct {
	Raw map[string]any
}

// GeneratedAt — заявленное фидом время генерации данных, "" если нет.
func (p Payload) GeneratedAt() string {
	return pickString(p.Raw, "generated_at", "generatedAt")
}

// ErrorMessage — сообщение об ошибке, которое фид передал в теле
// успешного ответа; "" если фид отдал данные.
func (p Payload) ErrorMessage() string {
	return pickString(p.Raw, "error")
}

// Items возвращает список сырых записей товара.
// Отсутствующее поле или не-список — пустой результат, не ошибка.
func (p Payload) Items() []map[string]any {
	arr, ok := p.Raw["items"].([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
