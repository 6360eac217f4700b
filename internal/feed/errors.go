package feed

import (
	"fmt"
	"strings"
)

// APIError — не-2xx ответ фида.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 256 {
		body = body[:256]
	}
	return fmt.Sprintf("feed error: status=%d body=%s", e.Status, body)
}
