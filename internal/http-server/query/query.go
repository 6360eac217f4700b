package query

import (
	"fmt"
	"net/http"
	"strings"
)

func Str(r *http.Request, key string) (val string, present bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func Bool(r *http.Request, key string, def bool) (bool, error) {
	raw, ok := Str(r, key)
	if !ok {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return def, fmt.Errorf("%s must be boolean", key)
}
