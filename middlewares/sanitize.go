package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

const maxSanitizeDepth = 10

func sanitizeValue(value any, depth int) any {
	if depth > maxSanitizeDepth {
		return value
	}
	switch v := value.(type) {
	case string:
		return sanitizePolicy.Sanitize(v)
	case []any:
		for i := range v {
			v[i] = sanitizeValue(v[i], depth+1)
		}
		return v
	case map[string]any:
		for key := range v {
			v[key] = sanitizeValue(v[key], depth+1)
		}
		return v
	default:
		return value
	}
}

// SanitizeBody strips HTML and script payloads from every string in a JSON
// request body before it reaches binding or business logic.
func SanitizeBody() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Body != nil && strings.Contains(ctx.GetHeader("Content-Type"), "application/json") {
			raw, err := io.ReadAll(ctx.Request.Body)
			if err == nil && len(raw) > 0 {
				var payload any
				if json.Unmarshal(raw, &payload) == nil {
					if cleaned, err := json.Marshal(sanitizeValue(payload, 0)); err == nil {
						raw = cleaned
					}
				}
				ctx.Request.Body = io.NopCloser(bytes.NewReader(raw))
				ctx.Request.ContentLength = int64(len(raw))
			}
		}
		ctx.Next()
	}
}
