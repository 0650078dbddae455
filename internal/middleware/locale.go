package middleware

import (
	"go-leave/internal/i18n"

	"github.com/gin-gonic/gin"
)

func Locale(translator *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := translator.Match(c.GetHeader("Accept-Language"))
		c.Set("locale", locale)
		c.Request = c.Request.WithContext(i18n.WithLocale(c.Request.Context(), locale))
		c.Header("Content-Language", locale)
		c.Next()
	}
}
