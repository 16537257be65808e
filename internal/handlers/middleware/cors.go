package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação a partir da lista separada por vírgulas
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	var origins []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	switch {
	case len(origins) == 0:
		config.AllowOrigins = []string{"http://localhost:3000"}
	case len(origins) == 1 && origins[0] == "*":
		// credenciais não podem ser combinadas com "*": reflete a origem
		config.AllowOriginFunc = func(string) bool { return true }
	default:
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
