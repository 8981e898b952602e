// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"dayamotor_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Origin diambil dari ALLOWED_ORIGINS (comma separated), default dev lokal.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = strings.Join([]string{
			"http://localhost:3000",
			"http://localhost:3001",
		}, ",")
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
	})
}
