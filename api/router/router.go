package router

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"world-cities/api/handlers"
	"world-cities/api/middleware"
	"world-cities/config"
	_ "world-cities/docs"
	"world-cities/dto"
	"world-cities/repositories"
	"world-cities/services"
)

func New(cfg config.AppConfig, store *repositories.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.CORS(cfg.Server.CORS))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		citySvc := services.NewCityService(store.Cities, store.Countries)
		api.GET("/cities", handlers.ListCitiesHandler(citySvc, cfg.Paging))
		api.GET("/cities/:id", handlers.GetCityHandler(citySvc))
		api.POST("/cities", handlers.CreateCityHandler(citySvc))
		api.PUT("/cities/:id", handlers.UpdateCityHandler(citySvc))
		api.DELETE("/cities/:id", handlers.DeleteCityHandler(citySvc))
		api.POST("/cities/is-dupe", handlers.IsDupeCityHandler(citySvc))

		countrySvc := services.NewCountryService(store.Countries)
		api.GET("/countries", handlers.ListCountriesHandler(countrySvc, cfg.Paging))
		api.GET("/countries/:id", handlers.GetCountryHandler(countrySvc))
		api.POST("/countries", handlers.CreateCountryHandler(countrySvc))
		api.PUT("/countries/:id", handlers.UpdateCountryHandler(countrySvc))
		api.DELETE("/countries/:id", handlers.DeleteCountryHandler(countrySvc))
		api.POST("/countries/is-dupe-field", handlers.IsDupeCountryFieldHandler(countrySvc))
	}

	r.NoRoute(spaFallback(cfg.Server.StaticDir))

	return r
}

// spaFallback serves files from dir and index.html for any other GET, so the
// client side router can resolve deep links. API paths still get a JSON 404.
func spaFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
