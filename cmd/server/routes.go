package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DPANET/HomeyPrayersWeb/internal/config"
	"github.com/DPANET/HomeyPrayersWeb/internal/db"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/api"
	authapi "github.com/DPANET/HomeyPrayersWeb/internal/http/api/auth/endpoints"
	prayersapi "github.com/DPANET/HomeyPrayersWeb/internal/http/api/prayers/endpoints"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/middleware"
	"github.com/DPANET/HomeyPrayersWeb/internal/timings"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store db.Store, svc *timings.Service) {
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: false,
	}))

	// catch-all error middleware, attached last in the chain
	r.Use(middleware.ErrorHandler())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	defaults := prayersapi.TimingsDefaults{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
		Method:    cfg.DefaultMethod,
		City:      cfg.DefaultCity,
	}

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		authapi.AuthPublicModule(cfg.JWTSecret, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api/prayers",
		Middleware: []gin.HandlerFunc{middleware.OptionalJWT(cfg.JWTSecret, store)},
	},
		prayersapi.TimingsModule(svc, store, defaults),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/prayers",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		prayersapi.PersonalTimingsModule(svc, store, defaults),
		prayersapi.LocationsModule(store),
		prayersapi.SettingsModule(store),
	)

	// Static content
	staticRoot := filepath.Join(cfg.WebRoot, cfg.StaticFiles)
	mainFile := filepath.Join(cfg.MainFilePath, cfg.MainFileName)

	r.Static("/static", staticRoot)

	r.GET(cfg.MainFileURL, func(c *gin.Context) {
		c.File(mainFile)
	})

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			rel := strings.TrimPrefix(filepath.Clean(c.Request.URL.Path), "/")
			if rel != "" && !strings.HasPrefix(rel, "..") {
				full := filepath.Join(staticRoot, rel)

				info, err := os.Stat(full)
				if err == nil {
					if info.IsDir() {
						full = filepath.Join(full, "index.html")
						if _, err := os.Stat(full); err != nil {
							c.JSON(http.StatusNotFound, gin.H{"error": middleware.ErrNotFound.Error()})
							return
						}
					}
					c.File(full)
					return
				}
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": middleware.ErrNotFound.Error()})
	})
}
