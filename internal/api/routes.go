package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"trailpack/internal/api/handlers"
	jwtMiddleware "trailpack/internal/api/middleware"
	"trailpack/internal/config"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	authHandler := handlers.NewAuthHandler(db, cfg.JWTKey)
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.SignUp)
	authGroup.POST("/signin", authHandler.SignIn)

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTKey),
		ContextKey: "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(echojwt.WithConfig(jwtConfig))
	apiGroup.Use(jwtMiddleware.ExtractUserIDFromJWT())

	userHandler := handlers.NewUserHandler(db, rdb)
	apiGroup.GET("/user/me", userHandler.GetCurrentUser)
	apiGroup.PUT("/user/me/password", userHandler.ChangePassword)

	listHandler := handlers.NewListHandler(db)
	apiGroup.GET("/lists", listHandler.GetLists)
	apiGroup.POST("/lists", listHandler.CreateList)
	apiGroup.GET("/lists/default", listHandler.GetDefaultList)
	apiGroup.DELETE("/lists/:id", listHandler.DeleteList)
	apiGroup.POST("/lists/:id/clone", listHandler.CloneList)
	apiGroup.GET("/lists/:id/items", listHandler.GetListItems)
	apiGroup.POST("/lists/:id/items", listHandler.CreateListItem)
	apiGroup.DELETE("/lists/:id/items", listHandler.ClearListItems)
	apiGroup.GET("/lists/:id/totals", listHandler.GetListTotals)

	itemHandler := handlers.NewItemHandler(db)
	apiGroup.PATCH("/items/:id", itemHandler.UpdateItem)
	apiGroup.DELETE("/items/:id", itemHandler.DeleteItem)
	apiGroup.GET("/categories", itemHandler.GetCategories)

	catalogHandler := handlers.NewCatalogHandler(db)
	apiGroup.GET("/catalog", catalogHandler.GetCatalog)
	apiGroup.POST("/catalog", catalogHandler.UpsertCatalogEntry)
	apiGroup.DELETE("/catalog/:id", catalogHandler.DeleteCatalogEntry)
	apiGroup.POST("/catalog/:id/add/:list_id", catalogHandler.AddCatalogEntryToList)
	apiGroup.GET("/lists/:id/catalog", catalogHandler.GetCatalogForList)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
