package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ilumastore/go-store-backend/app/admin"
	"github.com/ilumastore/go-store-backend/app/catalog"
	"github.com/ilumastore/go-store-backend/app/orders"
	"github.com/ilumastore/go-store-backend/config"
	"github.com/ilumastore/go-store-backend/database"
	"github.com/ilumastore/go-store-backend/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close(db)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	products := api.Group("/products")

	catalog.NewHandler(catalog.NewService[models.Device]("devices", models.NewCatalogRepository[models.Device](db))).
		Register(products, "devices")
	catalog.NewHandler(catalog.NewService[models.Iqos]("iqos", models.NewCatalogRepository[models.Iqos](db))).
		Register(products, "iqos")
	catalog.NewHandler(catalog.NewService[models.Terea]("terea", models.NewCatalogRepository[models.Terea](db))).
		Register(products, "terea")

	orders.NewHandler(orders.NewService(models.NewOrdersRepository(db))).Register(api)

	admin.Routes(r.Group("/admin"), db)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
