package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/assistant"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/cart"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/db"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/feedback"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/llm"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/middleware"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/order"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/report"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/session"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"GROQ_API_KEY",
		"GROQ_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	menu := catalog.Default()

	// ───────────────────────── PERSISTENCE SINK ─────────────────────────
	// DATABASE_URL switches the sink between Postgres and the local
	// flat-file mode the canteen started on.
	var (
		receiptRepo  order.Repository
		feedbackRepo feedback.Repository
	)

	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()

		receiptRepo = order.NewPostgresRepository(pool)
		feedbackRepo = feedback.NewPostgresRepository(pool)
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}

		var err error
		receiptRepo, err = order.NewCSVRepository(dataDir)
		if err != nil {
			log.Fatal("❌ receipts file init failed:", err)
		}
		feedbackRepo, err = feedback.NewCSVRepository(dataDir)
		if err != nil {
			log.Fatal("❌ feedback file init failed:", err)
		}

		log.Println("📄 Running on flat-file sink in", dataDir)
	}

	// ───────────────────────── CART STORE ─────────────────────────
	var cartStore cart.Store

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal("❌ Invalid REDIS_URL:", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("❌ Redis connection failed:", err)
		}
		cartStore = cart.NewRedisStore(client)
		log.Println("✅ Carts on Redis")
	} else {
		cartStore = cart.NewMemoryStore()
	}

	// ───────────────────────── STORAGE (OPTIONAL) ─────────────────────────
	var uploader order.Uploader
	if storage.Enabled() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploader = r2Client
		log.Println("✅ QR receipts enabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	cartService := cart.NewService(cartStore, menu)
	orderService := order.NewService(receiptRepo, cartService, menu, uploader)
	feedbackService := feedback.NewService(feedbackRepo, menu)

	groqClient := llm.NewGroqClient()
	assistantService := assistant.NewService(groqClient, menu, receiptRepo, feedbackRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	feedbackHandler := feedback.NewHandler(feedbackService)
	reportHandler := report.NewHandler(receiptRepo, menu)
	assistantHandler := assistant.NewHandler(assistantService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/session", session.Open)

	r.GET("/menu", func(c *gin.Context) {
		c.JSON(200, gin.H{"menu": menu.ByCategory()})
	})

	r.GET("/receipts", orderHandler.ListReceipts)
	r.GET("/feedback", feedbackHandler.List)

	reports := r.Group("/reports")
	{
		reports.GET("/sales/items", reportHandler.SalesByItem)
		reports.GET("/sales/categories", reportHandler.SalesByCategory)
	}

	// ───────────────────────── SESSION ROUTES ─────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.SessionMiddleware())
	{
		authed.GET("/cart", cartHandler.Get)
		authed.PUT("/cart/items", cartHandler.SetItem)
		authed.DELETE("/cart", cartHandler.Clear)

		authed.POST("/checkout", orderHandler.Checkout)
		authed.POST("/feedback", feedbackHandler.Submit)

		authed.POST("/assistant/ask", assistantHandler.Ask)
	}

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 Canteen API running at http://localhost:8000")
	r.Run(":8000")
}
