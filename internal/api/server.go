package api

import (
	"log"

	"github.com/dristi2006/expiry-date-tracker/config"
	"github.com/dristi2006/expiry-date-tracker/infra/queue"
	"github.com/dristi2006/expiry-date-tracker/internal/api/rest/handlers"
	"github.com/dristi2006/expiry-date-tracker/internal/api/rest/middleware"
	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/dristi2006/expiry-date-tracker/pkg/scanner"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey, which the signup path relies on
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Item{},
		&domain.Reminder{},
		&domain.LookbookEntry{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedLookbook(db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	labelScanner := scanner.New(cfg.PythonBin, cfg.ScriptDir)
	authHelper := helper.SetupAuth(cfg.AccessSecret)
	codeGen := helper.NewCodeGenerator(cfg.CodeTTLSeconds)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	lookbookRepo := repository.NewLookbookRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, kafkaProducer, authHelper, codeGen)
	itemSvc := services.NewItemService(itemRepo)
	reminderSvc := services.NewReminderService(reminderRepo, itemRepo)
	lookbookSvc := services.NewLookbookService(lookbookRepo)
	settingsSvc := services.NewSettingsService(userRepo)
	scanSvc := services.NewScanService(labelScanner, cfg.UploadDir)

	// ---------- Routes ----------
	api := app.Group("/api")

	handlers.NewAuthHandler(authSvc).SetupRoutes(api)
	handlers.NewLookbookHandler(lookbookSvc).SetupRoutes(api)

	protected := api.Group("", middleware.AuthMiddleware(authHelper))
	handlers.NewItemHandler(itemSvc, scanSvc, authHelper).SetupRoutes(protected)
	handlers.NewReminderHandler(reminderSvc, authHelper).SetupRoutes(protected)
	handlers.NewSettingsHandler(settingsSvc, authHelper).SetupRoutes(protected)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Grocery Expiry Tracker Backend Running")
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
	})

	// ---------- Listen ----------
	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}

func seedLookbook(db *gorm.DB) {
	repo := repository.NewLookbookRepository(db)
	n, err := repo.Count()
	if err != nil || n > 0 {
		return
	}

	sample := []domain.LookbookEntry{
		{ItemName: "Milk", DisposalMethod: "Pour down drain if expired, then clean container before recycling."},
		{ItemName: "Bread", DisposalMethod: "Compost if possible, otherwise discard in trash."},
		{ItemName: "Canned Goods", DisposalMethod: "Recycle can after emptying contents, discard spoiled contents."},
	}
	for i := range sample {
		if _, err := repo.Create(&sample[i]); err != nil {
			log.Printf("seed lookbook error: %v", err)
		}
	}
}
