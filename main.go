package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/cosmodumplings/cosmo-pos/config"
	"github.com/cosmodumplings/cosmo-pos/controllers"
	"github.com/cosmodumplings/cosmo-pos/database"
	"github.com/cosmodumplings/cosmo-pos/kds"
	"github.com/cosmodumplings/cosmo-pos/models"
	"github.com/cosmodumplings/cosmo-pos/router"
	"github.com/cosmodumplings/cosmo-pos/services"
	"github.com/cosmodumplings/cosmo-pos/settings"
	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/store"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("no .env file, using process environment")
	}
}

func main() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	appState := state.NewAppState()

	// The terminal stays usable when the store is down: the loader falls back
	// to seed data and every remote write below is gated on the connected
	// flag.
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Printf("remote store unreachable: %v", err)
		db = nil
	} else {
		autoMigrate(db)
	}

	remote := store.NewRemoteStore(db)
	loader := state.NewLoader(remote, appState)
	loader.LoadAll()

	hub := kds.NewHub()

	var monitor *services.ChangeMonitor
	if db != nil {
		monitor = services.NewChangeMonitor(db, appState, hub)
		monitor.Start()
		defer monitor.Stop()
	}

	settingsMgr := settings.NewManager(config.DataDir())
	checkout := services.NewCheckoutService(appState, remote, settingsMgr)
	notifier := services.NewNotifier(
		os.Getenv("EMAIL_ENDPOINT"),
		os.Getenv("SMS_ENDPOINT"),
	)
	assistant := services.NewAssistant(
		os.Getenv("ASSISTANT_ENDPOINT"),
		os.Getenv("ASSISTANT_API_KEY"),
	)

	r := router.SetupRouter(router.Controllers{
		Users:     controllers.NewUserController(appState, remote),
		Products:  controllers.NewProductController(appState, remote),
		Cart:      controllers.NewCartController(appState, settingsMgr),
		Orders:    controllers.NewOrderController(appState, checkout, remote, loader, notifier),
		Customers: controllers.NewCustomerController(appState),
		Category:  controllers.NewCategoryController(appState, remote),
		Status:    controllers.NewStatusController(appState, remote),
		Screens:   controllers.NewScreenController(appState, remote),
		Settings:  controllers.NewSettingsController(settingsMgr),
		KDS:       controllers.NewKDSController(hub),
		Assistant: controllers.NewAssistantController(assistant),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.CategoryItem{},
		&models.Order{},
		&models.OrderStatus{},
		&models.KitchenScreen{},
		&models.DBChange{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to migrate: %v", err)
	}
	utils.InfoLogger.Println("migration completed")

	if err := database.ExecuteTriggers(db); err != nil {
		utils.ErrorLogger.Printf("error setting up triggers: %v", err)
	}
}
