package main

import (
	"log"
	"os"

	"cafe_pos_backend/internal/config"
	"cafe_pos_backend/internal/console"
	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"
	"cafe_pos_backend/internal/services"
	"cafe_pos_backend/internal/storage"
	"cafe_pos_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.App.LogLevel)

	if err := os.MkdirAll(cfg.Files.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", cfg.Files.DataDir, err)
	}
	for _, name := range []string{
		cfg.Files.Inventory, cfg.Files.Recipes, cfg.Files.Menu,
		cfg.Files.Sales, cfg.Files.Expenses, cfg.Files.Accounts,
		cfg.Files.Receipts, cfg.Files.Alerts,
	} {
		if err := storage.EnsureFile(cfg.Files.Path(name)); err != nil {
			log.Fatalf("Failed to prepare data file: %v", err)
		}
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default admin password: %v", err)
	}
	adminSeed := models.Account{
		Role:     "boss",
		Username: cfg.Auth.DefaultAdminUser,
		Password: string(adminHash),
	}

	inventoryRepo := repositories.NewInventoryRepository(cfg.Files.Path(cfg.Files.Inventory))
	recipeRepo := repositories.NewRecipeRepository(cfg.Files.Path(cfg.Files.Recipes))
	menuRepo := repositories.NewMenuRepository(cfg.Files.Path(cfg.Files.Menu))
	saleRepo := repositories.NewSaleRepository(cfg.Files.Path(cfg.Files.Sales), cfg.App.CurrencyGlyph)
	expenseRepo := repositories.NewExpenseRepository(cfg.Files.Path(cfg.Files.Expenses), cfg.App.CurrencyGlyph)
	accountRepo := repositories.NewAccountRepository(cfg.Files.Path(cfg.Files.Accounts), adminSeed)
	alertRepo := repositories.NewAlertRepository(cfg.Files.Path(cfg.Files.Alerts))

	inventoryService, err := services.NewInventoryService(inventoryRepo, expenseRepo)
	if err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}
	menuService, err := services.NewMenuService(menuRepo, recipeRepo, inventoryService)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}
	authService, err := services.NewAuthService(accountRepo)
	if err != nil {
		log.Fatalf("Failed to load accounts: %v", err)
	}
	saleService := services.NewSaleService(saleRepo, inventoryService, cfg.Files.Path(cfg.Files.Receipts), cfg.App.CurrencyGlyph)
	reportService := services.NewReportService(saleRepo, expenseRepo, authService, cfg.App.CurrencyGlyph, cfg.Files.DataDir)

	utils.LogInfo("Starting "+cfg.App.Name, map[string]interface{}{"data_dir": cfg.Files.DataDir})

	console.New(cfg.App.CurrencyGlyph, authService, inventoryService, menuService, saleService, reportService, alertRepo).Run()
}
