// Command seed loads a starter data set: staff accounts, a small menu, and
// the dining-room tables. Safe to re-run; existing data is left alone.
package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/example/platterflow/pkg/config"
	"github.com/example/platterflow/pkg/models"
	"github.com/example/platterflow/pkg/repository"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	db, err := repository.InitDB(&cfg.MySQL)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	ctx := context.Background()
	if err := seedUsers(ctx, db, cfg.Auth.BcryptCost, logger); err != nil {
		logger.Fatal("Failed to seed users", zap.Error(err))
	}
	if err := seedMenu(ctx, db, logger); err != nil {
		logger.Fatal("Failed to seed menu", zap.Error(err))
	}
	if err := seedTables(ctx, db, logger); err != nil {
		logger.Fatal("Failed to seed tables", zap.Error(err))
	}

	logger.Info("Seeding complete")
}

func seedUsers(ctx context.Context, db *gorm.DB, bcryptCost int, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Users already exist, skipping")
		return nil
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	seeds := []struct {
		username, password, fullName, role string
	}{
		{"chef@platterflow", "Chef1234", "Oleg Kozlov", models.RoleChef},
		{"waiter@platterflow", "Waiter123", "Ivan Petrov", models.RoleWaiter},
		{"admin@platterflow", "Admin123", "Alexander Ivanovich", models.RoleAdmin},
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcryptCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     seed.username,
			PasswordHash: string(hash),
			FullName:     seed.fullName,
			Role:         seed.role,
			IsActive:     true,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}
		logger.Info("Seeded user", zap.String("username", seed.username), zap.String("role", seed.role))
	}
	return nil
}

func seedMenu(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Menu items already exist, skipping")
		return nil
	}

	items := []models.MenuItem{
		{Name: "Caesar Salad", Description: "Classic salad with chicken, parmesan and caesar dressing", Price: 450.00, Category: "Appetizers", IsAvailable: true},
		{Name: "Mushroom Cream Soup", Description: "Porcini soup with cream and croutons", Price: 320.00, Category: "Appetizers", IsAvailable: true},
		{Name: "Tomato Bruschetta", Description: "Crispy bread with tomatoes, garlic and olive oil", Price: 280.00, Category: "Appetizers", IsAvailable: true},
		{Name: "Beef Steak", Description: "Grilled marbled beef with vegetables", Price: 1200.00, Category: "Mains", IsAvailable: true},
		{Name: "Pasta Bolognese", Description: "Spaghetti with meat sauce and parmesan", Price: 550.00, Category: "Mains", IsAvailable: true},
		{Name: "Chicken in Cream Sauce", Description: "Chicken breast with mushrooms in cream sauce", Price: 580.00, Category: "Mains", IsAvailable: true},
	}
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	logger.Info("Seeded menu items", zap.Int("count", len(items)))
	return nil
}

func seedTables(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Tables already exist, skipping")
		return nil
	}

	tables := []models.Table{
		{TableNumber: 1, Seats: 2},
		{TableNumber: 2, Seats: 2},
		{TableNumber: 3, Seats: 4},
		{TableNumber: 4, Seats: 4},
		{TableNumber: 5, Seats: 6},
		{TableNumber: 6, Seats: 6},
	}
	if err := db.WithContext(ctx).Create(&tables).Error; err != nil {
		return err
	}
	logger.Info("Seeded tables", zap.Int("count", len(tables)))
	return nil
}
