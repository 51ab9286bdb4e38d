package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"mealplan/internal/config"
	"mealplan/internal/db"
	"mealplan/internal/model"
	"mealplan/internal/repository"
)

// starterDishes is a small catalog large enough to exercise week menu
// generation (7 per rotating category).
var starterDishes = []model.Dish{
	{Name: "红烧肉", Type: model.DishTypeMeat, Category: "家常菜"},
	{Name: "可乐鸡翅", Type: model.DishTypeMeat, Category: "家常菜"},
	{Name: "糖醋排骨", Type: model.DishTypeMeat, Category: "家常菜"},
	{Name: "宫保鸡丁", Type: model.DishTypeMeat, Category: "川菜"},
	{Name: "回锅肉", Type: model.DishTypeMeat, Category: "川菜"},
	{Name: "水煮牛肉", Type: model.DishTypeMeat, Category: "川菜"},
	{Name: "清蒸鲈鱼", Type: model.DishTypeMeat, Category: "海鲜"},
	{Name: "清炒时蔬", Type: model.DishTypeVegetable, Category: "家常菜"},
	{Name: "蒜蓉西兰花", Type: model.DishTypeVegetable, Category: "家常菜"},
	{Name: "地三鲜", Type: model.DishTypeVegetable, Category: "东北菜"},
	{Name: "麻婆豆腐", Type: model.DishTypeVegetable, Category: "川菜"},
	{Name: "干煸四季豆", Type: model.DishTypeVegetable, Category: "川菜"},
	{Name: "番茄炒蛋", Type: model.DishTypeVegetable, Category: "家常菜"},
	{Name: "酸辣土豆丝", Type: model.DishTypeVegetable, Category: "家常菜"},
	{Name: "紫菜蛋花汤", Type: model.DishTypeSoup, Category: "汤"},
	{Name: "番茄蛋汤", Type: model.DishTypeSoup, Category: "汤"},
	{Name: "冬瓜排骨汤", Type: model.DishTypeSoup, Category: "汤"},
	{Name: "玉米排骨汤", Type: model.DishTypeSoup, Category: "汤"},
	{Name: "酸辣汤", Type: model.DishTypeSoup, Category: "汤"},
	{Name: "莲藕汤", Type: model.DishTypeSoup, Category: "汤"},
	{Name: "海带豆腐汤", Type: model.DishTypeSoup, Category: "汤"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Dish{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	dishRepo := repository.NewDishRepository(gormDB)
	ctx := context.Background()

	seeded, skipped := 0, 0
	for _, dish := range starterDishes {
		_, err := dishRepo.FindByName(ctx, dish.Name)
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check dish %q: %v", dish.Name, err)
		}

		dish := dish
		if err := dishRepo.Create(ctx, &dish); err != nil {
			log.Fatalf("Failed to create dish %q: %v", dish.Name, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New dishes created: %d", seeded)
	log.Printf("  - Already present, skipped: %d", skipped)
}
