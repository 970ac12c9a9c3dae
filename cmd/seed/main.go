package main

import (
	"flag"
	"fmt"
	"time"

	"wallpaperhub/internal/slug"
	"wallpaperhub/pkg/config"
	"wallpaperhub/pkg/database"
	"wallpaperhub/pkg/logger"
	"wallpaperhub/pkg/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var adminPassword string
	flag.StringVar(&adminPassword, "admin-password", "changeme", "Password for the seeded admin account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, adminPassword, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, adminPassword string, log *logger.Logger) error {
	if err := seedAdmin(db, adminPassword, log); err != nil {
		return err
	}
	if err := seedWallpapers(db, log); err != nil {
		return err
	}
	return seedBlog(db, log)
}

func seedAdmin(db *gorm.DB, password string, log *logger.Logger) error {
	var existing models.AdminUser
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		log.Info("Admin user already exists, skipping")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.AdminUser{
		Username:     "admin",
		PasswordHash: string(hashed),
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("Created admin user: %s", admin.Username)
	return nil
}

func seedWallpapers(db *gorm.DB, log *logger.Logger) error {
	samples := []models.Wallpaper{
		{
			Title:       "Mountain Sunrise",
			Description: "First light over a jagged ridgeline",
			Category:    "Nature",
			Tags:        pq.StringArray{"mountains", "sunrise", "4k", "landscape", "orange"},
			ImageURL:    "https://images.example.com/wallpapers/mountain-sunrise.jpg",
		},
		{
			Title:       "Neon Grid",
			Description: "Synthwave grid fading into a violet horizon",
			Category:    "Abstract",
			Tags:        pq.StringArray{"neon", "grid", "4k", "landscape", "purple"},
			ImageURL:    "https://images.example.com/wallpapers/neon-grid.jpg",
		},
		{
			Title:       "Rainy Window",
			Description: "City lights blurred through rain drops",
			Category:    "City",
			Tags:        pq.StringArray{"rain", "bokeh", "1080p", "portrait", "blue"},
			ImageURL:    "https://images.example.com/wallpapers/rainy-window.jpg",
		},
	}

	for i := range samples {
		wallpaper := &samples[i]

		var existing models.Wallpaper
		if err := db.Where("title = ?", wallpaper.Title).First(&existing).Error; err == nil {
			log.Info("Wallpaper %q already exists, skipping", wallpaper.Title)
			continue
		}

		if err := db.Create(wallpaper).Error; err != nil {
			return fmt.Errorf("failed to create wallpaper %q: %w", wallpaper.Title, err)
		}
		log.Info("Created wallpaper: %s (%s)", wallpaper.Title,
			slug.Encode(wallpaper.Category, wallpaper.Title, wallpaper.ID))
	}

	return nil
}

func seedBlog(db *gorm.DB, log *logger.Logger) error {
	postSlug := "choosing-the-right-wallpaper-resolution"

	var existing models.BlogPost
	if err := db.Where("slug = ?", postSlug).First(&existing).Error; err == nil {
		log.Info("Blog post %q already exists, skipping", postSlug)
		return nil
	}

	now := time.Now()
	post := &models.BlogPost{
		Title:       "Choosing the Right Wallpaper Resolution",
		Slug:        postSlug,
		Excerpt:     "Why the native resolution of your display matters more than raw pixel count.",
		Content:     "<p>Picking a wallpaper that matches your display keeps text crisp and gradients smooth.</p>",
		Status:      models.PostPublished,
		Author:      "admin",
		PublishedAt: &now,
	}
	if err := db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	category := models.BlogCategory{Name: "Guides", Slug: "guides"}
	if err := db.Where(models.BlogCategory{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	if err := db.Model(post).Association("Categories").Append(&category); err != nil {
		return fmt.Errorf("failed to link category: %w", err)
	}

	log.Info("Created blog post: %s", post.Slug)
	return nil
}
