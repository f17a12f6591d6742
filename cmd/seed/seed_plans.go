package main

import (
	"log"

	"guide-catalog-be/internal/config"
	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/model"
	"guide-catalog-be/pkg/database"
)

func intPtr(v int) *int { return &v }

// defaultPlans mirrors the plan catalog billing publishes.
// A nil SAML limit is unlimited.
func defaultPlans() []model.SubscriptionPlan {
	free := entity.FreePlan()
	return []model.SubscriptionPlan{
		{Name: free.Name, Slug: free.Slug, SamlApplicationsLimit: free.SamlApplicationsLimit, IsActive: true},
		{Name: "Pro", Slug: "pro", SamlApplicationsLimit: intPtr(3), IsActive: true},
		{Name: "Enterprise", Slug: "enterprise", SamlApplicationsLimit: nil, IsActive: true},
	}
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.App.Environment == "production")
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Subscription Plans...")

	for _, p := range defaultPlans() {
		// Check if plan with this slug already exists
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			log.Printf("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.Slug, err)
		} else {
			log.Printf("Created plan: %s (%s)", p.Name, p.Slug)
		}
	}

	log.Println("Plan seeding completed!")
}
