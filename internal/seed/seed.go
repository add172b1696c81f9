// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"portfolio-backend/internal/repository"
)

// SeedData inserts a couple of sample projects so the gallery is not empty on
// a fresh development database. It is a no-op when any project already exists.
func SeedData(repos *repository.Repositories) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := repos.ProjectRepo.FindAll(ctx)
	if err != nil {
		log.Printf("⚠️ Seed skipped, failed to check projects: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	now := time.Now().UTC()
	samples := []*repository.Project{
		{
			Title:        "Portfolio Website",
			Description:  "This very site: a Gin backend with a MongoDB project gallery and a session-authenticated admin panel.",
			ImageURL:     "/images/portfolio.png",
			Tags:         []string{"go", "web"},
			Technologies: []string{"Go", "Gin", "MongoDB", "Redis"},
			GithubURL:    "https://github.com/example/portfolio-backend",
			Featured:     true,
			CreatedAt:    now.Add(-time.Hour),
			UpdatedAt:    now.Add(-time.Hour),
		},
		{
			Title:        "Weather CLI",
			Description:  "A small terminal client for the OpenWeather API with per-city caching.",
			ImageURL:     "/images/weather-cli.png",
			Tags:         []string{"cli"},
			Technologies: []string{"Go"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	for _, project := range samples {
		if err := repos.ProjectRepo.Insert(ctx, project); err != nil {
			log.Printf("⚠️ Failed to seed project %q: %v", project.Title, err)
		}
	}
	log.Printf("🌱 Seeded %d sample projects", len(samples))
}
