// Command main runs the database seeder for MonSuivi Vert.
package main

import (
	"flag"
	"log"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/config"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/database"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPlants := flag.Int("plants", 150, "Number of plants to create")
	numPosts := flag.Int("posts", 200, "Number of forum posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Apply a named seeder preset (e.g. demo, populated)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	if *preset != "" {
		log.Printf("Applying preset: %s (ignoring other flags)\n", *preset)
	} else {
		log.Printf("Target: %d users, %d plants, %d posts, clean=%v\n",
			*numUsers, *numPlants, *numPosts, *shouldClean)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *preset != "" {
		if err := seed.ApplyPreset(db, *preset); err != nil {
			log.Fatalf("❌ Preset seeding failed: %v", err)
		}
	} else {
		err := seed.Seed(db, seed.Options{
			NumUsers:    *numUsers,
			NumPlants:   *numPlants,
			NumPosts:    *numPosts,
			ShouldClean: *shouldClean,
		})
		if err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
