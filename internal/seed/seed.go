package seed

import (
	"fmt"
	"log"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPlants   int
	NumPosts    int
	ShouldClean bool
	// DryRun builds entities without touching the database.
	DryRun bool
	// SkipBcrypt stores the plain dev password instead of hashing it.
	SkipBcrypt bool
	// MaxDays bounds how far in the past generated timestamps go.
	MaxDays int
}

// AdminUsername is the well-known moderator account every seeded
// database contains. Its password is password123 like all seed users.
const AdminUsername = "moderateur"

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d plants and %d posts...",
		opts.NumUsers, opts.NumPlants, opts.NumPosts)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, admin, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created (moderator: %s)", len(users), admin.Username)

	plants, err := createPlants(f, users, opts.NumPlants)
	if err != nil {
		return fmt.Errorf("failed to create plants: %w", err)
	}
	log.Printf("✓ %d plants created", len(plants))

	posts, err := createPosts(f, users, admin, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createEngagement(f, users, posts); err != nil {
		return fmt.Errorf("failed to create votes and comments: %w", err)
	}
	log.Println("✓ votes and comments created on approved posts")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, votes, care_reminders, plant_photos, plants, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// createUsers creates count regular users plus the well-known moderator.
func createUsers(f *Factory, count int) ([]*models.User, *models.User, error) {
	admin, err := f.CreateUser(func(u *models.User) {
		u.Username = AdminUsername
		u.Email = "moderateur@monsuivi.dev"
		u.IsAdmin = true
	})
	if err != nil {
		return nil, nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, nil, err
		}
		users = append(users, user)
	}
	return users, admin, nil
}

func createPlants(f *Factory, users []*models.User, count int) ([]*models.Plant, error) {
	if len(users) == 0 {
		return nil, nil
	}
	plants := make([]*models.Plant, 0, count)
	for i := 0; i < count; i++ {
		owner := users[i%len(users)]
		plant, err := f.CreatePlant(owner)
		if err != nil {
			return nil, err
		}
		plants = append(plants, plant)
	}
	return plants, nil
}

// createPosts builds a realistic moderation mix: most posts approved,
// some still pending, a few rejected with a recorded reason.
func createPosts(f *Factory, users []*models.User, admin *models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[f.rng.Intn(len(users))]
		category := models.PostCategories[f.rng.Intn(len(models.PostCategories))]

		post := f.BuildPost(author, category, func(p *models.Post) {
			switch roll := f.rng.Intn(100); {
			case roll < 70:
				p.Status = models.PostStatusApproved
				p.ReviewedByUserID = &admin.ID
			case roll < 85:
				p.Status = models.PostStatusPending
			default:
				p.Status = models.PostStatusRejected
				reason := rejectionReasons[f.rng.Intn(len(rejectionReasons))]
				p.RejectionReason = &reason
				p.ReviewedByUserID = &admin.ID
			}
		})
		posts = append(posts, post)
	}

	if err := f.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// createEngagement adds votes and comments to approved posts only,
// matching what the API itself allows.
func createEngagement(f *Factory, users []*models.User, posts []*models.Post) error {
	if f.opts.DryRun {
		return nil
	}
	for _, post := range posts {
		if post.Status != models.PostStatusApproved {
			continue
		}

		voters := f.rng.Intn(len(users) + 1)
		for i := 0; i < voters; i++ {
			value := models.VoteLike
			if f.rng.Intn(100) < 25 {
				value = models.VoteDislike
			}
			if err := f.CreateVote(users[i], post, value); err != nil {
				return err
			}
		}

		comments := f.rng.Intn(4)
		for i := 0; i < comments; i++ {
			commenter := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	return nil
}
