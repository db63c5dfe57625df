// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Username, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePlant constructs and persists a plant from the catalog for the
// given owner, with a plausible acquisition date and care history.
func (f *Factory) CreatePlant(user *models.User, overrides ...func(*models.Plant)) (*models.Plant, error) {
	entry := plantCatalog[f.rng.Intn(len(plantCatalog))]
	acquired := f.pastTime()
	plant := &models.Plant{
		UserID:                  user.ID,
		Name:                    entry.Name,
		Species:                 entry.Species,
		Location:                plantLocations[f.rng.Intn(len(plantLocations))],
		AcquiredAt:              &acquired,
		WateringIntervalDays:    3 + f.rng.Intn(12),
		FertilizingIntervalDays: []int{0, 14, 30, 30, 60}[f.rng.Intn(5)],
	}

	// Most plants were watered at some point since acquisition.
	if f.rng.Intn(4) > 0 {
		watered := acquired.Add(time.Duration(f.rng.Intn(72)) * time.Hour)
		plant.LastWateredAt = &watered
	}

	for _, override := range overrides {
		override(plant)
	}

	if f.opts.DryRun {
		f.nextID++
		plant.ID = f.nextID
		log.Printf("[dry-run] CreatePlant: %s (%s) for user %d", plant.Name, plant.Species, plant.UserID)
		return plant, nil
	}

	if err := f.db.Create(plant).Error; err != nil {
		return nil, err
	}
	return plant, nil
}

// BuildPost constructs a forum post for the given category without
// persisting it. Useful for batching.
func (f *Factory) BuildPost(user *models.User, category string, overrides ...func(*models.Post)) *models.Post {
	titles := postTitlesByCategory[category]
	if len(titles) == 0 {
		category = "questions"
		titles = postTitlesByCategory[category]
	}

	post := &models.Post{
		Title:     titles[f.rng.Intn(len(titles))],
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Category:  category,
		UserID:    user.ID,
		Status:    models.PostStatusPending,
		CreatedAt: f.pastTime(),
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: commentSnippets[f.rng.Intn(len(commentSnippets))],
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateVote persists a vote from `user` on `post`. A user voting twice
// on the same post is a no-op rather than an error.
func (f *Factory) CreateVote(user *models.User, post *models.Post, value models.VoteValue) error {
	if f.opts.DryRun {
		return nil
	}
	vote := &models.Vote{
		PostID: post.ID,
		UserID: user.ID,
		Value:  value,
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(vote).Error
}

// pastTime returns a timestamp spread over the configured MaxDays window
// so seeded feeds look lived-in rather than created all at once.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
