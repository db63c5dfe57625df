package server

import (
	"testing"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/config"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/database"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/service"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer builds a Server around an in-memory database, without Redis
// and without the Prometheus middleware (its collectors register globally and
// would collide across tests).
func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:      "test-secret-test-secret-test-secret",
		Port:           "0",
		MaxUploadBytes: 8 * 1024 * 1024,
		UploadDir:      t.TempDir(),
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     userRepo,
		postRepo:     postRepo,
		voteRepo:     voteRepo,
		commentRepo:  commentRepo,
		plantRepo:    plantRepo,
		reminderRepo: reminderRepo,
		photoRepo:    photoRepo,
	}
	s.postService = service.NewPostService(postRepo, voteRepo)
	s.moderationService = service.NewModerationService(db)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.plantService = service.NewPlantService(plantRepo)
	s.reminderService = service.NewReminderService(plantRepo, reminderRepo)
	s.diagnosisService = service.NewDiagnosisService(
		plantRepo, photoRepo, cfg.UploadDir, int64(cfg.MaxUploadBytes))

	return s
}

func createTestUser(t *testing.T, db *gorm.DB, username string, admin bool) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
		IsAdmin:  admin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, status models.PostStatus) models.Post {
	t.Helper()
	post := models.Post{
		Title:    "Feuilles jaunes sur mon monstera",
		Content:  "Les feuilles du bas jaunissent depuis une semaine, que faire ?",
		Category: models.CategoryQuestions,
		UserID:   userID,
		Status:   status,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
