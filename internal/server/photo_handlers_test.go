package server

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func photoUploadRequest(t *testing.T, target string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", "plante.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func registerPhotoRoutes(app *fiber.App, s *Server, currentUserID uint) {
	asUser := func(h fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals("userID", currentUserID)
			return h(c)
		}
	}

	app.Post("/plants/:id/photos", asUser(s.UploadPlantPhoto))
	app.Get("/plants/:id/photos", asUser(s.GetPlantPhotos))
}

func TestUploadPlantPhoto(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	s := newTestServer(t, db)
	owner := createTestUser(t, db, "proprietaire", false)
	plant := createTestPlant(t, db, owner.ID, 7)

	app := fiber.New()
	registerPhotoRoutes(app, s, owner.ID)

	t.Run("healthy green photo", func(t *testing.T) {
		content := solidPNG(t, 600, 400, color.RGBA{R: 40, G: 180, B: 50, A: 255})
		req := photoUploadRequest(t, fmt.Sprintf("/plants/%d/photos", plant.ID), content)
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		var photo models.PlantPhoto
		decodeBody(t, resp, &photo)
		if photo.Status != models.DiagnosisHealthy {
			t.Errorf("expected healthy verdict, got %s", photo.Status)
		}
		if photo.Width != 600 || photo.Height != 400 {
			t.Errorf("expected decoded dimensions 600x400, got %dx%d", photo.Width, photo.Height)
		}

		// The WebP rendition must exist on disk.
		if photo.ThumbPath == "" {
			t.Fatal("expected a thumb path")
		}
		if _, err := os.Stat(filepath.Join(s.config.UploadDir, filepath.FromSlash(photo.ThumbPath))); err != nil {
			t.Errorf("expected rendition on disk: %v", err)
		}
	})

	t.Run("brown photo reads as sick", func(t *testing.T) {
		content := solidPNG(t, 200, 200, color.RGBA{R: 140, G: 90, B: 40, A: 255})
		req := photoUploadRequest(t, fmt.Sprintf("/plants/%d/photos", plant.ID), content)
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		var photo models.PlantPhoto
		decodeBody(t, resp, &photo)
		if photo.Status != models.DiagnosisSick {
			t.Errorf("expected sick verdict, got %s", photo.Status)
		}
	})

	t.Run("non-image upload refused", func(t *testing.T) {
		req := photoUploadRequest(t, fmt.Sprintf("/plants/%d/photos", plant.ID), []byte("definitely not an image"))
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/plants/%d/photos", plant.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestGetPlantPhotos(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	s := newTestServer(t, db)
	owner := createTestUser(t, db, "proprietaire", false)
	stranger := createTestUser(t, db, "inconnu", false)
	plant := createTestPlant(t, db, owner.ID, 7)

	if err := db.Create(&models.PlantPhoto{
		PlantID:    plant.ID,
		Format:     "png",
		Width:      600,
		Height:     400,
		SizeBytes:  1234,
		Status:     models.DiagnosisHealthy,
		GreenRatio: 0.62,
	}).Error; err != nil {
		t.Fatalf("seed photo: %v", err)
	}

	t.Run("owner lists history", func(t *testing.T) {
		app := fiber.New()
		registerPhotoRoutes(app, s, owner.ID)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/plants/%d/photos", plant.ID), nil)
		resp, _ := app.Test(req)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var photos []models.PlantPhoto
		decodeBody(t, resp, &photos)
		if len(photos) != 1 {
			t.Fatalf("expected 1 photo, got %d", len(photos))
		}
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		app := fiber.New()
		registerPhotoRoutes(app, s, stranger.ID)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/plants/%d/photos", plant.ID), nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})
}
