package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/observability"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"gorm.io/gorm"

	_ "image/jpeg"             // Register JPEG decoder
	_ "image/png"              // Register PNG decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// thumbMaxSize bounds the stored WebP rendition.
	thumbMaxSize = 512
	// analysisSize is the frame size the color heuristic runs on.
	analysisSize = 128
	// thumbWebPQuality is the encoder quality for the stored rendition.
	thumbWebPQuality = 82
)

// Verdict thresholds on the green-pixel ratio of the analysis frame.
const (
	healthyGreenRatio = 0.40
	warningGreenRatio = 0.18
)

// DiagnosisService analyzes uploaded plant photos with a simple color
// heuristic: the share of clearly green pixels stands in for foliage health.
type DiagnosisService struct {
	plantRepo      repository.PlantRepository
	photoRepo      repository.PhotoRepository
	uploadDir      string
	maxUploadBytes int64
}

// AnalyzePhotoInput is an uploaded photo bound to one of the actor's plants.
type AnalyzePhotoInput struct {
	Actor       models.Actor
	PlantID     uint
	ContentType string
	Content     []byte
}

// NewDiagnosisService returns a new DiagnosisService.
func NewDiagnosisService(plantRepo repository.PlantRepository, photoRepo repository.PhotoRepository, uploadDir string, maxUploadBytes int64) *DiagnosisService {
	return &DiagnosisService{
		plantRepo:      plantRepo,
		photoRepo:      photoRepo,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}

// AnalyzePhoto decodes the upload, runs the diagnosis heuristic, stores a
// downscaled WebP rendition and persists the verdict.
func (s *DiagnosisService) AnalyzePhoto(ctx context.Context, in AnalyzePhotoInput) (*models.PlantPhoto, error) {
	plant, err := s.plantRepo.GetByID(ctx, in.PlantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Plant", in.PlantID)
		}
		return nil, err
	}
	if plant.UserID != in.Actor.ID && !in.Actor.IsAdmin {
		return nil, models.NewNotFoundError("Plant", in.PlantID)
	}

	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(in.Content)
	if !isAllowedPhotoMIME(detectedType) {
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, format, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}

	bounds := decoded.Bounds()
	ratio := greenRatio(scaleToFit(decoded, analysisSize, analysisSize))
	status, advice := classifyGreenRatio(ratio)

	thumb := scaleToFit(decoded, thumbMaxSize, thumbMaxSize)
	encoded, err := encodeWebP(thumb, thumbWebPQuality)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	hash := photoHash(in.Actor.ID, in.Content)
	thumbRel := filepath.ToSlash(filepath.Join("plants", fmt.Sprintf("%s.webp", hash)))
	if err := writeBytesToFile(filepath.Join(s.uploadDir, thumbRel), encoded); err != nil {
		return nil, models.NewInternalError(err)
	}

	photo := &models.PlantPhoto{
		PlantID:    in.PlantID,
		Format:     strings.ToLower(format),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		SizeBytes:  len(in.Content),
		ThumbPath:  thumbRel,
		Status:     status,
		GreenRatio: ratio,
		Advice:     advice,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}
	observability.DiagnosisResults.WithLabelValues(string(status)).Inc()

	return photo, nil
}

// ListPhotos returns the diagnosis history of a plant the actor owns.
func (s *DiagnosisService) ListPhotos(ctx context.Context, actor models.Actor, plantID uint) ([]*models.PlantPhoto, error) {
	plant, err := s.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Plant", plantID)
		}
		return nil, err
	}
	if plant.UserID != actor.ID && !actor.IsAdmin {
		return nil, models.NewNotFoundError("Plant", plantID)
	}
	return s.photoRepo.ListByPlant(ctx, plantID)
}

// classifyGreenRatio maps the measured green share to a verdict and advice.
func classifyGreenRatio(ratio float64) (models.DiagnosisStatus, string) {
	switch {
	case ratio >= healthyGreenRatio:
		return models.DiagnosisHealthy, "Foliage looks healthy. Keep the current care routine."
	case ratio >= warningGreenRatio:
		return models.DiagnosisWarning, "Some discoloration detected. Check watering frequency and light exposure."
	default:
		return models.DiagnosisSick, "Little healthy foliage detected. Inspect for disease, pests or root rot."
	}
}

// greenRatio returns the share of pixels where green clearly dominates.
func greenRatio(img image.Image) float64 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	var green int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// 16-bit channels; require green to dominate both other channels
			// with some margin and carry real intensity.
			if g > r+r/8 && g > b+b/8 && g > 0x3000 {
				green++
			}
		}
	}
	return float64(green) / float64(total)
}

func scaleToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedPhotoMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}

func photoHash(userID uint, content []byte) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%d:", userID)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func writeBytesToFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o640)
}
