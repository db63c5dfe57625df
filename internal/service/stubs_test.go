package service

import (
	"context"
	"errors"
	"testing"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint, uint) (*models.Post, error)
	getDetailFn    func(context.Context, uint, uint) (*repository.PostDetail, error)
	listApprovedFn func(context.Context, repository.ListApprovedOptions) ([]*models.Post, error)
	listByStatusFn func(context.Context, models.PostStatus, int, int) ([]*models.Post, error)
	listByUserFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	deleteFn       func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetDetail(ctx context.Context, id, currentUserID uint) (*repository.PostDetail, error) {
	return s.getDetailFn(ctx, id, currentUserID)
}
func (s *postRepoStub) ListApproved(ctx context.Context, opts repository.ListApprovedOptions) ([]*models.Post, error) {
	return s.listApprovedFn(ctx, opts)
}
func (s *postRepoStub) ListByStatus(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	return s.listByStatusFn(ctx, status, limit, offset)
}
func (s *postRepoStub) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getDetailFn: func(_ context.Context, _, _ uint) (*repository.PostDetail, error) {
			return &repository.PostDetail{}, nil
		},
		listApprovedFn: func(_ context.Context, _ repository.ListApprovedOptions) ([]*models.Post, error) {
			return nil, nil
		},
		listByStatusFn: func(_ context.Context, _ models.PostStatus, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		listByUserFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// voteRepoStub is a stub for repository.VoteRepository.
type voteRepoStub struct {
	upsertFn           func(context.Context, *models.Vote) error
	getByPostAndUserFn func(context.Context, uint, uint) (*models.Vote, error)
	listByPostFn       func(context.Context, uint) ([]*models.Vote, error)
	deleteFn           func(context.Context, uint, uint) error
}

func (s *voteRepoStub) Upsert(ctx context.Context, vote *models.Vote) error {
	return s.upsertFn(ctx, vote)
}
func (s *voteRepoStub) GetByPostAndUser(ctx context.Context, postID, userID uint) (*models.Vote, error) {
	return s.getByPostAndUserFn(ctx, postID, userID)
}
func (s *voteRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Vote, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *voteRepoStub) Delete(ctx context.Context, postID, userID uint) error {
	return s.deleteFn(ctx, postID, userID)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		upsertFn:           func(_ context.Context, _ *models.Vote) error { return nil },
		getByPostAndUserFn: func(_ context.Context, _, _ uint) (*models.Vote, error) { return nil, nil },
		listByPostFn:       func(_ context.Context, _ uint) ([]*models.Vote, error) { return nil, nil },
		deleteFn:           func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// plantRepoStub is a stub for repository.PlantRepository.
type plantRepoStub struct {
	createFn     func(context.Context, *models.Plant) error
	getByIDFn    func(context.Context, uint) (*models.Plant, error)
	listByUserFn func(context.Context, uint) ([]*models.Plant, error)
	listAllFn    func(context.Context) ([]*models.Plant, error)
	updateFn     func(context.Context, *models.Plant) error
	deleteFn     func(context.Context, uint) error
}

func (s *plantRepoStub) Create(ctx context.Context, plant *models.Plant) error {
	return s.createFn(ctx, plant)
}
func (s *plantRepoStub) GetByID(ctx context.Context, id uint) (*models.Plant, error) {
	return s.getByIDFn(ctx, id)
}
func (s *plantRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Plant, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *plantRepoStub) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return s.listAllFn(ctx)
}
func (s *plantRepoStub) Update(ctx context.Context, plant *models.Plant) error {
	return s.updateFn(ctx, plant)
}
func (s *plantRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPlantRepo() *plantRepoStub {
	return &plantRepoStub{
		createFn:     func(_ context.Context, _ *models.Plant) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Plant, error) { return &models.Plant{}, nil },
		listByUserFn: func(_ context.Context, _ uint) ([]*models.Plant, error) { return nil, nil },
		listAllFn:    func(_ context.Context) ([]*models.Plant, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Plant) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// reminderRepoStub is a stub for repository.ReminderRepository.
type reminderRepoStub struct {
	insertMissingFn     func(context.Context, []models.CareReminder) (int64, error)
	listPendingByUserFn func(context.Context, uint) ([]*models.CareReminder, error)
	listByPlantFn       func(context.Context, uint) ([]*models.CareReminder, error)
	getByIDFn           func(context.Context, uint) (*models.CareReminder, error)
	acknowledgeFn       func(context.Context, uint) error
}

func (s *reminderRepoStub) InsertMissing(ctx context.Context, reminders []models.CareReminder) (int64, error) {
	return s.insertMissingFn(ctx, reminders)
}
func (s *reminderRepoStub) ListPendingByUser(ctx context.Context, userID uint) ([]*models.CareReminder, error) {
	return s.listPendingByUserFn(ctx, userID)
}
func (s *reminderRepoStub) ListByPlant(ctx context.Context, plantID uint) ([]*models.CareReminder, error) {
	return s.listByPlantFn(ctx, plantID)
}
func (s *reminderRepoStub) GetByID(ctx context.Context, id uint) (*models.CareReminder, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reminderRepoStub) Acknowledge(ctx context.Context, id uint) error {
	return s.acknowledgeFn(ctx, id)
}

func noopReminderRepo() *reminderRepoStub {
	return &reminderRepoStub{
		insertMissingFn: func(_ context.Context, rs []models.CareReminder) (int64, error) {
			return int64(len(rs)), nil
		},
		listPendingByUserFn: func(_ context.Context, _ uint) ([]*models.CareReminder, error) { return nil, nil },
		listByPlantFn:       func(_ context.Context, _ uint) ([]*models.CareReminder, error) { return nil, nil },
		getByIDFn:           func(_ context.Context, _ uint) (*models.CareReminder, error) { return &models.CareReminder{}, nil },
		acknowledgeFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// photoRepoStub is a stub for repository.PhotoRepository.
type photoRepoStub struct {
	createFn      func(context.Context, *models.PlantPhoto) error
	getByIDFn     func(context.Context, uint) (*models.PlantPhoto, error)
	listByPlantFn func(context.Context, uint) ([]*models.PlantPhoto, error)
}

func (s *photoRepoStub) Create(ctx context.Context, photo *models.PlantPhoto) error {
	return s.createFn(ctx, photo)
}
func (s *photoRepoStub) GetByID(ctx context.Context, id uint) (*models.PlantPhoto, error) {
	return s.getByIDFn(ctx, id)
}
func (s *photoRepoStub) ListByPlant(ctx context.Context, plantID uint) ([]*models.PlantPhoto, error) {
	return s.listByPlantFn(ctx, plantID)
}

func noopPhotoRepo() *photoRepoStub {
	return &photoRepoStub{
		createFn:      func(_ context.Context, _ *models.PlantPhoto) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.PlantPhoto, error) { return &models.PlantPhoto{}, nil },
		listByPlantFn: func(_ context.Context, _ uint) ([]*models.PlantPhoto, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

// assertNotVotableError asserts that err is an AppError with code NOT_VOTABLE.
func assertNotVotableError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeNotVotable, appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}
