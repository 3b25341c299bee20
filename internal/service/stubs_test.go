package service

import (
	"context"

	"nnrgconnect/internal/models"
)

type userRepoStub struct {
	getByIDFn         func(context.Context, string) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByRollNumberFn func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	deleteFn          func(context.Context, string) error
	listPendingFn     func(context.Context) ([]models.User, error)
	listAllFn         func(context.Context) ([]models.User, error)
	searchFn          func(context.Context, string, string, string) ([]models.User, error)
	suggestFn         func(context.Context, string) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByRollNumber(ctx context.Context, roll string) (*models.User, error) {
	return s.getByRollNumberFn(ctx, roll)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) ListPending(ctx context.Context) ([]models.User, error) {
	return s.listPendingFn(ctx)
}
func (s *userRepoStub) ListAll(ctx context.Context) ([]models.User, error) {
	return s.listAllFn(ctx)
}
func (s *userRepoStub) Search(ctx context.Context, field, query, excludeID string) ([]models.User, error) {
	return s.searchFn(ctx, field, query, excludeID)
}
func (s *userRepoStub) Suggest(ctx context.Context, excludeID string) ([]models.User, error) {
	return s.suggestFn(ctx, excludeID)
}

type connRepoStub struct {
	createFn      func(context.Context, *models.Connection) error
	getByPairFn   func(context.Context, string, string) (*models.Connection, error)
	listForUserFn func(context.Context, string) ([]models.Connection, error)
	listBetweenFn func(context.Context, string, []string) ([]models.Connection, error)
}

func (s *connRepoStub) Create(ctx context.Context, conn *models.Connection) error {
	return s.createFn(ctx, conn)
}
func (s *connRepoStub) GetByPair(ctx context.Context, lowID, highID string) (*models.Connection, error) {
	return s.getByPairFn(ctx, lowID, highID)
}
func (s *connRepoStub) ListForUser(ctx context.Context, userID string) ([]models.Connection, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *connRepoStub) ListBetween(ctx context.Context, userID string, targetIDs []string) ([]models.Connection, error) {
	return s.listBetweenFn(ctx, userID, targetIDs)
}

type generatorStub struct {
	generateFn func(context.Context, string, string) (string, error)
}

func (s *generatorStub) Generate(ctx context.Context, feature, prompt string) (string, error) {
	return s.generateFn(ctx, feature, prompt)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		getByRollNumberFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:          func(context.Context, *models.User) error { return nil },
		updateFn:          func(context.Context, *models.User) error { return nil },
		deleteFn:          func(context.Context, string) error { return nil },
		listPendingFn:     func(context.Context) ([]models.User, error) { return nil, nil },
		listAllFn:         func(context.Context) ([]models.User, error) { return nil, nil },
		searchFn:          func(context.Context, string, string, string) ([]models.User, error) { return nil, nil },
		suggestFn:         func(context.Context, string) ([]models.User, error) { return nil, nil },
	}
}

func noopConnRepo() *connRepoStub {
	return &connRepoStub{
		createFn:      func(context.Context, *models.Connection) error { return nil },
		getByPairFn:   func(context.Context, string, string) (*models.Connection, error) { return nil, nil },
		listForUserFn: func(context.Context, string) ([]models.Connection, error) { return nil, nil },
		listBetweenFn: func(context.Context, string, []string) ([]models.Connection, error) { return nil, nil },
	}
}
