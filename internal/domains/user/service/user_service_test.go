package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-manager/internal/domains/user/model"
)

type fakeRepo struct {
	users []model.User
}

func (f *fakeRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.LibraryID == u.LibraryID {
			return model.ErrDuplicateLibraryID
		}
	}
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeRepo) GetByLibraryID(_ context.Context, libraryID string) (*model.User, error) {
	for _, u := range f.users {
		if u.LibraryID == libraryID {
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]model.User, error) {
	return f.users, nil
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(&fakeRepo{})
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, &model.CreateUserRequest{Name: "Ann", LibraryID: " U1 "}))

	id, err := svc.Authenticate(ctx, "U1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	_, err = svc.Authenticate(ctx, "U2")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDescribe(t *testing.T) {
	svc := NewUserService(&fakeRepo{users: []model.User{{ID: 1, Name: "Ann", LibraryID: "U1"}}})

	line, err := svc.Describe(context.Background(), "U1")

	require.NoError(t, err)
	assert.Equal(t, "Name: Ann, Library ID: U1", line)
}

func TestAdd_DuplicateLibraryID(t *testing.T) {
	svc := NewUserService(&fakeRepo{users: []model.User{{ID: 1, Name: "Ann", LibraryID: "U1"}}})

	err := svc.Add(context.Background(), &model.CreateUserRequest{Name: "Bob", LibraryID: "U1"})

	assert.ErrorIs(t, err, model.ErrDuplicateLibraryID)
}
