package song

import (
	"context"

	"songmanager/domain/song"

	"github.com/stretchr/testify/mock"
)

type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) FindAll(ctx context.Context) ([]*song.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*song.Song), args.Error(1)
}

func (m *MockSongRepository) FindByID(ctx context.Context, id int64) (*song.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*song.Song), args.Error(1)
}

func (m *MockSongRepository) FindFirstByTitle(ctx context.Context, title string) (*song.Song, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*song.Song), args.Error(1)
}

func (m *MockSongRepository) Save(ctx context.Context, s *song.Song) (*song.Song, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(context.Context, *song.Song) *song.Song); ok {
		return fn(ctx, s), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*song.Song), args.Error(1)
}

func (m *MockSongRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ song.Repository = (*MockSongRepository)(nil)
