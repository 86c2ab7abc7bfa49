/*
Package song 歌曲应用服务：存在性校验与字段更新，编排仓储调用。
*/
package song

import (
	"context"

	"songmanager/domain/song"
	"songmanager/pkg/logger"

	"go.uber.org/zap"
)

// Service holds no state besides the repository, so one instance serves
// all requests concurrently.
type Service struct {
	repo song.Repository
}

func NewService(repo song.Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns every song in storage order.
func (s *Service) ListAll(ctx context.Context) ([]*song.Song, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns the song or a not-found domain error.
func (s *Service) GetByID(ctx context.Context, id int64) (*song.Song, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new song. Any identifier on the input is discarded so a
// client cannot choose or overwrite a row through creation.
func (s *Service) Create(ctx context.Context, in *song.Song) (*song.Song, error) {
	fresh := song.New(in.Title, in.Artist, in.Album, in.Year)

	created, err := s.repo.Save(ctx, fresh)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Song created", zap.Int64("song_id", *created.ID))
	return created, nil
}

// Update overwrites the four content fields of an existing song.
// A missing song aborts before anything is saved.
func (s *Service) Update(ctx context.Context, id int64, fields *song.Song) (*song.Song, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Overwrite(fields)

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Song updated", zap.Int64("song_id", id))
	return updated, nil
}

// DeleteByID removes the song without checking it exists first.
// A nil id is rejected before the repository is touched.
func (s *Service) DeleteByID(ctx context.Context, id *int64) error {
	if id == nil {
		return song.NewMissingIDError("delete")
	}
	if err := s.repo.DeleteByID(ctx, *id); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug("Song deleted", zap.Int64("song_id", *id))
	return nil
}
