/*
Package memory 提供歌曲仓储的进程内实现，用于本地运行和测试。
*/
package memory

import (
	"context"
	"sync"

	"songmanager/domain/song"
)

// SongRepository keeps songs in insertion order. Callers always receive
// copies, so no song value is shared between the store and a request.
type SongRepository struct {
	mu     sync.RWMutex
	songs  map[int64]*song.Song
	order  []int64
	nextID int64
}

func NewSongRepository() *SongRepository {
	return &SongRepository{
		songs:  make(map[int64]*song.Song),
		order:  make([]int64, 0),
		nextID: 1,
	}
}

func (r *SongRepository) FindAll(ctx context.Context) ([]*song.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*song.Song, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.songs[id].Clone())
	}
	return result, nil
}

func (r *SongRepository) FindByID(ctx context.Context, id int64) (*song.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.songs[id]
	if !ok {
		return nil, song.NewSongNotFoundError(id)
	}
	return s.Clone(), nil
}

func (r *SongRepository) FindFirstByTitle(ctx context.Context, title string) (*song.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if s := r.songs[id]; s.Title == title {
			return s.Clone(), nil
		}
	}
	return nil, song.NewSongTitleNotFoundError(title)
}

func (r *SongRepository) Save(ctx context.Context, s *song.Song) (*song.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := s.Clone()
	if stored.ID == nil {
		stored.ID = song.IDPtr(r.nextID)
		r.nextID++
	}

	id := *stored.ID
	if _, exists := r.songs[id]; !exists {
		r.order = append(r.order, id)
		// a caller-chosen id must not be handed out again later
		if id >= r.nextID {
			r.nextID = id + 1
		}
	}
	r.songs[id] = stored
	return stored.Clone(), nil
}

func (r *SongRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.songs[id]; !ok {
		return nil
	}
	delete(r.songs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *SongRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.songs[id]
	return ok, nil
}

func (r *SongRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.songs)), nil
}

var _ song.Repository = (*SongRepository)(nil)
