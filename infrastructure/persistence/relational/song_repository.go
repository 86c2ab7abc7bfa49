package relational

import (
	"context"
	"errors"

	"songmanager/domain/song"
	"songmanager/infrastructure/persistence/relational/po"

	"gorm.io/gorm"
)

type SongRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) *SongRepository {
	return &SongRepository{db: db}
}

func (r *SongRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *SongRepository) FindAll(ctx context.Context) ([]*song.Song, error) {
	var rows []po.SongPO
	if err := r.getDB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	songs := make([]*song.Song, len(rows))
	for i := range rows {
		songs[i] = rows[i].ToDomain()
	}
	return songs, nil
}

func (r *SongRepository) FindByID(ctx context.Context, id int64) (*song.Song, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var row po.SongPO
	result := r.getDB(ctx).Where("id = ?", id).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, song.NewSongNotFoundError(id)
		}
		return nil, result.Error
	}
	return row.ToDomain(), nil
}

func (r *SongRepository) FindFirstByTitle(ctx context.Context, title string) (*song.Song, error) {
	var row po.SongPO
	result := r.getDB(ctx).Where("title = ?", title).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, song.NewSongTitleNotFoundError(title)
		}
		return nil, result.Error
	}
	return row.ToDomain(), nil
}

// Save inserts a new row and lets the database assign the auto-increment key,
// or overwrites every column of an existing row.
func (r *SongRepository) Save(ctx context.Context, s *song.Song) (*song.Song, error) {
	row := po.FromSongDomain(s)

	if !s.Persisted() {
		if err := r.getDB(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return row.ToDomain(), nil
	}

	// gorm falls back to an upsert when the row vanished in between
	if err := r.getDB(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

func (r *SongRepository) DeleteByID(ctx context.Context, id int64) error {
	// RowsAffected == 0 means the song was already gone, which is fine
	return r.getDB(ctx).Delete(&po.SongPO{}, id).Error
}

func (r *SongRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.SongPO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SongRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.SongPO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ song.Repository = (*SongRepository)(nil)
