package song

import "context"

// Repository 歌曲仓储接口
// 标识由实现负责分配：首次 Save 时发放单调递增的代理键，永不复用。
type Repository interface {
	// FindAll 按存储顺序返回全部歌曲，不返回 nil
	FindAll(ctx context.Context) ([]*Song, error)

	// FindByID 返回歌曲，不存在时返回 shared.ErrNotFound 领域错误
	FindByID(ctx context.Context, id int64) (*Song, error)

	// FindFirstByTitle 返回标题完全匹配的第一首歌曲
	FindFirstByTitle(ctx context.Context, title string) (*Song, error)

	// Save 无 ID 的歌曲插入新行，有 ID 的覆盖原行
	// 返回的歌曲带有分配的标识
	Save(ctx context.Context, s *Song) (*Song, error)

	// DeleteByID 删除歌曲，id 不存在不视为错误
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID 判断 id 是否存在
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Count 返回歌曲总数
	Count(ctx context.Context) (int64, error)
}
