package song

// Song 歌曲实体
// ID 在仓储首次保存前为 nil，分配后不再改变
type Song struct {
	ID     *int64 `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Year   int    `json:"year"`
}

// New 创建尚未持久化的歌曲
func New(title, artist, album string, year int) *Song {
	return &Song{
		Title:  title,
		Artist: artist,
		Album:  album,
		Year:   year,
	}
}

// Persisted 仓储是否已分配标识
func (s *Song) Persisted() bool {
	return s.ID != nil
}

// Overwrite 用 from 的内容字段覆盖当前歌曲，保留标识
func (s *Song) Overwrite(from *Song) {
	s.Title = from.Title
	s.Artist = from.Artist
	s.Album = from.Album
	s.Year = from.Year
}

// Clone 深拷贝，包括标识
func (s *Song) Clone() *Song {
	c := *s
	if s.ID != nil {
		id := *s.ID
		c.ID = &id
	}
	return &c
}

// IDPtr 内联构造标识的辅助函数
func IDPtr(id int64) *int64 {
	return &id
}
