package po

import "songmanager/domain/song"

// SongPO is the row shape of the songs table.
type SongPO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Title  string `gorm:"size:255;not null;index"`
	Artist string `gorm:"size:255;not null"`
	Album  string `gorm:"size:255;not null"`
	Year   int    `gorm:"not null"`
}

func (SongPO) TableName() string {
	return "songs"
}

func FromSongDomain(s *song.Song) *SongPO {
	row := &SongPO{
		Title:  s.Title,
		Artist: s.Artist,
		Album:  s.Album,
		Year:   s.Year,
	}
	if s.ID != nil {
		row.ID = *s.ID
	}
	return row
}

func (po *SongPO) ToDomain() *song.Song {
	s := song.New(po.Title, po.Artist, po.Album, po.Year)
	s.ID = song.IDPtr(po.ID)
	return s
}
