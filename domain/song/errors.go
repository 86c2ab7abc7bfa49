/*
Package song 定义歌曲领域模型、仓储接口与领域错误。
*/
package song

import (
	"strconv"

	"songmanager/domain/shared"
)

const entityName = "song"

// ErrNotFoundMessage 歌曲查询未命中时的统一消息
const ErrNotFoundMessage = "Song not found"

// NewSongNotFoundError 按 id 未找到歌曲
func NewSongNotFoundError(id int64) error {
	return shared.NewNotFoundError(entityName, ErrNotFoundMessage, "id="+strconv.FormatInt(id, 10))
}

// NewSongTitleNotFoundError 按标题未找到歌曲
func NewSongTitleNotFoundError(title string) error {
	return shared.NewNotFoundError(entityName, ErrNotFoundMessage, "title="+title)
}

// NewMissingIDError 缺少 id 参数
func NewMissingIDError(operation string) error {
	return shared.NewInvalidArgumentError(entityName, "id", "The given id must not be null", "operation="+operation)
}
