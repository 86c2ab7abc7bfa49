/*
Package song 歌曲 API 控制器。

错误处理:
 1. 路径参数与请求体解析失败: response.HandleError 直接返回 400
 2. 业务错误: response.HandleAppError 按错误码映射状态码
*/
package song

import (
	"net/http"
	"strconv"

	"songmanager/api/response"
	songapp "songmanager/application/song"
	"songmanager/domain/song"

	"github.com/gin-gonic/gin"
)

// Controller 歌曲控制器
type Controller struct {
	songService *songapp.Service
}

// NewController 创建歌曲控制器
func NewController(songService *songapp.Service) *Controller {
	return &Controller{
		songService: songService,
	}
}

// RegisterRoutes 注册歌曲路由
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	songGroup := router.Group("/songs")
	{
		songGroup.GET("", c.ListSongs)
		songGroup.GET("/:id", c.GetSong)
		songGroup.POST("", c.CreateSong)
		songGroup.PUT("/:id", c.UpdateSong)
		songGroup.DELETE("/:id", c.DeleteSong)
	}
}

// parseID 解析路径中的 id，失败时已经写出 400 响应。
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(ctx, err, "song id must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// ListSongs 获取全部歌曲
// GET /songs
func (c *Controller) ListSongs(ctx *gin.Context) {
	songs, err := c.songService.ListAll(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, songs)
}

// GetSong 获取单首歌曲
// GET /songs/:id
func (c *Controller) GetSong(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	s, err := c.songService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, s)
}

// CreateSong 创建歌曲
// POST /songs
// 请求体中的 id 会被忽略。
func (c *Controller) CreateSong(ctx *gin.Context) {
	var req song.Song
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := c.songService.Create(ctx.Request.Context(), &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, created)
}

// UpdateSong 更新歌曲
// PUT /songs/:id
func (c *Controller) UpdateSong(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req song.Song
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := c.songService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, updated)
}

// DeleteSong 删除歌曲
// DELETE /songs/:id
// 删除不存在的歌曲同样返回 204。
func (c *Controller) DeleteSong(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.songService.DeleteByID(ctx.Request.Context(), &id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
