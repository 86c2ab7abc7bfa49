package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleSuccess 返回 200 和资源本身。
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleCreated 返回 201 和新建的资源。
func HandleCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
