package utils

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint writes; the payload always lives
// under "data".
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SendSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message, Data: gin.H{}})
}
