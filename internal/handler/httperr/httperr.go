package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the fixed error envelope of the API: {"ok":false,"error":...}.
type Response struct {
	Status int    `json:"-"`
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, OK: false, Error: msg}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
