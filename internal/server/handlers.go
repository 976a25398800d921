package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticHandler は配信ディレクトリ配下のファイルとディレクトリ一覧を返す
type StaticHandler struct {
	fileServer http.Handler
}

// errorPage はエラーページテンプレートに渡す値
type errorPage struct {
	Code    int
	Message string
	Explain string
}

// NewStaticHandler は新しいStaticHandlerを作成する
func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{
		fileServer: http.FileServer(http.Dir(root)),
	}
}

// Handle はリクエストメソッドに応じて処理を振り分ける
// GET/HEADのみファイル配信を行い、それ以外は501を返す
func (h *StaticHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		h.fileServer.ServeHTTP(c.Writer, c.Request)
		if c.Writer.Status() == http.StatusNotFound {
			c.Set(logMessageKey, "File not found")
		}
	default:
		h.handleUnsupported(c)
	}
}

// handleUnsupported はファイル配信に対応しないメソッドへの応答
func (h *StaticHandler) handleUnsupported(c *gin.Context) {
	message := fmt.Sprintf("Unsupported method ('%s')", c.Request.Method)
	c.Set(logMessageKey, message)

	c.HTML(http.StatusNotImplemented, "error.html", errorPage{
		Code:    http.StatusNotImplemented,
		Message: message,
		Explain: "Server does not support this operation",
	})
}
