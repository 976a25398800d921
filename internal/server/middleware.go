package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSヘッダーの固定値
const (
	allowOrigin  = "*"
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type"
)

// logMessageKey はエラー行に出力するメッセージをハンドラから渡すためのキー
const logMessageKey = "haisou.logMessage"

// accessLogTimeLayout はアクセスログの日時フォーマット (例: 19/Oct/2026 14:03:05)
const accessLogTimeLayout = "02/Jan/2006 15:04:05"

// corsHeaders はすべてのレスポンスにCORSヘッダーを付与する
// ハンドラがヘッダーを書き出す前に設定するため、404やエラー応答にも付く
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		c.Next()
	}
}

// accessLogger はリクエスト完了ごとにアクセスログを出力する
func accessLogger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatAccessLog,
		Output:    out,
	})
}

// formatAccessLog はアクセスログの1行を組み立てる
//
//	19/Oct/2026 14:03:05 - "GET /index.html HTTP/1.1" 200 -
//
// エラー応答の場合は直前に "code 404, message File not found" の行を出力する
// サイズ欄は常に "-"
func formatAccessLog(param gin.LogFormatterParams) string {
	ts := param.TimeStamp.Format(accessLogTimeLayout)

	var b strings.Builder
	if param.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(param.StatusCode)
		if m, ok := param.Keys[logMessageKey].(string); ok && m != "" {
			message = m
		}
		fmt.Fprintf(&b, "%s - code %d, message %s\n", ts, param.StatusCode, message)
	}

	uri := param.Path
	proto := "HTTP/1.1"
	if param.Request != nil {
		if param.Request.RequestURI != "" {
			uri = param.Request.RequestURI
		}
		proto = param.Request.Proto
	}

	fmt.Fprintf(&b, "%s - \"%s %s %s\" %d -\n",
		ts, param.Method, uri, proto, param.StatusCode)
	return b.String()
}
