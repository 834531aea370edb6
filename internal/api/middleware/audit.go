package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/service"
)

// auditBodyMaxLen 审计记录的请求体截断上限
const auditBodyMaxLen = 2000

// Audit 过程日志中间件
// 将写操作（POST/PUT/PATCH/DELETE）的执行结果落库为过程日志
// 落库是尽力而为的：审计写入失败绝不影响业务请求本身
func Audit(plSvc service.ProcessLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		// 读出请求体用于审计，再还原给后续处理器
		var body string
		if c.Request.Body != nil {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, auditBodyMaxLen+1))
			if err == nil {
				if len(raw) > auditBodyMaxLen {
					raw = raw[:auditBodyMaxLen]
				}
				body = string(raw)
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), c.Request.Body))
			}
		}

		c.Next()

		status := c.Writer.Status()
		level := model.ProcessLogSuccess
		if status >= 500 {
			level = model.ProcessLogError
		} else if status >= 400 {
			level = model.ProcessLogWarning
		}

		plSvc.Record(
			c.Request.Context(),
			level,
			fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			c.Request.Method,
			c.Request.URL.Path,
			c.GetString(requestIDKey),
			body,
		)
	}
}
