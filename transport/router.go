package transport

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iltempo/interplay/queue"
)

// Registry is the read side transport needs from the coordinator —
// just enough to serve GET /patterns without importing coordinator
// (which would otherwise import transport's sibling queue package
// right back, an avoidable coupling for a debug endpoint).
type Registry interface {
	Names() []string
}

// NewRouter builds the HTTP surface: POST /start/{name}, /stop/{name},
// /stopall, /clear/{name}, /clearall, plus a supplemental GET /patterns
// for introspection. Every POST enqueues a queue.Command and responds
// "ok"; a full queue responds 500.
func NewRouter(cmds *queue.Queue, reg Registry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/start/:name", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "bad request: %v", err)
			return
		}
		p, err := decodePattern(body)
		if err != nil {
			c.String(http.StatusBadRequest, "bad pattern: %v", err)
			return
		}
		enqueue(c, cmds, queue.Command{Kind: queue.PatternStart, Name: c.Param("name"), Pattern: p})
	})

	router.POST("/stop/:name", func(c *gin.Context) {
		enqueue(c, cmds, queue.Command{Kind: queue.PatternStop, Name: c.Param("name")})
	})

	router.POST("/stopall", func(c *gin.Context) {
		enqueue(c, cmds, queue.Command{Kind: queue.PatternStopAll})
	})

	router.POST("/clear/:name", func(c *gin.Context) {
		enqueue(c, cmds, queue.Command{Kind: queue.PatternClear, Name: c.Param("name")})
	})

	router.POST("/clearall", func(c *gin.Context) {
		enqueue(c, cmds, queue.Command{Kind: queue.PatternClearAll})
	})

	router.GET("/patterns", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(encodePatternNames(reg.Names())))
	})

	return router
}

func enqueue(c *gin.Context, cmds *queue.Queue, cmd queue.Command) {
	if !cmds.Push(cmd) {
		c.String(http.StatusInternalServerError, "queue full")
		return
	}
	c.String(http.StatusOK, "ok")
}
