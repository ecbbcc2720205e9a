package http

import "github.com/gin-gonic/gin"

// Register attaches survey routes to the given router group. writeMiddleware
// runs in front of the mutating routes only.
func (h *Handler) Register(rg *gin.RouterGroup, writeMiddleware ...gin.HandlerFunc) {
	write := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), handler)
	}

	rg.POST("", write(h.create)...)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.GET("/:id/uncached", h.getUncached)
	rg.PATCH("/:id", write(h.update)...)
	rg.DELETE("/:id", write(h.remove)...)
}
