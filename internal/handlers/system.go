package handlers

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// captureProxy forwards /captures/<file> to the backend's own /captures route so
// thumbnails resolve from the kiosk origin.
func (h *Handler) captureProxy() gin.HandlerFunc {
	target, err := url.Parse(h.opts.BackendURL)
	if h.opts.BackendURL == "" || err != nil {
		if err != nil && h.log != nil {
			h.log.Errorw("capture_proxy_disabled", "backend", h.opts.BackendURL, "err", err)
		}
		return func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "captures unavailable"})
		}
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			if h.log != nil {
				h.log.Infow("capture_proxy_failed", "path", r.URL.Path, "err", err)
			}
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}

// @Summary      Board snapshot
// @Description  The whole kiosk view state: indicators, live card, slots, history rows, revenue and chart.
// @Tags         board
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/board [get]
func (h *Handler) getBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Board())
}
