package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"parking_kiosk/internal/board"

	"github.com/gin-gonic/gin"
)

//go:embed web/dashboard.html web/dashboard.js
var webFS embed.FS

// panelNames are the fragments streamed to the page; each one fills #panel-<name>.
var panelNames = []string{"indicators", "live", "slots", "history", "revenue", "vehicles"}

// boardView flattens the indicator map for the templates.
type boardView struct {
	board.Snapshot
	Boot   string
	Server board.Indicator
	Cam    board.Indicator
	Sensor board.Indicator
	MQ135  board.Indicator
}

func newBoardView(s board.Snapshot, boot string) boardView {
	return boardView{
		Snapshot: s,
		Boot:     boot,
		Server:   s.Indicators[board.ChannelServer],
		Cam:      s.Indicators[board.ChannelCam],
		Sensor:   s.Indicators[board.ChannelSensor],
		MQ135:    s.Indicators[board.ChannelMQ135],
	}
}

type pageRenderer struct {
	tmpl   *template.Template
	script []byte
}

func newPageRenderer() *pageRenderer {
	tmpl := template.Must(template.ParseFS(webFS, "web/dashboard.html"))
	script, err := webFS.ReadFile("web/dashboard.js")
	if err != nil {
		panic(fmt.Sprintf("dashboard script missing: %v", err))
	}
	return &pageRenderer{tmpl: tmpl, script: script}
}

// panels renders every streamed fragment for s.
func (p *pageRenderer) panels(s board.Snapshot) (map[string]string, error) {
	v := newBoardView(s, "")
	out := make(map[string]string, len(panelNames))
	var buf bytes.Buffer
	for _, name := range panelNames {
		buf.Reset()
		if err := p.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
			return nil, fmt.Errorf("render panel %s: %w", name, err)
		}
		out[name] = buf.String()
	}
	return out, nil
}

// @Summary      Kiosk page
// @Tags         board
// @Produce      html
// @Success      200  {string}  string  "HTML"
// @Router       / [get]
func (h *Handler) dashboard(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.page.tmpl.ExecuteTemplate(&buf, "dashboard.html", newBoardView(h.services.Board(), h.boot)); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to render page", "page_render_failed", err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) dashboardScript(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", h.page.script)
}
