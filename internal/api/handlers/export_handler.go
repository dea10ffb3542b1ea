package handlers

import (
	"net/http"

	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/export"
)

type ExportHandler struct {
	src  core.DataSource
	opts export.Options
}

func NewExportHandler(src core.DataSource, opts export.Options) *ExportHandler {
	return &ExportHandler{src: src, opts: opts}
}

// GetExport returns the bounded snapshot document.
func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, export.Build(h.src, h.opts))
}
