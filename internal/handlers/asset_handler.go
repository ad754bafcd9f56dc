package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/dynamolab/dl-course-site/internal/basepath"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AssetStorage is the interface that wraps access to static site files.
type AssetStorage interface {
	// Method OpenFile opens a file by its slash-separated site path.
	//
	// Missing files are reported with an error matching fs.ErrNotExist.
	OpenFile(name string) (*os.File, error)
}

// AssetHandler serves static files (slides, images) and falls back to the not-found page
type AssetHandler struct {
	BaseHandler
	storage  AssetStorage
	base     basepath.BasePath
	notFound http.HandlerFunc
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(storage AssetStorage, base basepath.BasePath, notFound http.HandlerFunc, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		BaseHandler: BaseHandler{Logger: logger},
		storage:     storage,
		base:        base,
		notFound:    notFound,
	}
}

// RegisterRoutes makes the asset handler the router's fallback
func (h *AssetHandler) RegisterRoutes(r chi.Router) {
	r.NotFound(h.ServeAsset)
}

// ServeAsset serves the file matching the request path, with range and conditional request support
func (h *AssetHandler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.notFound(w, r)
		return
	}

	name := h.assetName(r.URL.Path)
	if name == "" {
		h.notFound(w, r)
		return
	}

	file, err := h.storage.OpenFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.notFound(w, r)
			return
		}
		h.Logger.Error("failed to open asset", zap.String("asset", name), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to open file")
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		h.Logger.Error("failed to get asset info", zap.String("asset", name), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get file info")
		return
	}
	if fileInfo.IsDir() {
		h.notFound(w, r)
		return
	}

	http.ServeContent(w, r, fileInfo.Name(), fileInfo.ModTime(), file)
}

// assetName strips the base path from a request path; directories yield ""
func (h *AssetHandler) assetName(urlPath string) string {
	if prefix := h.base.String(); prefix != "" {
		if urlPath == prefix {
			return ""
		}
		urlPath = strings.TrimPrefix(urlPath, prefix+"/")
		if !strings.HasPrefix(urlPath, "/") {
			urlPath = "/" + urlPath
		}
	}
	if urlPath == "" || strings.HasSuffix(urlPath, "/") {
		return ""
	}
	return urlPath
}
