// Package upload implements the request pipeline that turns a multipart
// upload into a shareable provider link: validate, stage to scratch disk,
// delegate to the provider, respond, and always release the staged file.
package upload

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/paimon/gateway/internal/provider"
	"github.com/paimon/gateway/internal/response"
	"github.com/paimon/gateway/internal/staging"
)

const (
	// ServiceName and Version are reported by /status.
	ServiceName = "Paimon Cloud Storage API"
	Version     = "1.0.0"

	// defaultService is used when the service query parameter is absent.
	defaultService = provider.Mega

	// maxMultipartMemory bounds the in-memory portion of multipart parsing;
	// anything larger spills to disk before staging.
	maxMultipartMemory = 32 << 20
)

// Handler holds HTTP handlers for the gateway endpoints.
type Handler struct {
	store    *staging.Store
	registry *provider.Registry
	log      *zap.SugaredLogger
}

// NewHandler creates a Handler over the given staging store and registry.
func NewHandler(store *staging.Store, registry *provider.Registry, log *zap.SugaredLogger) *Handler {
	return &Handler{store: store, registry: registry, log: log}
}

// SuccessBody is the 200 response for a completed upload.
type SuccessBody struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Service  string `json:"service"`
	Link     string `json:"link"`
}

// PingBody is the /ping response.
type PingBody struct {
	Message string `json:"message"`
}

// StatusBody is the /status response.
type StatusBody struct {
	Status            string   `json:"status"`
	Version           string   `json:"version"`
	Service           string   `json:"service"`
	TempDir           string   `json:"temp_dir"`
	SupportedServices []string `json:"supported_services"`
}

// Ping godoc
//
//	@Summary		Connectivity check
//	@Description	Returns a static message confirming the server is running.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	upload.PingBody
//	@Router			/ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, PingBody{Message: "Server running"})
}

// Status godoc
//
//	@Summary		Health check
//	@Description	Returns server version, scratch directory, and supported services.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	upload.StatusBody
//	@Router			/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, StatusBody{
		Status:            "healthy",
		Version:           Version,
		Service:           ServiceName,
		TempDir:           h.store.Dir(),
		SupportedServices: h.registry.Supported(),
	})
}

// Upload godoc
//
//	@Summary		Upload a file to a cloud storage service
//	@Description	Stages the file locally, forwards it to the requested service, and returns a shareable link.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Auth-Token	header		string	true	"Authentication token"
//	@Param			service			query		string	false	"Cloud storage service"	default(mega)
//	@Param			file			formData	file	true	"File to upload"
//	@Success		200				{object}	upload.SuccessBody
//	@Failure		400				{object}	response.ErrorDetail
//	@Failure		401				{object}	response.ErrorDetail
//	@Failure		403				{object}	response.ErrorDetail
//	@Failure		500				{object}	response.ErrorDetail
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	service := strings.ToLower(r.URL.Query().Get("service"))
	if service == "" {
		service = defaultService
	}
	if !h.registry.Supports(service) {
		err := &provider.UnsupportedServiceError{Name: service, Supported: h.registry.Supported()}
		h.log.Errorw("unsupported service requested", "service", service)
		response.BadRequest(w, err.Error())
		return
	}

	file, header, err := h.formFile(r)
	if err != nil {
		h.log.Errorw("no filename provided", "service", service)
		response.BadRequest(w, "No filename provided")
		return
	}
	defer file.Close()

	h.log.Infow("upload started",
		"filename", header.Filename,
		"service", service,
		"size", header.Size,
	)

	link, err := h.forward(r.Context(), service, header.Filename, file)
	if err != nil {
		h.log.Errorw("upload failed",
			"filename", header.Filename,
			"service", service,
			"error", err,
		)
		response.UploadFailed(w, "Upload failed: "+err.Error())
		return
	}

	h.log.Infow("upload completed", "filename", header.Filename, "link", link)
	response.JSON(w, http.StatusOK, SuccessBody{
		Status:   "success",
		Message:  "File uploaded successfully",
		Filename: header.Filename,
		Service:  service,
		Link:     link,
	})
}

// forward stages the content, delegates to the resolved provider, and
// releases the staged file before returning, so cleanup happens on every
// exit path ahead of the response being written.
func (h *Handler) forward(ctx context.Context, service, name string, content io.Reader) (string, error) {
	staged, err := h.store.Stage(name, content)
	if err != nil {
		return "", err
	}
	defer h.store.Release(staged)

	p, err := h.registry.Resolve(service)
	if err != nil {
		return "", err
	}
	return p.UploadAndLink(ctx, staged)
}

var errNoFilename = errors.New("no filename provided")

// formFile extracts the multipart file part, rejecting requests without a
// file part or without a client-supplied file name.
func (h *Handler) formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, err
	}
	f, fh, err := r.FormFile("file")
	if err != nil {
		return nil, nil, err
	}
	if fh.Filename == "" {
		f.Close()
		return nil, nil, errNoFilename
	}
	return f, fh, nil
}
