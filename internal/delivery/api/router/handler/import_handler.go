package handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"freedge/config"
	"freedge/internal/delivery/api/response"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/errors"
	"freedge/internal/infra/dataset"
	"freedge/internal/usecase"
	"freedge/internal/util"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// datasetFormField is the multipart field carrying the CSV upload
const datasetFormField = "file"

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Config   *config.Config `optional:"true"`
	Logger   *slog.Logger
}

// ImportHandler serves dataset previews and their application
type ImportHandler struct {
	importUC       usecase.ImportUsecase
	maxUploadBytes int64
	logger         *slog.Logger
	today          func() civil.Date
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	var maxUploadBytes int64
	if params.Config != nil && params.Config.Importer != nil {
		maxUploadBytes = params.Config.Importer.MaxUploadBytes
	}

	return &ImportHandler{
		importUC:       params.ImportUC,
		maxUploadBytes: maxUploadBytes,
		logger:         params.Logger,
		today:          localToday,
	}
}

// ApplyImportRequest represents the optional body of an apply call
type ApplyImportRequest struct {
	AllowRemoveAll bool `json:"allow_remove_all"`
}

// PreviewImport reads a CSV upload, either multipart or a raw text/csv body, and returns its delta
func (h *ImportHandler) PreviewImport(c echo.Context) error {
	content, err := h.readDataset(c)
	if err != nil {
		return err
	}

	checksum, err := util.Checksum(bytes.NewReader(content))
	if err != nil {
		return err
	}

	rows, err := dataset.Load(bytes.NewReader(content))
	if err != nil {
		return err
	}

	preview, err := h.importUC.Preview(c.Request().Context(), rows, h.today())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toImportPreviewResponse(preview, checksum))
}

// ApplyImport writes a previewed delta
func (h *ImportHandler) ApplyImport(c echo.Context) error {
	previewID, err := parsePreviewID(c)
	if err != nil {
		return err
	}

	var req ApplyImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid apply request")
	}

	result, err := h.importUC.Apply(c.Request().Context(), previewID, req.AllowRemoveAll)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ImportResultResponse{
		Added:    result.Added,
		Removed:  result.Removed,
		Modified: result.Modified,
	})
}

// DiscardImport drops a preview the operator declined
func (h *ImportHandler) DiscardImport(c echo.Context) error {
	previewID, err := parsePreviewID(c)
	if err != nil {
		return err
	}

	if err := h.importUC.Discard(c.Request().Context(), previewID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parsePreviewID(c echo.Context) (uuid.UUID, error) {
	previewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("import id must be a UUID")
	}

	return previewID, nil
}

// readDataset returns the uploaded CSV. A zero maxUploadBytes disables the cap.
func (h *ImportHandler) readDataset(c echo.Context) ([]byte, error) {
	req := c.Request()
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return h.readCapped(req.Body)
	}

	fileHeader, err := c.FormFile(datasetFormField)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(`multipart field "file" is required`)
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return nil, h.tooLarge()
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return h.readCapped(file)
}

func (h *ImportHandler) readCapped(r io.Reader) ([]byte, error) {
	if h.maxUploadBytes <= 0 {
		content, err := io.ReadAll(r)

		return content, errors.WithStack(err)
	}

	content, err := io.ReadAll(io.LimitReader(r, h.maxUploadBytes+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if int64(len(content)) > h.maxUploadBytes {
		return nil, h.tooLarge()
	}

	return content, nil
}

func (h *ImportHandler) tooLarge() error {
	return domainerrors.ErrDatasetTooLarge.WithDetails(fmt.Sprintf("limit is %s", util.FormatBytes(h.maxUploadBytes)))
}

func localToday() civil.Date {
	return civil.DateOf(time.Now())
}
