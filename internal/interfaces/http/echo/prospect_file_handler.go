package echo

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	app "github.com/mhkarimi/prospect-import/internal/application/prospect"
)

type ProspectFileHandler struct {
	importFile    app.ImportProspectFile
	trackProgress app.TrackImportProgress
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewProspectFileHandler(importFile app.ImportProspectFile, trackProgress app.TrackImportProgress) *ProspectFileHandler {
	return &ProspectFileHandler{
		importFile:    importFile,
		trackProgress: trackProgress,
	}
}

func (h *ProspectFileHandler) ImportProspectFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "a file upload is required",
		}})
	}

	emailIndex, err := strconv.Atoi(c.FormValue("email_index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "email_index must be a positive integer",
		}})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to read uploaded file",
		}})
	}
	defer src.Close()

	contents, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to read uploaded file",
		}})
	}

	out, err := h.importFile.Execute(c.Request().Context(), app.ImportProspectFileInput{
		OwnerID:        currentUserID(c),
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Contents:       contents,
		EmailIndex:     emailIndex,
		FirstNameIndex: optionalIntForm(c, "first_name_index"),
		LastNameIndex:  optionalIntForm(c, "last_name_index"),
		HasHeaders:     boolForm(c, "has_headers"),
		Force:          boolForm(c, "force"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidMapping):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_mapping",
				Message: "email_index must be a positive integer",
			}})
		case errors.Is(err, app.ErrFileTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge, apiResponse{Error: &errorBody{
				Code:    "file_too_large",
				Message: "file exceeds the maximum allowed size",
			}})
		case errors.Is(err, app.ErrUnsupportedMediaType):
			return c.JSON(http.StatusUnsupportedMediaType, apiResponse{Error: &errorBody{
				Code:    "unsupported_media_type",
				Message: "file must be a plain text or csv file",
			}})
		case errors.Is(err, app.ErrDuplicateFile):
			return c.JSON(http.StatusUnprocessableEntity, apiResponse{Error: &errorBody{
				Code:    "duplicate_file",
				Message: "the same exact file has already been processed",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to accept prospect file",
		}})
	}

	return c.JSON(http.StatusAccepted, apiResponse{Data: out})
}

func (h *ProspectFileHandler) TrackProgress(c echo.Context) error {
	out, err := h.trackProgress.Execute(c.Request().Context(), app.TrackImportProgressInput{
		RequestID: c.Param("request_id"),
		OwnerID:   currentUserID(c),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidRequestID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_request_id",
				Message: "request_id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrFileNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "prospect file not found",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to track import progress",
		}})
	}

	return c.JSON(http.StatusOK, out)
}

func optionalIntForm(c echo.Context, name string) *int {
	raw := c.FormValue(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func boolForm(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.FormValue(name))
	if err != nil {
		return false
	}
	return value
}
