package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/DiegoG0477/koru-api/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// imageFormField is the multipart field carrying an optional image.
const imageFormField = "image"

// parseIDParam parses a numeric path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("path parameter %q must be a positive integer", name)
	}

	return id, nil
}

// parseIntQuery parses an optional integer query parameter, falling back to
// def when absent. A present but malformed value is an error.
func parseIntQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("query parameter %q must be an integer", name)
	}

	return value, nil
}

// parseInt64Query parses an optional int64 query parameter into a pointer.
func parseInt64Query(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.Errorf("query parameter %q must be an integer", name)
	}

	return &value, nil
}

// parseFloatQuery parses an optional float query parameter into a pointer.
func parseFloatQuery(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("query parameter %q must be a number", name)
	}

	return &value, nil
}

// readImageUpload extracts the optional image file from a multipart request.
// A missing file or a non-multipart body is not an error.
func readImageUpload(c echo.Context) (*service.ImageUpload, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read image file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image data")
	}

	return &service.ImageUpload{
		Data:        data,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	}, nil
}
