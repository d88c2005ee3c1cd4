package folio

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 400
	jpegQuality   = 85
	maxUploadSize = 5 << 20 // 5MB
)

var (
	errTooLarge   = errors.New("image too large")
	errUnreadable = errors.New("upload unreadable")
)

// processImage decodes an image from src, shrinks it to maxImageWidth when
// wider, and returns it as a JPEG data URI.
func processImage(src io.Reader) (string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// readUpload validates the multipart "image" field and returns its processed
// data URI.
func readUpload(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnreadable, err)
	}
	if file.Size > maxUploadSize {
		return "", errTooLarge
	}
	if ct := file.Header.Get(echo.HeaderContentType); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("content type %q is not an image", ct)
	}
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnreadable, err)
	}
	defer src.Close()
	return processImage(io.LimitReader(src, maxUploadSize))
}

func (a *App) handleImageUpload(c echo.Context) error {
	uri, err := readUpload(c)
	switch {
	case errors.Is(err, errTooLarge):
		return a.jsonError(c, http.StatusRequestEntityTooLarge, MsgImageTooLarge)
	case errors.Is(err, errUnreadable):
		a.Logger.Info("profile image upload unreadable", zap.Error(err))
		return a.jsonError(c, http.StatusBadRequest, MsgImageReadFailed)
	case err != nil:
		a.Logger.Info("profile image rejected", zap.Error(err))
		return a.jsonError(c, http.StatusBadRequest, MsgInvalidImage)
	}
	if err := a.Content.SaveProfileImage(c.Request().Context(), uri); err != nil {
		return a.jsonError(c, http.StatusInternalServerError, MsgImageSaveFailed)
	}
	return a.jsonNotice(c, http.StatusOK, MsgImageUpdated, nil)
}
