package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	uploadconfig "project-dashboard/config"
	"project-dashboard/pkg/constants"
	apperrors "project-dashboard/pkg/errors"
)

// readUpload читает multipart-файл целиком, проверяя размер, расширение и сигнатуру.
func readUpload(c echo.Context, field string, uploadContext constants.UploadContext, maxSizeMB int64) (*bytes.Reader, *multipart.FileHeader, error) {
	ctx := map[string]interface{}{"context": uploadContext.String()}
	rules, ok := uploadconfig.RulesFor(uploadContext, maxSizeMB)
	if !ok {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "Неизвестный контекст загрузки", apperrors.ErrBadRequest, ctx)
	}
	maxBytes := rules.MaxBytes()

	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "Файл не был передан", apperrors.ErrBadRequest, ctx)
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return nil, nil, apperrors.NewHttpError(http.StatusRequestEntityTooLarge, "Файл слишком большой", apperrors.ErrBadRequest, ctx)
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !contains(rules.Extensions, ext) {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "Недопустимый тип файла", apperrors.ErrBadRequest, ctx)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка обработки файла", err, ctx)
	}
	defer src.Close()

	var r io.Reader = src
	if maxBytes > 0 {
		r = io.LimitReader(src, maxBytes)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка чтения файла", err, ctx)
	}
	if len(data) == 0 {
		return nil, nil, apperrors.NewBadRequestError(apperrors.ErrEmptyFile.Error())
	}
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !contains(rules.AllowedMimeTypes, mime) {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "Содержимое файла не похоже на xlsx", apperrors.ErrBadRequest, ctx)
	}
	return bytes.NewReader(data), fileHeader, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
