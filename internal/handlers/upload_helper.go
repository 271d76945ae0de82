package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/upload"
)

const maxUploadBytes = 10 << 20

// processUpload lee el campo multipart "image", lo convierte a webp y
// lo guarda en el storage configurado. Devuelve la URL pública.
func processUpload(c *gin.Context, storage upload.Storage) (string, bool) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Falta el archivo de imagen.")
		return "", false
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "La imagen supera el tamaño máximo de 10MB.")
		return "", false
	}

	data, err := upload.Process(file)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "image_processing_error", "No se pudo procesar la imagen.")
		}
		return "", false
	}

	url, err := storage.Save(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "image_storage_error", "No se pudo guardar la imagen.")
		return "", false
	}

	return url, true
}
