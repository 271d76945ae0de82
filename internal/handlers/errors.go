package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
)

type businessResponse struct {
	status  int
	message string
}

// Tabla de traducción de los errores de negocio de los casos de uso a
// respuestas HTTP con mensaje para el usuario.
var businessResponses = map[string]businessResponse{
	"pet_not_found":            {http.StatusNotFound, "Mascota no encontrada."},
	"pet_forbidden":            {http.StatusForbidden, "La mascota no te pertenece."},
	"service_not_found":        {http.StatusNotFound, "Servicio no encontrado."},
	"payment_method_not_found": {http.StatusNotFound, "Método de pago no encontrado."},
	"payment_method_forbidden": {http.StatusForbidden, "El método de pago no te pertenece."},
	"invalid_date":             {http.StatusBadRequest, "Fecha inválida. Usa el formato AAAA-MM-DD."},
	"invalid_time":             {http.StatusBadRequest, "Hora inválida. Usa el formato HH:MM."},
	"appointment_not_found":    {http.StatusNotFound, "Cita no encontrada."},
	"not_service_owner":        {http.StatusForbidden, "Solo el dueño del servicio puede cambiar el estado de la cita."},
	"invalid_state":            {http.StatusBadRequest, "La cita no admite esa transición de estado."},

	"empty_cart":         {http.StatusBadRequest, "El carrito está vacío."},
	"invalid_quantity":   {http.StatusBadRequest, "Cantidad inválida en uno de los productos."},
	"total_mismatch":     {http.StatusBadRequest, "El total no coincide con la suma de los productos."},
	"address_not_found":  {http.StatusNotFound, "Dirección no encontrada."},
	"address_forbidden":  {http.StatusForbidden, "La dirección no te pertenece."},
	"incomplete_address": {http.StatusBadRequest, "La dirección de entrega está incompleta."},

	"empty_message":           {http.StatusBadRequest, "El mensaje no puede estar vacío."},
	"not_participant":         {http.StatusForbidden, "No participas en esta cita."},
	"sender_blocked":          {http.StatusForbidden, "Has bloqueado a este usuario; no puedes enviarle mensajes."},
	"provider_message_exists": {http.StatusConflict, "Ya enviaste tu mensaje para esta cita."},
	"reason_required":         {http.StatusBadRequest, "La denuncia necesita un motivo."},
	"report_not_found":        {http.StatusNotFound, "Denuncia no encontrada."},
	"report_already_resolved": {http.StatusBadRequest, "La denuncia ya fue resuelta."},
	"user_not_found":          {http.StatusNotFound, "Usuario no encontrado."},

	"notification_not_found": {http.StatusNotFound, "Notificación no encontrada."},
	"not_addressee":          {http.StatusForbidden, "La notificación no es tuya."},

	"invalid_image": {http.StatusBadRequest, "El archivo no es una imagen válida."},
}

// respondBusiness escribe la respuesta mapeada si err es un error de
// negocio; devuelve false si no lo es (el caller responde 500).
func respondBusiness(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	resp, ok := businessResponses[be.Code]
	if !ok {
		resp = businessResponse{http.StatusBadRequest, "Solicitud inválida."}
	}

	httperr.Write(c, resp.status, be.Code, resp.message)
	return true
}
