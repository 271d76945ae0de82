package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

type NotificationHandler struct {
	store notify.Store
}

func NewNotificationHandler(store notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// List devuelve el buzón del usuario, más recientes primero.
func (h *NotificationHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	list, err := notify.ListInbox(c.Request.Context(), h.store, caller.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "No se pudieron listar las notificaciones.")
		return
	}

	httpresp.List(c, list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	n, err := notify.MarkRead(c.Request.Context(), h.store, caller.ID, uint(id))
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_update_notification", "No se pudo actualizar la notificación.")
		}
		return
	}

	httpresp.OK(c, n)
}
