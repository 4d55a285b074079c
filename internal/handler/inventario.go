package handler

import (
	"net/http"
	"strconv"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apierror"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// RegistrarEntrada registra una entrada manual de stock y su asiento.
func (h *InventarioHandler) RegistrarEntrada(c *gin.Context) {
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarEntrada(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarSalida registra una salida manual de stock y su asiento.
func (h *InventarioHandler) RegistrarSalida(c *gin.Context) {
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarSalida(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMovimientos devuelve el libro de movimientos filtrado y paginado.
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAnios devuelve los años con movimientos asentados.
func (h *InventarioHandler) ListarAnios(c *gin.Context) {
	anios, err := h.svc.ListarAnios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if anios == nil {
		anios = []int{}
	}
	c.JSON(http.StatusOK, anios)
}

// Reconciliar contrasta el stock de cada producto con el neto del libro.
func (h *InventarioHandler) Reconciliar(c *gin.Context) {
	resp, err := h.svc.Reconciliar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimientosPorAnio devuelve el libro de un año concreto. Un año
// sin movimientos responde una lista vacía.
func (h *InventarioHandler) ListarMovimientosPorAnio(c *gin.Context) {
	anio, err := strconv.Atoi(c.Param("anio"))
	if err != nil || anio < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("anio invalido"))
		return
	}
	resp, err2 := h.svc.ListarMovimientos(c.Request.Context(), dto.MovimientoFilter{Anio: anio})
	if err2 != nil {
		respondError(c, err2)
		return
	}
	c.JSON(http.StatusOK, resp)
}
