package handler

import (
	"net/http"
	"strconv"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apierror"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear confirma un pedido: congela precios, asigna el código anual y
// descuenta stock de forma atómica.
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPedido(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPedido(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	h.listarCon(c, filter)
}

func (h *PedidosHandler) ListarEnviados(c *gin.Context) {
	enviado := true
	h.listarCon(c, dto.PedidoFilter{Enviado: &enviado})
}

func (h *PedidosHandler) ListarNoEnviados(c *gin.Context) {
	enviado := false
	h.listarCon(c, dto.PedidoFilter{Enviado: &enviado})
}

func (h *PedidosHandler) ListarPorAnio(c *gin.Context) {
	anio, err := strconv.Atoi(c.Param("anio"))
	if err != nil || anio < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("anio invalido"))
		return
	}
	h.listarCon(c, dto.PedidoFilter{Anio: anio})
}

// ListarPorCliente recupera los pedidos de un cliente por email.
func (h *PedidosHandler) ListarPorCliente(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, apierror.New("email requerido"))
		return
	}
	h.listarCon(c, dto.PedidoFilter{Email: email})
}

func (h *PedidosHandler) listarCon(c *gin.Context, filter dto.PedidoFilter) {
	resp, err := h.svc.ListarPedidos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) MarcarEnviado(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.MarcarEnviado(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosHandler) MarcarPagado(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.MarcarPagado(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosHandler) ActualizarCliente(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarDatosCliente(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarPedido(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
