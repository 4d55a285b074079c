package handler

import (
	"net/http"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apierror"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/service"

	"github.com/gin-gonic/gin"
)

type AceitunasHandler struct{ svc service.AceitunaService }

func NewAceitunasHandler(svc service.AceitunaService) *AceitunasHandler {
	return &AceitunasHandler{svc: svc}
}

// Registrar da de alta una entrada de aceituna.
func (h *AceitunasHandler) Registrar(c *gin.Context) {
	var req dto.EntradaAceitunaRequest
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

func (h *AceitunasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarEntradas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorCliente recupera las entradas de un agricultor por email.
func (h *AceitunasHandler) ListarPorCliente(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, apierror.New("email requerido"))
		return
	}
	resp, err := h.svc.ListarPorCliente(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AceitunasHandler) ListarPorCampana(c *gin.Context) {
	resp, err := h.svc.ListarPorCampana(c.Request.Context(), c.Param("campana"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AceitunasHandler) ListarCampanias(c *gin.Context) {
	campanias, err := h.svc.ListarCampanias(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if campanias == nil {
		campanias = []string{}
	}
	c.JSON(http.StatusOK, campanias)
}

func (h *AceitunasHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.EntradaAceitunaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEntrada(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AceitunasHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarEntrada(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
