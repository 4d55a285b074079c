package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apierror"
	"github.com/Fran86-design/Proyecto-Olisev/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// VentasPorFecha agrupa el total vendido por día dentro del rango
// desde/hasta (YYYY-MM-DD). Sin rango, el mes en curso.
func (h *ReportesHandler) VentasPorFecha(c *gin.Context) {
	desde, hasta, ok := rangoFechas(c)
	if !ok {
		return
	}
	resp, err := h.svc.VentasPorFecha(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasDelDia agrupa el total vendido del día en curso.
func (h *ReportesHandler) VentasDelDia(c *gin.Context) {
	resp, err := h.svc.VentasDelDia(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPorMes agrupa todo el histórico por mes.
func (h *ReportesHandler) VentasPorMes(c *gin.Context) {
	resp, err := h.svc.VentasPorMes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPorAnio agrupa por mes los pedidos del año pedido (?anio=).
func (h *ReportesHandler) VentasPorAnio(c *gin.Context) {
	anio, _ := strconv.Atoi(c.Query("anio"))
	resp, err := h.svc.VentasPorMesDelAnio(c.Request.Context(), anio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosVendidosMes lista unidades vendidas por producto en el mes
// indicado (?anio=&mes=). Sin parámetros, el mes en curso.
func (h *ReportesHandler) ProductosVendidosMes(c *gin.Context) {
	anio, _ := strconv.Atoi(c.Query("anio"))
	mes, _ := strconv.Atoi(c.Query("mes"))
	resp, err := h.svc.ProductosVendidosMes(c.Request.Context(), anio, mes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosVendidosHoy lista unidades vendidas por producto hoy.
func (h *ReportesHandler) ProductosVendidosHoy(c *gin.Context) {
	resp, err := h.svc.ProductosVendidosHoy(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosVendidosAnio lista unidades vendidas por producto en el año
// pedido (?anio=). Sin parámetro, el año en curso.
func (h *ReportesHandler) ProductosVendidosAnio(c *gin.Context) {
	anio, _ := strconv.Atoi(c.Query("anio"))
	resp, err := h.svc.ProductosVendidosAnio(c.Request.Context(), anio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) ProductosBajoStock(c *gin.Context) {
	umbral, _ := strconv.Atoi(c.Query("umbral"))
	resp, err := h.svc.ProductosBajoStock(c.Request.Context(), umbral)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func rangoFechas(c *gin.Context) (time.Time, time.Time, bool) {
	ahora := time.Now().UTC()
	desde := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)

	if v := c.Query("desde"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("desde invalido: use YYYY-MM-DD"))
			return time.Time{}, time.Time{}, false
		}
		desde = t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("hasta invalido: use YYYY-MM-DD"))
			return time.Time{}, time.Time{}, false
		}
		// hasta es inclusivo a nivel de día
		hasta = t.AddDate(0, 0, 1)
	}
	if !desde.Before(hasta) {
		c.JSON(http.StatusBadRequest, apierror.New("rango de fechas invalido"))
		return time.Time{}, time.Time{}, false
	}
	return desde, hasta, true
}
