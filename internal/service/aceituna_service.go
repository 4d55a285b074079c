package service

import (
	"context"
	"strings"

	"github.com/Fran86-design/Proyecto-Olisev/internal/apperr"
	"github.com/Fran86-design/Proyecto-Olisev/internal/dto"
	"github.com/Fran86-design/Proyecto-Olisev/internal/model"
	"github.com/Fran86-design/Proyecto-Olisev/internal/repository"
)

// AceitunaService gestiona el registro de entradas de aceituna: la
// recepción por campaña y el seguimiento de cocedera y fermentador.
// Es independiente del catálogo y del libro de stock: los kilos
// recibidos son materia prima, no producto terminado.
type AceitunaService interface {
	RegistrarEntrada(ctx context.Context, req dto.EntradaAceitunaRequest) (*dto.EntradaAceitunaResponse, error)
	ListarEntradas(ctx context.Context) ([]dto.EntradaAceitunaResponse, error)
	ListarPorCliente(ctx context.Context, email string) ([]dto.EntradaAceitunaResponse, error)
	ListarPorCampana(ctx context.Context, campana string) ([]dto.EntradaAceitunaResponse, error)
	ListarCampanias(ctx context.Context) ([]string, error)
	ActualizarEntrada(ctx context.Context, id int64, req dto.EntradaAceitunaRequest) (*dto.EntradaAceitunaResponse, error)
	EliminarEntrada(ctx context.Context, id int64) error
}

type aceitunaService struct {
	repo repository.EntradaAceitunaRepository
}

func NewAceitunaService(repo repository.EntradaAceitunaRepository) AceitunaService {
	return &aceitunaService{repo: repo}
}

func (s *aceitunaService) RegistrarEntrada(ctx context.Context, req dto.EntradaAceitunaRequest) (*dto.EntradaAceitunaResponse, error) {
	if err := validarEntradaAceituna(req); err != nil {
		return nil, err
	}
	e := entradaDesdeRequest(req)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return entradaToResponse(e), nil
}

func (s *aceitunaService) ListarEntradas(ctx context.Context) ([]dto.EntradaAceitunaResponse, error) {
	entradas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entradasToResponse(entradas), nil
}

func (s *aceitunaService) ListarPorCliente(ctx context.Context, email string) ([]dto.EntradaAceitunaResponse, error) {
	entradas, err := s.repo.ListPorCliente(ctx, email)
	if err != nil {
		return nil, err
	}
	return entradasToResponse(entradas), nil
}

func (s *aceitunaService) ListarPorCampana(ctx context.Context, campana string) ([]dto.EntradaAceitunaResponse, error) {
	entradas, err := s.repo.ListPorCampana(ctx, campana)
	if err != nil {
		return nil, err
	}
	return entradasToResponse(entradas), nil
}

func (s *aceitunaService) ListarCampanias(ctx context.Context) ([]string, error) {
	return s.repo.Campanias(ctx)
}

// ActualizarEntrada reemplaza todos los campos de la entrada, como el
// PUT del panel. La entrada debe existir.
func (s *aceitunaService) ActualizarEntrada(ctx context.Context, id int64, req dto.EntradaAceitunaRequest) (*dto.EntradaAceitunaResponse, error) {
	if err := validarEntradaAceituna(req); err != nil {
		return nil, err
	}
	existente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e := entradaDesdeRequest(req)
	e.ID = existente.ID
	e.CreatedAt = existente.CreatedAt
	if err := s.repo.Actualizar(ctx, e); err != nil {
		return nil, err
	}
	return entradaToResponse(e), nil
}

func (s *aceitunaService) EliminarEntrada(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validarEntradaAceituna(req dto.EntradaAceitunaRequest) error {
	if strings.TrimSpace(req.Campana) == "" {
		return apperr.Validacion("campaña no especificada")
	}
	if strings.TrimSpace(req.NombreCliente) == "" {
		return apperr.Validacion("cliente no especificado")
	}
	if !req.Kilos.IsPositive() {
		return apperr.Validacion("los kilos deben ser mayores que cero")
	}
	return nil
}

func entradaDesdeRequest(req dto.EntradaAceitunaRequest) *model.EntradaAceituna {
	return &model.EntradaAceituna{
		NombreCliente:    req.NombreCliente,
		EmailCliente:     req.EmailCliente,
		Lote:             req.Lote,
		Variedad:         req.Variedad,
		Tipo:             req.Tipo,
		Kilos:            req.Kilos,
		Campana:          req.Campana,
		FechaEntrada:     req.FechaEntrada,
		Cocedera:         req.Cocedera,
		FechaCocedera:    req.FechaCocedera,
		Fermentador:      req.Fermentador,
		FechaFermentador: req.FechaFermentador,
		GradosSal:        req.GradosSal,
		GradosSosa:       req.GradosSosa,
		Observaciones:    req.Observaciones,
	}
}

func entradasToResponse(entradas []model.EntradaAceituna) []dto.EntradaAceitunaResponse {
	out := make([]dto.EntradaAceitunaResponse, 0, len(entradas))
	for i := range entradas {
		out = append(out, *entradaToResponse(&entradas[i]))
	}
	return out
}

func entradaToResponse(e *model.EntradaAceituna) *dto.EntradaAceitunaResponse {
	return &dto.EntradaAceitunaResponse{
		ID:               e.ID,
		NombreCliente:    e.NombreCliente,
		EmailCliente:     e.EmailCliente,
		Lote:             e.Lote,
		Variedad:         e.Variedad,
		Tipo:             e.Tipo,
		Kilos:            e.Kilos,
		Campana:          e.Campana,
		FechaEntrada:     e.FechaEntrada,
		Cocedera:         e.Cocedera,
		FechaCocedera:    e.FechaCocedera,
		Fermentador:      e.Fermentador,
		FechaFermentador: e.FechaFermentador,
		GradosSal:        e.GradosSal,
		GradosSosa:       e.GradosSosa,
		Observaciones:    e.Observaciones,
	}
}
