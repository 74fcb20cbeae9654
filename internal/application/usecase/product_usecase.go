package usecase

import (
	"strings"

	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/domain"
	"github.com/jhoicas/Inventario-panel/internal/domain/entity"
	"github.com/jhoicas/Inventario-panel/internal/domain/inventory"
	"github.com/jhoicas/Inventario-panel/internal/domain/repository"
)

// PageSize tamaño fijo de página de la tabla del panel.
const PageSize = 10

// FilterAll centinela "sin filtro" para bodega y estado.
const FilterAll = "all"

// ProductUseCase listado filtrado/paginado y KPIs agregados del inventario.
// Solo lee del Record Store; nunca lo muta.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List aplica los filtros sobre el snapshot actual y devuelve la página
// pedida. El filtrado es estable (conserva el orden del store) y la página
// se recorta al rango disponible.
func (uc *ProductUseCase) List(filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Status != "" && filter.Status != FilterAll {
		if _, ok := inventory.ParseStatus(filter.Status); !ok {
			return nil, domain.ErrInvalidInput
		}
	}
	records, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	filtered := filterRecords(records, filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]dto.ProductResponse, 0, end-start)
	for _, r := range filtered[start:end] {
		items = append(items, ToProductResponse(r))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page, PageSize: PageSize, Total: len(filtered)},
	}, nil
}

// Summary recalcula los KPIs agregados sobre el snapshot actual (un solo
// recorrido por métrica; nada se memoriza entre llamadas).
func (uc *ProductUseCase) Summary() (*dto.InventorySummaryResponse, error) {
	records, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	return &dto.InventorySummaryResponse{
		TotalStock:  inventory.TotalStock(records),
		TotalDemand: inventory.TotalDemand(records),
		FillRate:    inventory.FillRate(records),
	}, nil
}

// filterRecords aplica búsqueda, filtro de bodega y filtro de estado.
// Una fila pasa cuando cumple los TRES criterios.
func filterRecords(records []entity.ProductRecord, filter dto.ProductFilter) []entity.ProductRecord {
	search := strings.ToLower(filter.Search)
	out := make([]entity.ProductRecord, 0, len(records))
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.SKU), search) &&
			!strings.Contains(strings.ToLower(r.ID), search) {
			continue
		}
		if filter.Warehouse != "" && filter.Warehouse != FilterAll && r.Warehouse != filter.Warehouse {
			continue
		}
		if filter.Status != "" && filter.Status != FilterAll &&
			inventory.StatusOf(r.Stock, r.Demand) != inventory.Status(filter.Status) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ToProductResponse convierte una fila del store a DTO, derivando el estado.
func ToProductResponse(r entity.ProductRecord) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        r.ID,
		Name:      r.Name,
		SKU:       r.SKU,
		Warehouse: r.Warehouse,
		Stock:     r.Stock,
		Demand:    r.Demand,
		Status:    string(inventory.StatusOf(r.Stock, r.Demand)),
	}
}
