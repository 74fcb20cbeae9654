package usecase

import (
	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/domain/repository"
)

// WarehouseUseCase listado del catálogo de bodegas (datos de referencia).
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve todas las bodegas del catálogo.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{
			Code:    w.Code,
			Name:    w.Name,
			City:    w.City,
			Country: w.Country,
		})
	}
	return &dto.WarehouseListResponse{Items: items}, nil
}
