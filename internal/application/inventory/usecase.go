// Package inventory contiene los casos de uso de mutación del inventario:
// ajuste de demanda y transferencia de stock entre bodegas.
package inventory

import (
	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/application/usecase"
	"github.com/jhoicas/Inventario-panel/internal/domain"
	"github.com/jhoicas/Inventario-panel/internal/domain/entity"
	"github.com/jhoicas/Inventario-panel/internal/domain/repository"
)

// Tipos de evento de cambio emitidos tras cada mutación exitosa.
const (
	EventDemandUpdated    = "demand_updated"
	EventStockTransferred = "stock_transferred"
)

// ChangeEvent notifica las filas afectadas por una mutación para que
// cualquier capa de caché (el cliente del panel vía websocket) reconcilie
// su copia sin refetch. Una transferencia trae SIEMPRE las dos filas.
type ChangeEvent struct {
	Type       string                `json:"type"`
	MovementID string                `json:"movement_id,omitempty"`
	Records    []dto.ProductResponse `json:"records"`
}

// Notifier puerto de publicación de eventos de cambio.
type Notifier interface {
	Notify(event ChangeEvent)
}

// MutationUseCase ejecuta las dos mutaciones del panel contra el Record
// Store. Cada operación valida todo antes de escribir: o aplica completa o
// el store queda intacto.
type MutationUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	notifier      Notifier
}

// NewMutationUseCase construye el caso de uso. notifier puede ser nil
// (sin stream de eventos, útil en tests).
func NewMutationUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	notifier Notifier,
) *MutationUseCase {
	return &MutationUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		notifier:      notifier,
	}
}

// UpdateDemand fija la demanda de la fila (productID, warehouse).
//
// La bodega es parte de la clave a propósito: resolver solo por id elegiría
// "la primera coincidencia" cuando el producto existe en varias bodegas.
func (uc *MutationUseCase) UpdateDemand(productID, warehouse string, newDemand int) (*dto.ProductResponse, error) {
	if newDemand < 0 {
		return nil, domain.ErrInvalidInput
	}
	record, err := uc.productRepo.Update(productID, warehouse, func(r *entity.ProductRecord) {
		r.Demand = newDemand
	})
	if err != nil {
		return nil, err
	}
	out := usecase.ToProductResponse(*record)
	uc.notify(ChangeEvent{Type: EventDemandUpdated, Records: []dto.ProductResponse{out}})
	return &out, nil
}

// TransferStock mueve quantity unidades de productID desde sourceWarehouse
// hacia destinationWarehouse como una unidad lógica: primero todas las
// validaciones, después las dos escrituras (decrementar origen,
// localizar-o-crear destino). Devuelve ambas filas afectadas.
func (uc *MutationUseCase) TransferStock(productID, sourceWarehouse, destinationWarehouse string, quantity int) (*dto.TransferStockResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if sourceWarehouse == destinationWarehouse {
		return nil, domain.ErrInvalidRoute
	}

	// Ambos extremos deben existir en el catálogo de referencia.
	for _, code := range []string{sourceWarehouse, destinationWarehouse} {
		wh, err := uc.warehouseRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	source, err := uc.productRepo.FindOne(productID, sourceWarehouse)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrNotFound
	}
	if source.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}

	// Validado todo: aplicar. Decrementa el origen...
	updatedSource, err := uc.productRepo.Update(productID, sourceWarehouse, func(r *entity.ProductRecord) {
		r.Stock -= quantity
	})
	if err != nil {
		return nil, err
	}

	// ...y localiza o crea la fila destino. Una fila nueva arranca con
	// demanda 0: la nueva ubicación no tiene demanda registrada (copiar la
	// demanda del origen duplicaría demanda agregada).
	dest, err := uc.productRepo.FindOne(productID, destinationWarehouse)
	if err != nil {
		return nil, err
	}
	var updatedDest *entity.ProductRecord
	if dest == nil {
		newRow := entity.ProductRecord{
			ID:        source.ID,
			Name:      source.Name,
			SKU:       source.SKU,
			Warehouse: destinationWarehouse,
			Stock:     quantity,
			Demand:    0,
		}
		if err := uc.productRepo.Upsert(newRow); err != nil {
			return nil, err
		}
		updatedDest = &newRow
	} else {
		updatedDest, err = uc.productRepo.Update(productID, destinationWarehouse, func(r *entity.ProductRecord) {
			r.Stock += quantity
		})
		if err != nil {
			return nil, err
		}
	}

	out := &dto.TransferStockResponse{
		MovementID:  uuid.New().String(),
		Source:      usecase.ToProductResponse(*updatedSource),
		Destination: usecase.ToProductResponse(*updatedDest),
	}
	uc.notify(ChangeEvent{
		Type:       EventStockTransferred,
		MovementID: out.MovementID,
		Records:    []dto.ProductResponse{out.Source, out.Destination},
	})
	return out, nil
}

func (uc *MutationUseCase) notify(event ChangeEvent) {
	if uc.notifier != nil {
		uc.notifier.Notify(event)
	}
}
