package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del menú. Cada producto pertenece a un vendedor y
// solo ese vendedor puede verlo o modificarlo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Precio negativo es entrada inválida.
func (uc *ProductUseCase) Create(ctx context.Context, vendorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		VendorID:    vendorID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price.Round(2),
		IsAvailable: available,
		IsVeg:       in.IsVeg,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del vendedor. ErrNotFound si no existe o es de otro vendedor.
func (uc *ProductUseCase) GetByID(ctx context.Context, vendorID, id string) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica la actualización parcial.
func (uc *ProductUseCase) Update(ctx context.Context, vendorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if in.IsVeg != nil {
		product.IsVeg = *in.IsVeg
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el menú del vendedor con paginación.
func (uc *ProductUseCase) List(ctx context.Context, vendorID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByVendor(ctx, vendorID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto del vendedor.
func (uc *ProductUseCase) Delete(ctx context.Context, vendorID, id string) error {
	if _, err := uc.owned(ctx, vendorID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) owned(ctx context.Context, vendorID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.VendorID != vendorID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		IsAvailable: p.IsAvailable,
		IsVeg:       p.IsVeg,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
