package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func (s *Service) CreateStockItem(ctx context.Context, in entity.CreateStockItemInput) (entity.StockItem, error) {
	p, err := s.authorize(ctx, entity.CapCreateStock)
	if err != nil {
		return entity.StockItem{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.StockItem{}, err
	}

	err = validateNonNegative("unitPrice", in.UnitPrice)
	if err != nil {
		return entity.StockItem{}, err
	}

	now := time.Now()

	item := entity.StockItem{
		ID:           uuid.Must(uuid.NewV4()),
		CompanyID:    p.CompanyID,
		PartNumber:   in.PartNumber,
		SerialNumber: in.SerialNumber,
		Description:  in.Description,
		Quantity:     in.Quantity,
		MinQuantity:  in.MinQuantity,
		UnitPrice:    in.UnitPrice,
		Location:     in.Location,
		Condition:    in.Condition,
		ExpiryDate:   in.ExpiryDate.TimePtr(),
		CreatedBy:    p.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.CreateStockItem(ctx, item)
	if err != nil {
		return entity.StockItem{}, fmt.Errorf("create stock item: %w", err)
	}

	s.record(ctx, p, entity.ActionCreate, entity.ResourceStockItem, item.ID, item.PartNumber, map[string]any{
		"quantity": item.Quantity,
	})

	return item, nil
}

func (s *Service) GetStockItem(ctx context.Context, id uuid.UUID) (entity.StockItem, error) {
	p, err := s.authorize(ctx, entity.CapViewStock)
	if err != nil {
		return entity.StockItem{}, err
	}

	item, err := s.repo.StockItem(ctx, p, id)
	if err != nil {
		return entity.StockItem{}, fmt.Errorf("get stock item: %w", err)
	}

	return item, nil
}

func (s *Service) ListStockItems(ctx context.Context, f entity.ListFilter) (entity.Page[entity.StockItem], error) {
	p, err := s.authorize(ctx, entity.CapViewStock)
	if err != nil {
		return entity.Page[entity.StockItem]{}, err
	}

	items, total, err := s.repo.StockItems(ctx, p, f)
	if err != nil {
		return entity.Page[entity.StockItem]{}, fmt.Errorf("list stock items: %w", err)
	}

	return entity.NewPage(items, total, f), nil
}

func (s *Service) UpdateStockItem(ctx context.Context, id uuid.UUID, in entity.UpdateStockItemInput) (entity.StockItem, error) {
	p, err := s.authorize(ctx, entity.CapEditStock)
	if err != nil {
		return entity.StockItem{}, err
	}

	err = validateInput(in)
	if err != nil {
		return entity.StockItem{}, err
	}

	old, err := s.repo.StockItem(ctx, p, id)
	if err != nil {
		return entity.StockItem{}, fmt.Errorf("get stock item: %w", err)
	}

	item := in.Apply(old)

	err = validateNonNegative("unitPrice", item.UnitPrice)
	if err != nil {
		return entity.StockItem{}, err
	}

	item.UpdatedAt = time.Now()

	err = s.repo.UpdateStockItem(ctx, item)
	if err != nil {
		return entity.StockItem{}, fmt.Errorf("update stock item: %w", err)
	}

	s.record(ctx, p, entity.ActionUpdate, entity.ResourceStockItem, item.ID, item.PartNumber, map[string]any{
		"quantity": item.Quantity,
		"lowStock": item.IsLowStock(),
	})

	return item, nil
}

func (s *Service) DeleteStockItem(ctx context.Context, id uuid.UUID) (entity.DeleteResult, error) {
	p, err := s.authorize(ctx, entity.CapDeleteStock)
	if err != nil {
		return entity.DeleteResult{}, err
	}

	item, err := s.repo.StockItem(ctx, p, id)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("get stock item: %w", err)
	}

	err = s.repo.DeleteStockItem(ctx, p.CompanyID, item.ID)
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("delete stock item: %w", err)
	}

	s.record(ctx, p, entity.ActionDelete, entity.ResourceStockItem, item.ID, item.PartNumber, nil)

	return entity.DeleteResult{ID: item.ID, Files: []entity.FileDeleteResult{}}, nil
}
