package service

import (
	"context"
	"errors"
	"time"

	"github.com/aashishdubey1/stock-inventory/internal/dto"
	"github.com/aashishdubey1/stock-inventory/internal/model"
	"github.com/aashishdubey1/stock-inventory/internal/repository"

	"github.com/google/uuid"
)

var ErrGodownNotFound = errors.New("godown not found")

type GodownService interface {
	Create(ctx context.Context, req dto.CreateGodownRequest) (*dto.GodownResponse, error)
	List(ctx context.Context) ([]dto.GodownResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.GodownResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGodownRequest) (*dto.GodownResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type godownService struct {
	repo repository.GodownRepository
}

func NewGodownService(repo repository.GodownRepository) GodownService {
	return &godownService{repo: repo}
}

func (s *godownService) Create(ctx context.Context, req dto.CreateGodownRequest) (*dto.GodownResponse, error) {
	g := &model.Godown{
		Name:          req.Name,
		Location:      req.Location,
		ContactPerson: req.ContactPerson,
		ContactNumber: req.ContactNumber,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return godownToResponse(g), nil
}

func (s *godownService) List(ctx context.Context) ([]dto.GodownResponse, error) {
	godowns, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GodownResponse, 0, len(godowns))
	for i := range godowns {
		out = append(out, *godownToResponse(&godowns[i]))
	}
	return out, nil
}

func (s *godownService) Get(ctx context.Context, id uuid.UUID) (*dto.GodownResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrGodownNotFound
	}
	return godownToResponse(g), nil
}

func (s *godownService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGodownRequest) (*dto.GodownResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrGodownNotFound
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Location != nil {
		g.Location = *req.Location
	}
	if req.ContactPerson != nil {
		g.ContactPerson = *req.ContactPerson
	}
	if req.ContactNumber != nil {
		g.ContactNumber = *req.ContactNumber
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return godownToResponse(g), nil
}

func (s *godownService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrGodownNotFound
	}
	return s.repo.Delete(ctx, id)
}

func godownToResponse(g *model.Godown) *dto.GodownResponse {
	return &dto.GodownResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		Location:      g.Location,
		ContactPerson: g.ContactPerson,
		ContactNumber: g.ContactNumber,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
}
