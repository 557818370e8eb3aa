package http

import (
	"context"

	"github.com/testboard/webapi-backend/internal/testprojects/domain"
)

// Store is the persistence surface the handlers need.
type Store interface {
	List(ctx context.Context) ([]domain.TestProject, error)
	Get(ctx context.Context, id int) (*domain.TestProject, error)
	Create(ctx context.Context, name string) (*domain.TestProject, error)
	Update(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
}

type projectReq struct {
	Name string `json:"name" binding:"required"`
}

// projectResp is the create/update request echo; write paths use the
// lowercase casing while reads keep the column casing.
type projectResp struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}
