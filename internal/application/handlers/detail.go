package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// DetailHandler handles the detail route.
type DetailHandler struct {
	detailService *services.DetailService
}

// NewDetailHandler creates a new DetailHandler.
func NewDetailHandler(detailService *services.DetailService) *DetailHandler {
	return &DetailHandler{
		detailService: detailService,
	}
}

// DetailResult is a detail record plus its navigation targets.
type DetailResult struct {
	Record  *entities.DetailRecord `json:"record"`
	PrevID  int                    `json:"prev_id"`
	NextID  int                    `json:"next_id"`
	HasPrev bool                   `json:"has_prev"`
	HasNext bool                   `json:"has_next"`
}

// HandleDetail fetches the record for id.
func (h *DetailHandler) HandleDetail(ctx context.Context, id int) (*DetailResult, error) {
	record, err := h.detailService.Detail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching detail: %w", err)
	}

	nav := h.detailService.Navigator()
	prev, hasPrev := nav.Prev(id)
	next, hasNext := nav.Next(id)

	return &DetailResult{
		Record:  record,
		PrevID:  prev,
		NextID:  next,
		HasPrev: hasPrev,
		HasNext: hasNext,
	}, nil
}

// Navigator exposes the identifier bounds of the detail route.
func (h *DetailHandler) Navigator() services.Navigator {
	return h.detailService.Navigator()
}
