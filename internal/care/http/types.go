package http

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

type userPlantPayload struct {
	ID        string    `json:"id" binding:"required"`
	GardenID  string    `json:"garden_id" binding:"required"`
	PlantID   string    `json:"plant_id" binding:"required"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at" binding:"required"`
}

func (p userPlantPayload) toDomain() domain.UserPlantInstance {
	return domain.UserPlantInstance{
		ID:        p.ID,
		GardenID:  p.GardenID,
		PlantID:   p.PlantID,
		Nickname:  p.Nickname,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

type scheduleRequest struct {
	UserPlant userPlantPayload `json:"userPlant" binding:"required"`
}
