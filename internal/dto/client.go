package dto

import (
	"time"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
// Name and owner are re-checked at the service boundary; client-side
// validation is not trusted.
type CreateClientRequest struct {
	Name      string `json:"name" binding:"required,min=1"`
	OwnerName string `json:"ownerName" binding:"required,min=1"`
	Notes     string `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	Name       *string `json:"name"`
	OwnerName  *string `json:"ownerName"`
	Notes      *string `json:"notes"`
	EntityType *string `json:"entityType"`
	Active     *bool   `json:"active"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string            `json:"clientID"`
	UserID        string            `json:"userID"`
	Name          string            `json:"name"`
	OwnerName     string            `json:"ownerName"`
	Notes         *string           `json:"notes,omitempty"`
	EntityType    domain.EntityType `json:"entityType"`
	Active        bool              `json:"active"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		UserID:        c.UserID,
		Name:          c.Name,
		OwnerName:     c.OwnerName,
		Notes:         c.Notes,
		EntityType:    c.EntityType,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToListClientsResponse converts a slice of domain.Client to DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: res}
}
