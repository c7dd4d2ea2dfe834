package services

import (
	"context"
	"log"

	"lumiere_back_end/internal/models"
)

// ListUsers pagine les clients
func (a *API) ListUsers(ctx context.Context, page, limit int) models.PaginatedResponse[models.User] {
	a.sleep(ctx, 5)
	a.mu.Lock()
	defer a.mu.Unlock()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(a.data.Users)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]models.User, end-start)
	copy(data, a.data.Users[start:end])

	return models.PaginatedResponse[models.User]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}

// GetUserByID retourne nil si l'identifiant est inconnu
func (a *API) GetUserByID(ctx context.Context, id string) *models.User {
	a.sleep(ctx, 4)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Users {
		if a.data.Users[i].ID == id {
			u := a.data.Users[i]
			return &u
		}
	}
	return nil
}

// UserUpdate porte les champs modifiables d'un client
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *string
}

// UpdateUser applique une mise à jour partielle ; nil si introuvable
func (a *API) UpdateUser(ctx context.Context, id string, update UserUpdate) *models.User {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Users {
		if a.data.Users[i].ID != id {
			continue
		}
		u := &a.data.Users[i]
		if update.FirstName != nil {
			u.FirstName = *update.FirstName
		}
		if update.LastName != nil {
			u.LastName = *update.LastName
		}
		if update.Phone != nil {
			u.Phone = *update.Phone
		}
		if update.Avatar != nil {
			u.Avatar = *update.Avatar
		}
		u.UpdatedAt = a.now()

		out := *u
		return &out
	}
	return nil
}

// DeleteUser supprime un client ; false si introuvable
func (a *API) DeleteUser(ctx context.Context, id string) bool {
	a.sleep(ctx, 5)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Users {
		if a.data.Users[i].ID == id {
			a.data.Users = append(a.data.Users[:i], a.data.Users[i+1:]...)
			log.Printf("🗑️ Client supprimé: %s", id)
			return true
		}
	}
	return false
}
