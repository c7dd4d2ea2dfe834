package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"lumiere_back_end/internal/models"
)

// ListCategories retourne toutes les catégories
func (a *API) ListCategories(ctx context.Context) []models.Category {
	a.sleep(ctx, 3)
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Category, len(a.data.Categories))
	copy(out, a.data.Categories)
	return out
}

// GetCategoryBySlug retourne nil si le slug est inconnu
func (a *API) GetCategoryBySlug(ctx context.Context, slug string) *models.Category {
	a.sleep(ctx, 3)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Categories {
		if a.data.Categories[i].Slug == slug {
			c := a.data.Categories[i]
			return &c
		}
	}
	return nil
}

// CreateCategory ajoute une catégorie (admin)
func (a *API) CreateCategory(ctx context.Context, category models.Category) models.Category {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	category.ID = "cat-" + uuid.NewString()
	a.data.Categories = append(a.data.Categories, category)
	log.Printf("✅ Catégorie créée: %s (%s)", category.Name, category.ID)
	return category
}

// CategoryUpdate porte les champs modifiables d'une catégorie
type CategoryUpdate struct {
	Name        *string
	Description *string
	Image       *string
	Icon        *string
}

// UpdateCategory applique une mise à jour partielle ; nil si introuvable
func (a *API) UpdateCategory(ctx context.Context, id string, update CategoryUpdate) *models.Category {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Categories {
		if a.data.Categories[i].ID != id {
			continue
		}
		c := &a.data.Categories[i]
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Description != nil {
			c.Description = *update.Description
		}
		if update.Image != nil {
			c.Image = *update.Image
		}
		if update.Icon != nil {
			c.Icon = *update.Icon
		}
		out := *c
		return &out
	}
	return nil
}

// DeleteCategory retire une catégorie ; false si introuvable
func (a *API) DeleteCategory(ctx context.Context, id string) bool {
	a.sleep(ctx, 5)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Categories {
		if a.data.Categories[i].ID == id {
			a.data.Categories = append(a.data.Categories[:i], a.data.Categories[i+1:]...)
			log.Printf("🗑️ Catégorie supprimée: %s", id)
			return true
		}
	}
	return false
}
