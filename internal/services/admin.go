package services

import (
	"context"
	"strings"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/models"
)

// AdminService backs the admin panel: user management and marketplace stats.
// Authorization (session role = admin) is the caller's concern.
type AdminService struct {
	users    UserCollection
	products ProductCollection
}

// NewAdminService creates a new AdminService.
func NewAdminService(users UserCollection, products ProductCollection) *AdminService {
	return &AdminService{users: users, products: products}
}

// ListUsers returns every account with the credential stripped, optionally
// narrowed by a case-insensitive substring over name, email, and college.
func (svc *AdminService) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	users, err := svc.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(search)
	listed := []models.User{}
	for _, u := range users {
		public := u.Public()
		if query != "" &&
			!strings.Contains(strings.ToLower(public.Name), query) &&
			!strings.Contains(strings.ToLower(public.Email), query) &&
			!strings.Contains(strings.ToLower(public.College), query) {
			continue
		}
		listed = append(listed, public)
	}
	return listed, nil
}

// SuspendUser marks the account suspended. An unknown id is a silent no-op.
func (svc *AdminService) SuspendUser(ctx context.Context, id string) error {
	return svc.setStatus(ctx, id, models.UserSuspended)
}

// ActivateUser marks the account active again. An unknown id is a silent no-op.
func (svc *AdminService) ActivateUser(ctx context.Context, id string) error {
	return svc.setStatus(ctx, id, models.UserActive)
}

func (svc *AdminService) setStatus(ctx context.Context, id string, status models.UserStatus) error {
	users, err := svc.users.Load(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		users[i].Status = status
		if err := svc.users.Save(ctx, users); err != nil {
			return err
		}
		logger.Log.Infow("user status changed", "user_id", id, "status", status)
		return nil
	}

	logger.Log.Debugw("status change for unknown user ignored", "user_id", id)
	return nil
}

// Stats summarizes the marketplace for the admin overview page. Revenue is
// the sum of sold listing prices.
func (svc *AdminService) Stats(ctx context.Context) (models.MarketStats, error) {
	users, err := svc.users.Load(ctx)
	if err != nil {
		return models.MarketStats{}, err
	}
	products, _, err := svc.products.Load(ctx)
	if err != nil {
		return models.MarketStats{}, err
	}

	stats := models.MarketStats{TotalUsers: len(users)}
	for _, p := range products {
		switch p.Status {
		case models.StatusAvailable:
			stats.ActiveListings++
		case models.StatusSold:
			stats.SoldItems++
			stats.TotalRevenue += p.Price
		}
	}
	return stats, nil
}
