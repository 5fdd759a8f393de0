package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmarket/marketstore/internal/models"
	"github.com/campusmarket/marketstore/internal/repositories"
	"github.com/campusmarket/marketstore/internal/services"
	"github.com/campusmarket/marketstore/internal/storage"
)

// marketplace wires every service over one shared in-memory store, the way
// the command-line entrypoint does with a real backend.
type marketplace struct {
	auth     *services.AuthService
	products *services.ProductService
	messages *services.MessageService
	admin    *services.AdminService
}

func newMarketplace() *marketplace {
	store := storage.NewMemory()
	users := repositories.NewUserRepository(store)
	session := repositories.NewSessionRepository(store)
	products := repositories.NewProductRepository(store)
	threads := repositories.NewMessageRepository(store)

	return &marketplace{
		auth:     services.NewAuthService(users, session, 0),
		products: services.NewProductService(products),
		messages: services.NewMessageService(threads),
		admin:    services.NewAdminService(users, products),
	}
}

func TestMarketplace_AccountLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace()

	registered, err := m.auth.Register(ctx, services.RegisterData{
		Email:    "alice@example.com",
		Password: "pass123",
		Name:     "Alice",
		College:  "MIT",
	})
	require.NoError(t, err)

	// Registration establishes the session.
	current, err := m.auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, *registered, *current)

	// A second account with the same email is rejected and nothing changes.
	_, err = m.auth.Register(ctx, services.RegisterData{
		Email:    "alice@example.com",
		Password: "other",
		Name:     "Impostor",
		College:  "MIT",
	})
	assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)

	listed, err := m.admin.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// Logout clears the session, login restores it.
	require.NoError(t, m.auth.Logout(ctx))
	current, err = m.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	loggedIn, err := m.auth.Login(ctx, "alice@example.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, *registered, *loggedIn)

	// A suspended account can still log in; suspension is advisory.
	require.NoError(t, m.admin.SuspendUser(ctx, registered.ID))
	_, err = m.auth.Login(ctx, "alice@example.com", "pass123")
	assert.NoError(t, err)
}

func TestMarketplace_ListingLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace()

	require.NoError(t, m.products.Bootstrap(ctx))

	// The demo catalog survives only the first bootstrap.
	require.NoError(t, m.products.Bootstrap(ctx))
	catalog, err := m.products.List(ctx, models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, catalog, len(services.DefaultCatalog()))

	created, err := m.products.Create(ctx, models.Product{
		Title:         "Organic Chemistry Notes",
		Description:   "Full semester, hand written",
		Price:         40,
		Category:      models.CategoryStudyMaterials,
		Condition:     models.ConditionGood,
		SellerID:      "u1",
		SellerName:    "Alice",
		SellerCollege: "MIT",
		Tags:          []string{"chemistry", "notes"},
	})
	require.NoError(t, err)

	// The stored record reads back exactly as it was returned.
	got, err := m.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)

	// Selling removes it from the public view but not the owner's.
	require.NoError(t, m.products.MarkSold(ctx, created.ID))
	public, err := m.products.List(ctx, models.ProductFilter{Search: "chemistry"})
	require.NoError(t, err)
	assert.Empty(t, public)

	owned, err := m.products.GetByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, models.StatusSold, owned[0].Status)

	stats, err := m.products.SellerStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SellerStats{SoldItems: 1, TotalEarnings: 40}, stats)

	require.NoError(t, m.products.Delete(ctx, created.ID))
	got, err = m.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMarketplace_MessagingLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace()

	id, err := m.messages.CreateOrGetConversation(ctx, alice, bob, "p1", "Calculus Textbook")
	require.NoError(t, err)

	require.NoError(t, m.messages.SendMessage(ctx, alice, id, "Is this still available?", "p1"))
	require.NoError(t, m.messages.SendMessage(ctx, alice, id, "Happy to pick it up today", "p1"))

	list, err := m.messages.Messages(ctx, alice, id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Is this still available?", list[0].Content)
	assert.Equal(t, "Happy to pick it up today", list[1].Content)

	total, err := m.messages.UnreadCount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	require.NoError(t, m.messages.MarkRead(ctx, alice, id))
	total, err = m.messages.UnreadCount(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, total)

	recent, err := m.messages.RecentConversations(ctx, alice, 3)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.NotNil(t, recent[0].LastMessage)
	assert.Equal(t, "Happy to pick it up today", recent[0].LastMessage.Content)

	// Bob's documents were never written to.
	bobUser := models.User{ID: bob.ID, Name: bob.Name, College: bob.College}
	conversations, err := m.messages.Conversations(ctx, bobUser)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}
