package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopease/shopease/internal/mirror"
	"github.com/shopease/shopease/internal/models"
	repository "github.com/shopease/shopease/internal/repositories"
)

// CartService binds a Cart to a resolved identity for one session and keeps
// three views reconciled: the in-memory cart, the backing store, and the
// client mirror snapshot.
//
// Initialization is lazy. The first cart access resolves the identity (guest
// when unauthenticated), loads the store rows, then replays the mirrored
// snapshot through AddProduct so duplicate lines merge back into their
// quantities. After that, every mutation writes the full item list to the
// mirror and notifies registered observers synchronously.
type CartService struct {
	store   repository.CartRepository
	catalog repository.ProductRepository
	auth    AuthProvider
	mirror  mirror.Mirror

	mu        sync.Mutex
	cart      *Cart
	userID    string
	observers []func()
}

func NewCartService(store repository.CartRepository, catalog repository.ProductRepository, auth AuthProvider, m mirror.Mirror) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
		auth:    auth,
		mirror:  m,
	}
}

// OnCartChanged registers an observer invoked after each mutating operation
// commits. Zero observers is fine.
func (s *CartService) OnCartChanged(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// Cart returns the session cart, initializing it on first access. A store
// failure during initialization is fatal and propagates; a mirror failure is
// not, the cart then carries only the store-loaded items.
func (s *CartService) Cart(ctx context.Context) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartLocked(ctx)
}

func (s *CartService) cartLocked(ctx context.Context) (*Cart, error) {

	if s.cart != nil {
		return s.cart, nil
	}

	userID := GuestUserID
	if name, ok := s.auth.CurrentIdentity(ctx); ok && name != "" {
		userID = name
	}

	cart := NewCart(s.store, userID)

	if err := cart.LoadFromStore(ctx); err != nil {
		return nil, err
	}

	s.userID = userID
	s.cart = cart

	s.replayMirror(ctx, cart)

	return cart, nil
}

// replayMirror re-adds each mirrored item one unit at a time, re-fetching
// the product from the catalog first so stale or tampered entries are
// dropped. Any mirror read failure degrades to store-only state.
func (s *CartService) replayMirror(ctx context.Context, cart *Cart) {

	items, found, err := s.mirror.Get(ctx, s.userID)
	if err != nil {
		slog.Warn("Failed to read cart mirror, continuing with store items", slog.String("userId", s.userID), slog.String("error", err.Error()))

		return
	}

	if !found {
		return
	}

	for _, item := range items {

		product, err := s.catalog.GetProductByID(ctx, item.Product.ProductID)
		if err != nil {
			slog.Info("Dropping mirrored item, product no longer in catalog", slog.String("userId", s.userID), slog.Int64("productId", item.Product.ProductID))

			continue
		}

		for range item.Quantity {
			cart.AddProduct(ctx, product)
		}
	}
}

// AddToCart adds one unit of the product to the session cart. The boolean
// reports whether the cart accepted it; the error is only non-nil when the
// cart could not be initialized.
func (s *CartService) AddToCart(ctx context.Context, product *models.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(ctx)
	if err != nil {
		return false, err
	}

	ok := cart.AddProduct(ctx, product)

	s.saveMirror(ctx, cart)
	s.notifyLocked()

	return ok, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(ctx)
	if err != nil {
		return false, err
	}

	ok := cart.RemoveProduct(ctx, productID)

	s.saveMirror(ctx, cart)
	s.notifyLocked()

	return ok, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(ctx)
	if err != nil {
		return false, err
	}

	ok := cart.UpdateQuantity(ctx, productID, quantity)

	s.saveMirror(ctx, cart)
	s.notifyLocked()

	return ok, nil
}

func (s *CartService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(ctx)
	if err != nil {
		return err
	}

	if err := cart.Clear(ctx); err != nil {
		return err
	}

	s.saveMirror(ctx, cart)
	s.notifyLocked()

	return nil
}

func (s *CartService) ItemCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(ctx)
	if err != nil {
		return 0, err
	}

	return cart.ItemCount(), nil
}

func (s *CartService) Total(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(ctx)
	if err != nil {
		return 0, err
	}

	return cart.CalculateTotal(), nil
}

// saveMirror overwrites the mirrored snapshot with the full current item
// list. Mirror write failures are logged, never surfaced: the store already
// holds the authoritative rows.
func (s *CartService) saveMirror(ctx context.Context, cart *Cart) {
	if err := s.mirror.Set(ctx, s.userID, cart.Items()); err != nil {
		slog.Error("Failed to write cart mirror", slog.String("userId", s.userID), slog.String("error", err.Error()))
	}
}

func (s *CartService) notifyLocked() {
	for _, fn := range s.observers {
		fn()
	}
}

// CartSessions hands out one CartService per resolved identity, so the HTTP
// layer gets the same session cart on every request from the same user.
type CartSessions struct {
	store   repository.CartRepository
	catalog repository.ProductRepository
	auth    AuthProvider
	mirror  mirror.Mirror

	mu       sync.Mutex
	sessions map[string]*CartService
}

func NewCartSessions(store repository.CartRepository, catalog repository.ProductRepository, auth AuthProvider, m mirror.Mirror) *CartSessions {
	return &CartSessions{
		store:    store,
		catalog:  catalog,
		auth:     auth,
		mirror:   m,
		sessions: make(map[string]*CartService),
	}
}

// ForRequest resolves the request's identity and returns that identity's
// cart session, creating it on first use.
func (m *CartSessions) ForRequest(ctx context.Context) *CartService {

	userID := GuestUserID
	if name, ok := m.auth.CurrentIdentity(ctx); ok && name != "" {
		userID = name
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cs, ok := m.sessions[userID]
	if !ok {
		cs = NewCartService(m.store, m.catalog, m.auth, m.mirror)
		m.sessions[userID] = cs
	}

	return cs
}
