package orders

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/shared/apperr"
)

// OrdersAPI is the slice of the remote client the synchronizer needs.
type OrdersAPI interface {
	ListOrders(ctx context.Context) ([]api.OrderRecord, error)
	UpdateOrder(ctx context.Context, id, status, notes string) (*api.OrderRecord, error)
}

// Synchronizer fetches orders from the remote API, normalizes them into the
// Order view model and keeps the local collection consistent after
// mutations. Fetch responses carry a monotonically increasing sequence
// number; a completion is applied only if no newer fetch has been issued,
// so a slow response can never overwrite a newer one.
type Synchronizer struct {
	api OrdersAPI

	mu      sync.Mutex
	orders  []Order
	loadErr string
	issued  uint64 // last fetch sequence handed out
}

func NewSynchronizer(client OrdersAPI) *Synchronizer {
	return &Synchronizer{api: client}
}

// Refresh issues one list fetch and replaces the whole collection on
// success. On failure the collection is left untouched and the load error
// flag is set. A stale completion (a newer fetch was issued meanwhile) is
// discarded entirely.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	recs, err := s.api.ListOrders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		// a newer fetch is in flight or already applied
		return nil
	}
	if err != nil {
		s.loadErr = "Failed to load orders. Please try again later."
		return err
	}

	next := make([]Order, 0, len(recs))
	for _, rec := range recs {
		next = append(next, FromRecord(rec))
	}
	sortNewestFirst(next)
	s.orders = next
	s.loadErr = ""
	return nil
}

// Orders returns a snapshot of the collection, always newest-first.
func (s *Synchronizer) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// LoadError is the sticky fetch failure message, empty after a successful
// fetch.
func (s *Synchronizer) LoadError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *Synchronizer) Get(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// UpdateStatus writes one status change. Precondition: when the requested
// status equals the order's current status and no note text is supplied the
// operation is skipped entirely, with nothing sent over the network.
// On success the matching order is replaced by identity and the collection
// re-sorted. Returns the updated order and whether anything was sent.
func (s *Synchronizer) UpdateStatus(ctx context.Context, id, newStatus, note string) (Order, bool, error) {
	cur, ok := s.Get(id)
	if !ok {
		return Order{}, false, apperr.NotFoundErr("Order not found.")
	}

	note = strings.TrimSpace(note)
	if strings.EqualFold(cur.Status, newStatus) && note == "" {
		return cur, false, nil
	}

	rec, err := s.api.UpdateOrder(ctx, id, WireStatus(newStatus), note)
	if err != nil {
		return cur, true, err
	}

	var updated api.OrderRecord
	if rec != nil {
		updated = *rec
	} else {
		// server acknowledged without echoing the record; patch the copy we
		// already hold
		updated = cur.Full
		updated.Status = WireStatus(newStatus)
		if note != "" {
			updated.Notes = note
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = FromRecord(updated)
			break
		}
	}
	// the sort is re-derived after any mutation rather than assumed stable
	sortNewestFirst(s.orders)

	o := FromRecord(updated)
	return o, true, nil
}

// Cancel is a status update with a fixed target. After committing the local
// patch it performs a guaranteed re-fetch so derived views cannot go stale,
// replacing the original full page reload.
func (s *Synchronizer) Cancel(ctx context.Context, id string) (Order, error) {
	cur, ok := s.Get(id)
	if !ok {
		return Order{}, apperr.NotFoundErr("Order not found.")
	}
	if cur.Status == StatusCancelled {
		return cur, nil
	}

	o, _, err := s.UpdateStatus(ctx, id, StatusCancelled, "")
	if err != nil {
		return cur, err
	}
	// consistency re-fetch; the committed local patch already reflects the
	// cancel, so a refresh failure is not surfaced as a cancel failure
	_ = s.Refresh(ctx)
	if latest, ok := s.Get(id); ok {
		return latest, nil
	}
	return o, nil
}

// sortNewestFirst orders by raw date descending. The sort is stable so ties
// keep their original server order.
func sortNewestFirst(list []Order) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RawDate.After(list[j].RawDate)
	})
}
