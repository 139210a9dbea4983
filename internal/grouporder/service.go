// Package grouporder composes the group-order store with the milestone rules.
package grouporder

import (
	"github.com/fairyhunter13/vendor-supply-hub/internal/milestone"
	"github.com/fairyhunter13/vendor-supply-hub/internal/model"
	"github.com/fairyhunter13/vendor-supply-hub/internal/store"
)

// Service answers status, update and recommendation requests over one Store.
type Service struct {
	store *store.Store
}

// NewService returns a Service backed by st.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Status returns the current state with its discount tier and next milestone.
func (s *Service) Status() model.GroupOrderStatus {
	st := s.store.Read()
	return model.GroupOrderStatus{
		VendorCount:   st.VendorCount,
		PriceDrop:     milestone.DiscountFor(st.VendorCount),
		NextMilestone: milestone.Next(st.VendorCount),
		OrderTotal:    st.OrderTotal,
		TimeRemaining: st.TimeRemaining,
		Vendors:       st.Vendors,
	}
}

// Update applies p and echoes the raw post-update fields. It always succeeds;
// derived fields are only visible through Status.
func (s *Service) Update(p model.GroupOrderPatch) model.GroupOrderUpdate {
	st := s.store.Apply(p)
	return model.GroupOrderUpdate{
		Success:       true,
		VendorCount:   st.VendorCount,
		OrderTotal:    st.OrderTotal,
		TimeRemaining: st.TimeRemaining,
		Vendors:       st.Vendors,
	}
}

// Revision exposes the store change counter.
func (s *Service) Revision() uint64 { return s.store.Revision() }
