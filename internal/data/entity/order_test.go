package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPendingPayment, OrderStatusPaid, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusInProgress, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},

		// Tidak boleh lompat atau mundur
		{OrderStatusPendingPayment, OrderStatusInProgress, false},
		{OrderStatusPendingPayment, OrderStatusCompleted, false},
		{OrderStatusPaid, OrderStatusCompleted, false},
		{OrderStatusPaid, OrderStatusPendingPayment, false},
		{OrderStatusInProgress, OrderStatusPaid, false},

		// Terminal state beku
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
		{OrderStatusCancelled, OrderStatusPendingPayment, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPendingPayment.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.False(t, OrderStatusInProgress.IsTerminal())
}

func TestAuthorizeTransitionAdmin(t *testing.T) {
	// Admin menggerakkan order sparepart/rental setelah PAID
	assert.NoError(t, AuthorizeTransition(RoleAdmin, OrderKindSparepart, OrderStatusPaid, OrderStatusInProgress))
	assert.NoError(t, AuthorizeTransition(RoleAdmin, OrderKindRental, OrderStatusInProgress, OrderStatusCompleted))
	assert.NoError(t, AuthorizeTransition(RoleAdmin, OrderKindMixed, OrderStatusPaid, OrderStatusInProgress))

	// Konfirmasi pembayaran dan cancel berlaku untuk semua kind
	assert.NoError(t, AuthorizeTransition(RoleAdmin, OrderKindService, OrderStatusPendingPayment, OrderStatusPaid))
	assert.NoError(t, AuthorizeTransition(RoleAdmin, OrderKindService, OrderStatusPaid, OrderStatusCancelled))

	// Progres order jasa milik teknisi, bukan admin
	assert.Error(t, AuthorizeTransition(RoleAdmin, OrderKindService, OrderStatusPaid, OrderStatusInProgress))
	assert.Error(t, AuthorizeTransition(RoleAdmin, OrderKindService, OrderStatusInProgress, OrderStatusCompleted))
}

func TestAuthorizeTransitionTechnician(t *testing.T) {
	assert.NoError(t, AuthorizeTransition(RoleTechnician, OrderKindService, OrderStatusPaid, OrderStatusInProgress))
	assert.NoError(t, AuthorizeTransition(RoleTechnician, OrderKindService, OrderStatusInProgress, OrderStatusCompleted))
	assert.NoError(t, AuthorizeTransition(RoleTechnician, OrderKindService, OrderStatusInProgress, OrderStatusCancelled))

	// Teknisi tidak boleh konfirmasi pembayaran
	assert.Error(t, AuthorizeTransition(RoleTechnician, OrderKindService, OrderStatusPendingPayment, OrderStatusPaid))
}

func TestAuthorizeTransitionCustomer(t *testing.T) {
	// Customer read-only, semua transisi ditolak
	assert.Error(t, AuthorizeTransition(RoleCustomer, OrderKindService, OrderStatusPaid, OrderStatusInProgress))
	assert.Error(t, AuthorizeTransition(RoleCustomer, OrderKindSparepart, OrderStatusPendingPayment, OrderStatusPaid))
	assert.Error(t, AuthorizeTransition(RoleCustomer, OrderKindRental, OrderStatusInProgress, OrderStatusCancelled))
	assert.Error(t, AuthorizeTransition(RoleMitra, OrderKindService, OrderStatusPaid, OrderStatusInProgress))
}

func TestAuthorizeTransitionInvalidEdges(t *testing.T) {
	// Lompat state ditolak untuk semua role termasuk admin
	assert.Error(t, AuthorizeTransition(RoleAdmin, OrderKindSparepart, OrderStatusPendingPayment, OrderStatusInProgress))
	assert.Error(t, AuthorizeTransition(RoleTechnician, OrderKindService, OrderStatusPendingPayment, OrderStatusInProgress))

	// Terminal state tidak bisa diubah siapapun
	assert.Error(t, AuthorizeTransition(RoleAdmin, OrderKindSparepart, OrderStatusCompleted, OrderStatusCancelled))
	assert.Error(t, AuthorizeTransition(RoleAdmin, OrderKindSparepart, OrderStatusCancelled, OrderStatusPaid))
	assert.Error(t, AuthorizeTransition(RoleTechnician, OrderKindService, OrderStatusCompleted, OrderStatusInProgress))
}

func TestGoodsDriven(t *testing.T) {
	assert.False(t, OrderKindService.GoodsDriven())
	assert.True(t, OrderKindSparepart.GoodsDriven())
	assert.True(t, OrderKindRental.GoodsDriven())
	assert.True(t, OrderKindMixed.GoodsDriven())
}
