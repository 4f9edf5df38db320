// Package access resolves a console role into a fixed capability set
// used to filter navigation and dashboard routes. The remote loyalty API
// performs no authorization of its own and none is added here: the role
// is a client-supplied label, NOT a security boundary. Anyone hardening
// this console must add real authentication server-side.
package access

import (
	"sort"
	"strings"

	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
)

// Role is the console persona selected at session start.
type Role string

const (
	RoleCustomer  Role = "CUSTOMER"
	RoleSales     Role = "SALES"
	RoleMarketing Role = "MARKETING"
	RoleManager   Role = "MANAGER"
)

// Capability names one console action a role may perform.
type Capability string

const (
	CapViewCustomerDashboard  Capability = "dashboard:customer"
	CapViewSalesDashboard     Capability = "dashboard:sales"
	CapViewMarketingDashboard Capability = "dashboard:marketing"
	CapViewManagerDashboard   Capability = "dashboard:manager"
	CapEnrollCustomer         Capability = "customer:enroll"
	CapSearchCustomers        Capability = "customer:search"
	CapRecordTransaction      Capability = "transaction:create"
	CapRedeemReward           Capability = "reward:redeem"
	CapManagePromotions       Capability = "promotion:manage"
	CapViewAnalytics          Capability = "analytics:view"
)

var capabilitiesByRole = map[Role][]Capability{
	RoleCustomer: {
		CapViewCustomerDashboard,
		CapRedeemReward,
	},
	RoleSales: {
		CapViewSalesDashboard,
		CapEnrollCustomer,
		CapSearchCustomers,
		CapRecordTransaction,
	},
	RoleMarketing: {
		CapViewMarketingDashboard,
		CapManagePromotions,
	},
	RoleManager: {
		CapViewManagerDashboard,
		CapViewAnalytics,
		CapSearchCustomers,
	},
}

// Set is an immutable capability set resolved once per session.
type Set struct {
	role Role
	caps map[Capability]struct{}
}

// Resolve maps a role label to its capability set. The label is matched
// case-insensitively; unknown labels are rejected rather than defaulted.
func Resolve(label string) (Set, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(label)))
	caps, ok := capabilitiesByRole[role]
	if !ok {
		return Set{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown console role").
			WithDetails(map[string]any{"role": label})
	}

	indexed := make(map[Capability]struct{}, len(caps))
	for _, cap := range caps {
		indexed[cap] = struct{}{}
	}
	return Set{role: role, caps: indexed}, nil
}

// Role returns the persona the set was resolved from.
func (s Set) Role() Role {
	return s.role
}

// Allows reports whether the set grants the capability.
func (s Set) Allows(cap Capability) bool {
	_, ok := s.caps[cap]
	return ok
}

// List returns the granted capabilities in stable order.
func (s Set) List() []Capability {
	out := make([]Capability, 0, len(s.caps))
	for cap := range s.caps {
		out = append(out, cap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
