package access

import (
	"testing"

	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
)

func TestResolveKnownRoles(t *testing.T) {
	cases := []struct {
		label   string
		role    Role
		allowed Capability
		denied  Capability
	}{
		{"CUSTOMER", RoleCustomer, CapViewCustomerDashboard, CapManagePromotions},
		{"sales", RoleSales, CapEnrollCustomer, CapViewAnalytics},
		{" Marketing ", RoleMarketing, CapManagePromotions, CapRecordTransaction},
		{"MANAGER", RoleManager, CapViewAnalytics, CapRedeemReward},
	}

	for _, tc := range cases {
		set, err := Resolve(tc.label)
		if err != nil {
			t.Fatalf("resolve %q: %v", tc.label, err)
		}
		if set.Role() != tc.role {
			t.Fatalf("resolve %q: role %q", tc.label, set.Role())
		}
		if !set.Allows(tc.allowed) {
			t.Errorf("%s should allow %s", tc.role, tc.allowed)
		}
		if set.Allows(tc.denied) {
			t.Errorf("%s should not allow %s", tc.role, tc.denied)
		}
	}
}

func TestResolveRejectsUnknownRole(t *testing.T) {
	_, err := Resolve("superadmin")
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListIsStableAndDetached(t *testing.T) {
	set, err := Resolve("SALES")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	first := set.List()
	second := set.List()
	if len(first) != len(second) {
		t.Fatalf("lists differ in length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("list order not stable at %d: %s vs %s", i, first[i], second[i])
		}
	}

	first[0] = Capability("tampered")
	if !set.Allows(CapEnrollCustomer) {
		t.Fatal("mutating a returned list must not change the set")
	}
}
