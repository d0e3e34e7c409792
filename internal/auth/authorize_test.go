package auth

import "testing"

func TestCanListUsers(t *testing.T) {
	if !(Principal{Subject: "u1", Role: RoleAdmin}).CanListUsers() {
		t.Fatal("admin should list users")
	}
	for _, role := range []string{RoleUser, "viewer", "Admin", ""} {
		if (Principal{Subject: "u1", Role: role}).CanListUsers() {
			t.Fatalf("role %q should not list users", role)
		}
	}
}

func TestCanViewUser(t *testing.T) {
	admin := Principal{Subject: "a1", Role: RoleAdmin}
	if !admin.CanViewUser("someone-else") {
		t.Fatal("admin should view any user")
	}

	self := Principal{Subject: "u1", Role: RoleUser}
	if !self.CanViewUser("u1") {
		t.Fatal("self access should be allowed independent of role")
	}
	if self.CanViewUser("u2") {
		t.Fatal("non-admin should not view other users")
	}
	// exact match only, no prefix matching
	if self.CanViewUser("u1x") || self.CanViewUser("u") {
		t.Fatal("ownership must be exact identifier equality")
	}
	if (Principal{Subject: "", Role: RoleUser}).CanViewUser("") {
		t.Fatal("empty ids never match")
	}
}

func TestUnknownRolesGetNoPrivileges(t *testing.T) {
	p := Principal{Subject: "u1", Role: "superadmin"}
	if p.CanListUsers() || p.CanViewUser("u2") {
		t.Fatal("unknown roles must be default-deny")
	}
	if !p.CanViewUser("u1") {
		t.Fatal("self access holds for any authenticated principal")
	}
}
