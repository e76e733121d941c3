package graph

import "testing"

func TestAuthHasMorphologicalEdges(t *testing.T) {
	g := Get()
	auth := g.Node("auth")
	if auth == nil {
		t.Fatal("auth node missing")
	}
	found := false
	for _, e := range auth.Edges {
		if e.Target == "authenticated" && e.Kind == Morphological && e.Weight == 1.0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("auth -> authenticated morphological edge missing: %+v", auth.Edges)
	}
}

func TestReverseEdgeDefaultWeight(t *testing.T) {
	g := Get()
	password := g.Node("password")
	if password == nil {
		t.Fatal("password node missing")
	}
	var fwd *Edge
	for i := range password.Edges {
		if password.Edges[i].Target == "auth" {
			fwd = &password.Edges[i]
		}
	}
	if fwd == nil {
		t.Fatal("password -> auth edge missing")
	}
	// password has no cluster of its own and auth's peer entry for it gives
	// no explicit ReverseWeight, so the reverse should default to 0.65*0.4.
	want := 0.65 * 0.4
	if fwd.Weight != want {
		t.Fatalf("password -> auth weight = %v; want %v", fwd.Weight, want)
	}
}

func TestExplicitReverseWeightHonoured(t *testing.T) {
	g := Get()
	expiry := g.Node("expiry")
	if expiry == nil {
		t.Fatal("expiry node missing")
	}
	var fwd *Edge
	for i := range expiry.Edges {
		if expiry.Edges[i].Target == "auth" {
			fwd = &expiry.Edges[i]
		}
	}
	if fwd == nil {
		t.Fatal("expiry -> auth edge missing")
	}
	if fwd.Weight != 0.3 {
		t.Fatalf("expiry -> auth weight = %v; want explicit 0.3", fwd.Weight)
	}
}

func TestTieBreakKeepsHigherWeight(t *testing.T) {
	g := Get()
	// token -> auth is declared twice: as the defaulted reverse of auth's
	// peer entry for token (0.8*0.4 = 0.32) and as token's own peer entry
	// for auth with weight 0.8. The higher weight, 0.8, should be kept,
	// with kind DomainPeer.
	token := g.Node("token")
	var edge *Edge
	for i := range token.Edges {
		if token.Edges[i].Target == "auth" {
			edge = &token.Edges[i]
		}
	}
	if edge == nil || edge.Weight != 0.8 || edge.Kind != DomainPeer {
		t.Fatalf("token -> auth = %+v; want weight 0.8 domain_peer", edge)
	}
}
