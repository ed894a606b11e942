package service

import "testing"

func TestComputeRefreshHash(t *testing.T) {
	const token = "header.payload.signature"
	const secret = "test-secret"

	h1 := ComputeRefreshHash(token, secret)
	h2 := ComputeRefreshHash(token, secret)
	if h1 != h2 {
		t.Fatalf("hash is not deterministic: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars (sha256), got %d", len(h1))
	}

	if ComputeRefreshHash("other.token.here", secret) == h1 {
		t.Error("different tokens must not collide")
	}
	if ComputeRefreshHash(token, "other-secret") == h1 {
		t.Error("different secrets must produce different hashes")
	}
}

func TestStrptr(t *testing.T) {
	if strptr("") != nil {
		t.Error("empty string should map to nil")
	}
	if strptr("   ") != nil {
		t.Error("whitespace-only string should map to nil")
	}
	if p := strptr("abc"); p == nil || *p != "abc" {
		t.Errorf("strptr(\"abc\") = %v", p)
	}
}
