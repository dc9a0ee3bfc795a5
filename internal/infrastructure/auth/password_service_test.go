package auth

import "testing"

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.Verify(hash, "secret1") {
		t.Error("expected correct password to verify")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	a, err := svc.Hash("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := svc.Hash("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Error("expected salted hashes to differ")
	}
}
