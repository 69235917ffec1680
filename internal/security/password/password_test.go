package password

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	phc, err := Hash(Default, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash err: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$") {
		t.Fatalf("unexpected PHC prefix: %q", phc)
	}
	if !Verify("correct horse battery staple", phc) {
		t.Fatalf("Verify rejected the original password")
	}
	if Verify("correct horse battery stapl", phc) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := Hash(Default, "misma clave")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash(Default, "misma clave")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (fresh salt)")
	}
	if !Verify("misma clave", a) || !Verify("misma clave", b) {
		t.Fatalf("both hashes must verify")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	t.Parallel()
	if _, err := Hash(Default, ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestVerify_GarbageHash(t *testing.T) {
	t.Parallel()

	for _, phc := range []string{
		"",
		"not-a-phc",
		"$argon2id$v=19$m=65536,t=3,p=1$!!!$###",
		"$bcrypt$whatever",
	} {
		if Verify("x", phc) {
			t.Fatalf("Verify accepted malformed hash %q", phc)
		}
	}
}
