package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("Hash() returned the plaintext password")
	}

	if !Verify("s3cret-password", hash) {
		t.Error("Verify() = false for the correct password")
	}
	if Verify("wrong-password", hash) {
		t.Error("Verify() = true for a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}
