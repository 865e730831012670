package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestGenerateTemporaryPassword(t *testing.T) {
	first, err := GenerateTemporaryPassword(12)
	if err != nil {
		t.Fatalf("GenerateTemporaryPassword returned error: %v", err)
	}
	if len(first) != 12 {
		t.Errorf("password length = %d, want 12", len(first))
	}

	second, err := GenerateTemporaryPassword(12)
	if err != nil {
		t.Fatalf("GenerateTemporaryPassword returned error: %v", err)
	}
	if first == second {
		t.Error("two generated passwords are identical")
	}
}
