package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.Contains(h, ".") {
		t.Fatalf("digest missing salt delimiter: %q", h)
	}
	if !Verify("correct horse battery staple", h) {
		t.Fatalf("Verify failed for the original password")
	}
	if Verify("wrong password", h) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestHashSaltUniqueness(t *testing.T) {
	t.Parallel()

	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical")
	}
	if !Verify("same-password", h1) || !Verify("same-password", h2) {
		t.Fatalf("a fresh-salted hash failed to verify")
	}
}

func TestVerifyMalformedStored(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"nodelimiter",
		"deadbeef",
		"zzzz.abcd",    // bad hex digest
		"abcd.zzzz",    // bad hex salt
		"ab.cd.ef",     // too many fields
		".deadbeef",    // empty digest still compares, must not panic
	}
	for _, stored := range cases {
		if Verify("anything", stored) {
			t.Fatalf("Verify accepted malformed stored value %q", stored)
		}
	}
}
