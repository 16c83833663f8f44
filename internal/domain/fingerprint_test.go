package domain

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	a := Fingerprint("D001", Text("Toyota Corolla"), Text("2020"), Text("45,000 km"))
	b := Fingerprint("D001", Text("Toyota Corolla"), Text("2020"), Text("45,000 km"))

	if a != b {
		t.Fatalf("identical inputs produced different identifiers: %s vs %s", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("expected 32-char hex digest, got %q", a)
	}
}

func TestFingerprintSensitiveToEachInput(t *testing.T) {
	t.Parallel()

	base := Fingerprint("D001", Text("Toyota Corolla"), Text("2020"), Text("45,000 km"))

	variants := []string{
		Fingerprint("D002", Text("Toyota Corolla"), Text("2020"), Text("45,000 km")),
		Fingerprint("D001", Text("Toyota Camry"), Text("2020"), Text("45,000 km")),
		Fingerprint("D001", Text("Toyota Corolla"), Text("2021"), Text("45,000 km")),
		Fingerprint("D001", Text("Toyota Corolla"), Text("2020"), Text("50,000 km")),
	}

	seen := map[string]bool{base: true}
	for i, v := range variants {
		if seen[v] {
			t.Fatalf("variant %d collided with an earlier identifier", i)
		}
		seen[v] = true
	}
}

// Location, price, and posting time are not part of identity: two listings
// differing only there collapse to one identifier. That is the accepted
// approximation that keeps identity stable while prices drop.
func TestFingerprintIgnoresLocation(t *testing.T) {
	t.Parallel()

	a := Fingerprint("D001", Text("Kia Sportage"), Text("2022"), Text("10,000 km"))
	b := Fingerprint("D001", Text("Kia Sportage"), Text("2022"), Text("10,000 km"))

	if a != b {
		t.Fatalf("listings differing only outside the identity fields must share an identifier")
	}
}

func TestFingerprintUnknownFieldsStillHash(t *testing.T) {
	t.Parallel()

	a := Fingerprint("D001", NoField(), NoField(), NoField())
	b := Fingerprint("D001", NoField(), NoField(), NoField())

	if a != b {
		t.Fatalf("unknown fields must hash deterministically")
	}
}
