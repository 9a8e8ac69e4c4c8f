package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRosterCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.yaml")

	r, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(r.Members) != 5 {
		t.Errorf("default members = %d, want 5", len(r.Members))
	}
	if len(r.Gyms) != 5 {
		t.Errorf("default gyms = %d, want 5", len(r.Gyms))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("roster file not written: %v", err)
	}

	// Second load reads the file it just wrote.
	again, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster (reread): %v", err)
	}
	if len(again.Members) != len(r.Members) {
		t.Errorf("reread members = %d, want %d", len(again.Members), len(r.Members))
	}
}

func TestLoadRosterParsesEmails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.yaml")
	content := `members:
  - name: 松村
    email: matsumura@example.com
  - name: 山火
gyms:
  - 中平井
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}

	if email, ok := r.Email("松村"); !ok || email != "matsumura@example.com" {
		t.Errorf("Email(松村) = %q, %v", email, ok)
	}
	if _, ok := r.Email("山火"); ok {
		t.Error("Email(山火) should report no address on file")
	}
	if _, ok := r.Email("知らない人"); ok {
		t.Error("Email(unknown) should report no address on file")
	}
	if names := r.Names(); len(names) != 2 || names[0] != "松村" {
		t.Errorf("Names = %v", names)
	}
}
