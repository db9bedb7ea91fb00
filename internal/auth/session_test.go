package auth

import "testing"

func TestSessionRoundTrip(t *testing.T) {
	token := SignSession("secret", "user@example.com")

	email, ok := ParseSession("secret", token)
	if !ok {
		t.Fatal("expected valid session")
	}
	if email != "user@example.com" {
		t.Errorf("email = %q", email)
	}
}

func TestParseSessionRejects(t *testing.T) {
	token := SignSession("secret", "user@example.com")

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"Wrong secret", "other", token},
		{"Tampered email", "secret", "dXNlcjJAZXhhbXBsZS5jb20." + token[len(token)-64:]},
		{"No separator", "secret", "garbage"},
		{"Bad base64", "secret", "!!!!.deadbeef"},
		{"Empty token", "secret", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseSession(tt.secret, tt.token); ok {
				t.Error("expected rejection")
			}
		})
	}
}
