package auth

import "testing"

func TestSessionLifecycle(t *testing.T) {
	m := NewSessionManager()

	s := m.Create("u1", "sam@example.com", false)
	if s.Token == "" {
		t.Fatal("no token issued")
	}

	got, ok := m.Lookup(s.Token)
	if !ok {
		t.Fatal("session not found after Create")
	}
	if got.UserID != "u1" || got.Email != "sam@example.com" || got.Demo {
		t.Errorf("session fields wrong: %+v", got)
	}

	m.Revoke(s.Token)
	if _, ok := m.Lookup(s.Token); ok {
		t.Error("session still resolvable after Revoke")
	}
}

func TestSessionLookupUnknownToken(t *testing.T) {
	m := NewSessionManager()
	if _, ok := m.Lookup("nope"); ok {
		t.Error("unknown token resolved to a session")
	}
}

func TestDemoSessionFlag(t *testing.T) {
	m := NewSessionManager()
	s := m.Create("demo-user", "demo@jobpulse.local", true)

	got, _ := m.Lookup(s.Token)
	if !got.Demo {
		t.Error("demo flag not carried on the session")
	}
}

func TestOAuthStateIsSingleUse(t *testing.T) {
	m := NewSessionManager()

	state := m.NewState()
	if !m.ConsumeState(state) {
		t.Fatal("freshly issued state rejected")
	}
	if m.ConsumeState(state) {
		t.Error("state token accepted twice")
	}
	if m.ConsumeState("forged") {
		t.Error("unknown state accepted")
	}
}
