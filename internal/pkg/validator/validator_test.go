package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsEmptyPtr(t *testing.T) {
	blank := "  "
	value := "x"
	if !IsEmptyPtr(nil) {
		t.Error("IsEmptyPtr(nil) = false, want true")
	}
	if !IsEmptyPtr(&blank) {
		t.Error("IsEmptyPtr(blank) = false, want true")
	}
	if IsEmptyPtr(&value) {
		t.Error("IsEmptyPtr(value) = true, want false")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-08"); !ok {
		t.Error("IsValidDate(2025-01-08) = false, want true")
	}
	if _, ok := IsValidDate("2025-13-01"); ok {
		t.Error("IsValidDate(2025-13-01) = true, want false")
	}
	bad := "01/08/2025"
	if IsValidOptionalDate(&bad) {
		t.Errorf("IsValidOptionalDate(%q) = true, want false", bad)
	}
	if !IsValidOptionalDate(nil) {
		t.Error("IsValidOptionalDate(nil) = false, want true")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Error("empty ValidationErrors.Err() should be nil")
	}
	errs.Add("email", "email is required")
	errs.Add("password", "password is required")
	if errs.Err() == nil {
		t.Fatal("ValidationErrors.Err() should not be nil")
	}
	m := errs.ToMap()
	if m["email"] != "email is required" || m["password"] != "password is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "email: email is required; password: password is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
