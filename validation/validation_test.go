package validation

import (
	"testing"

	"github.com/user/taskall-go/apperror"
)

type signupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=2,max=140"`
	Password        string `json:"password" validate:"required,min=6,max=90,upperchar,digitchar"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func validForm() signupForm {
	return signupForm{
		Email:           "user@example.com",
		Username:        "newuser",
		Password:        "Str0ngpass",
		ConfirmPassword: "Str0ngpass",
	}
}

func violationsOf(t *testing.T, err error) []apperror.FieldViolation {
	t.Helper()
	appErr, ok := apperror.FromError(err)
	if !ok {
		t.Fatalf("expected an AppError, got %v", err)
	}
	if appErr.Type != apperror.ValidationError {
		t.Fatalf("expected a validation error, got type %d", appErr.Type)
	}
	return appErr.Violations
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	if err := Struct(validForm()); err != nil {
		t.Fatalf("expected valid form to pass, got %v", err)
	}
}

func TestStruct_PasswordMissingUppercase(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Password = "str0ngpass"
	form.ConfirmPassword = form.Password

	violations := violationsOf(t, Struct(form))
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1: %v", len(violations), violations)
	}
	if violations[0].Field != "password" {
		t.Errorf("violation should use the json field name, got %q", violations[0].Field)
	}
	if violations[0].Message != "must contain at least one uppercase letter" {
		t.Errorf("unexpected message: %q", violations[0].Message)
	}
}

func TestStruct_PasswordMissingDigit(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Password = "Strongpass"
	form.ConfirmPassword = form.Password

	violations := violationsOf(t, Struct(form))
	if len(violations) != 1 || violations[0].Message != "must contain at least one digit" {
		t.Fatalf("unexpected violations: %v", violations)
	}
}

func TestStruct_CollectsMultipleViolations(t *testing.T) {
	t.Parallel()

	form := signupForm{
		Email:           "not-an-email",
		Username:        "a",
		Password:        "short",
		ConfirmPassword: "different",
	}

	violations := violationsOf(t, Struct(form))
	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	for _, want := range []string{"email", "username", "password", "confirmPassword"} {
		if !fields[want] {
			t.Errorf("expected a violation on %q, got %v", want, violations)
		}
	}
}

func TestStruct_MismatchedConfirm(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.ConfirmPassword = "Other0therpass"

	violations := violationsOf(t, Struct(form))
	if len(violations) != 1 || violations[0].Field != "confirmPassword" {
		t.Fatalf("unexpected violations: %v", violations)
	}
}

func TestStruct_NonStructValue(t *testing.T) {
	t.Parallel()

	err := Struct("not a struct")
	if err == nil {
		t.Fatalf("expected an error for a non-struct value")
	}
	if apperror.IsValidationError(err) {
		t.Errorf("a non-struct value is an internal error, not a validation failure")
	}
}
