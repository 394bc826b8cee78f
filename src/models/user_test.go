package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserNormalize(t *testing.T) {
	u := &User{Email: "  Alice@Example.COM ", FirstName: " Alice ", LastName: "Smith"}
	u.Normalize()
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.FirstName)
	assert.Equal(t, RoleAuditor, u.Role)
}

func TestUserValidate(t *testing.T) {
	t.Run("email without @ is rejected", func(t *testing.T) {
		u := &User{Email: "not-an-email", FirstName: "A", LastName: "B", Role: RoleAuditor}
		errs := u.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		u := &User{Email: "a@b.c", FirstName: "A", LastName: "B", Role: "superuser"}
		errs := u.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "role", errs[0].Field)
	})
}

func TestRegisterRequestValidate(t *testing.T) {
	req := &RegisterRequest{Email: "a@b.c", Password: "12345", FirstName: "A", LastName: "B"}
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Contains(t, errs[0].Message, "at least 6 characters")

	req.Password = "123456"
	assert.Empty(t, req.Validate())
}

func TestUserCanAccessAudit(t *testing.T) {
	u := &User{Role: RoleAuditor, IsActive: true}
	assert.True(t, u.CanAccessAudit())

	u.IsActive = false
	assert.False(t, u.CanAccessAudit())

	admin := &User{Role: RoleAdmin, IsActive: true}
	assert.True(t, admin.CanAccessAudit())
}
