package seeders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"project-dashboard/pkg/constants"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Password123!")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestDefaultUsers_CoverEveryRole(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range defaultUsers {
		assert.True(t, constants.IsKnownRole(u.role), u.email)
		seen[u.role] = true
	}
	for _, role := range constants.AllRoles {
		assert.True(t, seen[role], role)
	}
}

func TestDemoProjects_HaveDisplayName(t *testing.T) {
	for _, p := range demoProjects {
		assert.NotEmpty(t, p.DisplayName())
	}
}
