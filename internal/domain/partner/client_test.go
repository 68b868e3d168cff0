package partner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient("Sharma Traders", "9876543210", "Accounts@Sharma.IN", "14 MG Road, Pune")
	require.NoError(t, err)

	assert.Equal(t, "Sharma Traders", client.Name)
	assert.Equal(t, "9876543210", client.Contact)
	assert.Equal(t, "accounts@sharma.in", client.Email)
	assert.True(t, client.IsActive())
	assert.Len(t, client.GetDomainEvents(), 1)
}

func TestNewClient_ContactMustBeTenDigits(t *testing.T) {
	for _, contact := range []string{"", "12345", "98765432100", "98765abcde", "+919876543210"} {
		_, err := NewClient("Sharma Traders", contact, "", "Pune")
		assert.Error(t, err, "contact %q should be rejected", contact)
	}
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("", "9876543210", "", "Pune")
	assert.Error(t, err)

	_, err = NewClient(strings.Repeat("x", 101), "9876543210", "", "Pune")
	assert.Error(t, err)

	_, err = NewClient("Sharma Traders", "9876543210", "not-an-email", "Pune")
	assert.Error(t, err)
}

func TestClient_SetCompanyDetails(t *testing.T) {
	client, err := NewClient("Sharma Traders", "9876543210", "", "Pune")
	require.NoError(t, err)

	require.NoError(t, client.SetCompanyDetails("Sharma Traders Pvt Ltd", "27aapfu0939f1zv"))
	assert.Equal(t, "27AAPFU0939F1ZV", client.GSTNumber)
}

func TestClient_DeactivateActivate(t *testing.T) {
	client, err := NewClient("Sharma Traders", "9876543210", "", "Pune")
	require.NoError(t, err)

	require.NoError(t, client.Deactivate())
	assert.False(t, client.IsActive())
	assert.Error(t, client.Deactivate())

	require.NoError(t, client.Activate())
	assert.True(t, client.IsActive())
}
