package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	c, err := NewCompany("  Acme Pharma  ", " 12.345.678/0001-90 ", "pharma", "SP", "Campinas", "ops@acme.example", "+55 19 99999-0000")

	require.NoError(t, err)
	assert.Equal(t, "Acme Pharma", c.Name())
	assert.Equal(t, "12.345.678/0001-90", c.TaxID())
	assert.Equal(t, "pharma", c.Sector())
	assert.Equal(t, uint(0), c.ID())
	assert.False(t, c.CreatedAt().IsZero())
}

func TestNewCompany_RequiresName(t *testing.T) {
	_, err := NewCompany("   ", "", "", "", "", "", "")
	assert.Error(t, err)
}

func TestCompany_Update(t *testing.T) {
	c, err := NewCompany("Acme", "", "", "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, c.Update("Acme Pharma", "123", "pharma", "SP", "Campinas", "", ""))
	assert.Equal(t, "Acme Pharma", c.Name())
	assert.Equal(t, "123", c.TaxID())

	assert.Error(t, c.Update("", "", "", "", "", "", ""))
	assert.Equal(t, "Acme Pharma", c.Name(), "failed update must not mutate")
}
