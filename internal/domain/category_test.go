package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Known(t *testing.T) {
	assert.True(t, CategoryScience.Known())
	assert.True(t, CategoryOther.Known())
	assert.False(t, Category("Quantum Gardening").Known())
	assert.False(t, Category("technology").Known(), "matching is case sensitive")
}

func TestCategory_Normalized(t *testing.T) {
	assert.Equal(t, CategoryScience, CategoryScience.Normalized())
	assert.Equal(t, CategoryOther, Category("Quantum Gardening").Normalized())
	assert.Equal(t, CategoryOther, Category("").Normalized())
}

func TestCategory_Icon(t *testing.T) {
	assert.Equal(t, "💻", CategoryTechnology.Icon())
	assert.Equal(t, "📄", CategoryOther.Icon())
	assert.Equal(t, "📄", Category("Quantum Gardening").Icon())
}
