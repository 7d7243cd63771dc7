package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_CanAuthenticate(t *testing.T) {
	var missing *User
	assert.False(t, missing.CanAuthenticate())

	u := NewUser("Ana Silva", "ana@example.com", "hash", SexFemale, 30)
	assert.True(t, u.CanAuthenticate())

	u.IsActive = false
	assert.False(t, u.CanAuthenticate())

	u.IsActive = true
	deleted := time.Now()
	u.DeletedAt = &deleted
	assert.False(t, u.CanAuthenticate())
}

func TestDefaultCategoriesFor(t *testing.T) {
	userID := uuid.New()

	categories := DefaultCategoriesFor(userID)

	var income, expense int
	seen := map[string]bool{}
	for _, c := range categories {
		assert.Equal(t, userID, c.UserID)
		assert.True(t, c.IsActive)
		assert.False(t, seen[c.Name+string(c.Type)], "duplicate default %s", c.Name)
		seen[c.Name+string(c.Type)] = true
		switch c.Type {
		case CategoryTypeIncome:
			income++
		case CategoryTypeExpense:
			expense++
		}
	}
	assert.Equal(t, 5, income)
	assert.Equal(t, 10, expense)
}
