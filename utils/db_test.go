package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitDBStoresConnectionOnce(t *testing.T) {
	first, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	InitDB(first)
	assert.Same(t, first, GetDB())

	// Panggilan kedua tidak menimpa koneksi yang sudah tersimpan
	second, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	InitDB(second)
	assert.Same(t, first, GetDB())
}
