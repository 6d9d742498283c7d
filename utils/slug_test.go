package utils

import (
	"fmt"
	"testing"

	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TrainingProgram{},
		&models.Participant{},
		&models.Certificate{},
	))
	return db
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Corporate Training", expected: "corporate-training"},
		{name: "punctuation stripped", input: "GST Filing: Basics & Beyond!", expected: "gst-filing-basics-beyond"},
		{name: "accents removed", input: "Résumé Écriture", expected: "resume-ecriture"},
		{name: "multiple spaces collapse", input: "Tax   Planning", expected: "tax-planning"},
		{name: "leading and trailing trim", input: "  Payroll  ", expected: "payroll"},
		{name: "already a slug", input: "business-compliance", expected: "business-compliance"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestUniqueProgramSlug(t *testing.T) {
	db := openTestDB(t)

	first, err := UniqueProgramSlug(db, "Corporate Training", 0)
	require.NoError(t, err)
	assert.Equal(t, "corporate-training", first)
	require.NoError(t, db.Create(&models.TrainingProgram{Slug: first, Title: "Corporate Training", DeliveryMode: "both"}).Error)

	second, err := UniqueProgramSlug(db, "Corporate Training", 0)
	require.NoError(t, err)
	assert.Equal(t, "corporate-training-2", second)
	require.NoError(t, db.Create(&models.TrainingProgram{Slug: second, Title: "Corporate Training", DeliveryMode: "both"}).Error)

	third, err := UniqueProgramSlug(db, "Corporate Training", 0)
	require.NoError(t, err)
	assert.Equal(t, "corporate-training-3", third)
}

func TestUniqueProgramSlugExcludesSelf(t *testing.T) {
	db := openTestDB(t)

	program := models.TrainingProgram{Slug: "corporate-training", Title: "Corporate Training", DeliveryMode: "both"}
	require.NoError(t, db.Create(&program).Error)

	// Updating a program with its own title keeps the slug stable.
	slug, err := UniqueProgramSlug(db, "Corporate Training", program.ID)
	require.NoError(t, err)
	assert.Equal(t, "corporate-training", slug)
}

func TestUniqueProgramSlugEmptyTitle(t *testing.T) {
	db := openTestDB(t)

	slug, err := UniqueProgramSlug(db, "!!!", 0)
	require.NoError(t, err)
	assert.Equal(t, "program", slug)
}
