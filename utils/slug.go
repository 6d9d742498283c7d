package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Rdx99999/bhumi-backend/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a program title to a lowercase, hyphen-separated,
// accent-stripped URL slug.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)

	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = nonSlugChars.ReplaceAllString(out, "")
	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// UniqueProgramSlug derives a slug from title and resolves collisions with a
// numeric suffix (corporate-training, corporate-training-2, ...). Rows with
// excludeID are ignored so updates do not collide with themselves.
func UniqueProgramSlug(tx *gorm.DB, title string, excludeID uint) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "program"
	}

	slug := base
	for n := 2; ; n++ {
		var program models.TrainingProgram
		err := tx.Where("slug = ? AND id <> ?", slug, excludeID).First(&program).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return slug, nil
			}
			return "", err
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
