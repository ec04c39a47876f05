package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5"
)

// slugify lowercases the title and collapses everything outside [a-z0-9]
// into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueSlug appends a numeric suffix until the slug is unused. lookup must
// return pgx.ErrNoRows for a free slug.
func uniqueSlug(ctx context.Context, base string, lookup func(context.Context, string) error) (string, error) {
	if base == "" {
		base = "untitled"
	}
	candidate := base
	for i := 2; ; i++ {
		err := lookup(ctx, candidate)
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
