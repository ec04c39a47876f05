package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Brand Refresh for Acme":  "brand-refresh-for-acme",
		"  Spaces   everywhere  ": "spaces-everywhere",
		"Q4 2025 & Campaign!":     "q4-2025-campaign",
		"---":                     "",
	}
	for input, want := range cases {
		assert.Equal(t, want, slugify(input), "slugify(%q)", input)
	}
}

func TestUniqueSlugAppendsSuffix(t *testing.T) {
	taken := map[string]bool{"brand-refresh": true, "brand-refresh-2": true}
	lookup := func(_ context.Context, slug string) error {
		if taken[slug] {
			return nil
		}
		return pgx.ErrNoRows
	}

	slug, err := uniqueSlug(context.Background(), "brand-refresh", lookup)
	require.NoError(t, err)
	assert.Equal(t, "brand-refresh-3", slug)
}

func TestUniqueSlugEmptyBase(t *testing.T) {
	lookup := func(context.Context, string) error { return pgx.ErrNoRows }

	slug, err := uniqueSlug(context.Background(), "", lookup)
	require.NoError(t, err)
	assert.Equal(t, "untitled", slug)
}
