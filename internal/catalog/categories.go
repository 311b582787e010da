package catalog

import (
	"context"
	"log"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/models"
)

// CategoryFilter is the resolved form of a free-text category token: the
// stored category when one matched, plus the literal and tolerant-regex
// branches that always apply.
type CategoryFilter struct {
	Token    string
	Display  string
	Pattern  primitive.Regex
	Resolved *models.Category
}

// ResolveCategoryFilter turns a request token (slug, display name, or id) into
// a filter over both the single- and multi-category product fields. Resolution
// never fails: when no stored category matches, the literal and regex branches
// still apply, so e.g. products tagged with a raw name keep matching.
func ResolveCategoryFilter(ctx context.Context, db *mongo.Database, token string) CategoryFilter {
	display, words := NormalizeCategoryToken(token)

	filter := CategoryFilter{
		Token:   strings.TrimSpace(token),
		Display: display,
		Pattern: TolerantCategoryPattern(words),
	}

	var category models.Category
	err := db.Collection("categories").FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"slug": filter.Token},
			{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(display) + "$", Options: "i"}},
		},
	}).Decode(&category)
	switch {
	case err == nil:
		filter.Resolved = &category
	case err != mongo.ErrNoDocuments:
		log.Printf("[catalog] category lookup failed for %q: %v", token, err)
	}

	return filter
}

// NormalizeCategoryToken converts a URL token into a display-name candidate
// and its significant words. Hyphens become spaces and the "and"/"&"
// connectors are dropped so that "men-and-kids" and "men-kids" normalize to
// the same word list.
func NormalizeCategoryToken(token string) (string, []string) {
	display := strings.TrimSpace(strings.ReplaceAll(token, "-", " "))

	words := make([]string, 0)
	for _, w := range strings.Fields(display) {
		switch strings.ToLower(w) {
		case "and", "&":
			continue
		}
		words = append(words, w)
	}
	return display, words
}

// TolerantCategoryPattern joins the words with a separator that accepts "&",
// "and", or plain whitespace, so "men-kids" matches a category named
// "Men & Kids". Every word is escaped before entering the pattern.
func TolerantCategoryPattern(words []string) primitive.Regex {
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		escaped = append(escaped, regexp.QuoteMeta(w))
	}
	return primitive.Regex{
		Pattern: strings.Join(escaped, `(?:\s*(?:&|and)\s*|\s+)`),
		Options: "i",
	}
}

// Match builds the disjunctive query: resolved id, name, and slug first, then
// the raw and normalized literals, then the tolerant regex, each applied to
// both product category fields.
func (f CategoryFilter) Match() bson.M {
	branches := make([]bson.M, 0, 12)

	addBoth := func(value interface{}) {
		branches = append(branches,
			bson.M{"category": value},
			bson.M{"categories": value},
		)
	}

	if f.Resolved != nil {
		addBoth(f.Resolved.ID)
		addBoth(f.Resolved.Name)
		addBoth(f.Resolved.Slug)
	}
	if f.Token != "" {
		addBoth(f.Token)
	}
	if f.Display != "" && f.Display != f.Token {
		addBoth(f.Display)
	}
	if f.Pattern.Pattern != "" {
		addBoth(f.Pattern)
	}

	if len(branches) == 0 {
		return bson.M{}
	}
	return bson.M{"$or": branches}
}
