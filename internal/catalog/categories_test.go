package catalog

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func compilePattern(t *testing.T, words []string) *regexp.Regexp {
	t.Helper()
	pattern := TolerantCategoryPattern(words)
	re, err := regexp.Compile("(?i)" + pattern.Pattern)
	if err != nil {
		t.Fatalf("pattern %q does not compile: %v", pattern.Pattern, err)
	}
	return re
}

func TestNormalizeCategoryTokenDropsConnectors(t *testing.T) {
	display, words := NormalizeCategoryToken("men-and-kids")
	if display != "men and kids" {
		t.Fatalf("unexpected display candidate %q", display)
	}
	if len(words) != 2 || words[0] != "men" || words[1] != "kids" {
		t.Fatalf("expected words [men kids], got %v", words)
	}

	_, words = NormalizeCategoryToken("men-kids")
	if len(words) != 2 || words[0] != "men" || words[1] != "kids" {
		t.Fatalf("expected words [men kids], got %v", words)
	}
}

func TestTolerantPatternMatchesAmpersandNames(t *testing.T) {
	for _, token := range []string{"men-and-kids", "men-kids"} {
		_, words := NormalizeCategoryToken(token)
		re := compilePattern(t, words)
		if !re.MatchString("Men & Kids") {
			t.Fatalf("token %q should match category name \"Men & Kids\"", token)
		}
		if !re.MatchString("men and kids") {
			t.Fatalf("token %q should match \"men and kids\"", token)
		}
		if !re.MatchString("Men Kids") {
			t.Fatalf("token %q should match \"Men Kids\"", token)
		}
	}
}

func TestTolerantPatternEscapesMetacharacters(t *testing.T) {
	_, words := NormalizeCategoryToken("c++-accessories")
	re := compilePattern(t, words)
	if !re.MatchString("C++ Accessories") {
		t.Fatal("expected escaped pattern to match literal name")
	}
	if re.MatchString("cxx accessories") {
		t.Fatal("metacharacters must not act as regex operators")
	}
}

func TestCategoryFilterMatchWithoutResolution(t *testing.T) {
	display, words := NormalizeCategoryToken("men-s-fashion")
	filter := CategoryFilter{
		Token:   "men-s-fashion",
		Display: display,
		Pattern: TolerantCategoryPattern(words),
	}

	match := filter.Match()
	branches, ok := match["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or filter, got %v", match)
	}
	// token, display, and regex, each on both category fields
	if len(branches) != 6 {
		t.Fatalf("expected 6 fallback branches, got %d", len(branches))
	}
}

func TestCategoryFilterMatchNeverEmptyForNonEmptyToken(t *testing.T) {
	display, words := NormalizeCategoryToken("unknown-category")
	filter := CategoryFilter{Token: "unknown-category", Display: display, Pattern: TolerantCategoryPattern(words)}
	if len(filter.Match()) == 0 {
		t.Fatal("unresolved token must still produce the literal/regex branches")
	}
}
