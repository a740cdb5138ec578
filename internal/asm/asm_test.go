package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lit(s string) Literal { return Literal{String: s} }

func TestAssembleLiteral(t *testing.T) {
	assert.Equal(t, "abc", Assemble(lit("abc")))
	assert.Equal(t, `\^\[a\]\(b\)\$`, Assemble(lit("^[a](b)$")))
	assert.Equal(t, "", Assemble(lit("")))
}

func TestAssembleMultiple(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"optional", Multiple{Min: 0, Max: 1, Greedy: true, Sub: lit("a")}, "a?"},
		{"star", Multiple{Min: 0, Max: Unbounded, Greedy: true, Sub: lit("a")}, "a*"},
		{"plus", Multiple{Min: 1, Max: Unbounded, Greedy: true, Sub: lit("a")}, "a+"},
		{"exact", Multiple{Min: 2, Max: 2, Greedy: true, Sub: lit("a")}, "a{2}"},
		{"at most", Multiple{Min: 0, Max: 2, Greedy: true, Sub: lit("a")}, "a{,2}"},
		{"at least", Multiple{Min: 2, Max: Unbounded, Greedy: true, Sub: lit("a")}, "a{2,}"},
		{"bounded", Multiple{Min: 2, Max: 5, Greedy: true, Sub: lit("a")}, "a{2,5}"},
		{"escaped char is still atomic", Multiple{Min: 0, Max: 1, Greedy: true, Sub: lit(".")}, `\.?`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assemble(tt.expr))
		})
	}
}

func TestAssembleMultipleSubexpression(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"optional", Multiple{Min: 0, Max: 1, Greedy: true, Sub: lit("abc")}, "(?:abc)?"},
		{"star", Multiple{Min: 0, Max: Unbounded, Greedy: true, Sub: lit("abc")}, "(?:abc)*"},
		{"plus", Multiple{Min: 1, Max: Unbounded, Greedy: true, Sub: lit("abc")}, "(?:abc)+"},
		{
			"nested repetition",
			Multiple{Min: 0, Max: 1, Greedy: true, Sub: Multiple{Min: 2, Max: 3, Greedy: true, Sub: lit("a")}},
			"(?:a{2,3})?",
		},
		{
			"alternation",
			Multiple{Min: 0, Max: 1, Greedy: true, Sub: Either{Items: []Expr{lit("a"), lit("b")}}},
			"(?:a|b)?",
		},
		{
			"capture is already a group",
			Multiple{Min: 0, Max: 1, Greedy: true, Sub: Capture{Sub: lit("abc")}},
			"(abc)?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assemble(tt.expr))
		})
	}
}

func TestAssembleMultipleNonGreedy(t *testing.T) {
	assert.Equal(t, "a??", Assemble(Multiple{Min: 0, Max: 1, Sub: lit("a")}))
	assert.Equal(t, "a*?", Assemble(Multiple{Min: 0, Max: Unbounded, Sub: lit("a")}))
	assert.Equal(t, "a+?", Assemble(Multiple{Min: 1, Max: Unbounded, Sub: lit("a")}))
	assert.Equal(t, "a{2}?", Assemble(Multiple{Min: 2, Max: 2, Sub: lit("a")}))
}

func TestAssembleEither(t *testing.T) {
	assert.Equal(t, "a|b|c", Assemble(Either{Items: []Expr{lit("a"), lit("b"), lit("c")}}))
	assert.Equal(t, "123|45|", Assemble(Either{Items: []Expr{lit("123"), lit("45"), lit("")}}))
}

func TestAssembleConcat(t *testing.T) {
	assert.Equal(t, "abc", Assemble(Concat{Items: []Expr{lit("a"), lit("b"), lit("c")}}))
	assert.Equal(t, "12345", Assemble(Concat{Items: []Expr{lit("123"), lit("45"), lit("")}}))
	assert.Equal(t, "123(?:abc)?", Assemble(Concat{Items: []Expr{
		lit("123"),
		Multiple{Min: 0, Max: 1, Greedy: true, Sub: lit("abc")},
	}}))
	assert.Equal(t, "a(?:b|c)", Assemble(Concat{Items: []Expr{
		lit("a"),
		Either{Items: []Expr{lit("b"), lit("c")}},
	}}))
}

func TestAssembleCharacterClass(t *testing.T) {
	assert.Equal(t, `\d`, Assemble(Digit))
	assert.Equal(t, `\d\d`, Assemble(Concat{Items: []Expr{Digit, Digit}}))
	assert.Equal(t, `\d\d*`, Assemble(Concat{Items: []Expr{
		Digit,
		Multiple{Min: 0, Max: Unbounded, Greedy: true, Sub: Digit},
	}}))
	assert.Equal(t, "a", Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'a'}}}))
	assert.Equal(t, "[ab]", Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'a'}, {Lo: 'b', Hi: 'b'}}}))
	assert.Equal(t, "[^a]", Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'a'}}, Inverted: true}))
	assert.Equal(t, "[^ab]", Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'a'}, {Lo: 'b', Hi: 'b'}}, Inverted: true}))
	assert.Equal(t, "[a-f]", Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'f'}}}))
	assert.Equal(t, "[a-z0-9]", Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'z'}, {Lo: '0', Hi: '9'}}}))
	assert.Equal(t, `[a-z\]]`, Assemble(CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'z'}, {Lo: ']', Hi: ']'}}}))
	assert.Equal(t, `[^\n]`, Assemble(CharacterClass{Items: []ClassItem{{Lo: '\n', Hi: '\n'}}, Inverted: true}))
}

func TestAssembleCapture(t *testing.T) {
	assert.Equal(t, `(\d)`, Assemble(Capture{Sub: Digit}))
	assert.Equal(t, `No\. (?P<number>\d+)`, Assemble(Concat{Items: []Expr{
		lit("No. "),
		Capture{Name: "number", Sub: Multiple{Min: 1, Max: Unbounded, Greedy: true, Sub: Digit}},
	}}))
}

func TestAssembleSetting(t *testing.T) {
	assert.Equal(t, "(?m)a", Assemble(Setting{Flags: "m", Sub: lit("a")}))
	// The flag marker hoists out of the quantified group.
	assert.Equal(t, "(?m)(?:ab)?", Assemble(Multiple{Min: 0, Max: 1, Greedy: true, Sub: Setting{Flags: "m", Sub: lit("ab")}}))
}

func TestAssembleBoundary(t *testing.T) {
	assert.Equal(t, `\b`, Assemble(WordBoundary))
	assert.Equal(t, `\Aa\Z`, Assemble(Concat{Items: []Expr{StartString, lit("a"), EndString}}))
}

func TestAssembleGoFlavor(t *testing.T) {
	// Go's regexp rejects \Z and reads {,m} as a literal, so the Go
	// flavor spells them \z and {0,m}.
	assert.Equal(t, `\Aa\z`, AssembleGo(Concat{Items: []Expr{StartString, lit("a"), EndString}}))
	assert.Equal(t, `a{0,3}`, AssembleGo(Multiple{Min: 0, Max: 3, Greedy: true, Sub: lit("a")}))
	assert.Equal(t, `a{,3}`, Assemble(Multiple{Min: 0, Max: 3, Greedy: true, Sub: lit("a")}))

	// Everything else renders identically in both flavors.
	assert.Equal(t, `\d{2,5}`, AssembleGo(Multiple{Min: 2, Max: 5, Greedy: true, Sub: Digit}))
	assert.Equal(t, `(?P<n>\w+)`, AssembleGo(Capture{Name: "n", Sub: Multiple{Min: 1, Max: Unbounded, Greedy: true, Sub: TokenCharacter}}))
}

func TestInvert(t *testing.T) {
	inverted, ok := Digit.Invert()
	assert.True(t, ok)
	assert.Equal(t, `[^\d]`, Assemble(inverted))

	back, ok := inverted.(CharacterClass).Invert()
	assert.True(t, ok)
	assert.Equal(t, `\d`, Assemble(back))

	notWord, ok := WordBoundary.Invert()
	assert.True(t, ok)
	assert.Equal(t, `\B`, Assemble(notWord))

	_, ok = StartLine.Invert()
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(lit("")))
	assert.True(t, IsEmpty(Concat{}))
	assert.False(t, IsEmpty(lit("a")))
	assert.False(t, IsEmpty(Concat{Items: []Expr{lit("a")}}))
}
