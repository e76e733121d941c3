package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/triagehq/logtriage/internal/errs"
)

// fieldConstraint is a parsed `key:value` token.
type fieldConstraint struct {
	key   string
	value string
}

// Parsed is the result of splitting a query string into its constituent
// tokens (§4.5 step 1).
type Parsed struct {
	// Terms are the bare search terms, in input order.
	Terms []string
	// Fields are the `key:value` constraints, excluding the reserved
	// `greed:` and `within:` keys.
	Fields []fieldConstraint
	// Greed is the override greed for this query, or -1 if none was given.
	Greed int
	// Within, if non-zero, restricts the scan to entries newer than
	// (now - Within) — a convenience the original UI offered via a
	// time-range picker.
	Within time.Duration
}

// Parse splits text into tokens on whitespace, recognising `key:value` and
// the reserved `greed:<N>` and `within:<dur>` tokens. A token value may be
// double-quoted to embed whitespace; an unbalanced quote is a
// MalformedQueryError.
func Parse(text string) (Parsed, error) {
	out := Parsed{Greed: -1}

	tokens, err := splitTokens(text)
	if err != nil {
		return Parsed{}, err
	}

	for _, tok := range tokens {
		key, value, isField := splitKeyValue(tok)
		if !isField {
			out.Terms = append(out.Terms, tok)
			continue
		}
		switch key {
		case "greed":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 || n > 10 {
				return Parsed{}, &errs.MalformedQueryError{Token: tok, Err: errs.MalformedQuery}
			}
			out.Greed = n
		case "within":
			d, err := time.ParseDuration(value)
			if err != nil {
				return Parsed{}, &errs.MalformedQueryError{Token: tok, Err: err}
			}
			out.Within = d
		default:
			out.Fields = append(out.Fields, fieldConstraint{key: key, value: value})
		}
	}
	return out, nil
}

// splitTokens is a whitespace tokenizer that keeps a double-quoted span
// (anywhere in the text) together as one token, dropping the quotes.
func splitTokens(text string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ' ' || r == '\t':
			if inQuote {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	if inQuote {
		return nil, &errs.MalformedQueryError{Token: text, Err: errs.MalformedQuery}
	}
	return tokens, nil
}

// splitKeyValue reports whether tok is a `key:value` token (no embedded
// whitespace in key, colon not at position 0) and splits it.
func splitKeyValue(tok string) (key, value string, ok bool) {
	i := strings.IndexByte(tok, ':')
	if i <= 0 {
		return "", "", false
	}
	return strings.ToLower(tok[:i]), tok[i+1:], true
}
