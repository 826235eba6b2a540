package query

import (
	"iter"
	"strings"

	"github.com/weft-http/weft/http/status"
	"github.com/weft-http/weft/internal/urlenc"
)

// Param is a single query-string entry: a key with all the values it was
// given across the whole string.
type Param struct {
	Key    string
	Values []string
}

// Params is an ordered collection of query-string parameters. A repeated key
// never produces a second entry: its values are appended to the existing
// one, so the first-seen key order is preserved.
type Params struct {
	entries []Param
}

// Parse decodes a raw query string, with or without the leading question
// mark. Each &-separated segment must contain exactly one unescaped equals
// sign, otherwise the whole parse fails.
func Parse(raw string) (Params, error) {
	raw = strings.TrimPrefix(raw, "?")

	var params Params

	for len(raw) > 0 {
		var seg string
		if amp := strings.IndexByte(raw, '&'); amp != -1 {
			seg, raw = raw[:amp], raw[amp+1:]
		} else {
			seg, raw = raw, ""
		}

		eq := strings.IndexByte(seg, '=')
		if eq == -1 || strings.IndexByte(seg[eq+1:], '=') != -1 {
			return Params{}, status.ErrBadQueryString
		}

		key, err := unescape(seg[:eq])
		if err != nil {
			return Params{}, err
		}

		value, err := unescape(seg[eq+1:])
		if err != nil {
			return Params{}, err
		}

		params.Add(key, value)
	}

	return params, nil
}

// Add appends a value to the key, merging into an already existing entry
// if there is one.
func (p *Params) Add(key, value string) {
	for i := range p.entries {
		if p.entries[i].Key == key {
			p.entries[i].Values = append(p.entries[i].Values, value)
			return
		}
	}

	p.entries = append(p.entries, Param{Key: key, Values: []string{value}})
}

// Get returns all the values of the key. Keys are matched case-sensitively.
func (p *Params) Get(key string) ([]string, bool) {
	for i := range p.entries {
		if p.entries[i].Key == key {
			return p.entries[i].Values, true
		}
	}

	return nil, false
}

// Value returns the first value of the key, or an empty string.
func (p *Params) Value(key string) string {
	values, found := p.Get(key)
	if !found {
		return ""
	}

	return values[0]
}

// Has tells whether the key is present.
func (p *Params) Has(key string) bool {
	_, found := p.Get(key)
	return found
}

// Remove drops the entry of the key, if any.
func (p *Params) Remove(key string) {
	for i := range p.entries {
		if p.entries[i].Key == key {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return
		}
	}
}

// Keys returns all the keys in their first-seen order.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.entries))
	for i := range p.entries {
		keys[i] = p.entries[i].Key
	}

	return keys
}

// Entries returns an iterator over (key, values) pairs in order.
func (p *Params) Entries() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for i := range p.entries {
			if !yield(p.entries[i].Key, p.entries[i].Values) {
				return
			}
		}
	}
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	return len(p.entries)
}

// Empty tells whether there are no parameters at all.
func (p *Params) Empty() bool {
	return len(p.entries) == 0
}

// Format is the inverse of Parse: every (key, value) pair is urlencoded and
// joined with ampersands, prefixed with a question mark. An empty collection
// formats to an empty string.
func (p *Params) Format() string {
	if len(p.entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteByte('?')

	for i, entry := range p.entries {
		for j, value := range entry.Values {
			if i|j != 0 {
				b.WriteByte('&')
			}

			b.WriteString(urlenc.Encode(entry.Key))
			b.WriteByte('=')
			b.WriteString(urlenc.Encode(value))
		}
	}

	return b.String()
}

// unescape resolves plus signs into spaces before decoding the percent
// escapes, so a %2B survives as a literal plus.
func unescape(s string) (string, error) {
	if strings.IndexByte(s, '+') != -1 {
		s = strings.ReplaceAll(s, "+", " ")
	}

	decoded, err := urlenc.Decode(s)
	if err != nil {
		return "", status.ErrURLDecoding
	}

	return decoded, nil
}
