package jsoncore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsoncore "github.com/clarete/jsoncore"
)

func stringifyCompact(t *testing.T, src string, opts jsoncore.StringifyOptions) string {
	t.Helper()
	doc, err := jsoncore.Parse([]byte(src), jsoncore.DefaultParseOptions())
	require.NoError(t, err)
	defer doc.Release()
	out, err := jsoncore.Stringify(doc.Root(), opts)
	require.NoError(t, err)
	require.Equal(t, byte(0), out[len(out)-1], "output must be NUL-terminated")
	return string(out[:len(out)-1])
}

func TestStringifyCompactRoundTrip(t *testing.T) {
	assert.Equal(t, `{"a":1,"b":[2,3.5,null,true]}`,
		stringifyCompact(t, `{"a":1,"b":[2,3.5,null,true]}`, jsoncore.StringifyOptions{}))
}

func TestStringifyEscapesControlAndQuote(t *testing.T) {
	got := stringifyCompact(t, `"a\"b\\c\td"`, jsoncore.StringifyOptions{})
	assert.Equal(t, `"a\"b\\c\td"`, got)
}

func TestStringifyEscapeSlashOption(t *testing.T) {
	withSlash := stringifyCompact(t, `"a/b"`, jsoncore.StringifyOptions{EscapeSlash: true})
	assert.Equal(t, `"a\/b"`, withSlash)

	without := stringifyCompact(t, `"a/b"`, jsoncore.StringifyOptions{})
	assert.Equal(t, `"a/b"`, without)
}

func TestStringifyEscapeUnicodeOption(t *testing.T) {
	escaped := stringifyCompact(t, `"Aé"`, jsoncore.StringifyOptions{EscapeUnicode: true})
	assert.Equal(t, "\"A\\u00e9\"", escaped)

	verbatim := stringifyCompact(t, `"Aé"`, jsoncore.StringifyOptions{})
	assert.Equal(t, "\"Aé\"", verbatim)
}

func TestStringifyPrettyIndents(t *testing.T) {
	opts := jsoncore.StringifyOptions{Pretty: true, Indent: 2, Newline: "\n"}
	got := stringifyCompact(t, `{"a":[1,2]}`, opts)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", got)
}

func TestStringifyEmptyContainers(t *testing.T) {
	assert.Equal(t, `[]`, stringifyCompact(t, `[]`, jsoncore.StringifyOptions{}))
	assert.Equal(t, `{}`, stringifyCompact(t, `{}`, jsoncore.StringifyOptions{}))
}

func TestStringifyFloatIsRoundTripCapable(t *testing.T) {
	doc, err := jsoncore.Parse([]byte(`0.1`), jsoncore.DefaultParseOptions())
	require.NoError(t, err)
	defer doc.Release()
	out, err := jsoncore.Stringify(doc.Root(), jsoncore.StringifyOptions{})
	require.NoError(t, err)

	doc2, err := jsoncore.Parse(out[:len(out)-1], jsoncore.DefaultParseOptions())
	require.NoError(t, err)
	defer doc2.Release()
	assert.Equal(t, doc.Root().Float(), doc2.Root().Float())
}
