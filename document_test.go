package jsoncore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsoncore "github.com/clarete/jsoncore"
)

func TestDocumentValueCountCoversEveryReachableNode(t *testing.T) {
	doc, err := jsoncore.Parse([]byte(`[1,2,[3,4],{"a":5}]`), jsoncore.DefaultParseOptions())
	require.NoError(t, err)
	defer doc.Release()

	// array node + 4 elements (1,2,nested-array,object) + nested
	// array's own 2 elements + object's key node + its value == 9.
	assert.Equal(t, 9, doc.ValueCount())
}

func TestDocumentRootOfScalar(t *testing.T) {
	doc, err := jsoncore.Parse([]byte(`true`), jsoncore.DefaultParseOptions())
	require.NoError(t, err)
	defer doc.Release()
	assert.True(t, doc.Root().Bool())
}
