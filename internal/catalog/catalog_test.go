package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSample(t *testing.T) {
	c, err := catalog.DecodeBytes([]byte(testutil.SampleJSON))
	require.NoError(t, err)
	require.Len(t, c.Groups, 2)

	assert.Equal(t, "group 1", c.Groups[0].Label)
	assert.Equal(t, "qqq", c.Groups[0].Command())
	assert.False(t, c.Groups[0].Terminal())
	assert.Nil(t, c.Groups[1].CommandTemplate)
	assert.Equal(t, "", c.Groups[1].Command())
	assert.Equal(t, "www", c.Groups[1].Items[1].Param)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := catalog.DecodeBytes([]byte(`{"groups": [`))
	require.Error(t, err)

	_, err = catalog.DecodeBytes([]byte(`{"groups": []} {"groups": []}`))
	require.Error(t, err)

	_, err = catalog.DecodeBytes([]byte(`{"groups": "nope"}`))
	require.Error(t, err)
}

func TestDecodeEmptyStream(t *testing.T) {
	_, err := catalog.DecodeBytes(nil)
	require.ErrorIs(t, err, catalog.ErrNoInput)
}

func TestDecodeMissingGroupsYieldsEmpty(t *testing.T) {
	c, err := catalog.DecodeBytes([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, c.Groups)
	assert.Empty(t, c.Groups)
}

func TestEncodeRoundTripPreservesNulls(t *testing.T) {
	c, err := catalog.DecodeBytes([]byte(testutil.SampleJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, catalog.Encode(&buf, c))
	assert.Contains(t, buf.String(), `"command_template":null`)
	assert.Contains(t, buf.String(), `"is_terminal":null`)

	again, err := catalog.DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestEncodeEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, catalog.Encode(&buf, catalog.Catalog{}))
	assert.Equal(t, "{\"groups\":[]}\n", buf.String())
}

func TestAppendDoesNotMutateInputs(t *testing.T) {
	base := testutil.SampleCatalog(t)
	added := catalog.Group{Label: "extra", CommandTemplate: catalog.String("open")}

	out := base.Append(added)
	require.Len(t, out.Groups, 3)
	require.Len(t, base.Groups, 2)
	assert.Equal(t, "extra", out.Groups[2].Label)

	out.Groups[0].Items[0].Param = "changed"
	*out.Groups[0].CommandTemplate = "changed"
	assert.Equal(t, "xxx", base.Groups[0].Items[0].Param)
	assert.Equal(t, "qqq", base.Groups[0].Command())
}

func TestIndexLowercasesKeys(t *testing.T) {
	c := catalog.Index(catalog.Catalog{Groups: []catalog.Group{{
		Label: "g",
		Items: []catalog.Item{{Label: "Item ONE"}},
	}}})
	assert.Equal(t, "item one", c.Groups[0].Items[0].Key())
	assert.Equal(t, "Item ONE", c.Groups[0].Items[0].Label)
}

func TestLoadFromPathAndStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testutil.SampleJSON), 0o644))

	fromFile, err := catalog.Load(path, nil)
	require.NoError(t, err)
	assert.Len(t, fromFile.Groups, 2)

	fromStdin, err := catalog.Load("", strings.NewReader(testutil.SampleJSON))
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromStdin)

	_, err = catalog.Load(filepath.Join(dir, "missing.json"), nil)
	require.Error(t, err)
}
