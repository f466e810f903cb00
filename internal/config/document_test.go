package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeDisjointKeys(t *testing.T) {
	doc := Merge(Document{}, Document{"a": "1"})
	doc = Merge(doc, Document{"b": "2"})

	assert.Equal(t, Document{"a": "1", "b": "2"}, doc)
}

func TestMergeIdempotent(t *testing.T) {
	doc := Merge(Document{}, Document{"a": "1"})
	doc = Merge(doc, Document{"a": "1"})

	assert.Equal(t, Document{"a": "1"}, doc)
}

func TestMergeNestedMappings(t *testing.T) {
	existing := Document{
		"org": "TestOrg",
		"repo": Document{
			"columns":      "name,id",
			"column-names": "Name,ID",
		},
	}
	partial := Document{
		"repo": Document{"columns": "name,url"},
	}

	merged := Merge(existing, partial)

	repo, ok := asDocument(merged["repo"])
	assert.True(t, ok)
	assert.Equal(t, "name,url", repo["columns"])
	// Sibling keys in the nested mapping are preserved.
	assert.Equal(t, "Name,ID", repo["column-names"])
	assert.Equal(t, "TestOrg", merged["org"])
}

func TestMergeScalarSupersededByMapping(t *testing.T) {
	merged := Merge(Document{"repo": "oops"}, Document{"repo": Document{"open": true}})

	repo, ok := asDocument(merged["repo"])
	assert.True(t, ok)
	assert.Equal(t, true, repo["open"])
}

func TestMergeMappingSupersededByScalar(t *testing.T) {
	merged := Merge(Document{"repo": Document{"open": true}}, Document{"repo": "flat"})

	assert.Equal(t, "flat", merged["repo"])
}

func TestMergeHandlesPlainMapValues(t *testing.T) {
	// yaml.v3 unmarshals nested mappings as map[string]any, not Document.
	existing := Document{"repo": map[string]any{"columns": "id,name"}}
	partial := Document{"repo": map[string]any{"open": false}}

	merged := Merge(existing, partial)

	repo, ok := asDocument(merged["repo"])
	assert.True(t, ok)
	assert.Equal(t, "id,name", repo["columns"])
	assert.Equal(t, false, repo["open"])
}

func TestFlatten(t *testing.T) {
	doc := Document{
		"server": "https://tfs.company.com",
		"org":    "MyOrg",
		"repo": Document{
			"open":    true,
			"columns": "id,name",
		},
	}

	lines := Flatten(doc)

	assert.Equal(t, []string{
		"org: MyOrg",
		"repo.columns: id,name",
		"repo.open: true",
		"server: https://tfs.company.com",
	}, lines)
}

func TestSetPathCreatesIntermediateLevels(t *testing.T) {
	doc := Document{}
	SetPath(doc, []string{"build", "top"}, 10)

	build, ok := asDocument(doc["build"])
	assert.True(t, ok)
	assert.Equal(t, 10, build["top"])
}

func TestSetPathOverwritesScalarWithMapping(t *testing.T) {
	doc := Document{"build": "scalar"}
	SetPath(doc, []string{"build", "open"}, false)

	build, ok := asDocument(doc["build"])
	assert.True(t, ok)
	assert.Equal(t, false, build["open"])
}
