package fieldpath

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProject struct {
	Id   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

type fakeTime struct {
	Time time.Time
}

type fakeRepo struct {
	Id            *uuid.UUID   `json:"id,omitempty"`
	Name          *string      `json:"name,omitempty"`
	RemoteUrl     *string      `json:"remoteUrl,omitempty"`
	DefaultBranch *string      `json:"defaultBranch,omitempty"`
	Project       *fakeProject `json:"project,omitempty"`
	CreatedAt     *fakeTime    `json:"createdAt,omitempty"`
	hidden        string
}

func strptr(s string) *string { return &s }

func TestParse(t *testing.T) {
	assert.Equal(t, Path{"project", "name"}, Parse("project.name"))
	assert.Equal(t, Path{"name"}, Parse("name"))
}

func TestResolveTopLevelField(t *testing.T) {
	repo := fakeRepo{Name: strptr("my-repo"), hidden: "x"}

	got, err := Resolve(repo, Parse("name"))

	require.NoError(t, err)
	assert.Equal(t, "my-repo", got)
}

func TestResolveNestedField(t *testing.T) {
	repo := fakeRepo{Project: &fakeProject{Name: strptr("TestProject")}}

	got, err := Resolve(repo, Parse("project.name"))

	require.NoError(t, err)
	assert.Equal(t, "TestProject", got)
}

func TestResolveJSONEncodedStringMidPath(t *testing.T) {
	// A field holding a JSON-serialized object resolves transparently.
	root := map[string]any{"project": `{"name": "Foo"}`}

	got, err := Resolve(root, Parse("project.name"))

	require.NoError(t, err)
	assert.Equal(t, "Foo", got)
}

func TestResolveJSONStringLeafNotDecoded(t *testing.T) {
	// The last segment comes back verbatim even when it contains JSON.
	root := map[string]any{"payload": `{"name": "Foo"}`}

	got, err := Resolve(root, Parse("payload"))

	require.NoError(t, err)
	assert.Equal(t, `{"name": "Foo"}`, got)
}

func TestResolveInvalidJSONStringMidPathFailsNaturally(t *testing.T) {
	// A non-JSON string mid-path keeps the string; the next segment
	// lookup then fails with a field access error.
	root := map[string]any{"project": "just-a-name"}

	_, err := Resolve(root, Parse("project.name"))

	var pathErr *Error
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "project.name", pathErr.Path)
	assert.Equal(t, "name", pathErr.Segment)
}

func TestResolveMissingSegment(t *testing.T) {
	root := map[string]any{"project": map[string]any{"name": "Foo"}}

	_, err := Resolve(root, Parse("project.missing"))

	var pathErr *Error
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "project.missing", pathErr.Path)
	assert.Equal(t, "missing", pathErr.Segment)
}

func TestResolveMissingTopLevelSegment(t *testing.T) {
	repo := fakeRepo{Name: strptr("my-repo")}

	_, err := Resolve(repo, Parse("nope"))

	var pathErr *Error
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "nope", pathErr.Segment)
}

func TestResolveNilPointerFieldIsNil(t *testing.T) {
	repo := fakeRepo{Name: strptr("my-repo")}

	got, err := Resolve(repo, Parse("defaultBranch"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveUUIDAsString(t *testing.T) {
	id := uuid.MustParse("2f3d611a-f012-4b39-b157-8db63f380226")
	repo := fakeRepo{Id: &id}

	got, err := Resolve(repo, Parse("id"))

	require.NoError(t, err)
	assert.Equal(t, "2f3d611a-f012-4b39-b157-8db63f380226", got)
}

func TestResolveUnwrapsTimeWrapper(t *testing.T) {
	queued := time.Date(2025, 2, 18, 10, 0, 0, 0, time.UTC)
	repo := fakeRepo{CreatedAt: &fakeTime{Time: queued}}

	got, err := Resolve(repo, Parse("createdAt"))

	require.NoError(t, err)
	assert.Equal(t, queued, got)
}

func TestResolveThroughPointerRoot(t *testing.T) {
	repo := &fakeRepo{Name: strptr("ptr-repo")}

	got, err := Resolve(repo, Parse("name"))

	require.NoError(t, err)
	assert.Equal(t, "ptr-repo", got)
}

func TestErrorMessageNamesPath(t *testing.T) {
	err := &Error{Path: "project.missing", Segment: "missing"}
	assert.Contains(t, err.Error(), "unable to access field")
	assert.Contains(t, err.Error(), "project.missing")
}
