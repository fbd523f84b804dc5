package decl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/dball/characteristic/internal/types"
	"github.com/dball/characteristic/pkg/record"
)

const people = `
kinds:
  - name: Person
    attributes:
      - name
      - {name: age, default: 0}
      - {name: id, factory: uuid}
      - {name: nickname, default: null}
  - name: Setting
    mutable: true
    attributes: [key, value]
    defaults: {value: ""}
records:
  - kind: Person
    values: {name: Ann, age: 30}
  - kind: Person
    values: {name: Bo}
  - kind: Setting
    values: {key: color}
`

func TestParse(t *testing.T) {
	file, err := Parse(strings.NewReader(people))
	require.NoError(t, err)
	require.Len(t, file.Kinds, 2)
	person := file.Kinds[0]
	assert.Equal(t, "Person", person.Name)
	assert.False(t, person.Mutable)
	assert.Equal(t, []AttrDecl{
		{Name: "name"},
		{Name: "age", Default: 0, HasDefault: true},
		{Name: "id", Factory: "uuid"},
		{Name: "nickname", HasDefault: true},
	}, person.Attributes)
	assert.Equal(t, map[string]any{"value": ""}, file.Kinds[1].Defaults)
	assert.Len(t, file.Records, 3)

	t.Run("empty file", func(t *testing.T) {
		file, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, file.Kinds)
	})

	t.Run("invalid attribute", func(t *testing.T) {
		_, err := Parse(strings.NewReader("kinds: [{name: X, attributes: [{nom: x}]}]"))
		assert.Error(t, err)
	})
}

func TestCompose(t *testing.T) {
	file, err := Parse(strings.NewReader(people))
	require.NoError(t, err)
	catalog, err := Compose(file, Config{})
	require.NoError(t, err)

	kinds := catalog.Kinds()
	require.Len(t, kinds, 2)
	assert.Equal(t, "Person", kinds[0].Name())
	assert.True(t, kinds[0].Immutable())
	assert.False(t, kinds[1].Immutable())

	records, err := catalog.Build(file.Records)
	require.NoError(t, err)
	require.Len(t, records, 3)

	ann := records[0].Value()
	assert.Equal(t, "Ann", ann["name"])
	assert.Equal(t, 30, ann["age"])
	assert.Nil(t, ann["nickname"])
	_, err = uuid.Parse(ann["id"].(string))
	assert.NoError(t, err)
	assert.NotEqual(t, ann["id"], records[1].Value()["id"])
	assert.Equal(t, 0, records[1].Value()["age"])
	assert.Equal(t, "", records[2].Value()["value"])

	t.Run("records of different kinds are not comparable", func(t *testing.T) {
		assert.Equal(t, record.NotComparable, records[0].Eq(records[2]))
	})
}

func TestComposeErrors(t *testing.T) {
	compose := func(src string) error {
		file, err := Parse(strings.NewReader(src))
		require.NoError(t, err)
		catalog, err := Compose(file, Config{})
		if err != nil {
			return err
		}
		_, err = catalog.Build(file.Records)
		return err
	}

	t.Run("unknown factory", func(t *testing.T) {
		err := compose("kinds: [{name: X, attributes: [{name: a, factory: random}]}]")
		var e Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "decl.unknownFactory", e.Code)
	})

	t.Run("default and factory", func(t *testing.T) {
		err := compose("kinds: [{name: X, attributes: [{name: a, default: 1, factory: zero}]}]")
		assert.True(t, errors.Is(err, record.ErrConflictingDefaultStrategy))
	})

	t.Run("legacy defaults with attribute defaults", func(t *testing.T) {
		err := compose("kinds: [{name: X, attributes: [{name: a, default: 1}], defaults: {a: 2}}]")
		assert.True(t, errors.Is(err, record.ErrConflictingDefaultsDeclaration))
	})

	t.Run("duplicate kind", func(t *testing.T) {
		err := compose("kinds: [{name: X, attributes: [a]}, {name: X, attributes: [b]}]")
		var e Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "decl.duplicateKind", e.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := compose("records: [{kind: Y, values: {}}]")
		var e Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "decl.unknownKind", e.Code)
	})

	t.Run("missing attribute", func(t *testing.T) {
		err := compose("kinds: [{name: X, attributes: [a]}]\nrecords: [{kind: X, values: {}}]")
		assert.True(t, errors.Is(err, record.ErrMissingRequiredAttribute))
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte(people), 0o644))
	file, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, file.Kinds, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFactories(t *testing.T) {
	assert.Equal(t, []string{"empty", "now", "uuid", "zero"}, Factories())
}
