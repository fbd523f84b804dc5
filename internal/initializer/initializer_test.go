package initializer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dball/characteristic/internal/attrs"
	"github.com/dball/characteristic/internal/models"
	. "github.com/dball/characteristic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	type Person struct {
		Name string
		Age  int
		Tags []string
	}
	calls := 0
	specs, err := attrs.Normalize(
		"name",
		attrs.MustNew("age", attrs.DefaultValue(0)),
		attrs.MustNew("tags", attrs.DefaultFactory(func() any {
			calls++
			return []string{}
		})),
	)
	require.NoError(t, err)
	model, err := models.Analyze(reflect.TypeOf(Person{}), "", attrs.Names(specs))
	require.NoError(t, err)
	ctor := New(model.Name, specs, model.Write)

	t.Run("explicit and default values", func(t *testing.T) {
		calls = 0
		p := model.Alloc()
		kw := map[string]any{"name": "Ann", "age": 30}
		require.NoError(t, ctor.Init(p, nil, kw, nil))
		assert.Equal(t, Person{Name: "Ann", Age: 30, Tags: []string{}}, p.Interface())
		assert.Equal(t, 1, calls)
		assert.Len(t, kw, 2)
	})

	t.Run("factories run once per construction", func(t *testing.T) {
		calls = 0
		a, b := model.Alloc(), model.Alloc()
		require.NoError(t, ctor.Init(a, nil, map[string]any{"name": "a"}, nil))
		require.NoError(t, ctor.Init(b, nil, map[string]any{"name": "b"}, nil))
		assert.Equal(t, 2, calls)
	})

	t.Run("explicit values skip factories", func(t *testing.T) {
		calls = 0
		p := model.Alloc()
		require.NoError(t, ctor.Init(p, nil, map[string]any{"name": "a", "tags": []string{"t"}}, nil))
		assert.Equal(t, 0, calls)
	})

	t.Run("missing required attribute", func(t *testing.T) {
		p := model.Alloc()
		err := ctor.Init(p, nil, map[string]any{"age": 1}, nil)
		assert.True(t, errors.Is(err, Error{Code: MissingRequiredAttribute}))
		var e Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "name", e.Attr())
		assert.Equal(t, "Person", e.Type())
	})

	t.Run("hook receives leftovers", func(t *testing.T) {
		p := model.Alloc()
		var gotArgs []any
		var gotKw map[string]any
		hook := func(args []any, kw map[string]any) error {
			gotArgs = args
			gotKw = kw
			return nil
		}
		require.NoError(t, ctor.Init(p, []any{1}, map[string]any{"name": "a", "extra": true}, hook))
		assert.Equal(t, []any{1}, gotArgs)
		assert.Equal(t, map[string]any{"extra": true}, gotKw)
	})

	t.Run("hook errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		p := model.Alloc()
		err := ctor.Init(p, nil, map[string]any{"name": "a"}, func([]any, map[string]any) error { return boom })
		assert.Same(t, boom, err)
	})

	t.Run("leftovers without a hook", func(t *testing.T) {
		p := model.Alloc()
		err := ctor.Init(p, nil, map[string]any{"name": "a", "b": 1, "a": 2}, nil)
		var e Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, UnexpectedArguments, e.Code)
		assert.Equal(t, []string{"a", "b"}, e.Context["kw"])
	})

	t.Run("invalid values", func(t *testing.T) {
		p := model.Alloc()
		err := ctor.Init(p, nil, map[string]any{"name": 7}, nil)
		var e Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "models.invalidValue", e.Code)
	})
}
