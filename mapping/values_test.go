package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

type hash struct {
	value string
}

func (h hash) String() string {
	return h.value
}

// TestPrimaryValue tests the primary value formatting of the supported field
// types.
func TestPrimaryValue(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		model := NewModel(&Post{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Post{ID: 12}, nil)
		require.NoError(t, err)
		assert.Equal(t, "12", id)
	})

	t.Run("Unsaved", func(t *testing.T) {
		model := NewModel(&Post{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Post{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "", id)
	})

	t.Run("String", func(t *testing.T) {
		type Session struct {
			ID string
		}
		model := NewModel(&Session{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Session{ID: "ab-12"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "ab-12", id)
	})

	t.Run("Pointer", func(t *testing.T) {
		type Draft struct {
			ID *uint64
		}
		model := NewModel(&Draft{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Draft{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "", id)

		value := uint64(8)
		id, err = model.PrimaryValue(&Draft{ID: &value}, nil)
		require.NoError(t, err)
		assert.Equal(t, "8", id)
	})

	t.Run("Stringer", func(t *testing.T) {
		type Commit struct {
			ID hash
		}
		model := NewModel(&Commit{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Commit{ID: hash{value: "deadbeef"}}, nil)
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", id)
	})

	t.Run("Computed", func(t *testing.T) {
		model := NewModel(&Post{}).Primary(Computed(func(m, ctx interface{}) interface{} {
			return m.(*Post).ID * 10
		}))
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Post{ID: 2}, nil)
		require.NoError(t, err)
		assert.Equal(t, "20", id)
	})

	t.Run("Unsupported", func(t *testing.T) {
		type Odd struct {
			ID [2]int
		}
		model := NewModel(&Odd{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		_, err := model.PrimaryValue(&Odd{ID: [2]int{1, 2}}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelPrimaryValue))
	})
}

func TestPrimaryDeclaration(t *testing.T) {
	t.Run("FromField", func(t *testing.T) {
		type Tag struct {
			Slug string
		}
		model := NewModel(&Tag{}).Primary(FromField("Slug"))
		require.NoError(t, NewModelMap().RegisterModels(model))

		id, err := model.PrimaryValue(&Tag{Slug: "golang"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "golang", id)
	})

	t.Run("FieldNotFound", func(t *testing.T) {
		err := NewModelMap().RegisterModels(NewModel(&Post{}).Primary(FromField("Missing")))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelFieldNotFound))
	})

	t.Run("NoValueSource", func(t *testing.T) {
		err := NewModelMap().RegisterModels(NewModel(&Post{}).Primary())
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelDefinitionInvalid))
	})

	t.Run("NoPrimaryField", func(t *testing.T) {
		type Bare struct {
			Name string
		}
		model := NewModel(&Bare{})
		require.NoError(t, NewModelMap().RegisterModels(model))

		_, err := model.PrimaryValue(&Bare{Name: "x"}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelDefinitionInvalid))
	})
}
