package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

type Blog struct {
	ID          int
	Title       string
	CurrentPost *Post
	Posts       []*Post
}

type Post struct {
	ID    int
	Title string
	Body  string
}

// TestNewModel tests the model definition defaults.
func TestNewModel(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		model := NewModel(&Blog{})
		assert.Equal(t, "blogs", model.Collection())

		id, err := model.PrimaryValue(&Blog{ID: 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, "3", id)
	})

	t.Run("SetCollection", func(t *testing.T) {
		model := NewModel(&Blog{}).SetCollection("Fancy-Blogs")
		assert.Equal(t, "fancy_blogs", model.Collection())
	})

	t.Run("NonStruct", func(t *testing.T) {
		m := NewModelMap()
		err := m.RegisterModels(NewModel("not a struct"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelDefinitionInvalid))
	})
}

// TestAttributes tests the attribute declarations and their value sources.
func TestAttributes(t *testing.T) {
	t.Run("FieldAccessor", func(t *testing.T) {
		model := NewModel(&Blog{}).Attribute("id").Attribute("title")
		require.NoError(t, NewModelMap().RegisterModels(model))

		blog := &Blog{ID: 5, Title: "First"}
		attrs := model.Attributes()
		require.Len(t, attrs, 2)

		assert.Equal(t, "id", attrs[0].Name())
		assert.Equal(t, 5, attrs[0].Value(blog, nil))
		assert.Equal(t, "title", attrs[1].Name())
		assert.Equal(t, "First", attrs[1].Value(blog, nil))
	})

	t.Run("FromField", func(t *testing.T) {
		model := NewModel(&Post{}).Attribute("content", FromField("Body"))
		require.NoError(t, NewModelMap().RegisterModels(model))

		value := model.Attributes()[0].Value(&Post{Body: "text"}, nil)
		assert.Equal(t, "text", value)
	})

	t.Run("Computed", func(t *testing.T) {
		model := NewModel(&Post{}).Attribute("title_length", Computed(func(m, ctx interface{}) interface{} {
			return len(m.(*Post).Title)
		}))
		require.NoError(t, NewModelMap().RegisterModels(model))

		attr := model.Attributes()[0]
		assert.True(t, attr.IsComputed())
		assert.Equal(t, 4, attr.Value(&Post{Title: "Four"}, nil))
	})

	t.Run("Visibility", func(t *testing.T) {
		model := NewModel(&Post{}).
			Attribute("title", If(func(m, ctx interface{}) bool { return ctx == "admin" })).
			Attribute("body", Unless(func(m, ctx interface{}) bool { return ctx == "admin" }))
		require.NoError(t, NewModelMap().RegisterModels(model))

		title, body := model.Attributes()[0], model.Attributes()[1]
		assert.True(t, title.Visible(&Post{}, "admin"))
		assert.False(t, title.Visible(&Post{}, nil))
		assert.False(t, body.Visible(&Post{}, "admin"))
		assert.True(t, body.Visible(&Post{}, nil))
	})

	t.Run("FieldNotFound", func(t *testing.T) {
		err := NewModelMap().RegisterModels(NewModel(&Post{}).Attribute("missing"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelFieldNotFound))
	})

	t.Run("Duplicated", func(t *testing.T) {
		err := NewModelMap().RegisterModels(NewModel(&Post{}).Attribute("title").Attribute("title"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelDefinitionInvalid))
	})
}

// TestRelationships tests the relationship declarations and resolution.
func TestRelationships(t *testing.T) {
	t.Run("HasOne", func(t *testing.T) {
		model := NewModel(&Blog{}).HasOne("current_post")
		require.NoError(t, NewModelMap().RegisterModels(model))

		rel, ok := model.RelationshipField("current_post")
		require.True(t, ok)
		assert.Equal(t, RelHasOne, rel.Kind())

		post := &Post{ID: 1}
		assert.Equal(t, post, rel.Resolve(&Blog{CurrentPost: post}, nil))
		assert.Nil(t, rel.Resolve(&Blog{}, nil))
	})

	t.Run("HasMany", func(t *testing.T) {
		model := NewModel(&Blog{}).HasMany("posts")
		require.NoError(t, NewModelMap().RegisterModels(model))

		rel, ok := model.RelationshipField("posts")
		require.True(t, ok)
		assert.Equal(t, RelHasMany, rel.Kind())

		posts := []*Post{{ID: 1}, {ID: 2}}
		assert.Equal(t, posts, rel.Resolve(&Blog{Posts: posts}, nil))
		assert.Nil(t, rel.Resolve(&Blog{}, nil))
	})

	t.Run("Options", func(t *testing.T) {
		model := NewModel(&Blog{}).HasMany("posts", WithLinks(), WithData(), WithCollection("Recent-Posts"))
		require.NoError(t, NewModelMap().RegisterModels(model))

		rel := model.Relationships()[0]
		assert.True(t, rel.Links())
		assert.True(t, rel.Data())
		assert.Equal(t, "recent_posts", rel.Collection())
	})

	t.Run("Resolver", func(t *testing.T) {
		model := NewModel(&Blog{}).HasOne("latest", Computed(func(m, ctx interface{}) interface{} {
			posts := m.(*Blog).Posts
			if len(posts) == 0 {
				return nil
			}
			return posts[len(posts)-1]
		}))
		require.NoError(t, NewModelMap().RegisterModels(model))

		rel := model.Relationships()[0]
		assert.Equal(t, &Post{ID: 2}, rel.Resolve(&Blog{Posts: []*Post{{ID: 1}, {ID: 2}}}, nil))
		assert.Nil(t, rel.Resolve(&Blog{}, nil))
	})
}

// TestModelMap tests the model registry.
func TestModelMap(t *testing.T) {
	t.Run("GetModelStruct", func(t *testing.T) {
		m := NewModelMap()
		require.NoError(t, m.RegisterModels(NewModel(&Blog{}), NewModel(&Post{})))

		mStruct, err := m.GetModelStruct(&Blog{})
		require.NoError(t, err)
		assert.Equal(t, "blogs", mStruct.Collection())

		byValue, err := m.GetModelStruct(Blog{})
		require.NoError(t, err)
		assert.Equal(t, mStruct, byValue)

		byCollection, ok := m.ModelByCollection("posts")
		require.True(t, ok)
		assert.Equal(t, "posts", byCollection.Collection())

		assert.Len(t, m.Models(), 2)
	})

	t.Run("NotMapped", func(t *testing.T) {
		m := NewModelMap()
		_, err := m.GetModelStruct(&Post{})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelNotMapped))
	})

	t.Run("AlreadyMapped", func(t *testing.T) {
		m := NewModelMap()
		require.NoError(t, m.RegisterModels(NewModel(&Blog{})))

		err := m.RegisterModels(NewModel(&Blog{}))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelAlreadyMapped))
	})

	t.Run("CollectionConflict", func(t *testing.T) {
		m := NewModelMap()
		err := m.RegisterModels(
			NewModel(&Blog{}),
			NewModel(&Post{}).SetCollection("blogs"),
		)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ModelAlreadyMapped))
	})
}
