package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/postdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePosts(n int) []models.Post {
	posts := make([]models.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, models.Post{ID: i, UserID: 1, Title: fmt.Sprintf("t%d", i), Body: fmt.Sprintf("b%d", i)})
	}
	return posts
}

func TestBoard_Loaded_KeepsFirstPage(t *testing.T) {
	all := samplePosts(100)

	b := newBoard().Loaded(all, 10)

	require.Len(t, b.Posts, 10)
	assert.Equal(t, all[:10], b.Posts)
	assert.False(t, b.Loading)
	assert.Empty(t, b.Error)
}

func TestBoard_Loaded_FewerThanLimit(t *testing.T) {
	b := newBoard().Loaded(samplePosts(4), 10)
	assert.Len(t, b.Posts, 4)
}

func TestBoard_Loaded_DoesNotAliasInput(t *testing.T) {
	all := samplePosts(3)
	b := newBoard().Loaded(all, 10)
	all[0].Title = "changed"
	assert.Equal(t, "t1", b.Posts[0].Title)
}

func TestBoard_Created_Prepends(t *testing.T) {
	b := newBoard().Loaded(samplePosts(10), 10)
	b.CreateDraft = models.Draft{Title: "T", Body: "B"}
	b.Error = "Failed to create post"

	got := b.Created(models.Post{ID: 11, Title: "T", Body: "B"})

	require.Len(t, got.Posts, 11)
	assert.Equal(t, models.Post{ID: 11, Title: "T", Body: "B"}, got.Posts[0])
	assert.Equal(t, b.Posts, got.Posts[1:])
	assert.True(t, got.CreateDraft.IsZero())
	assert.Empty(t, got.Error)
	assert.Len(t, b.Posts, 10, "receiver must not change")
}

func TestBoard_Updated_ReplacesOnlyMatching(t *testing.T) {
	b := newBoard().Loaded(samplePosts(10), 10)
	edit := b.Posts[2]
	b.EditDraft = &edit

	got := b.Updated(models.Post{ID: 3, Title: "X", Body: "Y"})

	require.Len(t, got.Posts, 10)
	for i, p := range got.Posts {
		if p.ID == 3 {
			assert.Equal(t, models.Post{ID: 3, Title: "X", Body: "Y"}, p)
			continue
		}
		assert.Equal(t, b.Posts[i], p)
	}
	assert.Nil(t, got.EditDraft)
	assert.Equal(t, "t3", b.Posts[2].Title, "receiver must not change")
}

func TestBoard_Deleted_RemovesByID(t *testing.T) {
	b := newBoard().Loaded(samplePosts(10), 10)

	got := b.Deleted(5)

	require.Len(t, got.Posts, 9)
	_, found := got.Find(5)
	assert.False(t, found)
	assert.Len(t, b.Posts, 10)
}

func TestBoard_Failed(t *testing.T) {
	loaded := newBoard().Loaded(samplePosts(3), 10)

	t.Run("write failure keeps list", func(t *testing.T) {
		got := loaded.Failed(failure(OpDelete, errors.New("boom")))
		assert.Equal(t, loaded.Posts, got.Posts)
		assert.Equal(t, "Failed to delete post", got.Error)
	})

	t.Run("load failure empties list and stops loading", func(t *testing.T) {
		got := newBoard().Failed(failure(OpLoad, errors.New("boom")))
		assert.Empty(t, got.Posts)
		assert.False(t, got.Loading)
		assert.Equal(t, "Failed to fetch data", got.Error)
	})
}

func TestBoard_Clone_IsDeep(t *testing.T) {
	b := newBoard().Loaded(samplePosts(2), 10)
	p := b.Posts[0]
	b.EditDraft = &p

	c := b.Clone()
	c.Posts[0].Title = "x"
	c.EditDraft.Title = "y"

	assert.Equal(t, "t1", b.Posts[0].Title)
	assert.Equal(t, "t1", b.EditDraft.Title)
}

func TestFailureReason(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	r := failure(OpCreate, cause)

	assert.Equal(t, "Failed to create post", r.Message)
	assert.Equal(t, "Failed to create post: dial tcp: refused", r.Error())
	assert.ErrorIs(t, r, cause)

	assert.Equal(t, "Failed to update post", failure(OpUpdate, nil).Error())
}

func TestBoard_DuplicateIDs_TouchOnlyFirstMatch(t *testing.T) {
	b := newBoard().Loaded(samplePosts(3), 10)
	b = b.Created(models.Post{ID: 101, Title: "first"})
	b = b.Created(models.Post{ID: 101, Title: "second"})
	require.Len(t, b.Posts, 5)

	updated := b.Updated(models.Post{ID: 101, Title: "edited"})
	assert.Equal(t, "edited", updated.Posts[0].Title)
	assert.Equal(t, "first", updated.Posts[1].Title)

	deleted := b.Deleted(101)
	require.Len(t, deleted.Posts, 4)
	assert.Equal(t, "first", deleted.Posts[0].Title)

	p, ok := b.Find(101)
	require.True(t, ok)
	assert.Equal(t, "second", p.Title)
}

func TestBoard_Deleted_DoesNotShareBacking(t *testing.T) {
	b := newBoard().Loaded(samplePosts(3), 10)

	got := b.Deleted(1)
	got.Posts[0].Title = "x"

	assert.Equal(t, "t2", b.Posts[1].Title)
}
