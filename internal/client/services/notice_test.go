package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotice_ExpiresAfterTTL(t *testing.T) {
	n := NewNotice(30 * time.Millisecond)

	n.Show("Post created successfully!")
	assert.Equal(t, "Post created successfully!", n.Text())

	require.Eventually(t, func() bool { return n.Text() == "" }, time.Second, 5*time.Millisecond)
}

func TestNotice_StaleTimerDoesNotClearNewerMessage(t *testing.T) {
	n := NewNotice(80 * time.Millisecond)

	n.Show("first")
	time.Sleep(50 * time.Millisecond)
	n.Show("second")

	// the first message's deadline passes here
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "second", n.Text())

	require.Eventually(t, func() bool { return n.Text() == "" }, time.Second, 5*time.Millisecond)
}

func TestNotice_ExpireIgnoresOldGeneration(t *testing.T) {
	n := NewNotice(time.Hour)
	n.Show("first")
	old := n.gen
	n.Show("second")

	n.expire(old)
	assert.Equal(t, "second", n.Text())

	n.expire(n.gen)
	assert.Empty(t, n.Text())
}

func TestNotice_Clear(t *testing.T) {
	n := NewNotice(time.Hour)
	n.Show("x")
	n.Clear()
	assert.Empty(t, n.Text())
	assert.Nil(t, n.timer)
}

func TestNotice_NoTTLKeepsMessage(t *testing.T) {
	n := NewNotice(0)
	n.Show("sticky")
	assert.Nil(t, n.timer)
	assert.Equal(t, "sticky", n.Text())
}
