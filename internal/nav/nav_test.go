package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_StartsAtRoot(t *testing.T) {
	c := NewController(Start)

	assert.Equal(t, Start, c.Current())
	assert.Equal(t, 1, c.Depth())
}

func TestRequest_Pushes(t *testing.T) {
	c := NewController(Start)

	c.Request(Login)
	c.Request(Register)

	assert.Equal(t, Register, c.Current())
	assert.Equal(t, 3, c.Depth())
}

func TestPopBack(t *testing.T) {
	c := NewController(Start)
	c.Request(Login)

	require.True(t, c.PopBack())
	assert.Equal(t, Start, c.Current())

	assert.False(t, c.PopBack(), "root frame must not pop")
	assert.Equal(t, Start, c.Current())
}

func TestNavigateUp(t *testing.T) {
	c := NewController(Start)
	c.Request(Home)
	c.Request(Store)

	require.True(t, c.NavigateUp())
	assert.Equal(t, Home, c.Current())
}

func TestRequest_PopTo(t *testing.T) {
	c := NewController(Start)
	c.Request(Login)
	c.Request(Register)

	// back off the auth screens, keep start under home
	c.Request(Home, PopTo(Start))

	assert.Equal(t, Home, c.Current())
	assert.Equal(t, 2, c.Depth())

	require.True(t, c.PopBack())
	assert.Equal(t, Start, c.Current())
}

func TestRequest_PopToInclusive(t *testing.T) {
	c := NewController(Start)
	c.Request(Login)

	c.Request(Home, PopTo(Start), Inclusive())

	assert.Equal(t, Home, c.Current())
	assert.Equal(t, 1, c.Depth(), "start was popped too, home is the new root")
}

func TestRequest_PopToMissingDestination_LeavesStack(t *testing.T) {
	c := NewController(Start)
	c.Request(Login)

	c.Request(Home, PopTo(Events))

	assert.Equal(t, Home, c.Current())
	assert.Equal(t, 3, c.Depth())
}

func TestRequest_SingleTop(t *testing.T) {
	c := NewController(Start)

	c.Request(Store, SingleTop())
	c.Request(Store, SingleTop())
	c.Request(Store, SingleTop())

	assert.Equal(t, Store, c.Current())
	assert.Equal(t, 2, c.Depth(), "repeated single-top requests do not stack")
}

func TestRequest_InclusiveNeverRemovesLastFrame(t *testing.T) {
	c := NewController(Start)

	c.Request(Home, PopTo(Start), Inclusive())
	c.Request(Store, PopTo(Home), Inclusive())

	assert.Equal(t, Store, c.Current())
	assert.Equal(t, 1, c.Depth())
	assert.False(t, c.PopBack())
}
