package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jws412/Facade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Resolution() (int, int)               { return 4, 2 }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Framebuffer)             {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("test-b", "Bravo", func() (Game, error) { return &stubGame{id: "test-b"}, nil })
	Register("test-a", "Alpha", func() (Game, error) { return &stubGame{id: "test-a"}, nil })

	assert.True(t, Exists("test-a"))
	assert.False(t, Exists("test-z"))

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "test-a" || info.ID == "test-b" {
			got = append(got, info)
		}
	}
	assert.Equal(t, []GameInfo{{ID: "test-a", Title: "Alpha"}, {ID: "test-b", Title: "Bravo"}}, got)

	g, err := Create("test-b")
	require.NoError(t, err)
	assert.Equal(t, "test-b", g.ID())

	_, err = Create("test-z")
	assert.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", func() (Game, error) { return &stubGame{}, nil })
	assert.Panics(t, func() {
		Register("test-dup", "Dup", func() (Game, error) { return &stubGame{}, nil })
	})
}

func TestCreateWrapsFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-err", "Err", func() (Game, error) { return nil, boom })

	_, err := Create("test-err")
	assert.ErrorIs(t, err, boom)
}
