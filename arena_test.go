package softfish

import (
	"bytes"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softfish/game"
	"github.com/softfish/mcmc"
)

const matedFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	conf := DefaultConfig()
	delete(conf.Weights.Material, chess.Queen)
	require.Error(t, conf.Validate())

	conf = DefaultConfig()
	conf.Selector = mcmc.Config{Workers: 0}
	require.Error(t, conf.Validate())
}

func TestMakeArenaInvalidWeights(t *testing.T) {
	conf := DefaultConfig()
	delete(conf.Weights.Material, chess.Knight)

	_, err := MakeArena(conf, &bytes.Buffer{})
	require.Error(t, err)
}

func TestMakeArenaBadFEN(t *testing.T) {
	conf := DefaultConfig()
	conf.StartFEN = "garbage"

	_, err := MakeArena(conf, &bytes.Buffer{})
	require.Error(t, err)
}

func TestPlayStopsAtMoveCap(t *testing.T) {
	// Three plies cannot end a game, so the cap is what stops it.
	conf := DefaultConfig()
	conf.Seed = 1
	conf.MaxMoves = 3

	var out bytes.Buffer
	arena, err := MakeArena(conf, &out)
	require.NoError(t, err)

	result, err := arena.Play()
	require.NoError(t, err)

	assert.Equal(t, "*", result)
	assert.Equal(t, 3, arena.State().MoveNumber())
	assert.Contains(t, out.String(), "Move 1 (White)")
	assert.Contains(t, out.String(), "move cap 3 reached")
	assert.Zero(t, arena.White().Wins+arena.White().Loss+arena.White().Draw)
}

func TestPlayDeterministicForSeed(t *testing.T) {
	play := func() string {
		conf := DefaultConfig()
		conf.Seed = 42
		conf.MaxMoves = 6

		arena, err := MakeArena(conf, &bytes.Buffer{})
		require.NoError(t, err)
		_, err = arena.Play()
		require.NoError(t, err)
		return arena.State().FEN()
	}

	assert.Equal(t, play(), play())
}

func TestPlayFromMatedPosition(t *testing.T) {
	conf := DefaultConfig()
	conf.Seed = 1
	conf.StartFEN = matedFEN

	var out bytes.Buffer
	arena, err := MakeArena(conf, &out)
	require.NoError(t, err)

	result, err := arena.Play()
	require.NoError(t, err)

	assert.Equal(t, "0-1", result)
	assert.Equal(t, 0, arena.State().MoveNumber())
	assert.Equal(t, 1, arena.Black().Wins)
	assert.Equal(t, 1, arena.White().Loss)
}

func TestAgentActNoMoves(t *testing.T) {
	conf := DefaultConfig()
	conf.Seed = 1
	arena, err := MakeArena(conf, &bytes.Buffer{})
	require.NoError(t, err)

	st, err := game.FromFEN(matedFEN)
	require.NoError(t, err)

	assert.Nil(t, arena.White().Act(st))
}
