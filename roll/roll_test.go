package roll

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicelang/dice/roll/parse"
)

func TestRoll(t *testing.T) {
	v, err := Roll(context.Background(), "3d12 - 8 + 10d8")
	require.NoError(t, err)

	// 3*1 - 8 + 10*1 .. 3*12 - 8 + 10*8
	assert.GreaterOrEqual(t, v, 5)
	assert.LessOrEqual(t, v, 108)
}

func TestRollParseError(t *testing.T) {
	_, err := Roll(context.Background(), "d6 +")
	assert.ErrorIs(t, err, parse.ErrMissingOperand)

	_, err = Roll(context.Background(), "")
	assert.ErrorIs(t, err, parse.ErrInvalidRollDefinition)
}

func TestRollFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "roll.dice")

	err := os.WriteFile(name, []byte("3d6 + 4\n"), 0o644)
	require.NoError(t, err)

	v, err := RollFile(context.Background(), name)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, v, 7)
	assert.LessOrEqual(t, v, 22)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{
		"d",
		"3d",
		"   d12",
		"3d12 - 8 + 10d8",
	} {
		x, err := Parse(ctx, in)
		require.NoError(t, err, "parse %q", in)

		s, err := Format(ctx, x)
		require.NoError(t, err)

		y, err := Parse(ctx, s)
		require.NoError(t, err, "reparse %q", s)

		s2, err := Format(ctx, y)
		require.NoError(t, err)

		assert.Equal(t, s, s2, "canonical form of %q", in)
	}
}
