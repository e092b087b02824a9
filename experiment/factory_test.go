package experiment

import (
	"testing"

	"github.com/katalvlaran/gossipsim/protocol"
	"github.com/katalvlaran/gossipsim/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProtocol_Names(t *testing.T) {
	tests := []struct {
		spec ProtocolSpec
		want string
	}{
		{ProtocolSpec{ID: "Flooding"}, "Flooding"},
		{ProtocolSpec{ID: "0", Fanout: 9}, "Flooding"},
		{ProtocolSpec{ID: "FFG", Fanout: 4}, "FFG_4"},
		{ProtocolSpec{ID: "1", Fanout: 2}, "FFG_2"},
		{ProtocolSpec{ID: "GMBC", Fanout: 4}, "GMBG_4"},
		{ProtocolSpec{ID: "2", Fanout: 3}, "GMBG_3"},
	}
	for _, tc := range tests {
		t.Run(tc.want+"/"+tc.spec.ID, func(t *testing.T) {
			e, err := NewProtocol(tc.spec, 1, 1, rng.FromSeed(1))
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.String())
			assert.Equal(t, protocol.StateIdle, e.State())

			name, err := ProtocolName(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, name)
		})
	}
}

func TestNewStrategy_GMBCSettings(t *testing.T) {
	s, err := NewStrategy(ProtocolSpec{ID: "GMBC", Fanout: 2}, 0.4, 3, rng.FromSeed(1))
	require.NoError(t, err)
	g, ok := s.(*protocol.GMBC)
	require.True(t, ok)
	assert.Equal(t, 2, g.Fanout())
	assert.Equal(t, 0.4, g.UpdateRate())
}

func TestNewStrategy_Errors(t *testing.T) {
	src := rng.FromSeed(1)

	_, err := NewStrategy(ProtocolSpec{ID: "Push"}, 1, 1, src)
	require.ErrorIs(t, err, ErrUnknownProtocol)

	_, err = NewStrategy(ProtocolSpec{ID: "FFG", Fanout: -1}, 1, 1, src)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewStrategy(ProtocolSpec{ID: "GMBC", Fanout: 1}, 1.5, 1, src)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewStrategy(ProtocolSpec{ID: "GMBC", Fanout: 1}, 1, -1, src)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ProtocolName(ProtocolSpec{ID: "3"})
	require.ErrorIs(t, err, ErrUnknownProtocol)
}
