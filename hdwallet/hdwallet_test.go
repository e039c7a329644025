package hdwallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/bramble/testing/vectors"
	"github.com/blockberries/bramble/utils"
)

func TestMasterKeyFromSeed(t *testing.T) {
	seed, err := utils.HexToBytes(vectors.Bip32Hardened.SeedHex)
	require.NoError(t, err)

	secret, chain, err := MasterKeyFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, vectors.Bip32Hardened.MasterSecretHex, utils.BytesToHex(secret[:]))
	assert.Equal(t, vectors.Bip32Hardened.MasterChainHex, utils.BytesToHex(chain[:]))
}

func TestChildKey_Hardened(t *testing.T) {
	seed, err := utils.HexToBytes(vectors.Bip32Hardened.SeedHex)
	require.NoError(t, err)
	secret, chain, err := MasterKeyFromSeed(seed)
	require.NoError(t, err)

	child, _, err := ChildKey(secret, chain, 0, true)
	require.NoError(t, err)
	assert.Equal(t, vectors.Bip32Hardened.ChildM0hSecretHex, utils.BytesToHex(child[:]))
}

func TestChildKey_Unhardened(t *testing.T) {
	seed, err := utils.HexToBytes(vectors.Bip32Unhardened.SeedHex)
	require.NoError(t, err)
	secret, chain, err := MasterKeyFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, vectors.Bip32Unhardened.MasterSecretHex, utils.BytesToHex(secret[:]))

	child, _, err := ChildKey(secret, chain, 0, false)
	require.NoError(t, err)
	assert.Equal(t, vectors.Bip32Unhardened.ChildM0Secret, utils.BytesToHex(child[:]))
}

func TestChildKey_HardenedDiffersFromUnhardened(t *testing.T) {
	seed, err := utils.HexToBytes(vectors.Bip32Hardened.SeedHex)
	require.NoError(t, err)
	secret, chain, err := MasterKeyFromSeed(seed)
	require.NoError(t, err)

	hard, _, err := ChildKey(secret, chain, 5, true)
	require.NoError(t, err)
	soft, _, err := ChildKey(secret, chain, 5, false)
	require.NoError(t, err)
	assert.NotEqual(t, hard, soft)
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []PathNode
		wantErr error
	}{
		{
			"cosmos default",
			DefaultCosmosPath,
			[]PathNode{
				{44, true}, {118, true}, {0, true}, {0, false}, {0, false},
			},
			nil,
		},
		{
			"ethereum default",
			DefaultEthereumPath,
			[]PathNode{
				{44, true}, {60, true}, {0, true}, {0, false}, {0, false},
			},
			nil,
		},
		{"single node", "m/0", []PathNode{{0, false}}, nil},
		{"no leading m", "44'/118'/0'/0/0", nil, ErrInvalidPathSpec},
		{"bare m", "m", nil, ErrInvalidPathSpec},
		{"empty segment", "m//0", nil, ErrInvalidPathSpec},
		{"negative", "m/-1", nil, ErrInvalidPathSpec},
		{"too large", "m/2147483648", nil, ErrInvalidPathSpec},
		{"not a number", "m/abc", nil, ErrInvalidPathSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := ParsePath(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, nodes)
		})
	}
}

func TestDeriveSeed(t *testing.T) {
	seed, err := utils.HexToBytes(vectors.Bip32Hardened.SeedHex)
	require.NoError(t, err)

	t.Run("single hardened step", func(t *testing.T) {
		secret, err := DeriveSeed(seed, "m/0'")
		require.NoError(t, err)
		assert.Equal(t, vectors.Bip32Hardened.ChildM0hSecretHex, utils.BytesToHex(secret[:]))
	})

	t.Run("bad path", func(t *testing.T) {
		_, err := DeriveSeed(seed, "m/x")
		assert.ErrorIs(t, err, ErrInvalidPathSpec)
	})

	t.Run("full path is deterministic", func(t *testing.T) {
		a, err := DeriveSeed(seed, DefaultCosmosPath)
		require.NoError(t, err)
		b, err := DeriveSeed(seed, DefaultCosmosPath)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		c, err := DeriveSeed(seed, DefaultEthereumPath)
		require.NoError(t, err)
		assert.NotEqual(t, a, c)
	})
}
