package keyinfo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/crypto/key"
	"keykit/wallet-tools/base/network"
)

const (
	privA = "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"
	privB = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"
	one   = "0000000000000000000000000000000000000000000000000000000000000001"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := crypto.HexToBytes(s)
	require.NoError(t, err)
	return b
}

func btcReporter(t *testing.T, upper bool) *Reporter {
	params, ok := network.Find("BTC")
	require.True(t, ok)
	return NewReporter(key.NewContext(), params, upper)
}

func TestDescribe(t *testing.T) {
	info, err := btcReporter(t, false).Describe(mustHex(t, privA))
	require.NoError(t, err)

	require.Equal(t, &Info{
		Network:             "BTC",
		PrivateKey:          privA,
		WIF:                 "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
		CompressedWIF:       "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617",
		PublicKey:           "04d0de0aaeaefad02b8bdc8a01a1b8b11c696bd3d66a2c5f10780d95b7df42645cd85228a6fb29940e858e7e55842ae2bd115d1ed7cc0e82d934e929c97648cb0a",
		CompressedPublicKey: "02d0de0aaeaefad02b8bdc8a01a1b8b11c696bd3d66a2c5f10780d95b7df42645c",
		Address:             "1GAehh7TsJAHuUAeKZcXf5CnwuGuGgyX2S",
		CompressedAddress:   "1LoVGDgRs9hTfTNJNuXKSpywcbdvwRXpmK",
	}, info)
	require.Len(t, info.Fields(), 8)
}

func TestDescribeUpper(t *testing.T) {
	info, err := btcReporter(t, true).Describe(mustHex(t, one))
	require.NoError(t, err)
	require.Equal(t, strings.ToUpper(one), info.PrivateKey)
	require.Equal(t, "0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", info.CompressedPublicKey)
	require.Equal(t, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm", info.Address)
	require.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", info.CompressedAddress)
	require.Equal(t, "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn", info.CompressedWIF)
}

func TestDescribeInvalid(t *testing.T) {
	r := btcReporter(t, false)

	_, err := r.Describe(make([]byte, 32))
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)

	_, err = r.Describe(mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"))
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
}

func TestDescribePair(t *testing.T) {
	pi, err := btcReporter(t, false).DescribePair(mustHex(t, privA), mustHex(t, privB))
	require.NoError(t, err)

	require.Equal(t, "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", pi.B.Address)
	require.Equal(t, "250a471ef0f82169caa027f6527e95dad3fbbbb8c43c733c1e735183a3a4c142", pi.Sum.PrivateKey)
	require.Equal(t, "18o9PoVmtBsVwmz2UkF1a43nVMdPvgQ9Zd", pi.Sum.Address)
	require.Equal(t, "15mjyWHQ8KrXhuFuDWKsmssfuiGeAQdp1v", pi.Sum.CompressedAddress)
	require.NotNil(t, pi.Product)
	require.True(t, pi.SumMatches)
	require.True(t, pi.ProductMatches)
}

func TestDescribePairZeroSum(t *testing.T) {
	// n - 1 and 1 sum to zero.
	minusOne := mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	_, err := btcReporter(t, false).DescribePair(minusOne, mustHex(t, one))
	require.ErrorIs(t, err, key.ErrResultIsZero)
}

func TestDescribeAll(t *testing.T) {
	r := btcReporter(t, false)

	keys := make([][]byte, 0, 64)
	for i := 0; i < 32; i++ {
		keys = append(keys, mustHex(t, privA), mustHex(t, one))
	}

	infos, err := r.DescribeAll(context.Background(), keys, 4)
	require.NoError(t, err)
	require.Len(t, infos, len(keys))
	for i, info := range infos {
		if i%2 == 0 {
			require.Equal(t, "1GAehh7TsJAHuUAeKZcXf5CnwuGuGgyX2S", info.Address)
		} else {
			require.Equal(t, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm", info.Address)
		}
	}

	keys[7] = make([]byte, 32)
	_, err = r.DescribeAll(context.Background(), keys, 0)
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
	require.ErrorContains(t, err, "key #7")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.DescribeAll(ctx, keys[:1], 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   error
	}{
		{privA, privA, nil},
		{strings.ToUpper(privA), privA, nil},
		{"5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ", privA, nil},
		{"KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617", privA, nil},
		{"5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTj", "", crypto.ErrChecksumMismatch},
		{"0000000000000000000000000000000000000000000000000000000000000000", "", crypto.ErrInvalidPrivateKey},
		{"0OIl", "", crypto.ErrInvalidBase58Character},
	}

	for _, test := range tests {
		b, err := ParseKey(test.input)
		if test.err != nil {
			require.ErrorIs(t, err, test.err, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		require.Equal(t, test.want, crypto.BytesToHex(b, false))
	}
}
