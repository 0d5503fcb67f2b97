package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/crypto/key"
)

const (
	privA   = "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"
	privB   = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"
	pubB    = "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"
	pubBFul = "0450863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b23522cd470243453a299fa9e77237716103abc11a1df38855ed6f2ee187e9c582ba6"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs(append([]string{"--loglevel", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"base58 encode", []string{"base58", "encode", "00010203"}, []string{"1Ldp"}},
		{"base58 decode", []string{"base58", "decode", "1Ldp"}, []string{"00010203"}},
		{"checksum", []string{"checksum", "80" + privA}, []string{"507a5b8d", "80" + privA + "507a5b8d"}},
		{"checksum verify", []string{"checksum", "-v", "80" + privA + "507a5b8d"}, []string{"true"}},
		{"inspect", []string{"inspect", "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"}, []string{privA, "507a5b8d", "false"}},
		{"wif encode", []string{"wif", "encode", privA}, []string{"5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"}},
		{"wif encode compressed", []string{"wif", "encode", "-z", "-k", privA}, []string{"KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617"}},
		{"wif encode litecoin", []string{"--network", "ltc", "wif", "encode", privA}, []string{"6uDNfQ1fknCphurZuj12xcY51qJj3T21Pk2iivwjAxAYHHxwEEr"}},
		{"wif decode", []string{"wif", "decode", "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617"}, []string{privA, "true"}},
		{"pubkey", []string{"pubkey", privB}, []string{pubB, pubBFul}},
		{"pubkey reserialize", []string{"pubkey", "-p", pubBFul}, []string{pubB}},
		{"address", []string{"address", pubB}, []string{"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs"}},
		{"address prefix", []string{"address", "-p", "30", pubB}, []string{"LhavsnvcPEguCjzzuivpTFvYZ5vPWWHpbx"}},
		{"address dogecoin", []string{"-n", "DOGE", "address", pubB}, []string{"DTW59qZRbzM8UwVSUAw5j12PE1HQgSDSXB"}},
		{"privadd", []string{"combine", "privadd", privA, privB}, []string{"250a471ef0f82169caa027f6527e95dad3fbbbb8c43c733c1e735183a3a4c142", "18o9PoVmtBsVwmz2UkF1a43nVMdPvgQ9Zd"}},
		{"privmul", []string{"combine", "privmul", privA, "0000000000000000000000000000000000000000000000000000000000000001"}, []string{privA}},
		{"pubadd", []string{"combine", "pubadd", "-z",
			"02d0de0aaeaefad02b8bdc8a01a1b8b11c696bd3d66a2c5f10780d95b7df42645c", pubB},
			[]string{"0273f3e54862ad1f24b85c5868a30e3770992227a9acac6f43ccb3c519fd37b932", "15mjyWHQ8KrXhuFuDWKsmssfuiGeAQdp1v"}},
		{"pubmul", []string{"combine", "pubmul", pubB, "0000000000000000000000000000000000000000000000000000000000000001"}, []string{pubBFul}},
		{"pair", []string{"pair", privA, "5J1F7GHadZG3sCCKHCwg8Jvys9xUbFsjLnGec4H125Ny1V9nR6V"}, []string{"a+b", "a*b", "18o9PoVmtBsVwmz2UkF1a43nVMdPvgQ9Zd"}},
		{"brain", []string{"brain", "-P", "correct horse battery staple"}, []string{"c4bbcb1fbec99d65bf59d85c8cb62ee2db963f0fe106f483d9afa73bd4e39a8a", "1JwSSubhmg6iPtRjtyqhUYYH7bZg3Lfy1T"}},
		{"burn", []string{"burn", "1BurnAddress"}, []string{"1BurnAddressxxxxxxxxxxxxxxxxuCTWRu"}},
		{"hash", []string{"hash", "abc"}, []string{"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"}},
		{"hash upper", []string{"-u", "hash", "abc"}, []string{"BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"}},
		{"networks", []string{"networks"}, []string{"BTC ", "LTC ", "ZEC "}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := execute(t, test.args...)
			require.NoError(t, err)
			for _, want := range test.want {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	out, err := execute(t, "wif", "decode", "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTj")
	require.ErrorIs(t, err, crypto.ErrChecksumMismatch)
	require.Contains(t, out, privA)
	require.Contains(t, out, "false")

	_, err = execute(t, "base58", "decode", "0OIl")
	require.ErrorIs(t, err, crypto.ErrInvalidBase58Character)

	_, err = execute(t, "checksum", "-v", "80"+privA+"507a5b8e")
	require.ErrorIs(t, err, crypto.ErrChecksumMismatch)

	_, err = execute(t, "pubkey", "0000000000000000000000000000000000000000000000000000000000000000")
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)

	_, err = execute(t, "burn", "1Test")
	require.ErrorIs(t, err, crypto.ErrMalformedPayload)

	_, err = execute(t, "--network", "nope", "networks")
	require.Error(t, err)

	_, err = execute(t, "hash", "-a", "md5", "abc")
	require.Error(t, err)

	_, err = execute(t, "address", "04"+strings.Repeat("00", 64))
	require.Error(t, err)

	_, err = execute(t, "pubkey", "-p", pubB, "-p", "02"+strings.Repeat("00", 32))
	require.ErrorIs(t, err, key.ErrInvalidPublicKey)
	require.ErrorContains(t, err, "index 1")
}

func TestBatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keys.txt")
	data := "# keys\n" + privA + "\n\n5J1F7GHadZG3sCCKHCwg8Jvys9xUbFsjLnGec4H125Ny1V9nR6V\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))

	out, err := execute(t, "batch", "-f", file, "-w", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, privA+"\tKwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617\t1GAehh7TsJAHuUAeKZcXf5CnwuGuGgyX2S\t1LoVGDgRs9hTfTNJNuXKSpywcbdvwRXpmK", lines[0])
	require.True(t, strings.HasPrefix(lines[1], privB+"\t"))

	require.NoError(t, os.WriteFile(file, []byte(privA+"\nnot-a-key\n"), 0644))
	_, err = execute(t, "batch", "-f", file)
	require.ErrorContains(t, err, "line 2")
}

func TestConfigFile(t *testing.T) {
	defer viper.Reset()

	file := filepath.Join(t.TempDir(), "keytool.yaml")
	data := "network: cfgcoin\nuppercase: true\nnetworks:\n  CFGCOIN:\n    address: \"30\"\n    wif: \"b0\"\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))

	out, err := execute(t, "--config", file, "wif", "encode", privA)
	require.NoError(t, err)
	require.Contains(t, out, "6uDNfQ1fknCphurZuj12xcY51qJj3T21Pk2iivwjAxAYHHxwEEr")

	out, err = execute(t, "--config", file, "--network", "BTC", "hash", "abc")
	require.NoError(t, err)
	require.Contains(t, out, "BA7816BF")
}
