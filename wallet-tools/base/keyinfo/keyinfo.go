package keyinfo

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/crypto/key"
	"keykit/wallet-tools/base/network"
)

// Info is everything derivable from one private key on one network.
type Info struct {
	Network             string
	PrivateKey          string
	WIF                 string
	CompressedWIF       string
	PublicKey           string
	CompressedPublicKey string
	Address             string
	CompressedAddress   string
}

// Fields returns the report as ordered name/value pairs.
func (i *Info) Fields() [][2]string {
	return [][2]string{
		{"network", i.Network},
		{"private key", i.PrivateKey},
		{"wif", i.WIF},
		{"compressed wif", i.CompressedWIF},
		{"public key", i.PublicKey},
		{"compressed public key", i.CompressedPublicKey},
		{"address", i.Address},
		{"compressed address", i.CompressedAddress},
	}
}

// PairInfo reports two keys, their sum and product, and whether the public
// side of the algebra agrees with the private side.
type PairInfo struct {
	A, B         *Info
	Sum, Product *Info

	// SumMatches is pub(a+b) == pub(a)+pub(b).
	SumMatches bool
	// ProductMatches is pub(a*b) == b*pub(a).
	ProductMatches bool
}

// Reporter builds key reports for one network.
type Reporter struct {
	deriver  *key.Deriver
	combiner *key.Combiner
	params   *network.Params
	upper    bool
}

// NewReporter returns a Reporter. A nil ctx uses key.DefaultContext.
func NewReporter(ctx *key.Context, params *network.Params, upper bool) *Reporter {
	return &Reporter{
		deriver:  key.NewDeriver(ctx),
		combiner: key.NewCombiner(ctx),
		params:   params,
		upper:    upper,
	}
}

// Describe derives the full report of privKey.
func (r *Reporter) Describe(privKey []byte) (*Info, error) {
	wif, err := crypto.EncodeWIF(privKey, r.params.WIFVersion(), false)
	if err != nil {
		return nil, err
	}

	cwif, err := crypto.EncodeWIF(privKey, r.params.WIFVersion(), true)
	if err != nil {
		return nil, err
	}

	pub, err := r.deriver.PublicKeyOf(privKey, false)
	if err != nil {
		return nil, err
	}

	cpub, err := r.deriver.PublicKeyOf(privKey, true)
	if err != nil {
		return nil, err
	}

	ap := r.params.AddrProvider()
	return &Info{
		Network:             r.params.Class,
		PrivateKey:          crypto.BytesToHex(privKey, r.upper),
		WIF:                 wif,
		CompressedWIF:       cwif,
		PublicKey:           crypto.BytesToHex(pub, r.upper),
		CompressedPublicKey: crypto.BytesToHex(cpub, r.upper),
		Address:             ap.AddressString(pub),
		CompressedAddress:   ap.AddressString(cpub),
	}, nil
}

// DescribePair reports a, b, a+b and a*b.
func (r *Reporter) DescribePair(a, b []byte) (*PairInfo, error) {
	var (
		pi  PairInfo
		err error
	)

	if pi.A, err = r.Describe(a); err != nil {
		return nil, errors.Wrap(err, "key a")
	}

	if pi.B, err = r.Describe(b); err != nil {
		return nil, errors.Wrap(err, "key b")
	}

	sum, err := r.combiner.AddPrivateKeys(a, b)
	if err != nil {
		return nil, errors.Wrap(err, "a+b")
	}

	product, err := r.combiner.MulPrivateKeys(a, b)
	if err != nil {
		return nil, errors.Wrap(err, "a*b")
	}

	if pi.Sum, err = r.Describe(sum); err != nil {
		return nil, err
	}

	if pi.Product, err = r.Describe(product); err != nil {
		return nil, err
	}

	pubA, err := r.deriver.PublicKeyOf(a, true)
	if err != nil {
		return nil, errors.Wrap(err, "key a")
	}

	pubB, err := r.deriver.PublicKeyOf(b, true)
	if err != nil {
		return nil, errors.Wrap(err, "key b")
	}

	pubSum, err := r.deriver.PublicKeyOf(sum, true)
	if err != nil {
		return nil, errors.Wrap(err, "a+b")
	}

	pubProduct, err := r.deriver.PublicKeyOf(product, true)
	if err != nil {
		return nil, errors.Wrap(err, "a*b")
	}

	combinedSum, err := r.combiner.AddPublicKeys(pubA, pubB, true)
	if err != nil {
		return nil, errors.Wrap(err, "A+B")
	}

	combinedProduct, err := r.combiner.MulPublicKeyByPrivateKey(pubA, b, true)
	if err != nil {
		return nil, errors.Wrap(err, "b*A")
	}

	pi.SumMatches = bytes.Equal(pubSum, combinedSum)
	pi.ProductMatches = bytes.Equal(pubProduct, combinedProduct)
	return &pi, nil
}

// DescribeAll reports every key using at most workers goroutines. Results
// keep the input order. The first failure cancels the remaining work.
func (r *Reporter) DescribeAll(ctx context.Context, privKeys [][]byte, workers int) ([]*Info, error) {
	if workers <= 0 {
		workers = 1
	}

	infos := make([]*Info, len(privKeys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range privKeys {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info, err := r.Describe(privKeys[i])
			if err != nil {
				return errors.Wrapf(err, "key #%d", i)
			}
			infos[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// ParseKey accepts a private key as 64 hex characters or as WIF text.
func ParseKey(s string) ([]byte, error) {
	if len(s) == crypto.PrivateKeyLen*2 {
		if b, err := crypto.HexToBytes(s); err == nil {
			if err := crypto.ValidatePrivateKey(b); err != nil {
				return nil, err
			}
			return b, nil
		}
	}

	k, err := crypto.DecodeWIF(s)
	if err != nil {
		return nil, err
	}
	return k.PrivateKey(), nil
}
