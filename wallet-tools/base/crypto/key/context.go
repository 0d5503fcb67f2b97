package key

import (
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"keykit/wallet-tools/base/crypto"
)

var (
	// ErrInvalidPrivateKey is returned for scalars that are not 32 bytes in [1, N-1].
	ErrInvalidPrivateKey = crypto.ErrInvalidPrivateKey
	// ErrInvalidPublicKey is returned for bytes that do not decode to a curve point.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrResultIsZero is returned when a scalar combination reduces to zero.
	ErrResultIsZero = errors.New("result is zero")
	// ErrPointAtInfinity is returned when a point combination yields the identity.
	ErrPointAtInfinity = errors.New("point at infinity")
)

// Context is the secp256k1 group handle used by Deriver and Combiner.
// It only carries curve parameters and may be shared between goroutines.
type Context struct {
	curve *btcec.KoblitzCurve
	order *big.Int
}

func NewContext() *Context {
	curve := btcec.S256()
	return &Context{
		curve: curve,
		order: new(big.Int).Set(curve.Params().N),
	}
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// DefaultContext returns the process wide context, built on first use.
func DefaultContext() *Context {
	defaultOnce.Do(func() {
		defaultCtx = NewContext()
	})
	return defaultCtx
}

// Order returns a copy of the group order N.
func (c *Context) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

// ScalarBaseMultiply returns k*G.
func (c *Context) ScalarBaseMultiply(k []byte) (*btcec.PublicKey, error) {
	s, err := crypto.ParsePrivateKey(k)
	if err != nil {
		return nil, err
	}

	var p btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(s, &p)
	return toPublicKey(&p)
}

// PointSerialize encodes p in 33-byte compressed or 65-byte uncompressed form.
func (c *Context) PointSerialize(p *btcec.PublicKey, compressed bool) []byte {
	if compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

// PointParse decodes a compressed or uncompressed point and checks it is on the curve.
func (c *Context) PointParse(b []byte) (*btcec.PublicKey, error) {
	p, err := btcec.ParsePubKey(b)
	if err != nil {
		var kerr secp256k1.Error
		if errors.As(err, &kerr) {
			return nil, errors.Wrapf(ErrInvalidPublicKey, "%s: %s", kerr.Err, kerr.Description)
		}
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}

	if !c.curve.IsOnCurve(p.X(), p.Y()) {
		return nil, errors.Wrap(ErrInvalidPublicKey, "point not on curve")
	}
	return p, nil
}

// ScalarTweakAdd returns (k + tweak) mod N.
func (c *Context) ScalarTweakAdd(k, tweak []byte) ([]byte, error) {
	a, b, err := parseScalars(k, tweak)
	if err != nil {
		return nil, err
	}

	a.Add(b)
	return scalarBytes(a)
}

// ScalarTweakMul returns (k * tweak) mod N.
func (c *Context) ScalarTweakMul(k, tweak []byte) ([]byte, error) {
	a, b, err := parseScalars(k, tweak)
	if err != nil {
		return nil, err
	}

	a.Mul(b)
	return scalarBytes(a)
}

// PointAdd returns p + q.
func (c *Context) PointAdd(p, q *btcec.PublicKey) (*btcec.PublicKey, error) {
	var pj, qj, r btcec.JacobianPoint
	p.AsJacobian(&pj)
	q.AsJacobian(&qj)
	btcec.AddNonConst(&pj, &qj, &r)
	return toPublicKey(&r)
}

// PointTweakAdd returns p + tweak*G.
func (c *Context) PointTweakAdd(p *btcec.PublicKey, tweak []byte) (*btcec.PublicKey, error) {
	t, err := c.ScalarBaseMultiply(tweak)
	if err != nil {
		return nil, err
	}
	return c.PointAdd(p, t)
}

// PointTweakMul returns k*p.
func (c *Context) PointTweakMul(p *btcec.PublicKey, k []byte) (*btcec.PublicKey, error) {
	s, err := crypto.ParsePrivateKey(k)
	if err != nil {
		return nil, err
	}

	var pj, r btcec.JacobianPoint
	p.AsJacobian(&pj)
	btcec.ScalarMultNonConst(s, &pj, &r)
	return toPublicKey(&r)
}

func parseScalars(k, tweak []byte) (*btcec.ModNScalar, *btcec.ModNScalar, error) {
	a, err := crypto.ParsePrivateKey(k)
	if err != nil {
		return nil, nil, errors.Wrap(err, "first key")
	}

	b, err := crypto.ParsePrivateKey(tweak)
	if err != nil {
		return nil, nil, errors.Wrap(err, "second key")
	}
	return a, b, nil
}

func scalarBytes(s *btcec.ModNScalar) ([]byte, error) {
	if s.IsZero() {
		return nil, ErrResultIsZero
	}

	b := s.Bytes()
	return b[:], nil
}

func toPublicKey(p *btcec.JacobianPoint) (*btcec.PublicKey, error) {
	if (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero() {
		return nil, ErrPointAtInfinity
	}

	p.ToAffine()
	return btcec.NewPublicKey(&p.X, &p.Y), nil
}
