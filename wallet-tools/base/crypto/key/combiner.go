package key

// Combiner exposes the group algebra over serialized keys. Adding or multiplying
// private keys and doing the same to their public keys yields a matching key pair:
//
//	pub(a + b) == pub(a) + pub(b)
//	pub(a * b) == b * pub(a)
type Combiner struct {
	ctx *Context
}

// NewCombiner returns a Combiner over ctx, or over DefaultContext when ctx is nil.
func NewCombiner(ctx *Context) *Combiner {
	if ctx == nil {
		ctx = DefaultContext()
	}
	return &Combiner{ctx: ctx}
}

// AddPrivateKeys returns (a + b) mod N.
func (c *Combiner) AddPrivateKeys(a, b []byte) ([]byte, error) {
	return c.ctx.ScalarTweakAdd(a, b)
}

// MulPrivateKeys returns (a * b) mod N.
func (c *Combiner) MulPrivateKeys(a, b []byte) ([]byte, error) {
	return c.ctx.ScalarTweakMul(a, b)
}

// AddPublicKeys returns the point p + q serialized in the requested form.
func (c *Combiner) AddPublicKeys(p, q []byte, compressed bool) ([]byte, error) {
	pp, err := c.ctx.PointParse(p)
	if err != nil {
		return nil, err
	}

	qp, err := c.ctx.PointParse(q)
	if err != nil {
		return nil, err
	}

	r, err := c.ctx.PointAdd(pp, qp)
	if err != nil {
		return nil, err
	}
	return c.ctx.PointSerialize(r, compressed), nil
}

// MulPublicKeyByPrivateKey returns the point k*p serialized in the requested form.
func (c *Combiner) MulPublicKeyByPrivateKey(p, k []byte, compressed bool) ([]byte, error) {
	pp, err := c.ctx.PointParse(p)
	if err != nil {
		return nil, err
	}

	r, err := c.ctx.PointTweakMul(pp, k)
	if err != nil {
		return nil, err
	}
	return c.ctx.PointSerialize(r, compressed), nil
}
