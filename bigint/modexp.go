package bigint

// PreTable precomputes the powers-of-two ladder Base^(2^i) mod Modulus so
// that repeated exponentiations against the same base and modulus can
// share work, the decimal-BigInt analogue of the teacher's Montgomery
// precompute table.
type PreTable struct {
	Base    BigInt
	Modulus BigInt
	powers  []BigInt // powers[i] == Base^(2^i) mod Modulus
}

// PreComputeTable builds a PreTable good for exponents up to bitLen bits.
// It fails with ErrInvalidInput if modulus is not positive or bitLen is
// not positive.
func PreComputeTable(base, modulus BigInt, bitLen int) (*PreTable, error) {
	if modulus.Sign() <= 0 {
		return nil, wrapErr(ErrInvalidInput, "modexp: modulus must be positive")
	}
	if bitLen <= 0 {
		return nil, wrapErr(ErrInvalidInput, "modexp: bitLen must be positive")
	}

	cur, err := base.Mod(modulus)
	if err != nil {
		return nil, err
	}
	if cur.IsNegative() {
		cur = cur.Add(modulus)
	}

	powers := make([]BigInt, bitLen)
	for i := 0; i < bitLen; i++ {
		powers[i] = cur
		cur = cur.Mul(cur)
		cur, err = cur.Mod(modulus)
		if err != nil {
			return nil, err
		}
	}
	return &PreTable{Base: base, Modulus: modulus, powers: powers}, nil
}

// Exp returns Base^exp mod Modulus using the precomputed ladder. Exp fails
// with ErrInvalidInput if exp is negative or exceeds the table's capacity.
func (t *PreTable) Exp(exp BigInt) (BigInt, error) {
	if exp.IsNegative() {
		return BigInt{}, wrapErr(ErrInvalidInput, "modexp: negative exponent")
	}
	words := toBinaryWords(exp)
	result, err := One().Mod(t.Modulus)
	if err != nil {
		return BigInt{}, err
	}
	for i, w := range words {
		for j := 0; j < 64; j++ {
			if w&(1<<uint(j)) == 0 {
				continue
			}
			bitIdx := i*64 + j
			if bitIdx >= len(t.powers) {
				return BigInt{}, wrapErr(ErrInvalidInput, "modexp: exponent exceeds table capacity")
			}
			result = result.Mul(t.powers[bitIdx])
			result, err = result.Mod(t.Modulus)
			if err != nil {
				return BigInt{}, err
			}
		}
	}
	return result, nil
}

// expResult pairs an Exp outcome with any error, the payload sent over the
// channels in DoubleExp and FourfoldExp.
type expResult struct {
	val BigInt
	err error
}

func (t *PreTable) expAsync(exp BigInt, c chan<- expResult) {
	v, err := t.Exp(exp)
	c <- expResult{val: v, err: err}
}

// DoubleExp computes Base^e1 mod Modulus and Base^e2 mod Modulus,
// factoring the bits e1 and e2 have in common so that the shared portion
// is only raised once. The two remaining exponentiations run concurrently,
// the decimal-BigInt analogue of the teacher's channel-based multi-exp.
func (t *PreTable) DoubleExp(e1, e2 BigInt) (z1, z2 BigInt, err error) {
	r1, r2, common := CommonWords(e1, e2)

	cCommon := make(chan expResult, 1)
	c1 := make(chan expResult, 1)
	c2 := make(chan expResult, 1)
	go t.expAsync(common, cCommon)
	go t.expAsync(r1, c1)
	go t.expAsync(r2, c2)

	rc, r1r, r2r := <-cCommon, <-c1, <-c2
	if rc.err != nil {
		return BigInt{}, BigInt{}, rc.err
	}
	if r1r.err != nil {
		return BigInt{}, BigInt{}, r1r.err
	}
	if r2r.err != nil {
		return BigInt{}, BigInt{}, r2r.err
	}

	z1, err = combineMod(t.Modulus, rc.val, r1r.val)
	if err != nil {
		return BigInt{}, BigInt{}, err
	}
	z2, err = combineMod(t.Modulus, rc.val, r2r.val)
	if err != nil {
		return BigInt{}, BigInt{}, err
	}
	return z1, z2, nil
}

// FourfoldExp computes Base^e[i] mod Modulus for the four exponents in e,
// factoring out the bits common to all four as well as the bits shared by
// each pair, the decimal-BigInt analogue of the teacher's
// fourfoldExpNNMontgomery combinatorial sharing (one level shallower: this
// adaptation shares the all-four and pairwise terms but not the
// three-way intermediate terms the teacher also factors out).
func (t *PreTable) FourfoldExp(e [4]BigInt) (z [4]BigInt, err error) {
	r0, r1, r2, r3, full := FourfoldCommonWords(e[0], e[1], e[2], e[3])

	rest := [4]BigInt{r0, r1, r2, r3}
	type pair struct{ i, j int }
	pairs := []pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	pairCommon := make([]BigInt, len(pairs))
	for idx, p := range pairs {
		ri, rj, c := CommonWords(rest[p.i], rest[p.j])
		rest[p.i], rest[p.j] = ri, rj
		pairCommon[idx] = c
	}

	terms := make([]BigInt, 0, 1+len(pairs)+4)
	terms = append(terms, full)
	terms = append(terms, pairCommon...)
	terms = append(terms, rest[0], rest[1], rest[2], rest[3])

	results := make([]expResult, len(terms))
	chans := make([]chan expResult, len(terms))
	for i, term := range terms {
		chans[i] = make(chan expResult, 1)
		go t.expAsync(term, chans[i])
	}
	for i := range chans {
		results[i] = <-chans[i]
		if results[i].err != nil {
			return [4]BigInt{}, results[i].err
		}
	}

	fullExp := results[0].val
	pairExp := results[1 : 1+len(pairs)]
	restExp := results[1+len(pairs):]

	pairIdxFor := func(a, b int) int {
		for idx, p := range pairs {
			if (p.i == a && p.j == b) || (p.i == b && p.j == a) {
				return idx
			}
		}
		panic("modexp: missing pair")
	}

	for i := 0; i < 4; i++ {
		acc := fullExp
		acc, err = combineMod(t.Modulus, acc, restExp[i].val)
		if err != nil {
			return [4]BigInt{}, err
		}
		for j := 0; j < 4; j++ {
			if j == i {
				continue
			}
			acc, err = combineMod(t.Modulus, acc, pairExp[pairIdxFor(i, j)].val)
			if err != nil {
				return [4]BigInt{}, err
			}
		}
		z[i] = acc
	}
	return z, nil
}

func combineMod(modulus, x, y BigInt) (BigInt, error) {
	return x.Mul(y).Mod(modulus)
}
