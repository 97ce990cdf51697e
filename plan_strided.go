package mixedfft

// ForwardStrided computes the forward DFT on strided input/output data.
//
// The stride parameter specifies the distance between consecutive elements.
// For example, stride=numCols transforms a matrix column in row-major storage.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []Complex[T], stride int) error {
	return p.transformStrided(dst, src, stride, false)
}

// InverseStrided computes the unnormalized inverse DFT on strided
// input/output data.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) InverseStrided(dst, src []Complex[T], stride int) error {
	return p.transformStrided(dst, src, stride, true)
}

func (p *Plan[T]) transformStrided(dst, src []Complex[T], stride int, inverse bool) error {
	err := p.validateStridedSlices(dst, src, stride)
	if err != nil {
		return err
	}

	n := p.t.Len()

	if stride == 1 {
		if inverse {
			return p.Inverse(dst[:n], src[:n])
		}

		return p.Forward(dst[:n], src[:n])
	}

	in := p.getScratch()
	out := p.getScratch()

	defer p.putScratch(in)
	defer p.putScratch(out)

	gathered := (*in)[:n]
	for i := 0; i < n; i++ {
		gathered[i] = src[i*stride]
	}

	transformed := (*out)[:n]
	if inverse {
		p.t.Inverse(transformed, gathered)
	} else {
		p.t.Forward(transformed, gathered)
	}

	for i := 0; i < n; i++ {
		dst[i*stride] = transformed[i]
	}

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []Complex[T], stride int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	n := p.t.Len()

	if stride == 1 {
		if len(dst) < n || len(src) < n {
			return ErrLengthMismatch
		}

		return nil
	}

	maxInt := int(^uint(0) >> 1)

	maxIndex := n - 1
	if maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return ErrLengthMismatch
	}

	return nil
}
