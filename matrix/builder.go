package matrix

// RGB to luminance weights from Charles A. Poynton's colorspace FAQ.
const (
	LumaR = 0.212671
	LumaG = 0.71516
	LumaB = 0.072169
)

// RGB to luminance weights by Paul Haeberli.
const (
	HaeberliR = 0.3086
	HaeberliG = 0.6094
	HaeberliB = 0.0820
)

// DefaultThresholdFactor is the scale Threshold uses to push luma into a
// binary band once the output is clamped.
const DefaultThresholdFactor = 256.0

// Builder owns one matrix and folds transforms into it in call order.
// The zero value is not ready for use; call NewBuilder.
//
// A Builder is not safe for concurrent use. Each filter pipeline should own
// its own instance.
type Builder struct {
	m   Matrix
	err error
}

func NewBuilder() *Builder {
	return &Builder{m: Identity}
}

// Matrix returns the current composition.
func (b *Builder) Matrix() Matrix {
	return b.m
}

// Err returns the first error recorded by a mutator, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the composed matrix and the first recorded error.
func (b *Builder) Build() (Matrix, error) {
	return b.m, b.err
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Concat composes t after the held matrix.
func (b *Builder) Concat(t Matrix) *Builder {
	b.m = b.m.Concat(t)
	return b
}

// Reset restores the identity transform and clears any recorded error.
func (b *Builder) Reset() *Builder {
	b.m = Identity
	b.err = nil
	return b
}

// TransformVector applies the held matrix to v.
func (b *Builder) TransformVector(v Vector) Vector {
	return b.m.Transform(v)
}

// Invert maps every color channel c to 1-c, leaving alpha unchanged.
// Two inversions cancel exactly only on a fresh builder; after other
// transforms they cancel up to floating-point rounding.
func (b *Builder) Invert() *Builder {
	return b.Concat(Matrix{
		-1, 0, 0, 0, 1,
		0, -1, 0, 0, 1,
		0, 0, -1, 0, 1,
		0, 0, 0, 1, 0,
	})
}

// AdjustContrast scales all color channels by 1+c around mid-grey (128/255).
func (b *Builder) AdjustContrast(c float64) *Builder {
	return b.AdjustContrastRGB(c, c, c)
}

func (b *Builder) AdjustContrastRGB(r, g, bl float64) *Builder {
	r++
	g++
	bl++
	return b.Concat(Matrix{
		r, 0, 0, 0, 128 * (1 - r) / 255,
		0, g, 0, 0, 128 * (1 - g) / 255,
		0, 0, bl, 0, 128 * (1 - bl) / 255,
		0, 0, 0, 1, 0,
	})
}

// AdjustBrightness adds v, expressed in the 0..255 display range, to every
// color channel.
func (b *Builder) AdjustBrightness(v float64) *Builder {
	return b.AdjustBrightnessRGB(v, v, v)
}

func (b *Builder) AdjustBrightnessRGB(r, g, bl float64) *Builder {
	return b.Concat(Matrix{
		1, 0, 0, 0, r / 255,
		0, 1, 0, 0, g / 255,
		0, 0, 1, 0, bl / 255,
		0, 0, 0, 1, 0,
	})
}

// AdjustSaturation blends toward (s < 1) or away from (s > 1) the luma
// of each pixel. 0 fully desaturates, 1 is the identity.
func (b *Builder) AdjustSaturation(s float64) *Builder {
	return b.AdjustSaturationRGB(s, s, s)
}

// AdjustSaturationRGB is AdjustSaturation with an independent factor per
// channel.
func (b *Builder) AdjustSaturationRGB(r, g, bl float64) *Builder {
	ir := (1 - r) * LumaR
	ig := (1 - g) * LumaG
	ib := (1 - bl) * LumaB
	return b.Concat(Matrix{
		ir + r, ig, ib, 0, 0,
		ir, ig + g, ib, 0, 0,
		ir, ig, ib + bl, 0, 0,
		0, 0, 0, 1, 0,
	})
}

// ToGreyscale replaces every color channel with r*R + g*G + bl*B.
// The weights are not normalized.
func (b *Builder) ToGreyscale(r, g, bl float64) *Builder {
	return b.Concat(Matrix{
		r, g, bl, 0, 0,
		r, g, bl, 0, 0,
		r, g, bl, 0, 0,
		0, 0, 0, 1, 0,
	})
}

// Luminance2Alpha turns brightness into opacity: color channels become
// white and alpha becomes the Haeberli luma of the input.
func (b *Builder) Luminance2Alpha() *Builder {
	return b.Concat(Matrix{
		0, 0, 0, 0, 1,
		0, 0, 0, 0, 1,
		0, 0, 0, 0, 1,
		HaeberliR, HaeberliG, HaeberliB, 0, 0,
	})
}

// Colorize tints toward the packed 0xRRGGBB color by amount.
func (b *Builder) Colorize(rgb uint32, amount float64) *Builder {
	r := float64((rgb>>16)&0xFF) / 0xFF
	g := float64((rgb>>8)&0xFF) / 0xFF
	bl := float64(rgb&0xFF) / 0xFF
	inv := 1 - amount

	return b.Concat(Matrix{
		inv + amount*r*LumaR, amount * r * LumaG, amount * r * LumaB, 0, 0,
		amount * g * LumaR, inv + amount*g*LumaG, amount * g * LumaB, 0, 0,
		amount * bl * LumaR, amount * bl * LumaG, inv + amount*bl*LumaB, 0, 0,
		0, 0, 0, 1, 0,
	})
}

// Average replaces every color channel with the flat mean of R, G and B.
func (b *Builder) Average() *Builder {
	const third = 1.0 / 3
	return b.AverageRGB(third, third, third)
}

func (b *Builder) AverageRGB(r, g, bl float64) *Builder {
	return b.ToGreyscale(r, g, bl)
}

// Threshold maps luma above threshold to 1 and below to 0 once the result
// is clamped downstream. factor sets the steepness; see
// DefaultThresholdFactor.
func (b *Builder) Threshold(threshold, factor float64) *Builder {
	r, g, bl, o := LumaR*factor, LumaG*factor, LumaB*factor, -factor*threshold
	return b.Concat(Matrix{
		r, g, bl, 0, o,
		r, g, bl, 0, o,
		r, g, bl, 0, o,
		0, 0, 0, 1, 0,
	})
}

// Desaturate is ToGreyscale with the Poynton luma weights.
func (b *Builder) Desaturate() *Builder {
	return b.ToGreyscale(LumaR, LumaG, LumaB)
}

// SetAlpha scales the alpha channel.
func (b *Builder) SetAlpha(alpha float64) *Builder {
	return b.Concat(Matrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, alpha, 0,
	})
}
