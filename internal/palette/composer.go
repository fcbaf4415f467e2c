package palette

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/harmonia/internal/colour"
)

// Offsets fed to the complementary harmony for Beta and Gamma accents.
var accentAngles = []float64{45, 90, 135}

const (
	// gammaTriadicShift is added to the triadic offset of Gamma palettes.
	gammaTriadicShift = 25

	// Mix draws its analogous offset from [mixOffsetMin, mixOffsetMax).
	mixOffsetMin = 15
	mixOffsetMax = 90
)

// Composer builds palettes. It owns a random source used for default base
// colours and Mix palettes, so a Composer is not safe for concurrent use;
// create one per goroutine.
type Composer struct {
	rng    *rand.Rand
	logger hclog.Logger
	format colour.Format
}

// Option configures a Composer.
type Option func(*Composer)

// WithSource sets the random source. Use a fixed source for reproducible palettes.
func WithSource(src rand.Source) Option {
	return func(c *Composer) {
		c.rng = rand.New(src)
	}
}

// WithSeed seeds a ChaCha8 source with the given value.
func WithSeed(seed uint64) Option {
	return WithSource(newChaCha8(seed))
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

// WithFormat sets the representation of every colour in composed palettes.
func WithFormat(format colour.Format) Option {
	return func(c *Composer) {
		c.format = format
	}
}

// NewComposer creates a Composer. Without WithSource or WithSeed it draws from
// a non-deterministic source seeded by crypto/rand.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		logger: hclog.NewNullLogger(),
		format: colour.FormatHex,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		var seed [8]byte
		// crypto/rand.Read never returns an error on supported platforms.
		_, _ = crand.Read(seed[:])
		c.rng = rand.New(newChaCha8(binary.LittleEndian.Uint64(seed[:])))
	}
	return c
}

func newChaCha8(seed uint64) *rand.ChaCha8 {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	return rand.NewChaCha8(seedArray)
}

// RandomColour returns a uniformly random colour as a 6-digit hex string.
func (c *Composer) RandomColour() string {
	hex, _ := colour.DecToHex(c.rng.IntN(colour.MaxDecimal + 1))
	return hex
}

// resolve normalises the base colour, drawing a random one when in is nil.
func (c *Composer) resolve(kind Kind, in colour.Input) (*Palette, colour.RGB, error) {
	if in == nil {
		hex := c.RandomColour()
		c.logger.Debug("no base colour supplied, using random colour", "kind", kind, "base", hex)
		in = colour.Hex(hex)
	}

	hex, err := colour.Normalize(in)
	if err != nil {
		return nil, colour.RGB{}, fmt.Errorf("%s palette: %w", kind, err)
	}
	rgb, err := colour.HexToRGB(hex)
	if err != nil {
		return nil, colour.RGB{}, fmt.Errorf("%s palette: %w", kind, err)
	}

	return &Palette{Kind: kind, Base: hex}, rgb, nil
}

func (c *Composer) value(rgb colour.RGB) colour.Value {
	return colour.NewValue(rgb, c.format)
}

// Compose builds a palette of the given kind. The offset is passed to the
// kinds that take one and ignored by the others.
func (c *Composer) Compose(kind Kind, in colour.Input, offset float64) (*Palette, error) {
	switch kind {
	case KindAlpha:
		return c.Alpha(in, offset)
	case KindBeta:
		return c.Beta(in, offset)
	case KindGamma:
		return c.Gamma(in, offset)
	case KindProTetradic:
		return c.ProTetradic(in, offset)
	case KindProComplementary:
		return c.ProComplementary(in)
	case KindMix:
		return c.Mix(in)
	default:
		return nil, fmt.Errorf("unknown palette kind: %s", kind)
	}
}

// Alpha pairs the base with its complement and its analogous colour.
func (c *Composer) Alpha(in colour.Input, offset float64) (*Palette, error) {
	p, rgb, err := c.resolve(KindAlpha, in)
	if err != nil {
		return nil, err
	}
	p.Primary = Group{c.value(rgb)}
	p.Secondary = []Group{{colour.Complementary(rgb, c.format)}}
	p.Accent = []Group{{c.value(colour.Analogous(rgb, offset))}}
	return p, nil
}

// Beta pairs the base with its triadic colours and a fan of complementary accents.
func (c *Composer) Beta(in colour.Input, offset float64) (*Palette, error) {
	return c.triadicPalette(KindBeta, in, offset)
}

// Gamma is Beta with the triadic colours turned a further 25 degrees.
func (c *Composer) Gamma(in colour.Input, offset float64) (*Palette, error) {
	return c.triadicPalette(KindGamma, in, offset+gammaTriadicShift)
}

func (c *Composer) triadicPalette(kind Kind, in colour.Input, offset float64) (*Palette, error) {
	p, rgb, err := c.resolve(kind, in)
	if err != nil {
		return nil, err
	}
	p.Primary = Group{c.value(rgb)}
	p.Secondary = []Group{Group(colour.Triadic(rgb, offset, c.format))}
	p.Accent = []Group{Group(colour.ComplementaryAt(rgb, accentAngles, c.format))}
	return p, nil
}

// ProTetradic expands the base and its three tetradic colours into tonal
// ladders. The +180 degree ladder is the secondary role, the other two are accents.
func (c *Composer) ProTetradic(in colour.Input, offset float64) (*Palette, error) {
	p, rgb, err := c.resolve(KindProTetradic, in)
	if err != nil {
		return nil, err
	}
	t := colour.Tetradic(rgb, offset, c.format)
	c.fillPro(p, rgb, []colour.Value{t[1]}, []colour.Value{t[0], t[2]})
	return p, nil
}

// ProComplementary expands the base and its split-complementary pair into
// tonal ladders.
func (c *Composer) ProComplementary(in colour.Input) (*Palette, error) {
	p, rgb, err := c.resolve(KindProComplementary, in)
	if err != nil {
		return nil, err
	}
	pair := colour.SplitComplementary(rgb, c.format)
	c.fillPro(p, rgb, pair[:1], pair[1:])
	return p, nil
}

func (c *Composer) fillPro(p *Palette, base colour.RGB, secondary, accent []colour.Value) {
	p.Primary = Group(colour.Monochrome(base, c.format))
	p.Secondary = c.ladders(secondary)
	p.Accent = c.ladders(accent)
	p.Neutral = c.neutral(p.Primary)
}

func (c *Composer) ladders(values []colour.Value) []Group {
	groups := make([]Group, len(values))
	for i, v := range values {
		groups[i] = Group(colour.Monochrome(v.RGB(), c.format))
	}
	return groups
}

// neutral desaturates a ladder into greys.
func (c *Composer) neutral(g Group) Group {
	out := make([]colour.Value, len(g))
	for i, v := range g {
		out[i] = c.value(colour.Grayscale(v.RGB()))
	}
	return Group(colour.DedupAdjacent(out))
}

// Mix picks one of the base, its analogous colour and its split-complementary
// pair at random, then builds an accent group from the tetradic colours of
// that pick's analogous colour at a random offset in [15,90).
func (c *Composer) Mix(in colour.Input) (*Palette, error) {
	p, rgb, err := c.resolve(KindMix, in)
	if err != nil {
		return nil, err
	}

	split := colour.SplitComplementary(rgb, colour.FormatRGB)
	candidates := []colour.RGB{
		rgb,
		colour.Analogous(rgb, 0),
		split[0].RGB(),
		split[1].RGB(),
	}
	idx := c.rng.IntN(len(candidates))
	pick := candidates[idx]
	offset := mixOffsetMin + c.rng.Float64()*(mixOffsetMax-mixOffsetMin)

	c.logger.Debug("mix palette", "base", p.Base, "pick", idx, "offset", offset)

	p.Primary = Group{c.value(rgb)}
	p.Secondary = []Group{{c.value(pick)}}
	p.Accent = []Group{Group(colour.Tetradic(colour.Analogous(pick, offset), 0, c.format))}
	return p, nil
}
