package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/noise"
)

const (
	lambdaStart     = 380.0
	lambdaEnd       = 780.0
	lambdaReference = 530.0
	spectralSamples = 9
)

// Bow geometry in degrees from the antisolar point.
const (
	PrimaryRadius       = 42.0
	SecondaryRadius     = 51.0
	PrimaryDispersion   = 0.018
	SecondaryDispersion = -PrimaryDispersion * 1.05
)

// Weights applied to each bow's light when it is added to the sky.
const (
	PrimaryWeight   = 1.5
	SecondaryWeight = 1.0
)

// Band is the color and strength of a rainbow at one angle.
type Band struct {
	Color     mgl64.Vec3
	Intensity float64
}

// Radiance is the band color weighted by its intensity.
func (b Band) Radiance() mgl64.Vec3 {
	return b.Color.Mul(b.Intensity)
}

// WavelengthToRGB approximates the visible color of a wavelength in
// nanometres. Output fades toward both ends of the spectrum.
func WavelengthToRGB(lambda float64) mgl64.Vec3 {
	var r, g, b float64
	switch {
	case lambda < 440:
		r = -(lambda - 440) / (440 - 380)
		b = 1
	case lambda < 490:
		g = (lambda - 440) / (490 - 440)
		b = 1
	case lambda < 510:
		g = 1
		b = -(lambda - 510) / (510 - 490)
	case lambda < 580:
		r = (lambda - 510) / (580 - 510)
		g = 1
	case lambda < 645:
		r = 1
		g = -(lambda - 645) / (645 - 580)
	default:
		r = 1
	}
	factor := 1.0
	if lambda < 420 {
		factor = 0.3 + 0.7*(lambda-380)/(420-380)
	}
	if lambda > 700 {
		factor = 0.3 + 0.7*(780-lambda)/(780-700)
	}
	return mgl64.Vec3{r, g, b}.Mul(factor)
}

// SpectralBand integrates the visible spectrum at theta degrees. Each
// wavelength peaks at baseRadius + (lambda-530)*dispersion with standard
// deviation width. Color is the Gaussian-weighted average hue and Intensity
// the mean Gaussian response.
func SpectralBand(theta, baseRadius, dispersion, width float64) Band {
	var accum mgl64.Vec3
	total := 0.0
	for i := 0; i < spectralSamples; i++ {
		t := float64(i) / (spectralSamples - 1)
		lambda := noise.Mix(lambdaStart, lambdaEnd, t)
		center := baseRadius + (lambda-lambdaReference)*dispersion
		d := theta - center
		g := math.Exp(-0.5 * (d * d) / (width * width))
		accum = accum.Add(WavelengthToRGB(lambda).Mul(g))
		total += g
	}
	b := Band{Intensity: total / spectralSamples}
	if total > 0 {
		b.Color = accum.Mul(1 / total)
	}
	return b
}

// Bows holds both rainbow bands at one view direction together with the
// gains that scale them into the sky.
type Bows struct {
	Theta         float64
	Primary       Band
	Secondary     Band
	PrimaryGain   float64
	SecondaryGain float64
}

// Strength is the combined visible intensity of both bows.
func (b Bows) Strength() float64 {
	return b.Primary.Intensity*b.PrimaryGain + b.Secondary.Intensity*b.SecondaryGain
}

// Light is the color both bows add to the sky. Each band's radiance is
// scaled again by its own intensity, so the bows fall off sharply away from
// their radii.
func (b Bows) Light() mgl64.Vec3 {
	p := b.Primary.Radiance().Mul(b.Primary.Intensity * b.PrimaryGain * PrimaryWeight)
	s := b.Secondary.Radiance().Mul(b.Secondary.Intensity * b.SecondaryGain * SecondaryWeight)
	return p.Add(s)
}

// EvaluateBows computes both rainbow bands for dir. The bows widen with
// precipitation, need rain to appear at all and fade out below the horizon.
func EvaluateBows(dir, sunDir mgl64.Vec3, precipitation float64) Bows {
	antiSun := sunDir.Mul(-1)
	theta := AngleDeg(dir, antiSun)

	width := noise.Mix(0.7, 2.5, precipitation)
	fade := noise.Smoothstep(-0.1, 0.1, dir[1])

	return Bows{
		Theta:         theta,
		Primary:       SpectralBand(theta, PrimaryRadius, PrimaryDispersion, width),
		Secondary:     SpectralBand(theta, SecondaryRadius, SecondaryDispersion, width*1.6),
		PrimaryGain:   mgl64.Clamp(precipitation*2, 0, 1) * fade,
		SecondaryGain: mgl64.Clamp(precipitation, 0, 0.7) * fade,
	}
}

// Rainbow adds the double rainbow to base. Outside the primary bow the sky is
// slightly darkened in proportion to precipitation. With no precipitation
// base is returned unchanged.
func Rainbow(dir, sunDir mgl64.Vec3, precipitation float64, base mgl64.Vec3) mgl64.Vec3 {
	if precipitation <= 0 {
		return base
	}
	b := EvaluateBows(dir, sunDir, precipitation)

	darken := noise.Smoothstep(PrimaryRadius-8, PrimaryRadius+8, b.Theta)
	c := noise.MixVec3(base, base.Mul(0.65), darken*darken*0.25*precipitation)
	return c.Add(b.Light())
}
