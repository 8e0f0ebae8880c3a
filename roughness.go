/*
Copyright © 2024 the micromet authors.
This file is part of micromet.

micromet is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

micromet is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with micromet.  If not, see <http://www.gnu.org/licenses/>.
*/

package micromet

import (
	"fmt"
	"math"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
)

// RoughnessMethod selects how the zero-plane displacement height and the
// roughness length for momentum are estimated.
type RoughnessMethod int

const (
	// FromCanopyHeight uses the empirical ratios d = FracD·zh and
	// z0m = FracZ0m·zh.
	FromCanopyHeight RoughnessMethod = iota
	// FromCanopyHeightLAI uses the closed-form relations of Choudhury and
	// Monteith (1988), which shift d and z0m with canopy density.
	FromCanopyHeightLAI
	// FromWindProfile fits d and z0m (with a standard error) by inverting
	// the stability-corrected logarithmic wind profile against the
	// observed series.
	FromWindProfile
)

func (m RoughnessMethod) String() string {
	switch m {
	case FromCanopyHeight:
		return "canopy_height"
	case FromCanopyHeightLAI:
		return "canopy_height&LAI"
	case FromWindProfile:
		return "wind_profile"
	}
	return fmt.Sprintf("RoughnessMethod(%d)", int(m))
}

// ParseRoughnessMethod converts a configuration string to a RoughnessMethod.
func ParseRoughnessMethod(s string) (RoughnessMethod, error) {
	switch s {
	case "canopy_height":
		return FromCanopyHeight, nil
	case "canopy_height&LAI":
		return FromCanopyHeightLAI, nil
	case "wind_profile":
		return FromWindProfile, nil
	}
	return 0, configErrorf("unknown roughness method %q", s)
}

// SiteGeometry describes the tower site. It is supplied once per
// computation and constant across all rows of a series. Zr > Zh is
// expected but not enforced; violating it yields physically meaningless
// output rather than an error.
type SiteGeometry struct {
	Zh  float64 // canopy height [m]
	Zr  float64 // sensor (reference) height [m]
	LAI float64 // leaf area index [-], optional
	Dl  float64 // characteristic leaf dimension [m], optional
}

// RoughnessEstimate is the output of every roughness regime. The field set
// is identical regardless of regime so downstream dispatch stays uniform;
// Z0mSE is Missing except under FromWindProfile.
type RoughnessEstimate struct {
	D     float64 // zero-plane displacement height [m]
	Z0m   float64 // roughness length for momentum [m]
	Z0mSE float64 // standard error of Z0m [m]
}

// RoughnessOptions configures a roughness-parameter estimation. The
// selectors are resolved when RoughnessParameters is called and the
// options are not mutated afterward.
type RoughnessOptions struct {
	Method      RoughnessMethod
	Formulation Formulation // stability formulation for FromWindProfile
	Site        SiteGeometry
	Series      *Series   // observation series, FromWindProfile only
	PsiM        []float64 // precomputed ψm column, optional
	Constants   Constants // zero value means DefaultConstants
}

// RoughnessParameters estimates the displacement height and roughness
// length for a site. FromCanopyHeight and FromCanopyHeightLAI never return
// an error; absent inputs yield Missing fields. FromWindProfile returns a
// ConfigurationError for unresolvable inputs and an InsufficientDataError
// when fewer valid rows remain than the regression needs.
func RoughnessParameters(o RoughnessOptions) (RoughnessEstimate, error) {
	if o.Constants == (Constants{}) {
		o.Constants = DefaultConstants()
	}
	c := o.Constants
	switch o.Method {
	case FromCanopyHeight:
		if !valid(o.Site.Zh) || o.Site.Zh <= 0 {
			return RoughnessEstimate{D: Missing(), Z0m: Missing(), Z0mSE: Missing()}, nil
		}
		return RoughnessEstimate{
			D:     c.FracD * o.Site.Zh,
			Z0m:   c.FracZ0m * o.Site.Zh,
			Z0mSE: Missing(),
		}, nil

	case FromCanopyHeightLAI:
		zh, lai := o.Site.Zh, o.Site.LAI
		if !valid(zh, lai) || zh <= 0 || lai <= 0 {
			return RoughnessEstimate{D: Missing(), Z0m: Missing(), Z0mSE: Missing()}, nil
		}
		// Choudhury and Monteith (1988), eqs. 24 and 26.
		X := c.Cd * lai
		d := 1.1 * zh * math.Log(1+math.Pow(X, 0.25))
		var z0m float64
		if X <= 0.2 {
			z0m = c.Hs + 0.3*zh*math.Sqrt(X)
		} else {
			z0m = 0.3 * zh * (1 - d/zh)
		}
		return RoughnessEstimate{D: d, Z0m: z0m, Z0mSE: Missing()}, nil

	case FromWindProfile:
		return roughnessFromWindProfile(o)
	}
	panic(fmt.Errorf("micromet: unknown roughness method %v", o.Method))
}

// roughnessFromWindProfile inverts u = (u*/κ)[ln((zr−d)/z0m) + ψm] over the
// whole series. For a trial d the per-row transform
//
//	y_i = ln(zr−d) − κ·u_i/u*_i + ψm_i
//
// equals ln z0m for every row exactly when d is right, so y is regressed on
// ψm (intercept = ln z0m at neutral stratification, its standard error
// carries through the exponential to z0m) and the residual variance serves
// as the objective of a bounded 1-D search for d over (0, zh). When ψm is
// not supplied it is recomputed for each trial d, which is where the
// circular dependency between displacement and stability lives: ζ needs d,
// but the per-row Obukhov length does not, so L is computed once up front.
func roughnessFromWindProfile(o RoughnessOptions) (RoughnessEstimate, error) {
	c, s, site := o.Constants, o.Series, o.Site
	if s == nil {
		return RoughnessEstimate{}, configErrorf("wind-profile roughness estimation requires an observation series")
	}
	if !valid(site.Zh, site.Zr) || site.Zh <= 0 || site.Zr <= 0 {
		return RoughnessEstimate{}, configErrorf(
			"wind-profile roughness estimation requires positive canopy and reference heights; have zh=%v, zr=%v",
			site.Zh, site.Zr)
	}
	need := []string{"ustar", "wind"}
	internalPsi := o.PsiM == nil && o.Formulation != NoStabilityCorrection
	if internalPsi {
		need = append(need, "Tair", "pressure", "H")
	}
	if err := s.require(need...); err != nil {
		return RoughnessEstimate{}, err
	}
	if err := s.checkAligned(); err != nil {
		return RoughnessEstimate{}, err
	}
	n := s.Len()
	if o.PsiM != nil && len(o.PsiM) != n {
		return RoughnessEstimate{}, configErrorf("ψm column has %d rows, want %d", len(o.PsiM), n)
	}

	minRows := c.MinWindProfileRows
	if minRows < 2 {
		minRows = 2
	}

	usable := make([]bool, n)
	L := make([]float64, n)
	nUsable := 0
	for i := 0; i < n; i++ {
		if !valid(s.Ustar[i], s.Wind[i]) || s.Ustar[i] <= 0 || s.Wind[i] <= 0 {
			continue
		}
		if o.PsiM != nil && !valid(o.PsiM[i]) {
			continue
		}
		if internalPsi {
			L[i] = ObukhovLength(s.Tair[i], s.Pressure[i], s.Ustar[i], s.H[i], c)
			if !valid(L[i]) {
				continue
			}
		}
		usable[i] = true
		nUsable++
	}
	if nUsable < minRows {
		return RoughnessEstimate{}, &InsufficientDataError{Valid: nUsable, Required: minRows}
	}

	type fit struct {
		lnZ0m, lnZ0mSE, resVar float64
		ok                     bool
	}
	evaluate := func(d float64) fit {
		xs := make([]float64, 0, nUsable)
		ys := make([]float64, 0, nUsable)
		for i := 0; i < n; i++ {
			if !usable[i] {
				continue
			}
			var psi float64
			switch {
			case o.PsiM != nil:
				psi = o.PsiM[i]
			case internalPsi:
				psi = o.Formulation.PsiM(StabilityParameter(site.Zr, d, L[i]), c)
				if !valid(psi) {
					continue
				}
			}
			xs = append(xs, psi)
			ys = append(ys, math.Log(site.Zr-d)-c.Kappa*s.Wind[i]/s.Ustar[i]+psi)
		}
		if len(ys) < minRows {
			return fit{}
		}
		if stats.StatsSampleVariance(xs) < 1e-12 {
			// ψm does not vary (e.g. forced to zero): the regression is
			// degenerate and collapses to the mean and its standard error.
			mean := stats.StatsMean(ys)
			sd := stats.StatsSampleStandardDeviation(ys)
			return fit{
				lnZ0m:   mean,
				lnZ0mSE: sd / math.Sqrt(float64(len(ys))),
				resVar:  sd * sd,
				ok:      true,
			}
		}
		slope, intercept, _, _, _, intcptSE := stats.LinearRegression(xs, ys)
		resid := make([]float64, len(ys))
		floats.AddScaled(resid, -slope, xs)
		floats.AddConst(-intercept, resid)
		floats.Add(resid, ys)
		resVar := stats.StatsSampleVariance(resid)
		if resVar < 1e-12 || math.IsNaN(intcptSE) {
			// On an exact fit the regression's residual sum of squares
			// rounds to a tiny negative and the intercept standard error
			// comes out NaN; the error is zero.
			intcptSE = 0
		}
		return fit{
			lnZ0m:   intercept,
			lnZ0mSE: intcptSE,
			resVar:  resVar,
			ok:      true,
		}
	}
	objective := func(d float64) float64 {
		f := evaluate(d)
		if !f.ok || !valid(f.resVar) {
			return math.Inf(1)
		}
		return f.resVar
	}

	// Coarse grid over candidate d, then golden-section refinement around
	// the best interval. Both stages have fixed iteration counts, so the
	// search terminates regardless of the objective's shape.
	lo, hi := 0.0, 0.99*math.Min(site.Zh, site.Zr)
	grid := c.DSearchGrid
	if grid < 2 {
		grid = 2
	}
	step := (hi - lo) / float64(grid)
	bestD, bestVar, worstVar := math.NaN(), math.Inf(1), math.Inf(-1)
	for i := 0; i <= grid; i++ {
		d := lo + step*float64(i)
		v := objective(d)
		if math.IsInf(v, 1) {
			continue
		}
		if v < bestVar {
			bestVar, bestD = v, d
		}
		if v > worstVar {
			worstVar = v
		}
	}
	if math.IsNaN(bestD) {
		return RoughnessEstimate{}, &InsufficientDataError{Valid: nUsable, Required: minRows}
	}
	if worstVar-bestVar <= 1e-12*math.Max(1, math.Abs(worstVar)) {
		// The objective is flat: with ψm constant across rows, d and z0m
		// are only jointly identifiable from a single measurement height.
		// Anchor d at the canopy-height ratio and keep the fitted z0m.
		if d := c.FracD * site.Zh; d < hi {
			bestD = d
		}
	} else {
		bestD = goldenSection(objective, math.Max(lo, bestD-step), math.Min(hi, bestD+step), c.DSearchIter)
	}

	f := evaluate(bestD)
	if !f.ok {
		return RoughnessEstimate{}, &InsufficientDataError{Valid: nUsable, Required: minRows}
	}
	z0m := math.Exp(f.lnZ0m)
	return RoughnessEstimate{
		D:     bestD,
		Z0m:   finiteOrMissing(z0m),
		Z0mSE: finiteOrMissing(z0m * f.lnZ0mSE),
	}, nil
}

// goldenSection minimizes f on [a, b] with a fixed iteration count and
// returns the midpoint of the final bracket.
func goldenSection(f func(float64) float64, a, b float64, iter int) float64 {
	const invphi = 0.6180339887498949
	x1 := b - invphi*(b-a)
	x2 := a + invphi*(b-a)
	f1, f2 := f(x1), f(x2)
	for i := 0; i < iter; i++ {
		if f1 <= f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - invphi*(b-a)
			f1 = f(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + invphi*(b-a)
			f2 = f(x2)
		}
	}
	return (a + b) / 2
}
