package pair_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polymd/internal/pair"
)

type variant struct {
	kind pair.Kind
	rec  pair.Record
}

var variants = []variant{
	{pair.KindLJ, pair.Record{"epsilon": 1.0, "sigma": 1.0, "alpha": 1.0}},
	{pair.KindForceShiftedLJ, pair.Record{"epsilon": 1.0, "sigma": 1.0, "alpha": 1.0}},
	{pair.KindPoly12, pair.Record{"v0": 1.0, "eps": 0.2, "scaledr_cut": 1.25}},
	{pair.KindPoly18, pair.Record{"v0": 1.0, "eps": 0.0, "scaledr_cut": 1.25}},
	{pair.KindPoly10, pair.Record{"v0": 1.0, "eps": 0.0416667, "scaledr_cut": 1.48}},
	{pair.KindPolyLJ, pair.Record{"v0": 1.0, "eps": 0.2, "scaledr_cut": 2.5}},
	{pair.KindPolyLJ106, pair.Record{"v0": 1.0, "eps": 0.1, "scaledr_cut": 2.5}},
	{pair.KindGeneral, pair.Record{"v0": 1.0, "rcut": 2.5, "eps": 0.2, "m_expnt": 12, "n_expnt": 6}},
	{pair.KindYukawa, pair.Record{"v0": 10.0, "eps": 0.0, "scaledr_cut": 3.0, "kappa": 3.0}},
}

const rcutsq = 6.25

var _ = Describe("Evaluator contract", func() {
	attr := pair.Attributes{Di: 0.9, Dj: 1.2}

	for _, v := range variants {
		Context(string(v.kind), func() {
			var pot pair.Potential

			BeforeEach(func() {
				var err error
				pot, err = pair.NewPotential(v.kind, v.rec)
				Expect(err).NotTo(HaveOccurred())
			})

			It("returns zero outputs beyond the effective cutoff", func() {
				rc := pot.EffectiveCutoff(rcutsq, attr)
				res := pot.Eval(rc*rc*1.01, rcutsq, attr, true)
				Expect(res.OK).To(BeFalse())
				Expect(res.ForceDivR).To(BeZero())
				Expect(res.Energy).To(BeZero())
			})

			It("produces finite values inside the cutoff", func() {
				rc := pot.EffectiveCutoff(rcutsq, attr)
				for _, frac := range []float64{0.6, 0.8, 0.95} {
					r := rc * frac
					res := pot.Eval(r*r, rcutsq, attr, false)
					Expect(res.OK).To(BeTrue())
					Expect(math.IsNaN(res.ForceDivR) || math.IsInf(res.ForceDivR, 0)).To(BeFalse())
					Expect(math.IsNaN(res.Energy) || math.IsInf(res.Energy, 0)).To(BeFalse())
				}
			})

			It("agrees with the numerical derivative of its energy", func() {
				rc := pot.EffectiveCutoff(rcutsq, attr)
				h := 1e-6
				for _, frac := range []float64{0.6, 0.8, 0.95} {
					r := rc * frac
					f := pot.Eval(r*r, rcutsq, attr, false).ForceDivR
					vp := pot.Eval((r+h)*(r+h), rcutsq, attr, false).Energy
					vm := pot.Eval((r-h)*(r-h), rcutsq, attr, false).Energy
					want := -(vp - vm) / (2 * h)
					Expect(f*r).To(BeNumerically("~", want, 1e-6*(1+math.Abs(want))))
				}
			})

			It("is symmetric in the particle attributes", func() {
				swapped := pair.Attributes{Di: attr.Dj, Dj: attr.Di}
				for _, rsq := range []float64{0.9, 1.2, 1.6} {
					Expect(pot.Eval(rsq, rcutsq, attr, true)).To(Equal(pot.Eval(rsq, rcutsq, swapped, true)))
				}
			})

			It("is disabled when its strength is zero", func() {
				rec := v.rec.Clone()
				if v.kind == pair.KindLJ || v.kind == pair.KindForceShiftedLJ {
					rec["epsilon"] = 0.0
				} else {
					rec["v0"] = 0.0
				}
				off, err := pair.NewPotential(v.kind, rec)
				Expect(err).NotTo(HaveOccurred())
				Expect(off.Eval(1.0, rcutsq, attr, true)).To(Equal(pair.Result{}))
			})

			It("survives a record round trip", func() {
				back, err := pair.NewPotential(v.kind, pot.Record())
				Expect(err).NotTo(HaveOccurred())
				Expect(back).To(Equal(pot))
			})

			It("does not support shapes", func() {
				_, err := pot.ShapeSpec()
				Expect(err).To(MatchError(pair.ErrShapeUnsupported))
			})
		})
	}
})

var _ = Describe("Smoothed variants", func() {
	attr := pair.Attributes{Di: 1.0, Dj: 1.3}

	DescribeTable("vanish continuously at the effective cutoff",
		func(kind pair.Kind, rec pair.Record) {
			pot, err := pair.NewPotential(kind, rec)
			Expect(err).NotTo(HaveOccurred())
			rc := pot.EffectiveCutoff(0, attr)

			r := rc * (1 - 1e-4)
			res := pot.Eval(r*r, 0, attr, false)
			Expect(res.OK).To(BeTrue())
			Expect(math.Abs(res.Energy)).To(BeNumerically("<", 1e-6))
			Expect(math.Abs(res.ForceDivR)).To(BeNumerically("<", 1e-3))
		},
		Entry("polydisperse12", pair.KindPoly12, pair.Record{"v0": 1.0, "eps": 0.2, "scaledr_cut": 1.25}),
		Entry("polydisperse18", pair.KindPoly18, pair.Record{"v0": 1.0, "eps": 0.0, "scaledr_cut": 1.25}),
		Entry("polydisperse10", pair.KindPoly10, pair.Record{"v0": 1.0, "eps": 0.0416667, "scaledr_cut": 1.48}),
		Entry("lennardjones", pair.KindPolyLJ, pair.Record{"v0": 1.0, "eps": 0.2, "scaledr_cut": 2.5}),
		Entry("polydisperse106", pair.KindPolyLJ106, pair.Record{"v0": 1.0, "eps": 0.1, "scaledr_cut": 2.5}),
		Entry("polydisperse", pair.KindGeneral, pair.Record{"v0": 1.0, "rcut": 1.4, "eps": 0.1, "m_expnt": 14, "n_expnt": 4}),
		Entry("polydisperseyukawa", pair.KindYukawa, pair.Record{"v0": 10.0, "eps": 0.0, "scaledr_cut": 3.0, "kappa": 3.0}),
	)
})
