package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/republicprotocol/galois/core/geom"
)

var _ = Describe("Triangles", func() {

	unit := func() Triangle {
		return NewTriangle(NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1))
	}

	Context("when transforming a triangle", func() {
		It("should translate each vertex", func() {
			t := unit().Translate(2, 3)

			Expect(t.P1.Eq(NewPoint(2, 3))).To(BeTrue())
			Expect(t.P2.Eq(NewPoint(3, 3))).To(BeTrue())
			Expect(t.P3.Eq(NewPoint(2, 4))).To(BeTrue())
		})

		It("should scale each vertex about the origin", func() {
			t := unit().Scale(2)

			Expect(t.P1.Eq(NewPoint(0, 0))).To(BeTrue())
			Expect(t.P2.Eq(NewPoint(2, 0))).To(BeTrue())
			Expect(t.P3.Eq(NewPoint(0, 2))).To(BeTrue())
		})

		It("should scale each vertex about a center", func() {
			t := unit().ScaleAbout(2, NewPoint(1, 0))

			Expect(t.P1.Eq(NewPoint(-1, 0))).To(BeTrue())
			Expect(t.P2.Eq(NewPoint(1, 0))).To(BeTrue())
			Expect(t.P3.Eq(NewPoint(-1, 2))).To(BeTrue())
		})

		It("should rotate each vertex", func() {
			t := unit().Rotate(math.Pi / 2)

			Expect(t.P1.Eq(NewPoint(0, 0))).To(BeTrue())
			Expect(t.P2.Eq(NewPoint(0, 1))).To(BeTrue())
			Expect(t.P3.Eq(NewPoint(-1, 0))).To(BeTrue())
		})

		It("should preserve side lengths under rotation about any center", func() {
			t := unit()
			r := t.RotateAbout(1.1, NewPoint(-3, 2))

			Expect(r.P1.Distance(r.P2)).To(BeNumerically("~", t.P1.Distance(t.P2), 1e-9))
			Expect(r.P2.Distance(r.P3)).To(BeNumerically("~", t.P2.Distance(t.P3), 1e-9))
			Expect(r.P3.Distance(r.P1)).To(BeNumerically("~", t.P3.Distance(t.P1), 1e-9))
		})

		It("should not modify the original triangle", func() {
			t := unit()
			t.Translate(5, 5)
			t.Scale(3)
			t.Rotate(1)

			Expect(t.P1.Eq(NewPoint(0, 0))).To(BeTrue())
			Expect(t.P2.Eq(NewPoint(1, 0))).To(BeTrue())
			Expect(t.P3.Eq(NewPoint(0, 1))).To(BeTrue())
		})
	})

	Context("when measuring area", func() {
		It("should measure the unit right triangle", func() {
			Expect(unit().Area()).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("should scale area quadratically", func() {
			Expect(unit().Scale(3).Area()).To(BeNumerically("~", 4.5, 1e-9))
		})

		It("should be invariant under rotation and translation", func() {
			t := unit().RotateAbout(0.7, NewPoint(2, -1)).Translate(4, 4)
			Expect(t.Area()).To(BeNumerically("~", 0.5, 1e-9))
		})
	})
})
