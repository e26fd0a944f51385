package galois

import (
	"github.com/republicprotocol/galois/core/algebra"
	"github.com/republicprotocol/galois/core/geom"
)

type (
	Element = algebra.Element

	Group = algebra.Group

	AdditiveGroup = algebra.AdditiveGroup

	MultiplicativeGroup = algebra.MultiplicativeGroup

	Field = algebra.Field

	Number = algebra.Number

	Polynomial = algebra.Polynomial

	Point = geom.Point

	Line = geom.Line

	Circle = geom.Circle

	Triangle = geom.Triangle
)

var (
	NewElement = algebra.NewElement

	NewField = algebra.NewField

	NewNumber = algebra.NewNumber

	CheckField = algebra.CheckField

	CheckDistributivity = algebra.CheckDistributivity

	CheckGroup = algebra.CheckGroup
)
