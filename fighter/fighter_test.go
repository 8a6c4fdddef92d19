package fighter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/katas/fighter"
)

var _ = Describe("Selection", func() {
	snes := fighter.Grid{
		{"ryu", "", "", "ken"},
		{"chun li", "", "", "guile"},
	}

	ssf := fighter.Grid{
		{"", "ryu", "e.honda", "blanka", "guile", ""},
		{"balrog", "ken", "chun li", "zangief", "dhalsim", "sagat"},
		{"vega", "t.hawk", "fei long", "deejay", "cammy", "m.bison"},
	}

	It("walks the SNES grid", func() {
		moves := []fighter.Direction{fighter.UP, fighter.LEFT, fighter.RIGHT, fighter.DOWN, fighter.RIGHT}
		Expect(fighter.Selection(snes, fighter.Position{X: 0, Y: 0}, moves)).To(Equal(
			[]string{"ryu", "ken", "ryu", "chun li", "guile"}))
	})

	It("returns one name per move", func() {
		Expect(fighter.Selection(snes, fighter.Position{}, nil)).To(BeEmpty())

		moves := []fighter.Direction{fighter.RIGHT, fighter.RIGHT, fighter.RIGHT}
		Expect(fighter.Selection(snes, fighter.Position{}, moves)).To(HaveLen(3))
	})

	It("wraps left around a row", func() {
		moves := []fighter.Direction{fighter.LEFT, fighter.LEFT, fighter.LEFT, fighter.LEFT, fighter.LEFT, fighter.LEFT}
		Expect(fighter.Selection(ssf, fighter.Position{X: 0, Y: 1}, moves)).To(Equal(
			[]string{"sagat", "dhalsim", "zangief", "chun li", "ken", "balrog"}))
	})

	It("skips gaps when wrapping right", func() {
		moves := []fighter.Direction{fighter.RIGHT, fighter.RIGHT, fighter.RIGHT, fighter.RIGHT, fighter.RIGHT}
		Expect(fighter.Selection(ssf, fighter.Position{X: 1, Y: 0}, moves)).To(Equal(
			[]string{"e.honda", "blanka", "guile", "ryu", "e.honda"}))
	})

	It("does not move up into a gap at the edge", func() {
		moves := []fighter.Direction{fighter.UP, fighter.UP, fighter.DOWN, fighter.DOWN, fighter.DOWN}
		Expect(fighter.Selection(ssf, fighter.Position{X: 0, Y: 1}, moves)).To(Equal(
			[]string{"balrog", "balrog", "vega", "vega", "vega"}))
	})

	It("skips gaps moving vertically", func() {
		grid := fighter.Grid{
			{"a", "b"},
			{"", "c"},
			{"d", ""},
		}
		Expect(fighter.Selection(grid, fighter.Position{X: 0, Y: 0}, []fighter.Direction{fighter.DOWN, fighter.UP})).To(Equal(
			[]string{"d", "a"}))
		Expect(fighter.Selection(grid, fighter.Position{X: 1, Y: 1}, []fighter.Direction{fighter.DOWN, fighter.UP, fighter.UP})).To(Equal(
			[]string{"c", "b", "b"}))
	})

	It("stays on a lone fighter", func() {
		grid := fighter.Grid{{"", "solo", ""}}
		moves := []fighter.Direction{fighter.LEFT, fighter.RIGHT, fighter.UP, fighter.DOWN}
		Expect(fighter.Selection(grid, fighter.Position{X: 1, Y: 0}, moves)).To(Equal(
			[]string{"solo", "solo", "solo", "solo"}))
	})

	It("treats missing cells of ragged rows as gaps", func() {
		grid := fighter.Grid{
			{"a", "b", "c"},
			{"d"},
		}
		Expect(fighter.Move(grid, fighter.Position{X: 2, Y: 0}, fighter.DOWN)).To(Equal(fighter.Position{X: 2, Y: 0}))
		Expect(fighter.Move(grid, fighter.Position{X: 0, Y: 1}, fighter.RIGHT)).To(Equal(fighter.Position{X: 0, Y: 1}))
		Expect(grid.Width()).To(Equal(3))
		Expect(grid.Fighter(fighter.Position{X: 2, Y: 1})).To(BeEmpty())
	})
})

var _ = Describe("Direction", func() {
	DescribeTable("parses names",
		func(name string, d fighter.Direction) {
			got, err := fighter.ParseDirection(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(d))
			Expect(got.String()).To(Equal(d.String()))
		},
		Entry("up", "up", fighter.UP),
		Entry("down", "Down", fighter.DOWN),
		Entry("left", "LEFT", fighter.LEFT),
		Entry("right", "right", fighter.RIGHT),
	)

	It("rejects unknown names", func() {
		_, err := fighter.ParseDirection("sideways")
		Expect(err).To(MatchError(fighter.ErrDirectionInvalid))
		Expect(err).To(MatchError(fighter.ErrDirection("sideways")))
	})

	It("names out of range directions", func() {
		Expect(fighter.Direction(7).String()).To(Equal("Direction(7)"))
	})
})
