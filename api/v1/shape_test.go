package v1

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestIsInstanceRoot(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect((&Shape{ComponentID: "c1"}).IsInstanceRoot()).Should(BeTrue())
	g.Expect((&Shape{}).IsInstanceRoot()).Should(BeFalse())
	var nilShape *Shape
	g.Expect(nilShape.IsInstanceRoot()).Should(BeFalse())
}

func TestTouchedSetAndQuery(t *testing.T) {
	g := NewGomegaWithT(t)
	s := &Shape{}
	g.Expect(s.IsTouched("fill")).Should(BeFalse())

	changed := s.SetTouched("fill")
	g.Expect(changed).Should(BeTrue())
	g.Expect(s.IsTouched("fill")).Should(BeTrue())

	changedAgain := s.SetTouched("fill")
	g.Expect(changedAgain).Should(BeFalse())
}

func TestCloneTouchedIsIndependentCopy(t *testing.T) {
	g := NewGomegaWithT(t)
	s := &Shape{}
	s.SetTouched("fill")
	s.SetTouched("stroke")

	clone := s.CloneTouched()
	g.Expect(clone).Should(HaveLen(2))

	s.SetTouched("geometry")
	g.Expect(clone).Should(HaveLen(2))
}

func TestCloneTouchedNilIfEmpty(t *testing.T) {
	g := NewGomegaWithT(t)
	s := &Shape{}
	g.Expect(s.CloneTouched()).Should(BeNil())
}

func TestShapeCloneIsDeepAndPreservesID(t *testing.T) {
	g := NewGomegaWithT(t)
	original := &Shape{
		ID:                "s1",
		Shapes:            []string{"a", "b"},
		FillColorGradient: &Gradient{Stops: []GradientStop{{Color: "#fff"}}},
		Shadows:           []Shadow{{Color: "#000"}},
		Content:           &ContentNode{Text: "hi"},
	}
	original.SetTouched("fill")

	clone := original.Clone()
	g.Expect(clone.ID).Should(Equal("s1"))

	clone.Shapes[0] = "changed"
	clone.FillColorGradient.Stops[0].Color = "#000"
	clone.Shadows[0].Color = "#fff"
	clone.Content.Text = "changed"
	clone.Touched["stroke"] = struct{}{}

	g.Expect(original.Shapes[0]).Should(Equal("a"))
	g.Expect(original.FillColorGradient.Stops[0].Color).Should(Equal("#fff"))
	g.Expect(original.Shadows[0].Color).Should(Equal("#000"))
	g.Expect(original.Content.Text).Should(Equal("hi"))
	g.Expect(original.Touched).ShouldNot(HaveKey("stroke"))
}
