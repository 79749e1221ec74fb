package attrs

import (
	"testing"

	. "github.com/onsi/gomega"

	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/change"
)

func TestUpdateAttrsEmptyOnNoOp(t *testing.T) {
	g := NewGomegaWithT(t)
	root := &v1.Shape{ID: "root", X: 0, Y: 0}
	dest := &v1.Shape{ID: "dest", ParentID: "root", X: 0, Y: 0, Width: 10, FillColor: "#fff"}
	origin := &v1.Shape{ID: "origin", X: 0, Y: 0, Width: 10, FillColor: "#fff"}

	pair := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{OmitTouched: true})
	g.Expect(pair.Empty()).Should(BeTrue())
}

func TestUpdateAttrsEmitsChangedAttrsAndRepositions(t *testing.T) {
	g := NewGomegaWithT(t)
	destRoot := &v1.Shape{ID: "inst-root", X: 300, Y: 400}
	originRoot := &v1.Shape{ID: "master-root", X: 100, Y: 200}
	dest := &v1.Shape{ID: "dest", X: 0, Y: 0, Width: 10}
	origin := &v1.Shape{ID: "origin", X: 150, Y: 230, Width: 20}

	pair := UpdateAttrs(dest, origin, destRoot, originRoot, change.Ref{PageID: "page-1"}, Options{OmitTouched: true})
	g.Expect(pair.Empty()).Should(BeFalse())

	ops := pair.Redo[0].Operations
	g.Expect(ops[0].Attr).Should(Equal("x"))
	g.Expect(ops[0].Val).Should(Equal(350.0))
	g.Expect(ops[1].Attr).Should(Equal("y"))
	g.Expect(ops[1].Val).Should(Equal(430.0))

	var sawWidth bool
	for _, op := range ops {
		if op.Attr == "width" {
			sawWidth = true
			g.Expect(op.Val).Should(Equal(20.0))
		}
	}
	g.Expect(sawWidth).Should(BeTrue())
}

func TestUpdateAttrsOmitsTouchedGroup(t *testing.T) {
	g := NewGomegaWithT(t)
	root := &v1.Shape{ID: "root"}
	dest := &v1.Shape{ID: "dest", Width: 10}
	dest.SetTouched("geometry")
	origin := &v1.Shape{ID: "origin", Width: 99}

	pair := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{OmitTouched: true})
	g.Expect(pair.Empty()).Should(BeTrue())
}

func TestUpdateAttrsResetTouchedEmitsSetTouchedNil(t *testing.T) {
	g := NewGomegaWithT(t)
	root := &v1.Shape{ID: "root"}
	dest := &v1.Shape{ID: "dest"}
	dest.SetTouched("geometry")
	origin := &v1.Shape{ID: "origin"}

	pair := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{ResetTouched: true})
	g.Expect(pair.Empty()).Should(BeFalse())

	ops := pair.Redo[0].Operations
	last := ops[len(ops)-1]
	g.Expect(last.Kind).Should(Equal(v1.OpSetTouched))
	g.Expect(last.Touched).Should(BeNil())

	undoLast := pair.Undo[0].Operations[len(pair.Undo[0].Operations)-1]
	g.Expect(undoLast.Touched).Should(HaveKey("geometry"))
}

func TestUpdateAttrsCopyTouchedAsymmetry(t *testing.T) {
	g := NewGomegaWithT(t)
	root := &v1.Shape{ID: "root"}
	dest := &v1.Shape{ID: "dest"}
	dest.SetTouched("fill")
	origin := &v1.Shape{ID: "origin"}
	origin.SetTouched("stroke")

	pair := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{CopyTouched: true})
	ops := pair.Redo[0].Operations
	last := ops[len(ops)-1]
	g.Expect(last.Touched).Should(HaveKey("stroke"))
	g.Expect(last.Touched).ShouldNot(HaveKey("fill"))

	undoLast := pair.Undo[0].Operations[len(pair.Undo[0].Operations)-1]
	g.Expect(undoLast.Touched).Should(HaveKey("fill"))
	g.Expect(undoLast.Touched).ShouldNot(HaveKey("stroke"))
}

func TestUpdateAttrsSetTouchedControlsIgnoreTouchedFlag(t *testing.T) {
	g := NewGomegaWithT(t)
	root := &v1.Shape{ID: "root"}
	dest := &v1.Shape{ID: "dest", Width: 1}
	origin := &v1.Shape{ID: "origin", Width: 2}

	withoutSetTouched := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{})
	g.Expect(withoutSetTouched.Redo[0].Operations[0].IgnoreTouched).Should(BeTrue())

	withSetTouched := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{SetTouched: true})
	g.Expect(withSetTouched.Redo[0].Operations[0].IgnoreTouched).Should(BeFalse())
}

func TestApplyRoundTrip(t *testing.T) {
	g := NewGomegaWithT(t)
	root := &v1.Shape{ID: "root"}
	dest := &v1.Shape{ID: "dest", Width: 10, X: 0, Y: 0}
	origin := &v1.Shape{ID: "origin", Width: 20, X: 5, Y: 5}

	pair := UpdateAttrs(dest, origin, root, root, change.Ref{PageID: "page-1"}, Options{OmitTouched: true})
	g.Expect(pair.Empty()).Should(BeFalse())

	before := dest.Clone()
	Apply(dest, pair.Redo[0].Operations)
	g.Expect(dest.Width).Should(Equal(20.0))
	g.Expect(dest.X).Should(Equal(5.0))

	Apply(dest, pair.Undo[0].Operations)
	g.Expect(dest.Width).Should(Equal(before.Width))
	g.Expect(dest.X).Should(Equal(before.X))
	g.Expect(dest.Y).Should(Equal(before.Y))
}
