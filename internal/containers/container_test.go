package containers

import (
	"testing"

	. "github.com/onsi/gomega"

	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/synctest"
)

func buildSnapshot() *v1.Snapshot {
	page := synctest.Page("page-1", synctest.Node{
		ID: "root", Children: []synctest.Node{
			{ID: "a", Children: []synctest.Node{{ID: "b"}}},
			{ID: "c"},
		},
	})
	return synctest.NewSnapshot("local").WithPage(page).Build()
}

func TestGetContainer(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildSnapshot()

	page := GetContainer(snap, "page-1", "")
	g.Expect(page).ShouldNot(BeNil())
	g.Expect(page.ContainerID()).Should(Equal("page-1"))

	g.Expect(GetContainer(snap, "missing", "")).Should(BeNil())
	g.Expect(GetContainer(snap, "", "missing")).Should(BeNil())
}

func TestGetShape(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildSnapshot()
	page := GetContainer(snap, "page-1", "")

	g.Expect(GetShape(page, "a").ID).Should(Equal("a"))
	g.Expect(GetShape(page, "missing")).Should(BeNil())
	g.Expect(GetShape(nil, "a")).Should(BeNil())
}

func TestGetChildren(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildSnapshot()
	page := GetContainer(snap, "page-1", "")

	children := GetChildren("root", page.GetObjects())
	g.Expect(children).Should(HaveLen(2))
	g.Expect(children[0].ID).Should(Equal("a"))
	g.Expect(children[1].ID).Should(Equal("c"))

	g.Expect(GetChildren("b", page.GetObjects())).Should(BeEmpty())
	g.Expect(GetChildren("missing", page.GetObjects())).Should(BeNil())
}

func TestGetParents(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildSnapshot()
	objects := GetContainer(snap, "page-1", "").GetObjects()

	g.Expect(GetParents("b", objects)).Should(Equal([]string{"a", "root"}))
	g.Expect(GetParents("root", objects)).Should(BeEmpty())
}

func TestPositionOnParent(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildSnapshot()
	objects := GetContainer(snap, "page-1", "").GetObjects()

	g.Expect(PositionOnParent("a", objects)).Should(Equal(0))
	g.Expect(PositionOnParent("c", objects)).Should(Equal(1))
	g.Expect(PositionOnParent("root", objects)).Should(Equal(-1))
	g.Expect(PositionOnParent("missing", objects)).Should(Equal(-1))
}

func TestIsMasterOf(t *testing.T) {
	g := NewGomegaWithT(t)
	master := &v1.Shape{ID: "m1"}
	instance := &v1.Shape{ShapeRef: "m1"}
	g.Expect(IsMasterOf(master, instance)).Should(BeTrue())
	g.Expect(IsMasterOf(master, &v1.Shape{ShapeRef: "other"})).Should(BeFalse())
	g.Expect(IsMasterOf(nil, instance)).Should(BeFalse())
}

func TestCloneObjectAssignsFreshIDsAndInvokesHooks(t *testing.T) {
	g := NewGomegaWithT(t)
	objects := map[string]*v1.Shape{}
	root := synctest.Build(objects, "old-parent", "frame-1", synctest.Node{
		ID: "r", Children: []synctest.Node{{ID: "child"}},
	})

	ids := []string{"new-r", "new-child"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	var transformed []string
	newRoot, created, _ := CloneObject(root, "new-parent", objects, gen,
		func(clone, original *v1.Shape) {
			clone.ShapeRef = original.ID
			transformed = append(transformed, clone.ID)
		}, nil)

	g.Expect(newRoot.ID).Should(Equal("new-r"))
	g.Expect(newRoot.ParentID).Should(Equal("new-parent"))
	g.Expect(newRoot.ShapeRef).Should(Equal("r"))
	g.Expect(created).Should(HaveLen(2))
	g.Expect(created[0].ID).Should(Equal("new-r"))
	g.Expect(created[1].ID).Should(Equal("new-child"))
	g.Expect(created[1].ParentID).Should(Equal("new-r"))
	g.Expect(created[1].ShapeRef).Should(Equal("child"))
	g.Expect(newRoot.Shapes).Should(Equal([]string{"new-child"}))
	g.Expect(transformed).Should(Equal([]string{"new-r", "new-child"}))

	// The original tree is untouched aside from what transformOriginal (nil here) would have done.
	g.Expect(root.ID).Should(Equal("r"))
}

func TestCloneObjectNilRoot(t *testing.T) {
	g := NewGomegaWithT(t)
	newRoot, created, updated := CloneObject(nil, "p", map[string]*v1.Shape{}, NewShapeID, nil, nil)
	g.Expect(newRoot).Should(BeNil())
	g.Expect(created).Should(BeNil())
	g.Expect(updated).Should(BeNil())
}
