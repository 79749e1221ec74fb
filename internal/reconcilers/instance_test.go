package reconcilers

import (
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/gomega"

	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/synctest"
)

func buildInstanceSnapshot() *v1.Snapshot {
	component := synctest.Component("comp-1", "", synctest.Node{
		ID: "master-root", X: 100, Y: 200, Width: 50,
		Children: []synctest.Node{
			{ID: "master-child", X: 150, Y: 230, Width: 10},
		},
	})
	page := synctest.Page("page-1", synctest.Node{
		ID: "page-root", Children: []synctest.Node{
			{
				ID: "inst-root", X: 300, Y: 400, Width: 50,
				ComponentID: "comp-1", ShapeRef: "master-root",
				Children: []synctest.Node{
					{ID: "inst-child", X: 350, Y: 430, Width: 10, ShapeRef: "master-child"},
				},
			},
		},
	})
	return synctest.NewSnapshot("local").WithPage(page).WithComponent(component).Build()
}

func TestSyncShapeAndChildrenEmptyOnNoOp(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildInstanceSnapshot()

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", false, logr.Discard())
	g.Expect(pair.Empty()).Should(BeTrue())
}

func TestSyncShapeAndChildrenPropagatesMasterAttrChange(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildInstanceSnapshot()
	snap.WorkspaceData.LibraryData.Components["comp-1"].Objects["master-child"].Width = 99

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", false, logr.Discard())
	g.Expect(pair.Empty()).Should(BeFalse())

	var sawWidthChange bool
	for _, c := range pair.Redo {
		if c.ID != "inst-child" {
			continue
		}
		for _, op := range c.Operations {
			if op.Attr == "width" && op.Val == 99.0 {
				sawWidthChange = true
			}
		}
	}
	g.Expect(sawWidthChange).Should(BeTrue())
}

func TestSyncShapeAndChildrenHonorsTouchedGroup(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildInstanceSnapshot()
	snap.WorkspaceData.LibraryData.Components["comp-1"].Objects["master-child"].Width = 99
	snap.WorkspaceData.Pages["page-1"].Objects["inst-child"].SetTouched("geometry")

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", false, logr.Discard())

	for _, c := range pair.Redo {
		if c.ID != "inst-child" {
			continue
		}
		for _, op := range c.Operations {
			g.Expect(op.Attr).ShouldNot(Equal("width"))
		}
	}
}

func TestSyncShapeAndChildrenResetOverridesTouched(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildInstanceSnapshot()
	snap.WorkspaceData.LibraryData.Components["comp-1"].Objects["master-child"].Width = 99
	snap.WorkspaceData.Pages["page-1"].Objects["inst-child"].SetTouched("geometry")

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", true, logr.Discard())

	var sawWidthChange bool
	for _, c := range pair.Redo {
		if c.ID != "inst-child" {
			continue
		}
		for _, op := range c.Operations {
			if op.Attr == "width" && op.Val == 99.0 {
				sawWidthChange = true
			}
		}
	}
	g.Expect(sawWidthChange).Should(BeTrue())
}

func TestSyncShapeAndChildrenAddsMasterOnlyChild(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildInstanceSnapshot()
	comp := snap.WorkspaceData.LibraryData.Components["comp-1"]
	newMasterChild := synctest.Build(comp.Objects, "master-root", "", synctest.Node{ID: "master-new"})
	comp.Objects["master-root"].Shapes = append(comp.Objects["master-root"].Shapes, newMasterChild.ID)

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", false, logr.Discard())

	var addedParent string
	for _, c := range pair.Redo {
		if c.Kind == v1.KindAddObj {
			addedParent = c.ParentID
		}
	}
	g.Expect(addedParent).Should(Equal("inst-root"))
}

func TestSyncShapeAndChildrenReordersMovedChild(t *testing.T) {
	g := NewGomegaWithT(t)
	component := synctest.Component("comp-1", "", synctest.Node{
		ID: "master-root",
		Children: []synctest.Node{
			{ID: "master-a"},
			{ID: "master-b"},
			{ID: "master-c"},
		},
	})
	page := synctest.Page("page-1", synctest.Node{
		ID: "page-root", Children: []synctest.Node{
			{
				ID: "inst-root", ComponentID: "comp-1", ShapeRef: "master-root",
				Children: []synctest.Node{
					{ID: "inst-a", ShapeRef: "master-a"},
					{ID: "inst-c", ShapeRef: "master-c"},
					{ID: "inst-b", ShapeRef: "master-b"},
				},
			},
		},
	})
	snap := synctest.NewSnapshot("local").WithPage(page).WithComponent(component).Build()

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", false, logr.Discard())
	g.Expect(pair.Empty()).Should(BeFalse())

	var redoMove, undoMove *v1.Change
	for i, c := range pair.Redo {
		if c.Kind == v1.KindMovObjects {
			redoMove = &pair.Redo[i]
		}
	}
	for i, c := range pair.Undo {
		if c.Kind == v1.KindMovObjects {
			undoMove = &pair.Undo[i]
		}
	}
	g.Expect(redoMove).ShouldNot(BeNil())
	g.Expect(undoMove).ShouldNot(BeNil())

	g.Expect(redoMove.ParentID).Should(Equal("inst-root"))
	g.Expect(redoMove.Shapes).Should(Equal([]string{"inst-b"}))
	g.Expect(*redoMove.Index).Should(Equal(1))
	g.Expect(*undoMove.Index).Should(Equal(2))

	for _, c := range pair.Redo {
		g.Expect(c.Kind).ShouldNot(Equal(v1.KindAddObj))
		g.Expect(c.Kind).ShouldNot(Equal(v1.KindDelObj))
	}
}

func TestSyncShapeAndChildrenRemovesInstanceOnlyChild(t *testing.T) {
	g := NewGomegaWithT(t)
	snap := buildInstanceSnapshot()
	page := snap.WorkspaceData.Pages["page-1"]
	extra := synctest.Build(page.Objects, "inst-root", "page-root", synctest.Node{ID: "inst-extra", ShapeRef: "does-not-exist"})
	page.Objects["inst-root"].Shapes = append(page.Objects["inst-root"].Shapes, extra.ID)

	pair := SyncShapeAndChildren(snap, "page-1", "", "inst-root", false, logr.Discard())

	var sawDelete bool
	for _, c := range pair.Redo {
		if c.Kind == v1.KindDelObj && c.ID == "inst-extra" {
			sawDelete = true
		}
	}
	g.Expect(sawDelete).Should(BeTrue())
}
