package metaweight

import "github.com/kent-wong/my-processing/pkg/session"
import "testing"

// TestChainWeightsDescendBaseFirst builds A <- B <- C (C extends B extends
// A) registered in reverse declaration order, the shape spec.md §8's
// scenario 8 describes, and checks the weights come out monotonically
// increasing from the most-derived class toward its root base, so
// OrderDescending always emits a base before anything that extends it.
func TestChainWeightsDescendBaseFirst(t *testing.T) {
	sess := session.New()
	a := sess.Register("A", -1, false)
	b := sess.Register("B", -1, false)
	c := sess.Register("C", -1, false)
	b.BaseName = "A"
	c.BaseName = "B"
	_ = a

	Weigh(sess)

	if a.Weight <= b.Weight || b.Weight <= c.Weight {
		t.Fatalf("expected A > B > C in weight, got A=%d B=%d C=%d", a.Weight, b.Weight, c.Weight)
	}

	order := OrderDescending(sess, []int{c.ID, b.ID, a.ID})
	if order[0] != a.ID || order[1] != b.ID || order[2] != c.ID {
		t.Fatalf("expected emission order A,B,C, got %v", order)
	}
}

// TestUnrelatedClassesStayAtZero checks that classes with no base, no
// interfaces and nothing deriving from them all settle at weight 0 (the
// worklist's seed condition).
func TestUnrelatedClassesStayAtZero(t *testing.T) {
	sess := session.New()
	x := sess.Register("X", -1, false)
	y := sess.Register("Y", -1, false)

	Weigh(sess)

	if x.Weight != 0 || y.Weight != 0 {
		t.Fatalf("expected both at weight 0, got X=%d Y=%d", x.Weight, y.Weight)
	}
}

// TestInterfaceImplementorsOutweighTheirInterface mirrors the base-class
// case for `implements`: an interface with an implementor must weigh less
// than that implementor.
func TestInterfaceImplementorsOutweighTheirInterface(t *testing.T) {
	sess := session.New()
	iface := sess.Register("Drawable", -1, true)
	impl := sess.Register("Shape", -1, false)
	impl.InterfaceNames = []string{"Drawable"}

	Weigh(sess)

	if iface.Weight <= impl.Weight {
		t.Fatalf("expected interface weight > implementor weight, got iface=%d impl=%d", iface.Weight, impl.Weight)
	}
}

// TestEnclosingScopeOutweighsInnerClass checks the scope-parent edge: the
// outer class counts on its inner class the same way a base counts on its
// subclasses (the outer scope isn't done weighing until its inner class
// is), so the outer class weighs strictly more than its inner class.
func TestEnclosingScopeOutweighsInnerClass(t *testing.T) {
	sess := session.New()
	outer := sess.Register("Outer", -1, false)
	inner := sess.Register("Inner", outer.ID, false)
	_ = inner

	Weigh(sess)

	if outer.Weight <= inner.Weight {
		t.Fatalf("expected outer weight > inner weight, got outer=%d inner=%d", outer.Weight, inner.Weight)
	}
}
