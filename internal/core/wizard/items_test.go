package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStore_Add(t *testing.T) {
	t.Run("assigns unique ids and trims fields", func(t *testing.T) {
		s := NewItemStore[Goal]()

		a := s.Add(Goal{Title: "  Launch MVP  ", SuccessCriteria: " Ship demo "})
		b := s.Add(Goal{Title: "Write docs", SuccessCriteria: "README done"})

		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, b.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, "Launch MVP", a.Title)
		assert.Equal(t, "Ship demo", a.SuccessCriteria)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := NewItemStore[Constraint]()
		s.Add(Constraint{Text: "first"})
		s.Add(Constraint{Text: "second"})
		s.Add(Constraint{Text: "third"})

		items := s.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "first", items[0].Text)
		assert.Equal(t, "second", items[1].Text)
		assert.Equal(t, "third", items[2].Text)
	})

	t.Run("stores invalid entries without error", func(t *testing.T) {
		// Validity is evaluated downstream, not enforced at storage time.
		s := NewItemStore[Goal]()
		g := s.Add(Goal{Title: "   "})

		assert.False(t, g.Valid())
		assert.Equal(t, 1, s.Len())
	})
}

func TestItemStore_Update(t *testing.T) {
	t.Run("merges and trims, keeping the id", func(t *testing.T) {
		s := NewItemStore[Goal]()
		g := s.Add(Goal{Title: "Launch", SuccessCriteria: "Shipped"})

		s.Update(g.ID, func(cur Goal) Goal {
			cur.Title = "  Launch v2  "
			return cur
		})

		got, ok := s.Get(g.ID)
		require.True(t, ok)
		assert.Equal(t, g.ID, got.ID)
		assert.Equal(t, "Launch v2", got.Title)
		assert.Equal(t, "Shipped", got.SuccessCriteria)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := NewItemStore[Goal]()
		s.Add(Goal{Title: "Launch", SuccessCriteria: "Shipped"})

		s.Update("missing", func(cur Goal) Goal {
			cur.Title = "changed"
			return cur
		})

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Launch", items[0].Title)
	})

	t.Run("id cannot be overwritten through the update fn", func(t *testing.T) {
		s := NewItemStore[Goal]()
		g := s.Add(Goal{Title: "Launch", SuccessCriteria: "Shipped"})

		s.Update(g.ID, func(cur Goal) Goal {
			cur.ID = "forged"
			return cur
		})

		_, ok := s.Get("forged")
		assert.False(t, ok)
		_, ok = s.Get(g.ID)
		assert.True(t, ok)
	})
}

func TestItemStore_Remove(t *testing.T) {
	t.Run("removes and preserves order of the rest", func(t *testing.T) {
		s := NewItemStore[Constraint]()
		s.Add(Constraint{Text: "a"})
		b := s.Add(Constraint{Text: "b"})
		s.Add(Constraint{Text: "c"})

		s.Remove(b.ID)

		items := s.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].Text)
		assert.Equal(t, "c", items[1].Text)
	})

	t.Run("operations after remove referencing the id are no-ops", func(t *testing.T) {
		s := NewItemStore[Constraint]()
		c := s.Add(Constraint{Text: "a"})

		s.Remove(c.ID)
		s.Remove(c.ID)
		s.Update(c.ID, func(cur Constraint) Constraint {
			cur.Text = "ghost"
			return cur
		})

		assert.Equal(t, 0, s.Len())
	})
}

func TestItemStore_ItemsIsACopy(t *testing.T) {
	s := NewItemStore[Constraint]()
	s.Add(Constraint{Text: "a"})

	items := s.Items()
	items[0].Text = "mutated"

	assert.Equal(t, "a", s.Items()[0].Text)
}
