package ports

import (
	"context"
	"testing"
)

// RunAnswerStoreContract verifies that an adapter complies with the
// AnswerStore semantics. Adapter test files call it against a fresh
// store instance.
func RunAnswerStoreContract(t *testing.T, store AnswerStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetField_Unset", func(t *testing.T) {
		val, err := store.GetField(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "" {
			t.Errorf("expected empty default, got %q", val)
		}
	})

	t.Run("SetField_RoundTrip", func(t *testing.T) {
		if err := store.SetField(ctx, "scalar", "hello"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		val, err := store.GetField(ctx, "scalar")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if val != "hello" {
			t.Errorf("got %q, want %q", val, "hello")
		}
	})

	t.Run("SetField_Overwrite", func(t *testing.T) {
		if err := store.SetField(ctx, "scalar", "second"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		val, _ := store.GetField(ctx, "scalar")
		if val != "second" {
			t.Errorf("got %q, want %q", val, "second")
		}
	})

	t.Run("List_AppendAndRead", func(t *testing.T) {
		for i, item := range []string{"a", "b", "c"} {
			n, err := store.AppendItem(ctx, "list", item)
			if err != nil {
				t.Fatalf("append failed: %v", err)
			}
			if n != int64(i+1) {
				t.Errorf("append returned length %d, want %d", n, i+1)
			}
		}

		items, err := store.ListItems(ctx, "list", 0, -1)
		if err != nil {
			t.Fatalf("range failed: %v", err)
		}
		if len(items) != 3 || items[0] != "a" || items[1] != "b" || items[2] != "c" {
			t.Errorf("wrong items: %v", items)
		}

		n, err := store.ListLen(ctx, "list")
		if err != nil {
			t.Fatalf("len failed: %v", err)
		}
		if n != 3 {
			t.Errorf("got length %d, want 3", n)
		}
	})

	t.Run("List_PartialRange", func(t *testing.T) {
		items, err := store.ListItems(ctx, "list", 1, 2)
		if err != nil {
			t.Fatalf("range failed: %v", err)
		}
		if len(items) != 2 || items[0] != "b" || items[1] != "c" {
			t.Errorf("wrong slice: %v", items)
		}
	})

	t.Run("List_Unset", func(t *testing.T) {
		items, err := store.ListItems(ctx, "no-such-list", 0, -1)
		if err != nil {
			t.Fatalf("range failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty list, got %v", items)
		}
		n, err := store.ListLen(ctx, "no-such-list")
		if err != nil {
			t.Fatalf("len failed: %v", err)
		}
		if n != 0 {
			t.Errorf("expected zero length, got %d", n)
		}
	})

	t.Run("TrimList", func(t *testing.T) {
		if err := store.TrimList(ctx, "list", 2); err != nil {
			t.Fatalf("trim failed: %v", err)
		}
		items, _ := store.ListItems(ctx, "list", 0, -1)
		if len(items) != 2 || items[0] != "a" || items[1] != "b" {
			t.Errorf("wrong items after trim: %v", items)
		}

		// Trimming to zero removes the list entirely.
		if err := store.TrimList(ctx, "list", 0); err != nil {
			t.Fatalf("trim to zero failed: %v", err)
		}
		n, _ := store.ListLen(ctx, "list")
		if n != 0 {
			t.Errorf("expected empty list after zero trim, got %d items", n)
		}
	})

	t.Run("Flush", func(t *testing.T) {
		_ = store.SetField(ctx, "scalar", "survivor?")
		_, _ = store.AppendItem(ctx, "list", "x")

		if err := store.Flush(ctx); err != nil {
			t.Fatalf("flush failed: %v", err)
		}

		val, _ := store.GetField(ctx, "scalar")
		if val != "" {
			t.Errorf("scalar survived flush: %q", val)
		}
		n, _ := store.ListLen(ctx, "list")
		if n != 0 {
			t.Errorf("list survived flush: %d items", n)
		}
	})
}
