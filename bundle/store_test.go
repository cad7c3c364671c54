package bundle_test

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"frep/bundle"
	"frep/tree"
)

func TestStorePutGet(t *testing.T) {
	c := tree.NewCache()
	b, err := bundle.Pack(circle(c))
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	s := bundle.NewStore()
	s.Put(b)
	got, ok := s.Get(b.Digest)
	if !ok || got != b {
		t.Fatalf("stored bundle not found")
	}
	if _, ok := s.Get(bundle.Digest{}); ok {
		t.Fatalf("zero digest must not resolve")
	}
}

func TestNilStoreIsEmpty(t *testing.T) {
	var s *bundle.Store
	s.Put(&bundle.Bundle{})
	if _, ok := s.Get(bundle.Digest{}); ok {
		t.Fatalf("nil store must stay empty")
	}
	if s.Len() != 0 {
		t.Fatalf("nil store must report zero length")
	}
}

// The store is the one concurrency-safe piece of the module; trees and
// caches stay single-goroutine, so all bundles are built up front and
// only the registry is shared.
func TestStoreConcurrentAccess(t *testing.T) {
	const n = 64
	bundles := make([]*bundle.Bundle, n)
	for i := range bundles {
		c := tree.NewCache()
		tpl := tree.NewTemplate(c.Add(c.X(), c.Constant(float64(i))))
		tpl.Name = fmt.Sprintf("shape-%d", i)
		b, err := bundle.Pack(tpl)
		if err != nil {
			t.Fatalf("pack %d: %v", i, err)
		}
		bundles[i] = b
	}

	s := bundle.NewStore()
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for _, b := range bundles {
				s.Put(b)
				if got, ok := s.Get(b.Digest); ok && got.Digest != b.Digest {
					return fmt.Errorf("digest mismatch for %s", b.Name)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent access: %v", err)
	}
	if s.Len() != n {
		t.Fatalf("expected %d bundles, got %d", n, s.Len())
	}
}
