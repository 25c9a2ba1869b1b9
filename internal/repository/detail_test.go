package repository

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestBundledDetails(t *testing.T) {
	r := NewDetailRepository(filepath.Join("..", "..", "assets", "data", "divine_names.json"), zap.NewNop())
	if r.Len() == 0 {
		t.Fatal("no bundled details")
	}

	d, ok := r.GetDetail(1)
	if !ok {
		t.Fatal("detail for 1 missing")
	}
	if d.Name != "Ar Rahmaan" || d.ArabicText == "" || d.AdditionalInfo != nil {
		t.Errorf("detail 1 = %+v", d)
	}

	d, ok = r.GetDetail(2)
	if !ok || d.AdditionalInfo == nil {
		t.Errorf("detail 2 additional info missing: %+v", d)
	}

	if _, ok := r.GetDetail(50); ok {
		t.Error("detail 50 should not be available")
	}
}

func TestDetailLoadFailure(t *testing.T) {
	r := NewDetailRepository(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
	if _, ok := r.GetDetail(1); ok {
		t.Error("empty repository returned a detail")
	}
}
