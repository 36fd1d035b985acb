package spec

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	req := Default()
	if req.Type != TypeSeaside || req.Seed != 1234 || req.Width != 256 || req.Height != 256 {
		t.Errorf("unexpected defaults: %+v", req)
	}
}

func TestNormalizedType(t *testing.T) {
	req := MapRequest{Type: "RiVeR"}
	if req.NormalizedType() != "river" {
		t.Errorf("NormalizedType() = %q", req.NormalizedType())
	}
	if !req.IsKnownType() {
		t.Error("mixed-case river should be a known type")
	}
	if (MapRequest{Type: "swamp"}).IsKnownType() {
		t.Error("swamp should not be a known type")
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	yaml := "type: lake\nseed: 42\nwidth: 64\nheight: 64\n"
	if err := os.WriteFile(filepath.Join(dir, "map.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if req.Type != "lake" || req.Seed != 42 || req.Width != 64 || req.Height != 64 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestLoadKeepsDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "map.yaml"), []byte("type: river\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if req.Type != "river" {
		t.Errorf("type = %q, want river", req.Type)
	}
	if req.Seed != 1234 || req.Width != 256 || req.Height != 256 {
		t.Errorf("unset fields should keep defaults: %+v", req)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Fatal("expected error for missing map.yaml")
	}
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	cases := []MapRequest{
		{Type: TypeLake, Width: 0, Height: 64},
		{Type: TypeLake, Width: 64, Height: 0},
		{Type: TypeLake, Width: -1, Height: -1},
	}
	for _, req := range cases {
		if r := Validate(&req); r.Valid {
			t.Errorf("Validate(%+v) should fail", req)
		}
	}
}

func TestValidateAcceptsGoodRequest(t *testing.T) {
	req := MapRequest{Type: TypeSeaside, Seed: 1, Width: 128, Height: 128}
	r := Validate(&req)
	if !r.Valid {
		t.Fatalf("Validate failed: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestValidateWarnsOnUnknownType(t *testing.T) {
	req := MapRequest{Type: "swamp", Seed: 1, Width: 64, Height: 64}
	r := Validate(&req)
	if !r.Valid {
		t.Fatal("unknown type must not be an error")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning for unknown type")
	}
}

func TestValidateWarnsOnTinyMap(t *testing.T) {
	req := MapRequest{Type: TypeRiver, Seed: 1, Width: 8, Height: 8}
	r := Validate(&req)
	if !r.Valid {
		t.Fatal("tiny maps are allowed, only warned about")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning for sub-minimal dimensions")
	}
}
