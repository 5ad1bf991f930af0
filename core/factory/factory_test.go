package factory

import "testing"

/*
TestRegistry covers the registry lifecycle.

	Cases:
	- register and create a module
	- duplicate registration is rejected
	- nil factory is rejected
	- unknown type returns an error
*/
func TestRegistry(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("one", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("one", func(map[string]any) (int, error) { return 1, nil }); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := reg.Register("nil", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	v, err := reg.Create(ModuleConfig{Type: "one"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if _, err := reg.Create(ModuleConfig{Type: "missing"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}

/*
TestDecode verifies json-tag decoding of raw settings.
*/
func TestDecode(t *testing.T) {
	var out struct {
		Path string `json:"path"`
	}
	if err := Decode(map[string]any{"path": "data.csv"}, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Path != "data.csv" {
		t.Fatalf("expected data.csv, got %s", out.Path)
	}
}
