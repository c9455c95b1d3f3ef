package layer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"logging":  map[string]any{"level": "info"},
		"markdown": map[string]any{"bold": "**", "italic": "*"},
	}
	src := map[string]any{
		"markdown": map[string]any{"bold": "__"},
		"lua":      map[string]any{"callLimit": 10},
	}

	got := DeepMerge(dst, src)
	want := map[string]any{
		"logging":  map[string]any{"level": "info"},
		"markdown": map[string]any{"bold": "__", "italic": "*"},
		"lua":      map[string]any{"callLimit": 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeepMerge mismatch (-want +got):\n%s", diff)
	}

	// src values are copied, not shared.
	src["lua"].(map[string]any)["callLimit"] = 99
	if v, _ := GetByPath(got, "lua.callLimit"); v != 10 {
		t.Errorf("merged value changed with src: %v", v)
	}
}

func TestDeepMergeReplacesNonMaps(t *testing.T) {
	got := DeepMerge(
		map[string]any{"a": map[string]any{"b": 1}},
		map[string]any{"a": "flat"},
	)
	if got["a"] != "flat" {
		t.Errorf("a = %v, want flat", got["a"])
	}
}

func TestPaths(t *testing.T) {
	data := map[string]any{}
	SetByPath(data, "lua.capabilities", []any{"clipboard"})
	SetByPath(data, "lua.timeout", "2s")
	SetByPath(data, "", "ignored")

	if v, ok := GetByPath(data, "lua.timeout"); !ok || v != "2s" {
		t.Errorf("GetByPath(lua.timeout) = %v, %v", v, ok)
	}
	if _, ok := GetByPath(data, "lua.timeout.deeper"); ok {
		t.Error("GetByPath through a leaf should fail")
	}
	if _, ok := GetByPath(data, "missing"); ok {
		t.Error("GetByPath(missing) should fail")
	}

	want := map[string]any{
		"lua.capabilities": []any{"clipboard"},
		"lua.timeout":      "2s",
	}
	if diff := cmp.Diff(want, FlattenMap(data)); diff != "" {
		t.Errorf("FlattenMap mismatch (-want +got):\n%s", diff)
	}
}

func TestManagerPrecedence(t *testing.T) {
	m := NewManager()
	m.AddLayer(NewLayerWithData(SourceEnv, map[string]any{
		"logging": map[string]any{"level": "debug"},
	}))
	m.AddLayer(NewLayerWithData(SourceBuiltin, map[string]any{
		"logging":  map[string]any{"level": "info"},
		"sections": map[string]any{"responseSeparator": "---"},
	}))
	m.AddLayer(NewLayerWithData(SourceUserGlobal, map[string]any{
		"logging": map[string]any{"level": "warn"},
	}))

	val, src, ok := m.Get("logging.level")
	if !ok || val != "debug" || src.Source != SourceEnv {
		t.Errorf("Get(logging.level) = %v from %v", val, src)
	}
	val, src, ok = m.Get("sections.responseSeparator")
	if !ok || val != "---" || src.Name != "defaults" {
		t.Errorf("Get(sections.responseSeparator) = %v from %v", val, src)
	}

	merged := m.Merge()
	if v, _ := GetByPath(merged, "logging.level"); v != "debug" {
		t.Errorf("merged logging.level = %v", v)
	}

	if !m.RemoveLayer("environment") {
		t.Fatal("RemoveLayer(environment) = false")
	}
	if v, _ := GetByPath(m.Merge(), "logging.level"); v != "warn" {
		t.Errorf("after removal logging.level = %v", v)
	}
}

func TestManagerSet(t *testing.T) {
	m := NewManager()
	m.AddLayer(NewLayerWithData(SourceBuiltin, map[string]any{"lua": map[string]any{"timeout": "5s"}}))
	m.Set(SourceArgs, "lua.timeout", "1s")

	if val, src, _ := m.Get("lua.timeout"); val != "1s" || src.Source != SourceArgs {
		t.Errorf("Get(lua.timeout) = %v from %v", val, src)
	}
	if len(m.Layers()) != 2 {
		t.Errorf("Layers() = %d, want 2", len(m.Layers()))
	}

	merged := m.Merge()
	SetByPath(merged, "lua.timeout", "mutated")
	if val, _, _ := m.Get("lua.timeout"); val != "1s" {
		t.Errorf("Merge result aliases layer data: %v", val)
	}
}

func TestManagerAddLayerReplacesByName(t *testing.T) {
	m := NewManager()
	m.AddLayer(NewLayerWithData(SourceFile, map[string]any{"a": 1}))
	m.AddLayer(NewLayerWithData(SourceFile, map[string]any{"a": 2}))

	if n := len(m.Layers()); n != 1 {
		t.Fatalf("Layers() = %d, want 1", n)
	}
	if val, _, _ := m.Get("a"); val != 2 {
		t.Errorf("a = %v, want 2", val)
	}
	if m.GetLayer("file").Clone().Data["a"] != 2 {
		t.Error("Clone lost data")
	}
}

func TestSourceString(t *testing.T) {
	if SourceEnv.String() != "environment" || Source(99).String() != "unknown" {
		t.Errorf("unexpected source names: %s %s", SourceEnv, Source(99))
	}
}

func TestSortedPaths(t *testing.T) {
	flat := FlattenMap(map[string]any{
		"lua":     map[string]any{"timeout": "5s", "callLimit": 1},
		"logging": map[string]any{"level": "info"},
		"empty":   map[string]any{},
	})
	want := []string{"empty", "logging.level", "lua.callLimit", "lua.timeout"}
	if diff := cmp.Diff(want, SortedPaths(flat)); diff != "" {
		t.Errorf("SortedPaths mismatch (-want +got):\n%s", diff)
	}
}

func TestSourcePriorities(t *testing.T) {
	order := []Source{SourceBuiltin, SourceUserGlobal, SourceFile, SourceEnv, SourceArgs}
	for i := 1; i < len(order); i++ {
		if order[i-1].Priority() >= order[i].Priority() {
			t.Errorf("%s priority %d not below %s priority %d",
				order[i-1], order[i-1].Priority(), order[i], order[i].Priority())
		}
	}
	if Source(42).LayerName() != "unknown" || Source(42).Priority() != PriorityBuiltin {
		t.Error("unknown source should fall back")
	}
}
