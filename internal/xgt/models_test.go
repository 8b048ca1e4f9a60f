package xgt

import "testing"

func TestDefaultModelMatchesDefaultMemorySize(t *testing.T) {
	m, err := LookupModel(DefaultModel, nil)
	if err != nil {
		t.Fatalf("LookupModel(%q) error: %v", DefaultModel, err)
	}
	if m.MemorySizeBits != DefaultMemorySize {
		t.Errorf("default model size = %d, want %d", m.MemorySizeBits, DefaultMemorySize)
	}
}

func TestLookupModel(t *testing.T) {
	m, err := LookupModel("xgk-cpuu", nil)
	if err != nil {
		t.Fatalf("LookupModel error: %v", err)
	}
	if m.Name != "XGK-CPUU" || m.MemorySizeBits != 32768 {
		t.Errorf("got %+v", m)
	}
	if _, err := LookupModel("nope", nil); err == nil {
		t.Error("expected error for unknown model")
	}

	custom := []Model{{Name: "LAB", MemorySizeBits: 256}}
	m, err = LookupModel("lab", custom)
	if err != nil || m.MemorySizeBits != 256 {
		t.Errorf("LookupModel(lab, custom) = %+v, %v", m, err)
	}
}

func TestModelsSorted(t *testing.T) {
	models := Models()
	for i := 1; i < len(models); i++ {
		if models[i-1].Name > models[i].Name {
			t.Errorf("models not sorted: %s before %s", models[i-1].Name, models[i].Name)
		}
	}
	models[0].Name = "changed"
	if Models()[0].Name == "changed" {
		t.Error("Models returned the shared table")
	}
}

func TestMergeModels(t *testing.T) {
	merged := MergeModels([]Model{
		{Name: "xgk-cpuu", MemorySizeBits: 999},
		{Name: "LAB", MemorySizeBits: 256},
	})
	if len(merged) != len(builtinModels)+1 {
		t.Fatalf("len = %d, want %d", len(merged), len(builtinModels)+1)
	}
	m, err := LookupModel("XGK-CPUU", merged)
	if err != nil || m.MemorySizeBits != 999 {
		t.Errorf("override not applied: %+v, %v", m, err)
	}
}
