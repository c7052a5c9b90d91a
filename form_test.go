package fra

import (
	"errors"
	"slices"
	"testing"
)

func TestParseField(t *testing.T) {
	testCases := map[string]Field{
		"name":          FieldName,
		"ca":            FieldCurrentAssets,
		"CL":            FieldCurrentLiabilities,
		"totalDebt":     FieldTotalDebt,
		"eq":            FieldEquity,
		"id":            FieldID,
		"currentassets": FieldCurrentAssets,
	}
	for name, want := range testCases {
		got, err := ParseField(name)
		if err != nil || got != want {
			t.Errorf("ParseField(%q) = %v, %v, want %v", name, got, err, want)
		}
	}
	if _, err := ParseField("price"); err == nil {
		t.Errorf("ParseField(price) should fail")
	}
}

func TestForm_ChangeNotifies(t *testing.T) {
	f := NewForm()
	var previews []Preview
	var order []string
	f.OnChange(func(p Preview) {
		previews = append(previews, p)
		order = append(order, "first")
	})
	f.OnChange(func(Preview) { order = append(order, "second") })

	f.Set(FieldCurrentAssets, "200")
	f.Set(FieldCurrentLiabilities, "100")
	f.Set(FieldTotalDebt, "abc")
	f.Set(FieldEquity, "-5")

	if len(previews) != 4 {
		t.Fatalf("listener called %d times, want 4", len(previews))
	}
	if want := []string{"first", "second", "first", "second", "first", "second", "first", "second"}; !slices.Equal(order, want) {
		t.Errorf("listeners order = %v, want %v", order, want)
	}
	if got := previews[0].CurrentRatio; !got.Equal(Unbounded) {
		t.Errorf("after assets only, current ratio = %v, want %v", got, Unbounded)
	}
	last := previews[3]
	if !last.CurrentRatio.Equal(200) || !last.DebtRatio.Equal(0) {
		t.Errorf("last preview ratios = (%v, %v), want (200, 0)", last.CurrentRatio, last.DebtRatio)
	}
	if !last.TotalDebt.IsZero() || !last.Equity.IsZero() {
		t.Errorf("invalid figures must read as 0, got %s and %s", last.TotalDebt, last.Equity)
	}
}

func TestForm_SubmitRequiresName(t *testing.T) {
	s, mem := newTestStore("")
	f := NewForm()
	f.Set(FieldName, "   ")
	f.Set(FieldCurrentAssets, "10")

	if _, err := f.Submit(s); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("Submit() error = %v, want ErrNameRequired", err)
	}
	if mem.Saves() != 0 || len(s.List()) != 0 {
		t.Errorf("a rejected submit changed the store")
	}
	if f.ID() != "" {
		t.Errorf("a rejected submit changed the form id to %q", f.ID())
	}
}

func TestForm_SubmitCreatesThenUpdates(t *testing.T) {
	s, _ := newTestStore("")
	f := NewForm()
	f.Set(FieldName, " ACME ")
	f.Set(FieldCurrentAssets, "200")
	f.Set(FieldCurrentLiabilities, "100")
	f.Set(FieldTotalDebt, "50")
	f.Set(FieldEquity, "200")

	id, err := f.Submit(s)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if f.ID() != id {
		t.Errorf("form id = %q, want %q", f.ID(), id)
	}

	f.Set(FieldTotalDebt, "300")
	id2, err := f.Submit(s)
	if err != nil {
		t.Fatalf("second Submit() failed: %v", err)
	}
	if id2 != id {
		t.Errorf("second Submit() = %q, want the same id %q", id2, id)
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(list))
	}
	r := list[0]
	if r.Name != "ACME" || !r.DebtRatio.Equal(150) || !r.CurrentRatio.Equal(200) {
		t.Errorf("stored record = %+v", r)
	}
}

func TestForm_ResetAndLoad(t *testing.T) {
	f := NewForm()
	var last Preview
	f.OnChange(func(p Preview) { last = p })

	f.Load(NewRecord("x", "ACME", Figures{A(150), A(0), A(0), A(0)}))
	if f.ID() != "x" || f.Get(FieldName) != "ACME" || f.Get(FieldCurrentAssets) != "150" {
		t.Errorf("Load() fields = %q %q %q", f.ID(), f.Get(FieldName), f.Get(FieldCurrentAssets))
	}
	if !last.CurrentRatio.Equal(Unbounded) || !last.DebtRatio.Equal(0) {
		t.Errorf("Load() preview = (%v, %v), want (999.9, 0)", last.CurrentRatio, last.DebtRatio)
	}

	f.Reset()
	for field := FieldID; field < numFields; field++ {
		if f.Get(field) != "" {
			t.Errorf("Reset() left %v = %q", field, f.Get(field))
		}
	}
	if !last.CurrentRatio.Equal(0) || !last.DebtRatio.Equal(0) {
		t.Errorf("Reset() preview = (%v, %v), want (0, 0)", last.CurrentRatio, last.DebtRatio)
	}
}

func TestForm_EditAndDelete(t *testing.T) {
	s, _ := newTestStore("")
	a, _ := s.Upsert(NewRecord("", "A", Figures{A(1), A(1), A(1), A(1)}))
	b, _ := s.Upsert(NewRecord("", "B", Figures{A(2), A(1), A(1), A(1)}))

	f := NewForm()
	if f.Edit(s, "missing") {
		t.Errorf("Edit(missing) = true")
	}
	if !f.Edit(s, b) || f.Get(FieldName) != "B" {
		t.Fatalf("Edit(%q) did not load B", b)
	}

	if err := f.Delete(s, a); err != nil {
		t.Fatalf("Delete(%q) failed: %v", a, err)
	}
	if f.ID() != b {
		t.Errorf("deleting another record cleared the form")
	}

	if err := f.Delete(s, b); err != nil {
		t.Fatalf("Delete(%q) failed: %v", b, err)
	}
	if f.ID() != "" || f.Get(FieldName) != "" {
		t.Errorf("deleting the loaded record must clear the form")
	}
	if len(s.List()) != 0 {
		t.Errorf("List() = %v, want empty", s.List())
	}
}
