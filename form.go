package fra

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNameRequired is returned when submitting a form without a company name.
var ErrNameRequired = errors.New("company name is required")

// Field identifies an input of the Form.
type Field int

const (
	FieldID Field = iota
	FieldName
	FieldCurrentAssets
	FieldCurrentLiabilities
	FieldTotalDebt
	FieldEquity
	numFields
)

var fieldNames = [numFields]string{"id", "name", "currentAssets", "currentLiabilities", "totalDebt", "equity"}

// short names accepted by ParseField, besides the json ones.
var fieldAliases = map[string]Field{
	"ca": FieldCurrentAssets,
	"cl": FieldCurrentLiabilities,
	"td": FieldTotalDebt,
	"eq": FieldEquity,
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField returns the field for its name or its short alias.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return Field(i), nil
		}
	}
	if f, ok := fieldAliases[strings.ToLower(name)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// Preview is the read-only result of the figures currently in a form.
type Preview struct {
	Figures
	CurrentRatio Percent
	DebtRatio    Percent
	Assessment   Assessment
}

// NewPreview computes the ratios and classifications of f.
func NewPreview(f Figures) Preview {
	cr := CurrentRatio(f.CurrentAssets, f.CurrentLiabilities)
	dr := DebtRatio(f.TotalDebt, f.Equity)
	return Preview{
		Figures:      f,
		CurrentRatio: cr,
		DebtRatio:    dr,
		Assessment:   Assess(cr, dr),
	}
}

// Form holds the raw text of a record being entered.
//
// Every change notifies the listeners, in registration order, with a fresh
// Preview. Only Submit and Delete touch the store.
type Form struct {
	fields    [numFields]string
	listeners []func(Preview)
}

// NewForm returns a blank form.
func NewForm() *Form { return &Form{} }

// OnChange registers a listener called after each change.
func (f *Form) OnChange(listener func(Preview)) {
	f.listeners = append(f.listeners, listener)
}

// Get returns the raw text of a field.
func (f *Form) Get(field Field) string { return f.fields[field] }

// ID returns the id of the record loaded in the form, if any.
func (f *Form) ID() string { return f.fields[FieldID] }

// Set changes a field and refreshes the listeners.
func (f *Form) Set(field Field, value string) {
	f.fields[field] = value
	f.notify()
}

// Values reads the form into a record. Figures are coerced, the name is
// trimmed and the ratios are computed.
func (f *Form) Values() Record {
	return NewRecord(strings.TrimSpace(f.fields[FieldID]), strings.TrimSpace(f.fields[FieldName]), f.figures())
}

// Preview returns the current preview without notifying anyone.
func (f *Form) Preview() Preview { return NewPreview(f.figures()) }

func (f *Form) figures() Figures {
	return Figures{
		CurrentAssets:      ParseAmount(f.fields[FieldCurrentAssets]),
		CurrentLiabilities: ParseAmount(f.fields[FieldCurrentLiabilities]),
		TotalDebt:          ParseAmount(f.fields[FieldTotalDebt]),
		Equity:             ParseAmount(f.fields[FieldEquity]),
	}
}

// Load fills the form with a record.
func (f *Form) Load(r Record) {
	f.fields = [numFields]string{
		FieldID:                 r.ID,
		FieldName:               r.Name,
		FieldCurrentAssets:      r.CurrentAssets.String(),
		FieldCurrentLiabilities: r.CurrentLiabilities.String(),
		FieldTotalDebt:          r.TotalDebt.String(),
		FieldEquity:             r.Equity.String(),
	}
	f.notify()
}

// Reset blanks every field.
func (f *Form) Reset() {
	f.fields = [numFields]string{}
	f.notify()
}

// Submit saves the form into s and returns the record id. The id is kept in
// the form so that a later submit updates the same record.
//
// An empty name fails with ErrNameRequired and leaves s untouched.
func (f *Form) Submit(s *Store) (string, error) {
	r := f.Values()
	if r.Name == "" {
		return "", ErrNameRequired
	}
	id, err := s.Upsert(r)
	if err != nil {
		return "", err
	}
	f.fields[FieldID] = id
	return id, nil
}

// Edit loads the stored record with this id. It reports whether it was found.
func (f *Form) Edit(s *Store, id string) bool {
	r, ok := s.Get(id)
	if ok {
		f.Load(r)
	}
	return ok
}

// Delete removes the record from s, and clears the form if that record was
// loaded.
func (f *Form) Delete(s *Store, id string) error {
	if err := s.RemoveByID(id); err != nil {
		return err
	}
	if f.ID() == id {
		f.Reset()
	}
	return nil
}

func (f *Form) notify() {
	if len(f.listeners) == 0 {
		return
	}
	p := f.Preview()
	for _, l := range f.listeners {
		l(p)
	}
}
