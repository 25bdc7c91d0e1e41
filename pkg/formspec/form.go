package formspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/verifyinput/pkg/validator"
	"github.com/dmitrymomot/verifyinput/pkg/verify"
)

// Field is one field declaration of a form document.
type Field struct {
	Name      string `yaml:"name"`
	Source    string `yaml:"source"`
	Kind      string `yaml:"kind"`
	Error     string `yaml:"error"`
	Order     *int   `yaml:"order"`
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
	Report    *bool  `yaml:"report"`
}

// Form is a parsed form document. Fields keep document order, which is the
// registration order used to break ties between equal order keys.
type Form struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`

	rules []verify.RuleSpec
}

// Load reads and parses the form document at path.
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadForm, err)
	}
	form, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return form, nil
}

// Parse decodes a YAML form document. Unknown keys are rejected. Every
// unnamed or duplicate field and every unknown rule kind is reported in one
// validator.ValidationErrors joined to the returned error. A field without
// kind is an emptiness check, and without source it is looked up by its
// upper-cased name.
func Parse(data []byte) (*Form, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var form Form
	if err := dec.Decode(&form); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidForm, err)
	}

	var (
		problems validator.ValidationErrors
		causes   []error
	)
	seen := make(map[string]bool, len(form.Fields))
	form.rules = make([]verify.RuleSpec, 0, len(form.Fields))

	for i := range form.Fields {
		f := &form.Fields[i]
		f.Name = strings.TrimSpace(f.Name)
		if f.Source == "" {
			f.Source = strings.ToUpper(f.Name)
		}

		label := f.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		duplicate := f.Name != "" && seen[f.Name]
		seen[f.Name] = true

		rule, kindErr := f.rule()
		err := validator.Apply(
			fieldRule(label, f.Name != "", "field has no name", "formspec.name_required"),
			fieldRule(label, !duplicate, "field name is already used", "formspec.name_duplicate"),
			fieldRule(label, kindErr == nil, fmt.Sprintf("unknown rule kind %q", f.Kind), "formspec.kind_unknown"),
		)
		if err != nil {
			for _, verr := range validator.ExtractValidationErrors(err) {
				problems.Add(verr)
			}
		}
		if duplicate {
			causes = append(causes, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name))
		}
		if kindErr != nil {
			causes = append(causes, kindErr)
		}
		form.rules = append(form.rules, rule)
	}

	if !problems.IsEmpty() {
		return nil, errors.Join(append([]error{ErrInvalidForm, problems}, causes...)...)
	}

	return &form, nil
}

func fieldRule(field string, ok bool, message, key string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return ok },
		Error: validator.ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// Rule returns the rule parsed for the field at index i.
func (f *Form) Rule(i int) verify.RuleSpec {
	return f.rules[i]
}

// Bindings binds every field to src. Values are looked up when the engine
// reads them, so fields after a failure are never looked up.
func (f *Form) Bindings(src Source) []verify.Binding {
	bindings := make([]verify.Binding, 0, len(f.Fields))
	for i, field := range f.Fields {
		key := field.Source
		bindings = append(bindings, verify.Bind(field.Name, f.rules[i], func() (string, bool) {
			return src.Lookup(key)
		}))
	}
	return bindings
}
