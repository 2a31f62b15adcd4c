package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Adjustment records one amount changed by NormalizeInput.
type Adjustment struct {
	Field string
	From  decimal.Decimal
	To    decimal.Decimal
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s: %s -> %s", a.Field, a.From.String(), a.To.String())
}

// InputParser handles parsing of taxpayer input files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &InputParser{validate: v}
}

// LoadFromFile loads a taxpayer snapshot from a YAML or JSON file. Amounts
// are normalized before validation; the adjustments made are returned so the
// caller can report them.
func (ip *InputParser) LoadFromFile(filename string) (domain.TaxpayerInput, []Adjustment, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxpayerInput{}, nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML (or JSON, which YAML accepts) input.
func (ip *InputParser) Parse(data []byte) (domain.TaxpayerInput, []Adjustment, error) {
	var input domain.TaxpayerInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return domain.TaxpayerInput{}, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	normalized, adjustments := NormalizeInput(input)
	if err := ip.ValidateInput(normalized); err != nil {
		return domain.TaxpayerInput{}, adjustments, fmt.Errorf("input validation failed: %w", err)
	}
	return normalized, adjustments, nil
}

// ValidateInput checks the structural rules: age range and the enumerated
// tags. Amounts are not checked here; NormalizeInput makes them safe.
func (ip *InputParser) ValidateInput(input domain.TaxpayerInput) error {
	err := ip.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "TaxpayerInput.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// NormalizeInput returns a copy of input with every amount made a
// non-negative whole number of rupees. The original is not modified.
func NormalizeInput(input domain.TaxpayerInput) (domain.TaxpayerInput, []Adjustment) {
	out := input
	out.Deductions = input.Deductions.WithDonations(input.Deductions.ChapterVIA.Donations)

	var adjustments []Adjustment
	normalizeValue(reflect.ValueOf(&out).Elem(), "", &adjustments)
	return out, adjustments
}

func normalizeValue(v reflect.Value, path string, adjustments *[]Adjustment) {
	switch {
	case v.Type() == decimalType:
		amount := v.Interface().(decimal.Decimal)
		fixed := decimal.Max(decimal.Zero, amount).Round(0)
		if !fixed.Equal(amount) {
			*adjustments = append(*adjustments, Adjustment{Field: path, From: amount, To: fixed})
			v.Set(reflect.ValueOf(fixed))
		}
	case v.Kind() == reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			name := strings.SplitN(t.Field(i).Tag.Get("yaml"), ",", 2)[0]
			if name == "" {
				name = t.Field(i).Name
			}
			normalizeValue(v.Field(i), joinPath(path, name), adjustments)
		}
	case v.Kind() == reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			normalizeValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i), adjustments)
		}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
