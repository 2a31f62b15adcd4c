package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (InputTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_deduction", createSetDeduction)
	registry.Register("fill_deduction", createFillDeduction)
	registry.Register("add_donation", createAddDonation)

	registry.Register("raise_salary", createRaiseSalary)
	registry.Register("set_rent", createSetRent)
	registry.Register("set_age", createSetAge)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (InputTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_deduction:section=80c,amount=150000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (InputTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses every spec in order.
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]InputTransform, error) {
	transforms := make([]InputTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func requireParam(transform string, params map[string]string, key string) (string, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return value, nil
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, err := requireParam(transform, params, key)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(raw, "_", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// Factory functions for each transform

func createSetDeduction(params map[string]string) (InputTransform, error) {
	section, err := requireParam("set_deduction", params, "section")
	if err != nil {
		return nil, err
	}
	amount, err := decimalParam("set_deduction", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetDeduction{Section: strings.ToLower(section), Amount: amount}, nil
}

func createFillDeduction(params map[string]string) (InputTransform, error) {
	section, err := requireParam("fill_deduction", params, "section")
	if err != nil {
		return nil, err
	}
	target, err := decimalParam("fill_deduction", params, "target")
	if err != nil {
		return nil, err
	}
	return &FillDeduction{Section: strings.ToLower(section), Target: target}, nil
}

func createAddDonation(params map[string]string) (InputTransform, error) {
	category, err := requireParam("add_donation", params, "category")
	if err != nil {
		return nil, err
	}
	amount, err := decimalParam("add_donation", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AddDonation{Donation: domain.Section80GDonation{
		Category:    domain.DonationCategory(category),
		Institution: params["institution"],
		Amount:      amount,
	}}, nil
}

func createRaiseSalary(params map[string]string) (InputTransform, error) {
	percent, err := decimalParam("raise_salary", params, "percent")
	if err != nil {
		return nil, err
	}
	return &RaiseSalary{Percent: percent}, nil
}

func createSetRent(params map[string]string) (InputTransform, error) {
	annual, err := decimalParam("set_rent", params, "annual")
	if err != nil {
		return nil, err
	}

	t := &SetRent{Annual: annual}
	if metroStr, ok := params["metro"]; ok {
		metro, err := strconv.ParseBool(metroStr)
		if err != nil {
			return nil, fmt.Errorf("invalid metro value: %w", err)
		}
		t.Metro = &metro
	}
	return t, nil
}

func createSetAge(params map[string]string) (InputTransform, error) {
	ageStr, err := requireParam("set_age", params, "age")
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return nil, fmt.Errorf("invalid age value: %w", err)
	}
	return &SetAge{Age: age}, nil
}
