package kernel

import (
	"fmt"

	"fixxo/internal/pkg/errs"
)

// ServiceKind enumerates the service categories the business dispatches.
// It is shared by riders (the category they work) and requests (the category
// they ask for); assignment pairs matching categories but the model does not
// enforce it.
type ServiceKind int

const (
	// ServiceUnknown represents an invalid or undefined service category.
	ServiceUnknown ServiceKind = iota

	// ServiceIroning is the garment ironing and pressing service.
	ServiceIroning

	// ServiceDogWalker is the dog walking service.
	ServiceDogWalker

	// ServiceNanny is the childcare service.
	ServiceNanny

	// ServiceGardener is the gardening service.
	ServiceGardener
)

// getServiceKindStrings returns the persisted text form of every ServiceKind.
func getServiceKindStrings() map[ServiceKind]string {
	return map[ServiceKind]string{
		ServiceUnknown:   "unknown",
		ServiceIroning:   "ironing",
		ServiceDogWalker: "dog_walker",
		ServiceNanny:     "nanny",
		ServiceGardener:  "gardener",
	}
}

// getValidServiceKindStrings returns only valid ServiceKind values.
func getValidServiceKindStrings() map[ServiceKind]string {
	//nolint:exhaustive // ServiceUnknown is intentionally excluded as it's invalid
	return map[ServiceKind]string{
		ServiceIroning:   "ironing",
		ServiceDogWalker: "dog_walker",
		ServiceNanny:     "nanny",
		ServiceGardener:  "gardener",
	}
}

// ServiceKindFromString parses the persisted text form of a service category.
func ServiceKindFromString(s string) (ServiceKind, error) {
	for kind, str := range getValidServiceKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service is invalid", fmt.Errorf("%q is not a valid service category", s))
}

// Validate checks that the ServiceKind is one of the defined categories.
func (k ServiceKind) Validate() error {
	if _, ok := getValidServiceKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service is invalid", fmt.Errorf("%d is not a valid service category", k))
	}
	return nil
}

// String returns the persisted text form of the category ("dog_walker", ...).
// Invalid values yield "unknown".
func (k ServiceKind) String() string {
	if str, ok := getServiceKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
