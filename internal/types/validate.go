//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the input against its struct tags. Enum fields are
// lowercased first so "Medium" and "medium" both pass.
func (in *DiscoveryInput) Validate() error {
	in.RiskAppetite = Level(strings.ToLower(string(in.RiskAppetite)))
	in.WorkPreference = strings.ToLower(in.WorkPreference)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("invalid discovery input: %s", strings.Join(fields, ", "))
	}
	return fmt.Errorf("invalid discovery input: %w", err)
}
