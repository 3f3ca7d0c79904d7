package services_test

import (
	"testing"

	"rfidship/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		problems int
		contains string
	}{
		{name: "strong", password: "Packing2025", problems: 0},
		{name: "too short", password: "Ab1", problems: 1, contains: "at least 8 characters"},
		{name: "no uppercase", password: "packing2025", problems: 1, contains: "uppercase"},
		{name: "no lowercase", password: "PACKING2025", problems: 1, contains: "lowercase"},
		{name: "no digit", password: "PackingBoxes", problems: 1, contains: "number"},
		{name: "empty", password: "", problems: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := services.ValidatePasswordStrength(tt.password)

			assert.Len(t, problems, tt.problems)
			if tt.contains != "" {
				assert.Contains(t, problems[0], tt.contains)
			}
		})
	}
}
