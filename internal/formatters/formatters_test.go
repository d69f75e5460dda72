package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "full number", raw: "11987654321", want: "11 98765-4321"},
		{name: "already formatted", raw: "11 98765-4321", want: "11 98765-4321"},
		{name: "strips letters", raw: "11a98765b4321", want: "11 98765-4321"},
		{name: "area code only", raw: "11", want: "11"},
		{name: "partial number", raw: "11987", want: "11 987"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.raw))
		})
	}
}

func TestRegistration(t *testing.T) {
	assert.Equal(t, "1234", Registration("1234"))
	assert.Equal(t, "1234", Registration("12a3-4"))
	assert.Equal(t, "", Registration("abc"))
}
