package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Short(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{name: "city state country", addr: Address{City: "Eugene", State: "OR", Country: "USA"}, want: "Eugene, OR, USA"},
		{name: "city state", addr: Address{City: "Eugene", State: "OR"}, want: "Eugene, OR"},
		{name: "city country", addr: Address{City: "Eugene", Country: "USA"}, want: "Eugene, USA"},
		{name: "country only", addr: Address{Country: "USA"}, want: "USA"},
		{name: "city only", addr: Address{City: "Eugene"}, want: "Eugene"},
		{name: "nothing", addr: Address{}, want: NotGiven},
		{name: "state only falls through", addr: Address{State: "OR"}, want: NotGiven},
		{name: "state and country without city falls through", addr: Address{State: "OR", Country: "USA"}, want: NotGiven},
		{name: "street and zip are ignored", addr: Address{Street: "1 Elm St", ZipCode: "97401"}, want: NotGiven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.Short())
		})
	}
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "1 Elm St, Eugene, OR, 97401, USA",
		Address{Street: "1 Elm St", City: "Eugene", State: "OR", ZipCode: "97401", Country: "USA"}.String())
	assert.Equal(t, "1 Elm St, USA", Address{Street: "1 Elm St", Country: "USA"}.String())
	assert.Equal(t, NotGiven, Address{}.String())
}

func TestAddress_DisplayLines(t *testing.T) {
	full := Address{Street: "1 Elm St", City: "Eugene", State: "OR", ZipCode: "97401", Country: "USA"}
	assert.Equal(t, []string{"1 Elm St", "Eugene, OR 97401", "USA"}, full.DisplayLines())

	assert.Equal(t, []string{"OR 97401"}, Address{State: "OR", ZipCode: "97401"}.DisplayLines())
	assert.Empty(t, Address{}.DisplayLines())
}

func TestAddress_IsEmpty(t *testing.T) {
	assert.True(t, Address{}.IsEmpty())
	assert.False(t, Address{ZipCode: "97401"}.IsEmpty())
}
