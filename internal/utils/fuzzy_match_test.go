package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatchProfession(t *testing.T) {
	tests := []struct {
		profession string
		label      string
		want       bool
	}{
		{"electrician", "Elektrikár", true},
		{"electrician", "elektroinštalatér a revízie", true},
		{"plumber", "Inštalatér - voda, kúrenie", true},
		{"plumber", "Elektrikár", false},
		{"gas_technician", "Plynár", true},
		{"builder", "Murár", true},
		{"unknown", "unknown trade", true},
		{"electrician", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.profession+"/"+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyMatchProfession(tt.profession, tt.label))
		})
	}
}

func TestBuildFuzzyProfessionQuery(t *testing.T) {
	cond, params, next := BuildFuzzyProfessionQuery("plumber", 3)

	assert.Equal(t, "(profession ILIKE $3 OR profession ILIKE $4 OR profession ILIKE $5 OR profession ILIKE $6)", cond)
	assert.Len(t, params, 4)
	assert.Equal(t, "%inštalatér%", params[0])
	assert.Equal(t, 7, next)

	cond, params, next = BuildFuzzyProfessionQuery("", 3)
	assert.Empty(t, cond)
	assert.Nil(t, params)
	assert.Equal(t, 3, next)
}

func TestBuildFuzzyCityQuery(t *testing.T) {
	cond, params, next := BuildFuzzyCityQuery("Žilina", 1)
	assert.Equal(t, "(location ILIKE $1 OR location ILIKE $2)", cond)
	assert.Equal(t, []interface{}{"%Žilina%", "%zilina%"}, params)
	assert.Equal(t, 3, next)

	cond, params, next = BuildFuzzyCityQuery("Nitra", 10)
	assert.Equal(t, "(location ILIKE $10)", cond)
	assert.Equal(t, []interface{}{"%Nitra%"}, params)
	assert.Equal(t, 11, next)
}
