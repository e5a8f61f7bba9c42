package utils

import (
	"fmt"
	"strings"
)

// professionAliases lists the spellings a profession is stored under in
// master profiles
var professionAliases = map[string][]string{
	"electrician":    {"elektrikár", "elektrikar", "electrician", "elektroinštalatér"},
	"plumber":        {"inštalatér", "instalater", "vodár", "plumber"},
	"gas_technician": {"plynár", "plynar", "kurenár", "gas technician", "heating engineer"},
	"builder":        {"stavbár", "stavbar", "murár", "builder", "stavebná firma"},
}

// ProfessionAliases returns the stored spellings of a profession tag. Unknown
// tags map to themselves.
func ProfessionAliases(profession string) []string {
	key := strings.ToLower(strings.TrimSpace(profession))
	if key == "" {
		return nil
	}
	if aliases, ok := professionAliases[key]; ok {
		return aliases
	}
	return []string{key}
}

// FuzzyMatchProfession reports whether a stored profession label belongs to
// the given profession tag
func FuzzyMatchProfession(profession, label string) bool {
	folded := Fold(label)
	if folded == "" {
		return false
	}
	for _, alias := range ProfessionAliases(profession) {
		if strings.Contains(folded, Fold(alias)) {
			return true
		}
	}
	return false
}

// BuildFuzzyProfessionQuery builds an OR group of ILIKE conditions for the
// profession column. It returns the condition, its parameters and the next
// free placeholder index.
func BuildFuzzyProfessionQuery(profession string, paramIndex int) (string, []interface{}, int) {
	aliases := ProfessionAliases(profession)
	if len(aliases) == 0 {
		return "", nil, paramIndex
	}

	orConditions := make([]string, 0, len(aliases))
	params := make([]interface{}, 0, len(aliases))
	for _, alias := range aliases {
		orConditions = append(orConditions, fmt.Sprintf("profession ILIKE $%d", paramIndex))
		params = append(params, "%"+alias+"%")
		paramIndex++
	}

	return "(" + strings.Join(orConditions, " OR ") + ")", params, paramIndex
}

// BuildFuzzyCityQuery matches the location column against a canonical city
// name and its diacritic-free spelling
func BuildFuzzyCityQuery(city string, paramIndex int) (string, []interface{}, int) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", nil, paramIndex
	}
	variants := []string{city}
	if plain := Fold(city); plain != strings.ToLower(city) {
		variants = append(variants, plain)
	}

	orConditions := make([]string, 0, len(variants))
	params := make([]interface{}, 0, len(variants))
	for _, v := range variants {
		orConditions = append(orConditions, fmt.Sprintf("location ILIKE $%d", paramIndex))
		params = append(params, "%"+v+"%")
		paramIndex++
	}

	return "(" + strings.Join(orConditions, " OR ") + ")", params, paramIndex
}
