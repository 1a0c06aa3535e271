package parser

import (
	"regexp"
	"strings"
)

// ParsedHabit represents a habit parsed from natural language
type ParsedHabit struct {
	Name      string
	Category  string
	Frequency string
	Errors    []string
}

// ParseHabitLine extracts metadata from a habit line using natural syntax
// Syntax: "Read 20 pages #reading @weekly"
func ParseHabitLine(input string) ParsedHabit {
	result := ParsedHabit{
		Name:   input,
		Errors: []string{},
	}

	// Extract category (#category-name)
	categoryRegex := regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
	categoryMatches := categoryRegex.FindStringSubmatch(input)
	if len(categoryMatches) > 1 {
		result.Category = categoryMatches[1]
		// Remove from name
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// Extract frequency (@daily, @weekly, @d, @w)
	frequencyRegex := regexp.MustCompile(`@([a-zA-Z]+)`)
	frequencyMatches := frequencyRegex.FindStringSubmatch(input)
	if len(frequencyMatches) > 1 {
		frequency, ok := normalizeFrequency(frequencyMatches[1])
		if ok {
			result.Frequency = frequency
		} else {
			result.Errors = append(result.Errors, "Invalid frequency '"+frequencyMatches[1]+"'. Use: daily or weekly")
		}
		// Remove from name
		input = frequencyRegex.ReplaceAllString(input, "")
	}

	// Clean up the name (remove extra spaces)
	result.Name = strings.Join(strings.Fields(input), " ")
	result.Name = strings.TrimSpace(result.Name)

	return result
}

// normalizeFrequency converts a frequency shorthand to its standard form
func normalizeFrequency(frequency string) (string, bool) {
	switch strings.ToLower(frequency) {
	case "daily", "day", "d":
		return "daily", true
	case "weekly", "week", "w":
		return "weekly", true
	default:
		return "", false
	}
}
