// Command validate provides a small CLI that validates server configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Lobby pool consistency (non-empty, no blank or duplicate identifiers)
//   - Presence of the client-facing message strings
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a server configuration.
type Config struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Lobbies     []string          `json:"lobbies"`
	Messages    map[string]string `json:"messages"`
}

// requiredMessages lists the message keys clients can receive.
var requiredMessages = []string{
	"lobby_not_found",
	"lobby_full",
	"need_two_players",
	"empty_word",
	"opponent_left",
	"already_in_lobby",
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Name is required")
	}

	// Validate the lobby pool
	if len(config.Lobbies) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Must define at least 1 lobby")
	}

	seen := map[string]bool{}
	for i, id := range config.Lobbies {
		if strings.TrimSpace(id) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Lobby %d has a blank identifier", i+1))
			continue
		}
		if seen[id] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate lobby identifier %q", id))
		}
		seen[id] = true
	}

	// Validate messages
	for _, key := range requiredMessages {
		if config.Messages[key] == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing message: %s", key))
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ %d lobbies, %d messages", len(config.Lobbies), len(config.Messages)))
	}

	return result
}

func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
