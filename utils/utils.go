package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTempPassword generates a random temporary password for invited users
func GenerateTempPassword(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	password := make([]byte, length)
	for i := range password {
		password[i] = tempPasswordChars[rng.Intn(len(tempPasswordChars))]
	}
	return string(password)
}

var templateVarPattern = regexp.MustCompile(`\{\{(\d+)\}\}`)

// ExtractTemplateVariables returns the sorted, de-duplicated positional
// placeholder numbers found in a template body, e.g. "Hi {{1}}, day {{2}}"
// yields [1 2].
func ExtractTemplateVariables(content string) []int {
	seen := make(map[int]bool)
	var positions []int
	for _, match := range templateVarPattern.FindAllStringSubmatch(content, -1) {
		pos, err := strconv.Atoi(match[1])
		if err != nil || seen[pos] {
			continue
		}
		seen[pos] = true
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// JoinVariables renders extracted positions into the comma-joined form
// stored on the template cache row.
func JoinVariables(positions []int) string {
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = fmt.Sprintf("%d", pos)
	}
	return strings.Join(parts, ",")
}
