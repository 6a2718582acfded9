package main

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	got := formatTable([]string{"ID", "Title"}, [][]string{
		{"aim", "Aim Trainer"},
		{"npuzzle", "N-Puzzle"},
	})
	want := strings.Join([]string{
		"+---------+-------------+",
		"| ID      | Title       |",
		"+---------+-------------+",
		"| aim     | Aim Trainer |",
		"| npuzzle | N-Puzzle    |",
		"+---------+-------------+",
		"",
	}, "\n")
	if got != want {
		t.Errorf("formatTable() =\n%s\nexpected\n%s", got, want)
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	got := formatTable([]string{"k"}, [][]string{{"日本"}})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if lines[0] != "+------+" || lines[3] != "| 日本 |" {
		t.Errorf("wide runes not measured in cells:\n%s", got)
	}
}
