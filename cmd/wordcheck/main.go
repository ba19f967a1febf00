// Command wordcheck compares word pairs with the game's matcher and prints
// a human-readable verdict per pair. Pairs come from the command line
// ("wordcheck color colour") or, with no arguments, one pair per line on
// stdin separated by whitespace.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordduel/server/game/match"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		if len(args)%2 != 0 {
			fmt.Fprintln(os.Stderr, "Usage: wordcheck [word1 word2]...")
			os.Exit(2)
		}

		for i := 0; i < len(args); i += 2 {
			fmt.Print(comparePair(args[i], args[i+1]))
		}
		return
	}

	if err := compareLines(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		os.Exit(1)
	}
}

// compareLines reads one whitespace-separated pair per line and writes a
// verdict for each. Blank lines are skipped; lines with other than two
// fields are reported and skipped.
func compareLines(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			fmt.Fprintf(w, "line %d: expected 2 words, got %d\n", lineNo, len(fields))
			continue
		}

		fmt.Fprint(w, comparePair(fields[0], fields[1]))
	}

	return scanner.Err()
}

// comparePair formats one comparison the way the server's word check
// endpoint reports it.
func comparePair(word1, word2 string) string {
	n1, n2 := match.Normalize(word1), match.Normalize(word2)
	distance := match.Distance(n1, n2)

	verdict := "NO MATCH"
	if match.Match(word1, word2) {
		verdict = "MATCH"
	}

	return fmt.Sprintf("%-8s %q vs %q (normalized %q vs %q, distance %d)\n",
		verdict, word1, word2, n1, n2, distance)
}
