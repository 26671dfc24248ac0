package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"watchlist/internal/domain"
)

// readLine returns the next trimmed line. io.EOF is returned only when the
// input ended before any text was read.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: read input: %w", domain.ErrIO, err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; only "y" or "Y" counts as yes.
func confirm(in *bufio.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, question)
	line, err := readLine(in)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "y"), nil
}

// pickIndex asks for a 1-based index in [1, n]. Empty input selects 1 and
// invalid input asks again. ok is false when the input ends first.
func pickIndex(in *bufio.Reader, out io.Writer, n int) (idx int, ok bool, err error) {
	for {
		fmt.Fprint(out, "Enter item to delete (default: 1): ")
		line, err := readLine(in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		if line == "" {
			return 1, true, nil
		}
		if i, convErr := strconv.Atoi(line); convErr == nil && i >= 1 && i <= n {
			return i, true, nil
		}
	}
}
