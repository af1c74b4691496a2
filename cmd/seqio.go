// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// readSeq resolves a command-line sequence argument. A leading '@' means
// the rest of the argument is a path to a file, and the first line that is
// non-empty and does not start with '>', '<' or '#' is returned as the
// sequence (the same shape the teacher's own benchmark input file uses);
// anything else is treated as a literal sequence.
func readSeq(arg string) ([]byte, error) {
	if !strings.HasPrefix(arg, "@") {
		return []byte(strings.ToUpper(arg)), nil
	}

	path := arg[1:]
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %s: %w", path, err)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ">") || strings.HasPrefix(line, "<") || strings.HasPrefix(line, "#") {
			continue
		}
		return []byte(strings.ToUpper(line)), nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %s: %w", path, err)
	}
	return nil, fmt.Errorf("no sequence line found in %s", path)
}
