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
	"fmt"
	"log"

	"github.com/shenwei356/nwalign/internal/homology"
	"github.com/spf13/cobra"
)

// homologyCmd prints the position-wise identity fraction of two
// already-aligned (or simply equal-length) sequences.
var homologyCmd = &cobra.Command{
	Use:                        "homology [a] [b]",
	Short:                      "Print the position-wise identity fraction of two sequences",
	Args:                       cobra.ExactArgs(2),
	SuggestionsMinimumDistance: 2,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := readSeq(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		b, err := readSeq(args[1])
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("%.4f\n", homology.Fraction(a, b))
	},
}

func init() {
	rootCmd.AddCommand(homologyCmd)
}
