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
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/shenwei356/nwalign/config"
	"github.com/shenwei356/nwalign/internal/align"
	"github.com/shenwei356/nwalign/internal/variant"
	"github.com/spf13/cobra"
)

var windowFlag string

// variantsCmd aligns two sequences and reports the resulting insertions,
// deletions and substitutions as JSON.
var variantsCmd = &cobra.Command{
	Use:                        "variants [ref] [read]",
	Short:                      "Align a read against a reference and report variants as JSON",
	Args:                       cobra.ExactArgs(2),
	SuggestionsMinimumDistance: 2,
	Run: func(cmd *cobra.Command, args []string) {
		ref, err := readSeq(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		read, err := readSeq(args[1])
		if err != nil {
			log.Fatalf("%v", err)
		}

		cfg := config.NewConfig()
		gapOpen, gapExtend := resolveGapPenalties(cmd, cfg)

		matrix := align.BuildMatrix(align.Penalties{
			Match:     cfg.Align.Match,
			Mismatch:  cfg.Align.Mismatch,
			NMismatch: cfg.Align.NMismatch,
			NMatch:    cfg.Align.NMatch,
		})

		incentive := make([]int32, len(ref)+1)
		aligned, err := align.GlobalAlign(matrix, ref, read, incentive, gapOpen, gapExtend)
		if err != nil {
			log.Fatalf("%v", err)
		}

		window, err := parseWindow(windowFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}

		report, err := variant.FindVariants(aligned.AlignedRef, aligned.AlignedRead, window)
		if err != nil {
			log.Fatalf("%v", err)
		}

		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(string(b))
	},
}

// parseWindow turns a comma-separated list of "a-b" half-open ranges into
// an IndexSet. An empty string means no windowed output is requested.
func parseWindow(s string) (variant.IndexSet, error) {
	if s == "" {
		return nil, nil
	}

	var ranges []variant.Coord
	for _, part := range strings.Split(s, ",") {
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("malformed window range %q, want a-b", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("malformed window range %q: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed window range %q: %w", part, err)
		}
		ranges = append(ranges, variant.Coord{Start: start, End: end})
	}
	return variant.NewIndexSetFromRanges(ranges), nil
}

func init() {
	variantsCmd.Flags().StringVarP(&windowFlag, "window", "w", "", "comma-separated half-open ranges (e.g. 10-20,30-40) to restrict the windowed variant lists to")
	rootCmd.AddCommand(variantsCmd)
}
