package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	jsoncore "github.com/clarete/jsoncore"
	"github.com/clarete/jsoncore/internal/simd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jsonfmt",
		Short: "Parse, validate and reformat JSON using the jsoncore engine",
	}
	root.AddCommand(newParseCmd(), newStringifyCmd(), newBenchCmd())
	return root
}

func readInput(path string) []byte {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("can't read stdin: %s", err)
		}
		return b
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("can't read %s: %s", path, err)
	}
	return b
}

func newParseCmd() *cobra.Command {
	var maxDepth int
	var allowComments, allowTrailingCommas bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON document and report its value count, or the first error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			src := readInput(path)
			opts := jsoncore.ParseOptions{
				MaxDepth:            maxDepth,
				AllowComments:       allowComments,
				AllowTrailingCommas: allowTrailingCommas,
			}
			doc, err := jsoncore.Parse(src, opts)
			if err != nil {
				return err
			}
			defer doc.Release()
			noun := lo.Ternary(doc.ValueCount() == 1, "value", "values")
			fmt.Printf("ok: %d %s, root kind %s\n", doc.ValueCount(), noun, doc.Root().Kind())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum container nesting depth (0 = unlimited)")
	cmd.Flags().BoolVar(&allowComments, "allow-comments", false, "accept // and /* */ comments")
	cmd.Flags().BoolVar(&allowTrailingCommas, "allow-trailing-commas", false, "accept a trailing comma before ] or }")
	return cmd
}

func newStringifyCmd() *cobra.Command {
	var pretty, escapeSlash, escapeUnicode bool
	var indent int

	cmd := &cobra.Command{
		Use:   "stringify [file]",
		Short: "Parse a JSON document and write it back out, optionally pretty-printed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			src := readInput(path)
			doc, err := jsoncore.Parse(src, jsoncore.DefaultParseOptions())
			if err != nil {
				return err
			}
			defer doc.Release()

			opts := jsoncore.DefaultStringifyOptions()
			opts.Pretty = pretty
			opts.Indent = indent
			opts.EscapeSlash = escapeSlash
			opts.EscapeUnicode = escapeUnicode

			out, err := jsoncore.Stringify(doc.Root(), opts)
			if err != nil {
				return err
			}
			// Drop the trailing NUL the engine appends for C interop;
			// it has no place in a stream written to stdout.
			os.Stdout.Write(out[:len(out)-1])
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "multi-line indented output")
	cmd.Flags().IntVar(&indent, "indent", 2, "spaces per nesting level under --pretty")
	cmd.Flags().BoolVar(&escapeSlash, "escape-slash", false, `escape '/' as \/`)
	cmd.Flags().BoolVar(&escapeUnicode, "escape-unicode", false, `escape non-ASCII bytes as \uXXXX`)
	return cmd
}

func newBenchCmd() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Repeatedly parse a file and report throughput and the active SIMD tier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			src := readInput(path)

			start := time.Now()
			for i := 0; i < iterations; i++ {
				doc, err := jsoncore.Parse(src, jsoncore.DefaultParseOptions())
				if err != nil {
					return err
				}
				doc.Release()
			}
			elapsed := time.Since(start)

			mbPerSec := float64(len(src)*iterations) / elapsed.Seconds() / (1 << 20)
			fmt.Printf("tier=%s iterations=%d bytes=%d elapsed=%s throughput=%.1fMB/s\n",
				simd.ActiveTier(), iterations, len(src), elapsed, mbPerSec)
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 100, "number of parse iterations")
	return cmd
}
