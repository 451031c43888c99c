package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/kpoet/compiler/gen"
	"github.com/syssam/kpoet/compiler/load"
	"github.com/syssam/kpoet/spec"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] <path> [path...]",
		Short: "Render declaration files, or every .yaml file under a directory",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRender,
	}
	addOutputFlags(cmd)
	cmd.Flags().Bool("stdout", false, "print the rendered files instead of writing them")
	return cmd
}

// addOutputFlags registers the flags shared by render and watch.
func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("out", "o", "", "target directory for the generated files")
	f.Bool("default-imports", false, "treat the kotlin default imports as implicit")
	f.Bool("jvm", false, "also treat java.lang as implicit")
	f.StringSlice("no-import", nil, "namespaces that are never imported")
	f.String("indent", gen.DefaultIndent, "indentation unit")
	f.Int("column-limit", gen.DefaultColumnLimit, "column limit for wrapping parameter lists")
	f.String("header", "", "comment written at the top of every file")
	f.Int("workers", 0, "files rendered in parallel, 0 for the number of CPUs")
}

// options maps the output flags to generator options.
func options(cmd *cobra.Command, withTarget bool) ([]gen.Option, error) {
	f := cmd.Flags()
	var opts []gen.Option
	if withTarget {
		out, _ := f.GetString("out")
		if out == "" {
			return nil, fmt.Errorf("%s: missing target directory: use -o", cmd.Name())
		}
		opts = append(opts, gen.WithTarget(out))
	}
	if v, _ := f.GetBool("default-imports"); v {
		opts = append(opts, gen.WithDefaultImports())
	}
	if v, _ := f.GetBool("jvm"); v {
		opts = append(opts, gen.WithJVM())
	}
	namespaces, _ := f.GetStringSlice("no-import")
	for _, ns := range namespaces {
		opts = append(opts, gen.WithoutImports(ns))
	}
	indent, _ := f.GetString("indent")
	limit, _ := f.GetInt("column-limit")
	opts = append(opts, gen.WithIndent(indent), gen.WithColumnLimit(limit))
	if header, _ := f.GetString("header"); header != "" {
		opts = append(opts, gen.WithHeader(header))
	}
	if workers, _ := f.GetInt("workers"); workers > 0 {
		opts = append(opts, gen.WithWorkers(workers))
	}
	return append(opts, gen.WithLogger(logger(cmd))), nil
}

func runRender(cmd *cobra.Command, args []string) error {
	toStdout, _ := cmd.Flags().GetBool("stdout")
	opts, err := options(cmd, !toStdout)
	if err != nil {
		return err
	}
	paths, err := expand(args)
	if err != nil {
		return err
	}
	files, err := load.LoadFiles(paths...)
	if err != nil {
		return err
	}
	if !toStdout {
		return gen.Generate(cmd.Context(), files, opts...)
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	return printFiles(cmd, cfg, files)
}

// printFiles writes every rendered file to the command output, each under a
// comment naming its path.
func printFiles(cmd *cobra.Command, cfg *gen.Config, files []*spec.File) error {
	out := cmd.OutOrStdout()
	for i, f := range files {
		src, err := gen.Render(cfg, f)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if len(files) > 1 {
			fmt.Fprintf(out, "// %s\n", f.Path())
		}
		fmt.Fprint(out, src)
	}
	return nil
}

// isDocument reports whether path names a declaration file.
func isDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// expand replaces directories in paths by the declaration files they
// contain, in lexical order.
func expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isDocument(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		slices.Sort(found)
		out = append(out, found...)
	}
	return out, nil
}
